package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"yelpcamp/internal/application/interfaces"
	"yelpcamp/internal/delivery/middleware"
	"yelpcamp/internal/domain/entities"
)

const (
	msgNoPermission   = "You don't have permission to do that"
	msgLoginRequired  = "You need to be logged in to do that"
	msgSomethingWrong = "Something went wrong"
)

type HandlerOptions struct {
	SessionTTL   time.Duration
	CookieSecure bool
	// Health reports whether backing stores are reachable. Nil means always healthy.
	Health func(ctx context.Context) error
}

type Handler struct {
	users         interfaces.UserService
	campgrounds   interfaces.CampgroundService
	comments      interfaces.CommentService
	notifications interfaces.NotificationService
	renderer      *Renderer
	logger        *zap.Logger
	sessionTTL    time.Duration
	cookieSecure  bool
	health        func(ctx context.Context) error
}

func NewHandler(
	users interfaces.UserService,
	campgrounds interfaces.CampgroundService,
	comments interfaces.CommentService,
	notifications interfaces.NotificationService,
	renderer *Renderer,
	logger *zap.Logger,
	options HandlerOptions,
) *Handler {
	return &Handler{
		users:         users,
		campgrounds:   campgrounds,
		comments:      comments,
		notifications: notifications,
		renderer:      renderer,
		logger:        logger,
		sessionTTL:    options.SessionTTL,
		cookieSecure:  options.CookieSecure,
		health:        options.Health,
	}
}

// page starts the template data every view shares.
func (h *Handler) page(r *http.Request, name string) *TemplateData {
	s := stateFrom(r.Context())
	return &TemplateData{
		CurrentUser:   s.user,
		Notifications: s.unread,
		Success:       s.flash.Success,
		Error:         s.flash.Error,
		Page:          name,
	}
}

func (h *Handler) render(w http.ResponseWriter, name string, data *TemplateData) {
	h.renderer.Render(w, http.StatusOK, name, data)
}

// redirectBack follows the Referer when it points at this site and uses fallback otherwise.
func (h *Handler) redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := fallback
	if ref := r.Referer(); ref != "" {
		if u, err := url.Parse(ref); err == nil && (u.Host == "" || u.Host == r.Host) {
			target = u.RequestURI()
		}
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// fail flashes the message matching err and sends the user back.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, notFound, fallback string) {
	var invalid *entities.ValidationError
	switch {
	case errors.As(err, &invalid):
		h.flashError(w, sentence(invalid.Message))
	case errors.Is(err, entities.ErrNotFound):
		h.flashError(w, notFound)
	case errors.Is(err, entities.ErrForbidden):
		h.flashError(w, msgNoPermission)
	case errors.Is(err, entities.ErrInvalidAddress):
		h.flashError(w, "Invalid address")
	default:
		h.logger.Error("request failed",
			zap.String("request_id", middleware.RequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		h.flashError(w, msgSomethingWrong)
	}
	h.redirectBack(w, r, fallback)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("internal error",
		zap.String("request_id", middleware.RequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	data := h.page(r, "error")
	data.Error = "500 Internal Server Error"
	h.renderer.Render(w, http.StatusInternalServerError, "error.html", data)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := h.page(r, "error")
	data.Error = "404 Not Found"
	h.renderer.Render(w, http.StatusNotFound, "error.html", data)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	body := map[string]string{"status": "ok"}
	if h.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.health(ctx); err != nil {
			status = http.StatusServiceUnavailable
			body = map[string]string{"status": "unavailable", "error": err.Error()}
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// sentence upper-cases the first letter of an error message for display.
func sentence(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
