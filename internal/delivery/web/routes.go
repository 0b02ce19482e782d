package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"yelpcamp/internal/delivery/middleware"
)

// NewRouter registers every route and wraps the router in the global middleware chain.
// limiter may be nil to disable per-IP rate limiting.
func NewRouter(h *Handler, limiter middleware.Limiter, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()
	auth := h.RequireAuth

	r.HandleFunc("/healthz", h.Healthz).Methods(http.MethodGet)
	r.HandleFunc("/", h.Landing).Methods(http.MethodGet)

	r.HandleFunc("/register", h.RegisterForm).Methods(http.MethodGet)
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.LoginForm).Methods(http.MethodGet)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.Logout).Methods(http.MethodGet)
	r.HandleFunc("/forgot", h.ForgotForm).Methods(http.MethodGet)
	r.HandleFunc("/forgot", h.Forgot).Methods(http.MethodPost)
	r.HandleFunc("/reset/{token}", h.ResetForm).Methods(http.MethodGet)
	r.HandleFunc("/reset/{token}", h.Reset).Methods(http.MethodPost)

	r.HandleFunc("/users/{id}", h.Profile).Methods(http.MethodGet)
	r.Handle("/follow/{id}", auth(h.Follow)).Methods(http.MethodGet)
	r.Handle("/unfollow/{id}", auth(h.Unfollow)).Methods(http.MethodGet)
	r.Handle("/notifications", auth(h.Notifications)).Methods(http.MethodGet)
	r.Handle("/notifications/{id}", auth(h.OpenNotification)).Methods(http.MethodGet)

	r.HandleFunc("/campgrounds", h.ListCampgrounds).Methods(http.MethodGet)
	r.Handle("/campgrounds", auth(h.CreateCampground)).Methods(http.MethodPost)
	r.Handle("/campgrounds/new", auth(h.NewCampground)).Methods(http.MethodGet)
	r.HandleFunc("/campgrounds/{id}", h.ShowCampground).Methods(http.MethodGet)
	r.Handle("/campgrounds/{id}/edit", auth(h.EditCampground)).Methods(http.MethodGet)
	r.Handle("/campgrounds/{id}", auth(h.UpdateCampground)).Methods(http.MethodPut)
	r.Handle("/campgrounds/{id}", auth(h.DeleteCampground)).Methods(http.MethodDelete)
	r.Handle("/campgrounds/{id}/like", auth(h.LikeCampground)).Methods(http.MethodPost)

	r.Handle("/campgrounds/{id}/comments/new", auth(h.NewComment)).Methods(http.MethodGet)
	r.Handle("/campgrounds/{id}/comments", auth(h.CreateComment)).Methods(http.MethodPost)
	r.Handle("/campgrounds/{id}/comments/{commentId}/edit", auth(h.EditComment)).Methods(http.MethodGet)
	r.Handle("/campgrounds/{id}/comments/{commentId}", auth(h.UpdateComment)).Methods(http.MethodPut)
	r.Handle("/campgrounds/{id}/comments/{commentId}", auth(h.DeleteComment)).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(h.NotFound)

	chain := []func(http.Handler) http.Handler{
		middleware.Logger(logger),
		middleware.SecureHeaders,
	}
	if limiter != nil {
		chain = append(chain, middleware.RateLimit(limiter))
	}
	chain = append(chain, middleware.MethodOverride, h.Session)
	return middleware.Chain(r, chain...)
}
