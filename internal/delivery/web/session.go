package web

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

const sessionCookie = "session_token"

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
}

// Session resolves the session cookie to the current user, loads their unread
// notifications and consumes any pending flash message.
func (h *Handler) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := &requestState{flash: h.popFlash(w, r)}

		if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
			user, err := h.users.Authenticate(r.Context(), c.Value)
			if err != nil {
				h.logger.Debug("dropping invalid session", zap.Error(err))
				clearSessionCookie(w)
			} else {
				state.user = user
			}
		}

		ctx := context.WithValue(r.Context(), requestStateKey, state)
		if state.user != nil {
			unread, err := h.notifications.ListUnread(ctx, actorFrom(r.WithContext(ctx)))
			if err != nil {
				h.logger.Warn("load unread notifications", zap.String("user_id", state.user.Id), zap.Error(err))
			} else {
				state.unread = unread.Result
			}
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth sends anonymous visitors to the login page.
func (h *Handler) RequireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if currentUser(r) == nil {
			h.flashError(w, msgLoginRequired)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r)
	})
}
