package web

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const flashCookie = "flash"

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Success string
	Error   string
}

func (h *Handler) setFlash(w http.ResponseWriter, kind, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(kind + "\n" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) flashSuccess(w http.ResponseWriter, message string) {
	h.setFlash(w, "success", message)
}

func (h *Handler) flashError(w http.ResponseWriter, message string) {
	h.setFlash(w, "error", message)
}

// popFlash reads the pending flash and expires the cookie.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return Flash{}
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return Flash{}
	}
	kind, message, ok := strings.Cut(string(raw), "\n")
	if !ok {
		return Flash{}
	}
	switch kind {
	case "success":
		return Flash{Success: message}
	case "error":
		return Flash{Error: message}
	}
	return Flash{}
}
