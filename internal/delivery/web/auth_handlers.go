package web

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"yelpcamp/internal/application/command"
	"yelpcamp/internal/domain/entities"
)

func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	h.render(w, "landing.html", h.page(r, "landing"))
}

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", h.page(r, "register"))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	cmd := &command.RegisterUserCommand{
		Username:  r.PostFormValue("username"),
		Password:  r.PostFormValue("password"),
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
		Avatar:    r.PostFormValue("avatar"),
		AdminCode: r.PostFormValue("adminCode"),
	}
	res, err := h.users.RegisterUser(r.Context(), cmd)
	if err != nil {
		data := h.page(r, "register")
		data.Error = err.Error()
		data.Form = map[string]string{
			"username":  cmd.Username,
			"firstName": cmd.FirstName,
			"lastName":  cmd.LastName,
			"email":     cmd.Email,
			"avatar":    cmd.Avatar,
		}
		h.render(w, "register.html", data)
		return
	}

	h.setSessionCookie(w, res.Token)
	h.flashSuccess(w, "Successfully Signed Up! Nice to meet you "+res.User.Username+".")
	http.Redirect(w, r, "/campgrounds", http.StatusFound)
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", h.page(r, "login"))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	res, err := h.users.LoginUser(r.Context(), &command.LoginUserCommand{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		if !errors.Is(err, entities.ErrInvalidCredentials) {
			h.logger.Error("login", zap.Error(err))
		}
		h.flashError(w, "Invalid username/password")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	h.setSessionCookie(w, res.Token)
	h.flashSuccess(w, "Welcome to YelpCamp, "+res.User.Username+"!")
	http.Redirect(w, r, "/campgrounds", http.StatusFound)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if err := h.users.Logout(r.Context(), c.Value); err != nil {
			h.logger.Warn("revoke session", zap.Error(err))
		}
	}
	clearSessionCookie(w)
	h.flashSuccess(w, "See you later!")
	http.Redirect(w, r, "/campgrounds", http.StatusFound)
}

func (h *Handler) ForgotForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "forgot.html", h.page(r, "forgot"))
}

func (h *Handler) Forgot(w http.ResponseWriter, r *http.Request) {
	res, err := h.users.ForgotPassword(r.Context(), &command.ForgotPasswordCommand{
		Email: r.PostFormValue("email"),
		Host:  r.Host,
	})
	switch {
	case errors.Is(err, entities.ErrNotFound):
		h.flashError(w, "No account with that email address exists.")
	case errors.Is(err, entities.ErrRateLimited):
		h.flashError(w, "Too many password reset requests, please try again later.")
	case err != nil:
		h.logger.Error("forgot password", zap.Error(err))
		h.flashError(w, msgSomethingWrong)
	default:
		h.flashSuccess(w, "An e-mail has been sent to "+res.Email+" with further instructions.")
	}
	http.Redirect(w, r, "/forgot", http.StatusFound)
}

func (h *Handler) ResetForm(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if err := h.users.CheckResetToken(r.Context(), token); err != nil {
		h.flashError(w, "Password reset token is invalid or has expired.")
		http.Redirect(w, r, "/forgot", http.StatusFound)
		return
	}
	data := h.page(r, "reset")
	data.Token = token
	h.render(w, "reset.html", data)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	res, err := h.users.ResetPassword(r.Context(), &command.ResetPasswordCommand{
		Token:    token,
		Password: r.PostFormValue("password"),
		Confirm:  r.PostFormValue("confirm"),
	})
	switch {
	case errors.Is(err, entities.ErrInvalidResetToken):
		h.flashError(w, "Password reset token is invalid or has expired.")
		h.redirectBack(w, r, "/forgot")
		return
	case errors.Is(err, entities.ErrPasswordMismatch):
		h.flashError(w, "Passwords do not match.")
		h.redirectBack(w, r, "/reset/"+token)
		return
	case errors.As(err, new(*entities.ValidationError)):
		h.flashError(w, sentence(err.Error()))
		h.redirectBack(w, r, "/reset/"+token)
		return
	case err != nil:
		h.logger.Error("reset password", zap.Error(err))
		h.flashError(w, msgSomethingWrong)
		h.redirectBack(w, r, "/reset/"+token)
		return
	}

	h.setSessionCookie(w, res.Token)
	h.flashSuccess(w, "Success! Your password has been changed.")
	http.Redirect(w, r, "/campgrounds", http.StatusFound)
}
