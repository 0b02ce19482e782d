package web

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"yelpcamp/internal/application/command"
	"yelpcamp/internal/domain/entities"
)

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.users.GetProfile(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err, "User not found", "/")
		return
	}
	data := h.page(r, "profile")
	data.Profile = profile
	h.render(w, "user_show.html", data)
}

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := h.users.FollowUser(r.Context(), &command.FollowUserCommand{Actor: actorFrom(r), UserId: id})
	if err != nil {
		h.followFailed(w, r, err)
		return
	}
	h.flashSuccess(w, "Successfully followed "+res.Result.Username+"!")
	http.Redirect(w, r, "/users/"+id, http.StatusFound)
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := h.users.UnfollowUser(r.Context(), &command.FollowUserCommand{Actor: actorFrom(r), UserId: id})
	if err != nil {
		h.followFailed(w, r, err)
		return
	}
	h.flashSuccess(w, "Successfully unfollowed "+res.Result.Username+".")
	http.Redirect(w, r, "/users/"+id, http.StatusFound)
}

func (h *Handler) followFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, entities.ErrSelfFollow) {
		h.flashError(w, "You cannot follow yourself.")
		h.redirectBack(w, r, "/campgrounds")
		return
	}
	h.fail(w, r, err, "User not found", "/campgrounds")
}

func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	list, err := h.notifications.ListNotifications(r.Context(), actorFrom(r))
	if err != nil {
		h.fail(w, r, err, "User not found", "/campgrounds")
		return
	}
	data := h.page(r, "notifications")
	data.All = list.Result
	h.render(w, "notifications.html", data)
}

func (h *Handler) OpenNotification(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.OpenNotification(r.Context(), actorFrom(r), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err, "Notification not found", "/notifications")
		return
	}
	http.Redirect(w, r, "/campgrounds/"+n.CampgroundId, http.StatusFound)
}
