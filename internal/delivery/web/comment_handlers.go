package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"yelpcamp/internal/application/command"
)

func (h *Handler) NewComment(w http.ResponseWriter, r *http.Request) {
	res, err := h.comments.GetCampgroundForComment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err, msgCampgroundNotFound, "/campgrounds")
		return
	}
	data := h.page(r, "new comment")
	data.Campground = res.Result
	h.render(w, "comments_new.html", data)
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	_, err := h.comments.CreateComment(r.Context(), &command.CreateCommentCommand{
		Actor:        actorFrom(r),
		CampgroundId: id,
		Text:         r.PostFormValue("text"),
	})
	if err != nil {
		h.fail(w, r, err, msgCampgroundNotFound, "/campgrounds/"+id)
		return
	}
	h.flashSuccess(w, "Successfully added comment")
	http.Redirect(w, r, "/campgrounds/"+id, http.StatusFound)
}

func (h *Handler) EditComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := h.comments.GetEditableComment(r.Context(), actorFrom(r), vars["id"], vars["commentId"])
	if err != nil {
		h.fail(w, r, err, "Comment not found", "/campgrounds/"+vars["id"])
		return
	}
	data := h.page(r, "edit comment")
	data.Campground = res.Campground
	data.Comment = res.Result
	h.render(w, "comments_edit.html", data)
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	_, err := h.comments.UpdateComment(r.Context(), &command.UpdateCommentCommand{
		Actor:        actorFrom(r),
		CampgroundId: vars["id"],
		CommentId:    vars["commentId"],
		Text:         r.PostFormValue("text"),
	})
	if err != nil {
		h.fail(w, r, err, "Comment not found", "/campgrounds/"+vars["id"])
		return
	}
	http.Redirect(w, r, "/campgrounds/"+vars["id"], http.StatusFound)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	err := h.comments.DeleteComment(r.Context(), &command.DeleteCommentCommand{
		Actor:        actorFrom(r),
		CampgroundId: vars["id"],
		CommentId:    vars["commentId"],
	})
	if err != nil {
		h.fail(w, r, err, "Comment not found", "/campgrounds/"+vars["id"])
		return
	}
	h.flashSuccess(w, "Comment deleted")
	http.Redirect(w, r, "/campgrounds/"+vars["id"], http.StatusFound)
}
