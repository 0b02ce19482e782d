package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"yelpcamp/internal/application/command"
	"yelpcamp/internal/application/query"
)

const msgCampgroundNotFound = "Campground not found"

func (h *Handler) ListCampgrounds(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	index, err := h.campgrounds.ListCampgrounds(r.Context(), &query.CampgroundIndexQuery{
		Page:   page,
		Search: r.URL.Query().Get("search"),
	})
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	data := h.page(r, "campgrounds")
	data.Index = index
	data.Campgrounds = index.Campgrounds
	h.render(w, "campgrounds_index.html", data)
}

func (h *Handler) NewCampground(w http.ResponseWriter, r *http.Request) {
	h.render(w, "campgrounds_new.html", h.page(r, "new campground"))
}

// campgroundForm holds the editable fields shared by create and update.
type campgroundForm struct {
	name, image, description, location string
	cost                               float64
}

func parseCampgroundForm(r *http.Request) (campgroundForm, bool) {
	f := campgroundForm{
		name:        r.PostFormValue("name"),
		image:       r.PostFormValue("image"),
		description: r.PostFormValue("description"),
		location:    r.PostFormValue("location"),
	}
	if raw := strings.TrimSpace(r.PostFormValue("cost")); raw != "" {
		cost, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, false
		}
		f.cost = cost
	}
	return f, true
}

func (h *Handler) CreateCampground(w http.ResponseWriter, r *http.Request) {
	form, ok := parseCampgroundForm(r)
	if !ok {
		h.flashError(w, "Cost must be a number")
		h.redirectBack(w, r, "/campgrounds/new")
		return
	}
	res, err := h.campgrounds.CreateCampground(r.Context(), &command.CreateCampgroundCommand{
		Actor:       actorFrom(r),
		Name:        form.name,
		Cost:        form.cost,
		Image:       form.image,
		Description: form.description,
		Location:    form.location,
	})
	if err != nil {
		h.fail(w, r, err, msgCampgroundNotFound, "/campgrounds/new")
		return
	}
	http.Redirect(w, r, "/campgrounds/"+res.Result.Id, http.StatusFound)
}

func (h *Handler) ShowCampground(w http.ResponseWriter, r *http.Request) {
	detail, err := h.campgrounds.GetCampground(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err, msgCampgroundNotFound, "/campgrounds")
		return
	}
	data := h.page(r, "campground")
	data.Campground = detail.Campground
	data.Comments = detail.Comments
	data.Likers = detail.Likers
	h.render(w, "campgrounds_show.html", data)
}

func (h *Handler) EditCampground(w http.ResponseWriter, r *http.Request) {
	res, err := h.campgrounds.GetEditableCampground(r.Context(), actorFrom(r), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err, msgCampgroundNotFound, "/campgrounds")
		return
	}
	data := h.page(r, "edit campground")
	data.Campground = res.Result
	h.render(w, "campgrounds_edit.html", data)
}

func (h *Handler) UpdateCampground(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	form, ok := parseCampgroundForm(r)
	if !ok {
		h.flashError(w, "Cost must be a number")
		h.redirectBack(w, r, "/campgrounds/"+id+"/edit")
		return
	}
	_, err := h.campgrounds.UpdateCampground(r.Context(), &command.UpdateCampgroundCommand{
		Actor:        actorFrom(r),
		CampgroundId: id,
		Name:         form.name,
		Cost:         form.cost,
		Image:        form.image,
		Description:  form.description,
		Location:     form.location,
	})
	if err != nil {
		h.fail(w, r, err, msgCampgroundNotFound, "/campgrounds/"+id)
		return
	}
	h.flashSuccess(w, "Successfully Updated!")
	http.Redirect(w, r, "/campgrounds/"+id, http.StatusFound)
}

func (h *Handler) DeleteCampground(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := h.campgrounds.DeleteCampground(r.Context(), &command.DeleteCampgroundCommand{Actor: actorFrom(r), CampgroundId: id})
	if err != nil {
		h.fail(w, r, err, msgCampgroundNotFound, "/campgrounds")
		return
	}
	http.Redirect(w, r, "/campgrounds", http.StatusFound)
}

func (h *Handler) LikeCampground(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	_, err := h.campgrounds.ToggleLike(r.Context(), &command.ToggleLikeCommand{Actor: actorFrom(r), CampgroundId: id})
	if err != nil {
		h.fail(w, r, err, msgCampgroundNotFound, "/campgrounds")
		return
	}
	http.Redirect(w, r, "/campgrounds/"+id, http.StatusFound)
}
