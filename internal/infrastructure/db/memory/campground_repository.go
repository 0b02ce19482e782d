package memory

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
)

type CampgroundRepository struct {
	store *Store
}

func NewCampgroundRepository(store *Store) repositories.CampgroundRepository {
	return &CampgroundRepository{store: store}
}

func (r *CampgroundRepository) Create(ctx context.Context, campground *entities.Campground) (*entities.Campground, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.campgrounds[campground.Id] = cloneCampground(campground)
	return cloneCampground(campground), nil
}

func (r *CampgroundRepository) FindById(ctx context.Context, id primitive.ObjectID) (*entities.Campground, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if c, ok := r.store.campgrounds[id]; ok {
		return cloneCampground(c), nil
	}
	return nil, nil
}

func (r *CampgroundRepository) Find(ctx context.Context, filter repositories.CampgroundFilter) ([]*entities.Campground, error) {
	matched := r.matching(filter)
	if filter.Skip > 0 {
		if filter.Skip >= int64(len(matched)) {
			return []*entities.Campground{}, nil
		}
		matched = matched[filter.Skip:]
	}
	if filter.Limit > 0 && int64(len(matched)) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *CampgroundRepository) Count(ctx context.Context, filter repositories.CampgroundFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

func (r *CampgroundRepository) FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]*entities.Campground, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entities.Campground, 0)
	for _, c := range r.store.campgrounds {
		if c.Author.Id == authorID {
			out = append(out, cloneCampground(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return idLess(out[j].Id, out[i].Id) })
	return out, nil
}

func (r *CampgroundRepository) Update(ctx context.Context, campground *entities.Campground) (*entities.Campground, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.campgrounds[campground.Id]
	if !ok {
		return nil, nil
	}
	c.Name = campground.Name
	c.Cost = campground.Cost
	c.Image = campground.Image
	c.Description = campground.Description
	c.Location = campground.Location
	c.Lat = campground.Lat
	c.Lng = campground.Lng
	return cloneCampground(c), nil
}

func (r *CampgroundRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entities.Campground, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.campgrounds[id]
	if !ok {
		return nil, nil
	}
	delete(r.store.campgrounds, id)
	return c, nil
}

func (r *CampgroundRepository) ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (*entities.Campground, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.campgrounds[id]
	if !ok {
		return nil, nil
	}
	c.ToggleLike(userID)
	return cloneCampground(c), nil
}

func (r *CampgroundRepository) AddComment(ctx context.Context, id, commentID primitive.ObjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.campgrounds[id]
	if !ok {
		return entities.ErrNotFound
	}
	c.AddComment(commentID)
	return nil
}

func (r *CampgroundRepository) RemoveComment(ctx context.Context, id, commentID primitive.ObjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.campgrounds[id]
	if !ok {
		return entities.ErrNotFound
	}
	c.RemoveComment(commentID)
	return nil
}

// matching returns campgrounds in insertion order whose name contains the search term.
func (r *CampgroundRepository) matching(filter repositories.CampgroundFilter) []*entities.Campground {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entities.Campground, 0, len(r.store.campgrounds))
	for _, c := range r.store.campgrounds {
		if search == "" || strings.Contains(strings.ToLower(c.Name), search) {
			out = append(out, cloneCampground(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return idLess(out[i].Id, out[j].Id) })
	return out
}

// idLess orders ObjectIDs by their bytes, which follows creation order.
func idLess(a, b primitive.ObjectID) bool {
	return string(a[:]) < string(b[:])
}
