package memory

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
)

type CommentRepository struct {
	store *Store
}

func NewCommentRepository(store *Store) repositories.CommentRepository {
	return &CommentRepository{store: store}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment) (*entities.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.comments[comment.Id] = cloneComment(comment)
	return cloneComment(comment), nil
}

func (r *CommentRepository) FindById(ctx context.Context, id primitive.ObjectID) (*entities.Comment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if c, ok := r.store.comments[id]; ok {
		return cloneComment(c), nil
	}
	return nil, nil
}

func (r *CommentRepository) FindByIds(ctx context.Context, ids []primitive.ObjectID) ([]*entities.Comment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entities.Comment, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.store.comments[id]; ok {
			out = append(out, cloneComment(c))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return idLess(out[i].Id, out[j].Id)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *entities.Comment) (*entities.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.comments[comment.Id]
	if !ok {
		return nil, nil
	}
	c.Text = comment.Text
	c.UpdatedAt = comment.UpdatedAt
	return cloneComment(c), nil
}

func (r *CommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.comments[id]; !ok {
		return entities.ErrNotFound
	}
	delete(r.store.comments, id)
	return nil
}

func (r *CommentRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, id := range ids {
		if _, ok := r.store.comments[id]; ok {
			delete(r.store.comments, id)
			n++
		}
	}
	return n, nil
}
