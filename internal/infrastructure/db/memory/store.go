// Package memory keeps every collection in process memory. It backs STORE=memory and
// the service and handler tests.
package memory

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"yelpcamp/internal/domain/entities"
)

// Store holds all collections behind one lock, mirroring a single database.
type Store struct {
	mu            sync.RWMutex
	users         map[primitive.ObjectID]*entities.User
	campgrounds   map[primitive.ObjectID]*entities.Campground
	comments      map[primitive.ObjectID]*entities.Comment
	notifications map[primitive.ObjectID]*entities.Notification
	sessions      map[string]session
}

func NewStore() *Store {
	return &Store{
		users:         make(map[primitive.ObjectID]*entities.User),
		campgrounds:   make(map[primitive.ObjectID]*entities.Campground),
		comments:      make(map[primitive.ObjectID]*entities.Comment),
		notifications: make(map[primitive.ObjectID]*entities.Notification),
		sessions:      make(map[string]session),
	}
}

func cloneIds(ids []primitive.ObjectID) []primitive.ObjectID {
	out := make([]primitive.ObjectID, len(ids))
	copy(out, ids)
	return out
}

func cloneUser(u *entities.User) *entities.User {
	c := *u
	c.Followers = cloneIds(u.Followers)
	c.Notifications = cloneIds(u.Notifications)
	return &c
}

func cloneCampground(cg *entities.Campground) *entities.Campground {
	c := *cg
	c.Comments = cloneIds(cg.Comments)
	c.Likes = cloneIds(cg.Likes)
	return &c
}

func cloneComment(cm *entities.Comment) *entities.Comment {
	c := *cm
	return &c
}

func cloneNotification(n *entities.Notification) *entities.Notification {
	c := *n
	return &c
}
