package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification tells a follower that Username posted a new campground. The recipient is
// not stored here; it owns the notification through User.Notifications.
type Notification struct {
	Id           primitive.ObjectID
	Username     string
	CampgroundId primitive.ObjectID
	IsRead       bool
	CreatedAt    time.Time
}

func NewNotification(username string, campgroundID primitive.ObjectID) *Notification {
	return &Notification{
		Id:           primitive.NewObjectID(),
		Username:     username,
		CampgroundId: campgroundID,
		CreatedAt:    time.Now(),
	}
}

func (n *Notification) MarkRead() {
	n.IsRead = true
}
