package entities

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	Id           primitive.ObjectID
	Text         string
	Author       Author
	CampgroundId primitive.ObjectID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewComment(text string, author Author, campgroundID primitive.ObjectID) *Comment {
	now := time.Now()
	return &Comment{
		Id:           primitive.NewObjectID(),
		Text:         strings.TrimSpace(text),
		Author:       author,
		CampgroundId: campgroundID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (c *Comment) Validate() error {
	if c.Text == "" {
		return invalid("comment must not be empty")
	}
	if c.Author.Id.IsZero() {
		return errors.New("comment must have an author")
	}
	return nil
}

func (c *Comment) Edit(text string) error {
	c.Text = strings.TrimSpace(text)
	c.UpdatedAt = time.Now()
	return c.Validate()
}

func (c *Comment) IsOwnedBy(userID primitive.ObjectID, isAdmin bool) bool {
	return isAdmin || c.Author.Id == userID
}
