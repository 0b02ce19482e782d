package entities

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is the denormalized owner reference stored on campgrounds and comments.
type Author struct {
	Id       primitive.ObjectID
	Username string
}

// Location is a geocoded address.
type Location struct {
	Address string
	Lat     float64
	Lng     float64
}

type Campground struct {
	Id          primitive.ObjectID
	Name        string
	Cost        float64
	Image       string
	Description string
	Location    string
	Lat         float64
	Lng         float64
	CreatedAt   time.Time
	Author      Author
	Comments    []primitive.ObjectID
	Likes       []primitive.ObjectID
}

func NewCampground(name string, cost float64, image, description string, author Author) *Campground {
	return &Campground{
		Id:          primitive.NewObjectID(),
		Name:        strings.TrimSpace(name),
		Cost:        cost,
		Image:       strings.TrimSpace(image),
		Description: description,
		CreatedAt:   time.Now(),
		Author:      author,
		Comments:    make([]primitive.ObjectID, 0),
		Likes:       make([]primitive.ObjectID, 0),
	}
}

func (c *Campground) Validate() error {
	if c.Name == "" {
		return invalid("campground name cannot be blank")
	}
	if c.Cost < 0 {
		return invalid("cost must not be negative")
	}
	if c.Author.Id.IsZero() {
		return errors.New("campground must have an author")
	}
	return nil
}

func (c *Campground) SetLocation(loc Location) {
	c.Location = loc.Address
	c.Lat = loc.Lat
	c.Lng = loc.Lng
}

// Update overwrites the editable fields. Location is set separately after geocoding.
func (c *Campground) Update(name string, cost float64, image, description string) error {
	c.Name = strings.TrimSpace(name)
	c.Cost = cost
	c.Image = strings.TrimSpace(image)
	c.Description = description
	return c.Validate()
}

// IsOwnedBy is true for the author and for admins.
func (c *Campground) IsOwnedBy(userID primitive.ObjectID, isAdmin bool) bool {
	return isAdmin || c.Author.Id == userID
}

func (c *Campground) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike removes userID from the like list if present and appends it otherwise.
// It reports whether the user likes the campground afterwards.
func (c *Campground) ToggleLike(userID primitive.ObjectID) bool {
	for i, id := range c.Likes {
		if id == userID {
			c.Likes = append(c.Likes[:i:i], c.Likes[i+1:]...)
			return false
		}
	}
	c.Likes = append(c.Likes, userID)
	return true
}

func (c *Campground) AddComment(id primitive.ObjectID) {
	c.Comments = append(c.Comments, id)
}

func (c *Campground) RemoveComment(id primitive.ObjectID) {
	kept := c.Comments[:0:0]
	for _, cid := range c.Comments {
		if cid != id {
			kept = append(kept, cid)
		}
	}
	c.Comments = kept
}
