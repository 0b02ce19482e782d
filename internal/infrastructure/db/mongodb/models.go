package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"yelpcamp/internal/domain/entities"
)

type UserModel struct {
	Id                   primitive.ObjectID   `bson:"_id,omitempty"`
	CreatedAt            time.Time            `bson:"createdAt"`
	UpdatedAt            time.Time            `bson:"updatedAt"`
	Username             string               `bson:"username"`
	FirstName            string               `bson:"firstName"`
	LastName             string               `bson:"lastName"`
	Email                string               `bson:"email"`
	Avatar               string               `bson:"avatar"`
	Password             string               `bson:"password"`
	IsAdmin              bool                 `bson:"isAdmin"`
	Followers            []primitive.ObjectID `bson:"followers"`
	Notifications        []primitive.ObjectID `bson:"notifications"`
	ResetPasswordToken   string               `bson:"resetPasswordToken,omitempty"`
	ResetPasswordExpires *time.Time           `bson:"resetPasswordExpires,omitempty"`
}

type AuthorModel struct {
	Id       primitive.ObjectID `bson:"id"`
	Username string             `bson:"username"`
}

type CampgroundModel struct {
	Id          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Cost        float64              `bson:"cost"`
	Image       string               `bson:"image"`
	Description string               `bson:"description"`
	Location    string               `bson:"location"`
	Lat         float64              `bson:"lat"`
	Lng         float64              `bson:"lng"`
	CreatedAt   time.Time            `bson:"createdAt"`
	Author      AuthorModel          `bson:"author"`
	Comments    []primitive.ObjectID `bson:"comments"`
	Likes       []primitive.ObjectID `bson:"likes"`
}

type CommentModel struct {
	Id           primitive.ObjectID `bson:"_id,omitempty"`
	Text         string             `bson:"text"`
	Author       AuthorModel        `bson:"author"`
	CampgroundId primitive.ObjectID `bson:"campgroundId"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

type NotificationModel struct {
	Id           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	CampgroundId primitive.ObjectID `bson:"campgroundId"`
	IsRead       bool               `bson:"isRead"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func newUserModel(u *entities.User) *UserModel {
	m := &UserModel{
		Id:                 u.Id,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
		Username:           u.Username,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Email:              u.Email,
		Avatar:             u.Avatar,
		Password:           u.Password,
		IsAdmin:            u.IsAdmin,
		Followers:          nonNilIds(u.Followers),
		Notifications:      nonNilIds(u.Notifications),
		ResetPasswordToken: u.ResetPasswordToken,
	}
	if !u.ResetPasswordExpires.IsZero() {
		expires := u.ResetPasswordExpires
		m.ResetPasswordExpires = &expires
	}
	return m
}

func (m *UserModel) toEntity() *entities.User {
	u := &entities.User{
		Id:                 m.Id,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		Username:           m.Username,
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		Email:              m.Email,
		Avatar:             m.Avatar,
		Password:           m.Password,
		IsAdmin:            m.IsAdmin,
		Followers:          nonNilIds(m.Followers),
		Notifications:      nonNilIds(m.Notifications),
		ResetPasswordToken: m.ResetPasswordToken,
	}
	if m.ResetPasswordExpires != nil {
		u.ResetPasswordExpires = *m.ResetPasswordExpires
	}
	return u
}

func newCampgroundModel(c *entities.Campground) *CampgroundModel {
	return &CampgroundModel{
		Id:          c.Id,
		Name:        c.Name,
		Cost:        c.Cost,
		Image:       c.Image,
		Description: c.Description,
		Location:    c.Location,
		Lat:         c.Lat,
		Lng:         c.Lng,
		CreatedAt:   c.CreatedAt,
		Author:      AuthorModel{Id: c.Author.Id, Username: c.Author.Username},
		Comments:    nonNilIds(c.Comments),
		Likes:       nonNilIds(c.Likes),
	}
}

func (m *CampgroundModel) toEntity() *entities.Campground {
	return &entities.Campground{
		Id:          m.Id,
		Name:        m.Name,
		Cost:        m.Cost,
		Image:       m.Image,
		Description: m.Description,
		Location:    m.Location,
		Lat:         m.Lat,
		Lng:         m.Lng,
		CreatedAt:   m.CreatedAt,
		Author:      entities.Author{Id: m.Author.Id, Username: m.Author.Username},
		Comments:    nonNilIds(m.Comments),
		Likes:       nonNilIds(m.Likes),
	}
}

func newCommentModel(c *entities.Comment) *CommentModel {
	return &CommentModel{
		Id:           c.Id,
		Text:         c.Text,
		Author:       AuthorModel{Id: c.Author.Id, Username: c.Author.Username},
		CampgroundId: c.CampgroundId,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (m *CommentModel) toEntity() *entities.Comment {
	return &entities.Comment{
		Id:           m.Id,
		Text:         m.Text,
		Author:       entities.Author{Id: m.Author.Id, Username: m.Author.Username},
		CampgroundId: m.CampgroundId,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func newNotificationModel(n *entities.Notification) *NotificationModel {
	return &NotificationModel{
		Id:           n.Id,
		Username:     n.Username,
		CampgroundId: n.CampgroundId,
		IsRead:       n.IsRead,
		CreatedAt:    n.CreatedAt,
	}
}

func (m *NotificationModel) toEntity() *entities.Notification {
	return &entities.Notification{
		Id:           m.Id,
		Username:     m.Username,
		CampgroundId: m.CampgroundId,
		IsRead:       m.IsRead,
		CreatedAt:    m.CreatedAt,
	}
}

// nonNilIds keeps arrays stored as [] rather than null so $push and $in work.
func nonNilIds(ids []primitive.ObjectID) []primitive.ObjectID {
	if ids == nil {
		return make([]primitive.ObjectID, 0)
	}
	return ids
}
