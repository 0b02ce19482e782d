package entities

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Id                   primitive.ObjectID
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Username             string
	FirstName            string
	LastName             string
	Email                string
	Avatar               string
	Password             string
	IsAdmin              bool
	Followers            []primitive.ObjectID
	Notifications        []primitive.ObjectID
	ResetPasswordToken   string
	ResetPasswordExpires time.Time
}

func NewUser(username, email, password string) *User {
	now := time.Now()
	return &User{
		Id:            primitive.NewObjectID(),
		CreatedAt:     now,
		UpdatedAt:     now,
		Username:      strings.TrimSpace(username),
		Email:         strings.ToLower(strings.TrimSpace(email)),
		Password:      password,
		Followers:     make([]primitive.ObjectID, 0),
		Notifications: make([]primitive.ObjectID, 0),
	}
}

func (u *User) validate() error {
	if u.Username == "" {
		return invalid("username must not be empty")
	}
	if u.Email == "" {
		return invalid("email must not be empty")
	}
	if !strings.Contains(u.Email, "@") {
		return invalid("email is not valid")
	}
	if u.Password == "" {
		return invalid("password must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// SetPassword replaces the credential with a fresh hash of password.
func (u *User) SetPassword(password string) error {
	if password == "" {
		return invalid("password must not be empty")
	}
	u.Password = password
	u.UpdatedAt = time.Now()
	return u.HashPassword()
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) HasFollower(id primitive.ObjectID) bool {
	for _, f := range u.Followers {
		if f == id {
			return true
		}
	}
	return false
}

func (u *User) HasNotification(id primitive.ObjectID) bool {
	for _, n := range u.Notifications {
		if n == id {
			return true
		}
	}
	return false
}

func (u *User) SetResetToken(token string, expires time.Time) {
	u.ResetPasswordToken = token
	u.ResetPasswordExpires = expires
	u.UpdatedAt = time.Now()
}

// ResetTokenValid reports whether token matches and now is strictly before the expiry.
func (u *User) ResetTokenValid(token string, now time.Time) bool {
	if u.ResetPasswordToken == "" || token == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(u.ResetPasswordToken), []byte(token)) != 1 {
		return false
	}
	return now.Before(u.ResetPasswordExpires)
}

func (u *User) ClearResetToken() {
	u.ResetPasswordToken = ""
	u.ResetPasswordExpires = time.Time{}
	u.UpdatedAt = time.Now()
}

func (u *User) UpdateProfile(firstName, lastName, avatar string) error {
	u.FirstName = strings.TrimSpace(firstName)
	u.LastName = strings.TrimSpace(lastName)
	u.Avatar = strings.TrimSpace(avatar)
	u.UpdatedAt = time.Now()
	return u.validate()
}
