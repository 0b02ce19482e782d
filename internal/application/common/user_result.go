package common

import "time"

type UserResult struct {
	Id            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Username      string    `json:"username"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Avatar        string    `json:"avatar"`
	IsAdmin       bool      `json:"is_admin"`
	FollowerCount int       `json:"follower_count"`
	// FollowerIds lets views decide whether the current user already follows this one.
	FollowerIds []string `json:"-"`
}

func (u *UserResult) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

func (u *UserResult) FollowedBy(id string) bool {
	for _, f := range u.FollowerIds {
		if f == id {
			return true
		}
	}
	return false
}
