package common

import "time"

type CampgroundCreatedEvent struct {
	CampgroundId   string    `json:"campground_id"`
	Name           string    `json:"name"`
	AuthorId       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Followers      int       `json:"followers"`
	Delivered      int       `json:"delivered"`
	CreatedAt      time.Time `json:"created_at"`
}
