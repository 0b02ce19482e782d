package common

import "time"

type CampgroundResult struct {
	Id             string    `json:"id"`
	Name           string    `json:"name"`
	Cost           float64   `json:"cost"`
	Image          string    `json:"image"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	CreatedAt      time.Time `json:"created_at"`
	AuthorId       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	CommentCount   int       `json:"comment_count"`
	LikeIds        []string  `json:"like_ids"`
}

func (c *CampgroundResult) LikeCount() int {
	return len(c.LikeIds)
}

func (c *CampgroundResult) LikedBy(userID string) bool {
	for _, id := range c.LikeIds {
		if id == userID {
			return true
		}
	}
	return false
}

type CommentResult struct {
	Id             string    `json:"id"`
	CampgroundId   string    `json:"campground_id"`
	Text           string    `json:"text"`
	AuthorId       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type NotificationResult struct {
	Id           string    `json:"id"`
	Username     string    `json:"username"`
	CampgroundId string    `json:"campground_id"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}
