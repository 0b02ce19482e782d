package query

import "yelpcamp/internal/application/common"

const CampgroundsPerPage = 8

// NoMatchMessage is shown when a search finds nothing.
const NoMatchMessage = "No campgrounds match that query, please try again."

type CampgroundIndexQuery struct {
	// Page is 1-based; values below 1 mean the first page.
	Page   int    `json:"page"`
	Search string `json:"search"`
}

type CampgroundIndexResult struct {
	Campgrounds []*common.CampgroundResult `json:"campgrounds"`
	Current     int                        `json:"current"`
	Pages       int                        `json:"pages"`
	Search      string                     `json:"search,omitempty"`
	NoMatch     string                     `json:"no_match,omitempty"`
}

type CampgroundQueryResult struct {
	Result *common.CampgroundResult `json:"result"`
}

type CampgroundDetailResult struct {
	Campground *common.CampgroundResult `json:"campground"`
	Comments   []*common.CommentResult  `json:"comments"`
	// Likers are the usernames behind Campground.LikeIds.
	Likers []string `json:"likers"`
}

type CommentQueryResult struct {
	Result     *common.CommentResult    `json:"result"`
	Campground *common.CampgroundResult `json:"campground"`
}
