package command

import "yelpcamp/internal/application/common"

type CreateCampgroundCommand struct {
	Actor       Actor   `json:"actor"`
	Name        string  `json:"name"`
	Cost        float64 `json:"cost"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
}

type CreateCampgroundCommandResult struct {
	Result *common.CampgroundResult `json:"result"`
	Fanout *common.FanoutReport     `json:"fanout"`
}

type UpdateCampgroundCommand struct {
	Actor        Actor   `json:"actor"`
	CampgroundId string  `json:"campground_id"`
	Name         string  `json:"name"`
	Cost         float64 `json:"cost"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
}

type DeleteCampgroundCommand struct {
	Actor        Actor  `json:"actor"`
	CampgroundId string `json:"campground_id"`
}

type ToggleLikeCommand struct {
	Actor        Actor  `json:"actor"`
	CampgroundId string `json:"campground_id"`
}

type ToggleLikeCommandResult struct {
	Result *common.CampgroundResult `json:"result"`
	Liked  bool                     `json:"liked"`
}
