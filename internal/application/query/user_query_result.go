package query

import "yelpcamp/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}

type UserProfileResult struct {
	User        *common.UserResult         `json:"user"`
	Followers   []*common.UserResult       `json:"followers"`
	Campgrounds []*common.CampgroundResult `json:"campgrounds"`
}

type NotificationListResult struct {
	Result []*common.NotificationResult `json:"result"`
}
