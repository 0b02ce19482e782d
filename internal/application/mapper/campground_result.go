package mapper

import (
	"yelpcamp/internal/application/common"
	"yelpcamp/internal/domain/entities"
)

func NewCampgroundResultFromEntity(c *entities.Campground) *common.CampgroundResult {
	likes := make([]string, 0, len(c.Likes))
	for _, id := range c.Likes {
		likes = append(likes, id.Hex())
	}
	return &common.CampgroundResult{
		Id:             c.Id.Hex(),
		Name:           c.Name,
		Cost:           c.Cost,
		Image:          c.Image,
		Description:    c.Description,
		Location:       c.Location,
		Lat:            c.Lat,
		Lng:            c.Lng,
		CreatedAt:      c.CreatedAt,
		AuthorId:       c.Author.Id.Hex(),
		AuthorUsername: c.Author.Username,
		CommentCount:   len(c.Comments),
		LikeIds:        likes,
	}
}

func NewCampgroundResultsFromEntities(campgrounds []*entities.Campground) []*common.CampgroundResult {
	results := make([]*common.CampgroundResult, 0, len(campgrounds))
	for _, c := range campgrounds {
		results = append(results, NewCampgroundResultFromEntity(c))
	}
	return results
}

func NewCommentResultFromEntity(c *entities.Comment) *common.CommentResult {
	return &common.CommentResult{
		Id:             c.Id.Hex(),
		CampgroundId:   c.CampgroundId.Hex(),
		Text:           c.Text,
		AuthorId:       c.Author.Id.Hex(),
		AuthorUsername: c.Author.Username,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func NewCommentResultsFromEntities(comments []*entities.Comment) []*common.CommentResult {
	results := make([]*common.CommentResult, 0, len(comments))
	for _, c := range comments {
		results = append(results, NewCommentResultFromEntity(c))
	}
	return results
}

func NewNotificationResultFromEntity(n *entities.Notification) *common.NotificationResult {
	return &common.NotificationResult{
		Id:           n.Id.Hex(),
		Username:     n.Username,
		CampgroundId: n.CampgroundId.Hex(),
		IsRead:       n.IsRead,
		CreatedAt:    n.CreatedAt,
	}
}

func NewNotificationResultsFromEntities(notifications []*entities.Notification) []*common.NotificationResult {
	results := make([]*common.NotificationResult, 0, len(notifications))
	for _, n := range notifications {
		results = append(results, NewNotificationResultFromEntity(n))
	}
	return results
}
