package mapper

import (
	"yelpcamp/internal/application/common"
	"yelpcamp/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	followers := make([]string, 0, len(user.Followers))
	for _, f := range user.Followers {
		followers = append(followers, f.Hex())
	}
	return &common.UserResult{
		Id:            user.Id.Hex(),
		CreatedAt:     user.CreatedAt,
		Username:      user.Username,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		Avatar:        user.Avatar,
		IsAdmin:       user.IsAdmin,
		FollowerCount: len(user.Followers),
		FollowerIds:   followers,
	}
}

func NewUserResultsFromEntities(users []*entities.User) []*common.UserResult {
	results := make([]*common.UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, NewUserResultFromEntity(u))
	}
	return results
}
