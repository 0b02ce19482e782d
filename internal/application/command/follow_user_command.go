package command

type FollowUserCommand struct {
	Actor  Actor  `json:"actor"`
	UserId string `json:"user_id"`
}
