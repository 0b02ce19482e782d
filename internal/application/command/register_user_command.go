package command

import "yelpcamp/internal/application/common"

type RegisterUserCommand struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
	AdminCode string `json:"admin_code,omitempty"`
}

type RegisterUserCommandResult struct {
	Token string             `json:"token"`
	User  *common.UserResult `json:"user"`
}
