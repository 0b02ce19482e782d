package command

type ForgotPasswordCommand struct {
	Email string `json:"email"`
	// Host is used to build the reset link.
	Host string `json:"host"`
}

type ForgotPasswordCommandResult struct {
	Email string `json:"email"`
}

type ResetPasswordCommand struct {
	Token    string `json:"token"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}
