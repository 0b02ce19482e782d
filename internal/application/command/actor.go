package command

// Actor is the authenticated user performing a command.
type Actor struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}
