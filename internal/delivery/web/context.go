package web

import (
	"context"
	"net/http"

	"yelpcamp/internal/application/command"
	"yelpcamp/internal/application/common"
)

type contextKey int

const requestStateKey contextKey = iota

// requestState is filled by the session middleware for every request.
type requestState struct {
	user   *common.UserResult
	unread []*common.NotificationResult
	flash  Flash
}

func stateFrom(ctx context.Context) *requestState {
	if s, ok := ctx.Value(requestStateKey).(*requestState); ok {
		return s
	}
	return &requestState{}
}

func currentUser(r *http.Request) *common.UserResult {
	return stateFrom(r.Context()).user
}

func actorFrom(r *http.Request) command.Actor {
	u := currentUser(r)
	if u == nil {
		return command.Actor{}
	}
	return command.Actor{Id: u.Id, Username: u.Username, IsAdmin: u.IsAdmin}
}
