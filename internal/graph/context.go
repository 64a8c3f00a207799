package graph

import (
	"context"
	"errors"

	"devmart-be/internal/utils"
)

var errNotLoggedIn = errors.New("not logged in")

// requireUser returns the authenticated principal's id or fails before any
// store access happens.
func requireUser(ctx context.Context) (string, error) {
	uid, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return "", errNotLoggedIn
	}
	return uid, nil
}
