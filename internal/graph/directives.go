package graph

import (
	"context"

	"devmart-be/internal/utils"

	"github.com/99designs/gqlgen/graphql"
)

// AuthDirective backs the @auth schema directive: operations carrying it are
// rejected before their resolver runs when no principal is present.
func AuthDirective(ctx context.Context, obj interface{}, next graphql.Resolver) (res interface{}, err error) {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return nil, errNotLoggedIn
	}
	return next(ctx)
}
