//go:generate go run github.com/99designs/gqlgen generate

package graph

import (
	"devmart-be/internal/order"
	"devmart-be/internal/post"
	"devmart-be/internal/product"
	"devmart-be/internal/tech"
	"devmart-be/internal/user"

	"github.com/99designs/gqlgen/graphql"
)

type Resolver struct {
	UserSvc    user.Service
	PostSvc    post.Service
	TechSvc    tech.Service
	ProductSvc product.Service
	OrderSvc   order.Service
}

func NewSchema(r *Resolver) graphql.ExecutableSchema {
	return NewExecutableSchema(Config{
		Resolvers: r,
		Directives: DirectiveRoot{
			Auth: AuthDirective,
		},
	})
}

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

type queryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
