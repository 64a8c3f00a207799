package graph

import (
	"context"
	"time"

	"devmart-be/internal/graph/model"
	"devmart-be/internal/order"
	"devmart-be/internal/post"
	"devmart-be/internal/product"
	"devmart-be/internal/tech"
	"devmart-be/internal/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func toGraphQLTech(t *tech.Tech) *model.Tech {
	return &model.Tech{
		ID:   t.ID.Hex(),
		Name: t.Name,
	}
}

func toGraphQLProduct(p *product.Product) *model.Product {
	return &model.Product{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: &p.Description,
		Image:       &p.Image,
		Price:       p.Price,
		Quantity:    int32(p.Quantity),
	}
}

func toGraphQLPost(p *post.Post, techs []*model.Tech) *model.Post {
	return &model.Post{
		ID:        p.ID.Hex(),
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		Tech:      techs,
	}
}

func toGraphQLOrder(o *order.Order, products []*model.Product) *model.Order {
	return &model.Order{
		ID:           o.ID.Hex(),
		PurchaseDate: o.PurchaseDate.Format(time.RFC3339),
		Products:     products,
	}
}

func toGraphQLUser(u *user.User) *model.User {
	return &model.User{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Email:    u.Email,
	}
}

// expandPostDocs hydrates the tech references of the given posts with one
// batched lookup.
func (r *Resolver) expandPostDocs(ctx context.Context, posts []post.Post) ([]*model.Post, error) {
	var techIDs []primitive.ObjectID
	seen := map[primitive.ObjectID]bool{}
	for _, p := range posts {
		for _, tid := range p.Tech {
			if !seen[tid] {
				seen[tid] = true
				techIDs = append(techIDs, tid)
			}
		}
	}

	techs, err := r.TechSvc.GetByIDs(ctx, techIDs)
	if err != nil {
		return nil, err
	}

	techByID := make(map[primitive.ObjectID]*model.Tech, len(techs))
	for i := range techs {
		techByID[techs[i].ID] = toGraphQLTech(&techs[i])
	}

	result := make([]*model.Post, 0, len(posts))
	for i := range posts {
		var linked []*model.Tech
		for _, tid := range posts[i].Tech {
			if t, ok := techByID[tid]; ok {
				linked = append(linked, t)
			}
		}
		result = append(result, toGraphQLPost(&posts[i], linked))
	}
	return result, nil
}

// expandPosts resolves post references into fully hydrated posts.
func (r *Resolver) expandPosts(ctx context.Context, ids []primitive.ObjectID) ([]*model.Post, error) {
	posts, err := r.PostSvc.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return r.expandPostDocs(ctx, posts)
}

// expandOrders hydrates the product references of embedded orders.
func (r *Resolver) expandOrders(ctx context.Context, orders []order.Order) ([]*model.Order, error) {
	var productIDs []primitive.ObjectID
	seen := map[primitive.ObjectID]bool{}
	for _, o := range orders {
		for _, pid := range o.Products {
			if !seen[pid] {
				seen[pid] = true
				productIDs = append(productIDs, pid)
			}
		}
	}

	products, err := r.ProductSvc.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productByID := make(map[primitive.ObjectID]*model.Product, len(products))
	for i := range products {
		productByID[products[i].ID] = toGraphQLProduct(&products[i])
	}

	result := make([]*model.Order, 0, len(orders))
	for i := range orders {
		var linked []*model.Product
		for _, pid := range orders[i].Products {
			if p, ok := productByID[pid]; ok {
				linked = append(linked, p)
			}
		}
		result = append(result, toGraphQLOrder(&orders[i], linked))
	}
	return result, nil
}
