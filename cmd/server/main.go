package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"devmart-be/internal/config"
	"devmart-be/internal/db"
	"devmart-be/internal/graph"
	"devmart-be/internal/logger"
	"devmart-be/internal/middleware"
	"devmart-be/internal/order"
	"devmart-be/internal/payment"
	"devmart-be/internal/post"
	"devmart-be/internal/product"
	"devmart-be/internal/tech"
	"devmart-be/internal/transport"
	"devmart-be/internal/user"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer db.Disconnect(database)

	userRepo := user.NewRepository(database)
	postRepo := post.NewRepository(database)
	techRepo := tech.NewRepository(database)
	productRepo := product.NewRepository(database)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	cancel()

	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)

	resolver := &graph.Resolver{
		UserSvc:    user.NewService(userRepo),
		PostSvc:    post.NewService(postRepo, userRepo),
		TechSvc:    tech.NewService(techRepo, postRepo),
		ProductSvc: product.NewService(productRepo),
		OrderSvc:   order.NewService(productRepo, gateway),
	}

	srv := handler.NewDefaultServer(graph.NewSchema(resolver))

	var query http.Handler = srv
	query = transport.Middleware(query)
	query = middleware.AuthMiddleware(query)
	query = middleware.RateLimitMiddleware(query)
	query = middleware.LoggingMiddleware(query)
	query = logger.RequestIDMiddleware(query)

	http.Handle("/", playground.Handler("GraphQL Playground", "/query"))
	http.Handle("/query", query)

	log.Printf("🚀 GraphQL server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, nil))
}
