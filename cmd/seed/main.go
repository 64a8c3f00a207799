package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"devmart-be/internal/config"
	"devmart-be/internal/db"
	"devmart-be/internal/logger"
	"devmart-be/internal/post"
	"devmart-be/internal/seed"
	"devmart-be/internal/tech"
	"devmart-be/internal/user"
)

func main() {
	seedVal := flag.Int64("seed", 0, "rng seed for deterministic runs (0 = time-based)")
	flag.Parse()

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer db.Disconnect(database)

	userRepo := user.NewRepository(database)
	postRepo := post.NewRepository(database)
	techRepo := tech.NewRepository(database)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	data, err := seed.DefaultData()
	if err != nil {
		log.Fatal(err)
	}

	src := *seedVal
	if src == 0 {
		src = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(src))

	if err := seed.Run(ctx, userRepo, postRepo, techRepo, data, rng); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Println("all done!")
}
