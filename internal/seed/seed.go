// Package seed wipes and repopulates the store with sample data. It is an
// offline batch job: nothing here coordinates with live traffic.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"

	"devmart-be/internal/logger"
	"devmart-be/internal/post"
	"devmart-be/internal/tech"
	"devmart-be/internal/user"

	"go.uber.org/zap"
)

//go:embed data/users.json
var usersJSON []byte

//go:embed data/posts.json
var postsJSON []byte

//go:embed data/techs.json
var techsJSON []byte

type UserSeed struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PostSeed struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type TechSeed struct {
	Name string `json:"name"`
}

type Data struct {
	Users []UserSeed
	Posts []PostSeed
	Techs []TechSeed
}

// DefaultData returns the embedded sample datasets.
func DefaultData() (Data, error) {
	var d Data
	if err := json.Unmarshal(usersJSON, &d.Users); err != nil {
		return Data{}, fmt.Errorf("failed to parse users dataset: %w", err)
	}
	if err := json.Unmarshal(postsJSON, &d.Posts); err != nil {
		return Data{}, fmt.Errorf("failed to parse posts dataset: %w", err)
	}
	if err := json.Unmarshal(techsJSON, &d.Techs); err != nil {
		return Data{}, fmt.Errorf("failed to parse techs dataset: %w", err)
	}
	return d, nil
}

// Run clears the users, posts and techs collections, inserts the sample
// datasets and cross-links every post to one random user and one random
// tech. The rng is injected so runs can be made deterministic.
func Run(ctx context.Context, users user.Repository, posts post.Repository, techs tech.Repository, data Data, rng *rand.Rand) error {
	log := logger.FromCtx(ctx)

	if err := users.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	if err := posts.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear posts: %w", err)
	}
	if err := techs.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear techs: %w", err)
	}

	insertedUsers := make([]*user.User, 0, len(data.Users))
	for _, us := range data.Users {
		hashed, err := user.HashPassword(us.Password)
		if err != nil {
			return err
		}
		u, err := users.Create(ctx, &user.User{
			Username: us.Username,
			Email:    us.Email,
			Password: hashed,
		})
		if err != nil {
			return fmt.Errorf("failed to insert user %s: %w", us.Email, err)
		}
		insertedUsers = append(insertedUsers, u)
	}

	insertedTechs := make([]*tech.Tech, 0, len(data.Techs))
	for _, ts := range data.Techs {
		t, err := techs.GetOrCreate(ctx, ts.Name)
		if err != nil {
			return fmt.Errorf("failed to insert tech %s: %w", ts.Name, err)
		}
		insertedTechs = append(insertedTechs, t)
	}

	if len(data.Posts) > 0 && (len(insertedUsers) == 0 || len(insertedTechs) == 0) {
		return fmt.Errorf("cannot link posts: dataset has %d users and %d techs", len(insertedUsers), len(insertedTechs))
	}

	for _, ps := range data.Posts {
		p, err := posts.Create(ctx, &post.Post{Title: ps.Title, Body: ps.Body})
		if err != nil {
			return fmt.Errorf("failed to insert post %s: %w", ps.Title, err)
		}

		author := insertedUsers[rng.Intn(len(insertedUsers))]
		if _, err := users.PushPost(ctx, author.ID, p.ID); err != nil {
			return err
		}

		t := insertedTechs[rng.Intn(len(insertedTechs))]
		if _, err := posts.PushTech(ctx, p.ID, t.ID); err != nil {
			return err
		}
		if err := techs.PushPost(ctx, t.ID, p.ID); err != nil {
			return err
		}
	}

	log.Info("seed completed",
		zap.Int("users", len(insertedUsers)),
		zap.Int("posts", len(data.Posts)),
		zap.Int("techs", len(insertedTechs)),
	)

	return nil
}
