package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI        string
	MongoDB         string
	AppPort         string
	StripeSecretKey string
	JWTSecret       string
	AppEnv          string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:        os.Getenv("MONGODB_URI"),
		MongoDB:         os.Getenv("MONGODB_DB"),
		AppPort:         os.Getenv("APP_PORT"),
		StripeSecretKey: os.Getenv("S_KEY"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AppEnv:          os.Getenv("APP_ENV"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	if cfg.MongoDB == "" {
		cfg.MongoDB = "devmart"
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg
}
