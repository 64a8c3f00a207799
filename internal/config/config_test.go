package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv sets the environment variable for the duration of the test
		// and automatically restores it afterwards.
		t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
		t.Setenv("MONGODB_DB", "devmart_test")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("S_KEY", "sk_test_secret")
		t.Setenv("JWT_SECRET", "jwt_secret")
		t.Setenv("APP_ENV", "test")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
		assert.Equal(t, "devmart_test", cfg.MongoDB)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "sk_test_secret", cfg.StripeSecretKey)
		assert.Equal(t, "jwt_secret", cfg.JWTSecret)
		assert.Equal(t, "test", cfg.AppEnv)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
		t.Setenv("MONGODB_DB", "")
		t.Setenv("APP_PORT", "")

		cfg := LoadConfig()

		assert.Equal(t, "devmart", cfg.MongoDB)
		assert.Equal(t, "8080", cfg.AppPort)
	})
}
