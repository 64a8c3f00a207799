package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	t.Run("GetUserIDFromContext", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, "64f1c2d9a1b2c3d4e5f60718")
		ctx = context.WithValue(ctx, UserEmailKey, "user@example.com")

		id, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "64f1c2d9a1b2c3d4e5f60718", id)

		assert.Equal(t, "user@example.com", GetUserEmailFromContext(ctx))
	})

	t.Run("Empty context", func(t *testing.T) {
		_, ok := GetUserIDFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("Empty user id", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDKey, "")
		_, ok := GetUserIDFromContext(ctx)
		assert.False(t, ok)
	})
}

func TestPtrHelpers(t *testing.T) {
	s := "hello"
	assert.Equal(t, &s, StrPtr("hello"))
	assert.Equal(t, "hello", PtrString(&s))
	assert.Equal(t, "", PtrString(nil))
}
