package cache

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("empty url disables caching", func(t *testing.T) {
		client, err := NewRedisClient(context.Background(), " ")
		if err != nil || client != nil {
			t.Fatalf("expected nil client, got %v err=%v", client, err)
		}
	})

	t.Run("connects to server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr()+"/0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer func() { _ = client.Close() }()
	})

	t.Run("invalid url", func(t *testing.T) {
		if _, err := NewRedisClient(context.Background(), "http://nope"); err == nil {
			t.Fatal("expected parse error")
		}
	})
}
