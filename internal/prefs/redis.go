package prefs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists preference documents in Redis so they survive server
// restarts and are shared across replicas.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed preference store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(user, view string) string {
	return fmt.Sprintf("prefs:%s:%s", user, view)
}

// Get returns the stored document or ErrNotFound.
func (r *RedisStore) Get(ctx context.Context, user, view string) (json.RawMessage, error) {
	val, err := r.client.Get(ctx, redisKey(user, view)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("prefs get %s/%s: %w", user, view, err)
	}
	return json.RawMessage(val), nil
}

// Put stores the document, replacing any previous one. Preferences have no
// TTL; they live until the user resets the view.
func (r *RedisStore) Put(ctx context.Context, user, view string, doc json.RawMessage) error {
	if err := r.client.Set(ctx, redisKey(user, view), []byte(doc), 0).Err(); err != nil {
		return fmt.Errorf("prefs put %s/%s: %w", user, view, err)
	}
	return nil
}

// Delete removes the document. Deleting a missing document is not an error.
func (r *RedisStore) Delete(ctx context.Context, user, view string) error {
	if err := r.client.Del(ctx, redisKey(user, view)).Err(); err != nil {
		return fmt.Errorf("prefs delete %s/%s: %w", user, view, err)
	}
	return nil
}
