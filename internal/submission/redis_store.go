package submission

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// pendingKey is the redis list holding undelivered leads.
const pendingKey = "bizcalc:submissions:pending"

// RedisStore keeps undelivered leads in a redis list so they survive process
// restarts and can be replayed later.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects a fallback store to the given redis address.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// NewRedisStoreWithClient wraps an existing client; used by tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Store appends the lead to the pending list.
func (r *RedisStore) Store(ctx context.Context, lead Lead) error {
	data, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("encode lead: %w", err)
	}
	if err := r.client.RPush(ctx, pendingKey, data).Err(); err != nil {
		return fmt.Errorf("store lead: %w", err)
	}
	return nil
}

// Pending returns every stored lead, oldest first.
func (r *RedisStore) Pending(ctx context.Context) ([]Lead, error) {
	raw, err := r.client.LRange(ctx, pendingKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read pending leads: %w", err)
	}
	leads := make([]Lead, 0, len(raw))
	for _, item := range raw {
		var lead Lead
		if err := json.Unmarshal([]byte(item), &lead); err != nil {
			return nil, fmt.Errorf("decode pending lead: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

// Remove deletes one stored copy of the lead.
func (r *RedisStore) Remove(ctx context.Context, lead Lead) error {
	data, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("encode lead: %w", err)
	}
	return r.client.LRem(ctx, pendingKey, 1, data).Err()
}

// Close releases the underlying client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
