package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// ItemListCacheTTL is the time-to-live for a cached owner list.
	ItemListCacheTTL = 5 * time.Minute

	itemListKeyPrefix = "items"
)

// CachedItem is the denormalized read model stored in Redis, one entry per
// item in an owner's list. Field names mirror the API wire shape so cached
// lists serialize identically to fresh ones.
type CachedItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int64     `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ItemListCache caches each owner's full item list (newest first) as a JSON
// value with a short TTL. Keys are scoped by owner to prevent cross-tenant
// leakage, and every mutation invalidates the owner's key rather than
// patching it — the list is cheap to rebuild and ordering stays correct.
//
// Key format: "items:{userID}"
type ItemListCache struct {
	client *RedisClient
}

// NewItemListCache creates an ItemListCache backed by the given RedisClient.
func NewItemListCache(r *RedisClient) *ItemListCache {
	return &ItemListCache{client: r}
}

// Get retrieves the cached list for an owner.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemListCache) Get(ctx context.Context, userID uuid.UUID) ([]CachedItem, error) {
	data, err := c.client.Client().Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var items []CachedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return items, nil
}

// Set writes the owner's list with the standard TTL.
func (c *ItemListCache) Set(ctx context.Context, userID uuid.UUID, items []CachedItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(userID), data, ItemListCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the owner's cached list. Called after every mutation.
func (c *ItemListCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// key builds the Redis key: "items:{userID}"
func (c *ItemListCache) key(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", itemListKeyPrefix, userID)
}
