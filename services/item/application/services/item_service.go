package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/logger"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
	"github.com/ghuser/stockroom/services/item/domain/models"
	"github.com/ghuser/stockroom/services/item/domain/repositories"
)

// ListCache is the slice of the item list cache the service consumes.
// *pkgcache.ItemListCache is the production implementation.
type ListCache interface {
	Get(ctx context.Context, userID uuid.UUID) ([]pkgcache.CachedItem, error)
	Set(ctx context.Context, userID uuid.UUID, items []pkgcache.CachedItem) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// ItemService orchestrates the five CRUD operations on Items and owns the
// access rules the repository deliberately does not: the defensive
// authentication re-check and the existence-then-ownership ordering (a
// missing item is always 404, even for a caller who would not own it).
//
// Event publishing is handled by the repository layer (outbox pattern).
// List reads are served from the Redis list cache when available.
type ItemService struct {
	repo  repositories.ItemRepository
	cache ListCache
	log   logger.Logger
}

// NewItemService returns an ItemService wired with the given repository and
// list cache. cache may be nil (tests, degraded mode).
func NewItemService(repo repositories.ItemRepository, listCache ListCache, log logger.Logger) *ItemService {
	return &ItemService{repo: repo, cache: listCache, log: log}
}

// CreateItemInput carries the raw create request body. Price and Quantity
// stay raw JSON so the coercion rules (number or numeric string, invalid → 0)
// are applied here rather than rejected by the decoder.
type CreateItemInput struct {
	Name        string
	Description *string
	Price       json.RawMessage
	Quantity    json.RawMessage
}

// UpdateItemInput carries the raw partial update body. A nil field was absent
// from the request and keeps the stored value.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Price       json.RawMessage
	Quantity    json.RawMessage
}

// List returns all items owned by the caller, newest first.
// No pagination, no filtering.
func (s *ItemService) List(ctx context.Context, userID uuid.UUID) ([]*models.Item, error) {
	if userID == uuid.Nil {
		return nil, itemdomain.ErrNotAuthenticated
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, userID); err == nil {
			return cachedToModels(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "item list cache read failed", "user_id", userID, "error", err)
		}
	}

	items, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	// The warm completes before List returns, so a later mutation's
	// invalidate always runs after it; a detached write could land after
	// the invalidate and pin a pre-mutation list for the full TTL.
	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, modelsToCached(items)); err != nil {
			s.log.WarnContext(ctx, "item list cache warm failed", "user_id", userID, "error", err)
		}
	}

	return items, nil
}

// Create validates, normalizes, and persists a new Item owned by the caller.
// Returns ErrNameRequired when the name is empty or absent; price and
// quantity default to 0 when missing or unparsable, description to "".
func (s *ItemService) Create(ctx context.Context, userID uuid.UUID, in CreateItemInput) (*models.Item, error) {
	if userID == uuid.Nil {
		return nil, itemdomain.ErrNotAuthenticated
	}
	if in.Name == "" {
		return nil, itemdomain.ErrNameRequired
	}

	description := ""
	if in.Description != nil {
		description = *in.Description
	}

	item := models.NewItem(
		userID,
		in.Name,
		description,
		models.ParsePriceOrDefault(in.Price, 0),
		models.ParseQuantityOrDefault(in.Quantity, 0),
	)

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	s.invalidate(ctx, userID)
	return item, nil
}

// Update applies a partial update to an item the caller owns. Existence is
// checked before ownership so a missing id yields ErrItemNotFound for every
// caller. Omitted fields keep their stored values; unparsable price/quantity
// fall back to the existing stored value, not zero. UpdatedAt is always
// refreshed.
//
// The load and the write are not transactional: a concurrent delete between
// them surfaces as ErrItemNotFound from the write (last-write-wins otherwise).
func (s *ItemService) Update(ctx context.Context, userID, id uuid.UUID, in UpdateItemInput) (*models.Item, error) {
	if userID == uuid.Nil {
		return nil, itemdomain.ErrNotAuthenticated
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load item: %w", err)
	}
	if item.UserID != userID {
		return nil, itemdomain.ErrNotOwner
	}

	patch := models.ItemPatch{
		Name:        in.Name,
		Description: in.Description,
	}
	if len(in.Price) > 0 {
		price := models.ParsePriceOrDefault(in.Price, item.Price)
		patch.Price = &price
	}
	if len(in.Quantity) > 0 {
		quantity := models.ParseQuantityOrDefault(in.Quantity, item.Quantity)
		patch.Quantity = &quantity
	}

	item.Apply(patch, time.Now().UTC())

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.invalidate(ctx, userID)
	return item, nil
}

// Delete hard-removes an item the caller owns, with the same
// existence-then-ownership ordering as Update.
func (s *ItemService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return itemdomain.ErrNotAuthenticated
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load item: %w", err)
	}
	if item.UserID != userID {
		return itemdomain.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.invalidate(ctx, userID)
	return nil
}

// invalidate drops the owner's cached list after a mutation. Best-effort: a
// cache failure never fails the request, the entry expires by TTL anyway.
func (s *ItemService) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.WarnContext(ctx, "item list cache invalidation failed", "user_id", userID, "error", err)
	}
}

func cachedToModels(cached []pkgcache.CachedItem) []*models.Item {
	items := make([]*models.Item, len(cached))
	for i, c := range cached {
		items[i] = &models.Item{
			ID:          c.ID,
			UserID:      c.UserID,
			Name:        c.Name,
			Description: c.Description,
			Price:       c.Price,
			Quantity:    c.Quantity,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		}
	}
	return items
}

func modelsToCached(items []*models.Item) []pkgcache.CachedItem {
	cached := make([]pkgcache.CachedItem, len(items))
	for i, item := range items {
		cached[i] = pkgcache.CachedItem{
			ID:          item.ID,
			UserID:      item.UserID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Quantity:    item.Quantity,
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		}
	}
	return cached
}
