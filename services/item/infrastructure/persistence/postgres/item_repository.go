package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/events"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
	domainevents "github.com/ghuser/stockroom/services/item/domain/events"
	"github.com/ghuser/stockroom/services/item/domain/models"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. The bus is used to publish ItemCreatedEvents in the
// same transaction as the insert (outbox pattern); pass nil to disable.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Insert persists a new Item and publishes an ItemCreatedEvent within the
// same transaction.
func (r *ItemRepository) Insert(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO items (id, user_id, name, description, price, quantity, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, item.UserID, item.Name, item.Description,
			item.Price, item.Quantity, item.CreatedAt, item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, item); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// ListByOwner retrieves all items owned by userID, newest first.
func (r *ItemRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, user_id, name, description, price, quantity, created_at, updated_at
		FROM items
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	items := make([]*models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// GetByID retrieves an Item by ID regardless of owner.
// Returns ErrItemNotFound if no row matches.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, user_id, name, description, price, quantity, created_at, updated_at
		FROM items
		WHERE id = $1`,
		id,
	)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// Update overwrites the mutable fields and UpdatedAt of an existing Item.
// Returns ErrItemNotFound when the row was deleted concurrently.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE items
		SET name = $2, description = $3, price = $4, quantity = $5, updated_at = $6
		WHERE id = $1`,
		item.ID, item.Name, item.Description, item.Price, item.Quantity, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return requireRow(res)
}

// Delete hard-removes an item by ID.
// Returns ErrItemNotFound when the row was deleted concurrently.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return requireRow(res)
}

func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		UserID:     item.UserID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   item.Quantity,
		OccurredAt: item.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicItemCreated, msg)
}

// requireRow converts a zero-row result into ErrItemNotFound. The benign race
// between the service's existence check and the write ends up here.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return itemdomain.ErrItemNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*models.Item, error) {
	var item models.Item
	if err := s.Scan(
		&item.ID, &item.UserID, &item.Name, &item.Description,
		&item.Price, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	item.CreatedAt = item.CreatedAt.UTC()
	item.UpdatedAt = item.UpdatedAt.UTC()
	return &item, nil
}
