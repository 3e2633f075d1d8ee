// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/receipt-processor/cliparse"
	"github.com/danielhkuo/receipt-processor/models"
)

var ErrNotFound = errors.New("receipt not found")

// Store keeps scored receipts for the lifetime of the process.
// There is no update or delete: a stored receipt and its points never change.
type Store interface {
	// Put stores the receipt with its points under a fresh id and returns the id.
	// The entry becomes visible to Get all at once.
	Put(ctx context.Context, receipt models.Receipt, points int) (string, error)
	// Get returns ErrNotFound when no receipt has the id.
	Get(ctx context.Context, id string) (models.StoredReceipt, error)
	Count(ctx context.Context) (int, error)
}

// New builds the store selected by cfg.StoreType
func New(cfg cliparse.Config) (Store, error) {
	switch cfg.StoreType {
	case "", models.StoreMemory:
		return NewMemoryStore(), nil
	case models.StoreSQLite:
		return OpenSQLite(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}
}

func newID() string {
	return uuid.NewString()
}

func copyItems(items []models.Item) []models.Item {
	if items == nil {
		return nil
	}
	out := make([]models.Item, len(items))
	copy(out, items)
	return out
}
