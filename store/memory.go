// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"
	"time"

	"github.com/danielhkuo/receipt-processor/models"
)

// MemoryStore is a Store backed by a lock-guarded map
type MemoryStore struct {
	mu       sync.RWMutex
	receipts map[string]models.StoredReceipt
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{receipts: make(map[string]models.StoredReceipt)}
}

func (s *MemoryStore) Put(ctx context.Context, receipt models.Receipt, points int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stored := models.StoredReceipt{
		Receipt:     receipt,
		Points:      points,
		ProcessedAt: time.Now().UTC(),
	}
	stored.Receipt.Items = copyItems(receipt.Items)

	s.mu.Lock()
	defer s.mu.Unlock()

	id := newID()
	for {
		if _, taken := s.receipts[id]; !taken {
			break
		}
		id = newID()
	}
	stored.ID = id
	s.receipts[id] = stored

	return id, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (models.StoredReceipt, error) {
	if err := ctx.Err(); err != nil {
		return models.StoredReceipt{}, err
	}

	s.mu.RLock()
	stored, ok := s.receipts[id]
	s.mu.RUnlock()

	if !ok {
		return models.StoredReceipt{}, ErrNotFound
	}
	stored.Receipt.Items = copyItems(stored.Receipt.Items)
	return stored, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.receipts), nil
}
