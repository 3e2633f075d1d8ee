// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/receipt-processor/db"
	"github.com/danielhkuo/receipt-processor/models"
)

// DefaultSQLiteURL keeps the database in memory and shares it across
// connections of this process.
const DefaultSQLiteURL = "file:receipts?mode=memory&cache=shared"

// SQLStore is a Store backed by database/sql.
// Each Put writes the receipt and its items in one transaction.
type SQLStore struct {
	db *sql.DB
}

// OpenSQLite opens an SQLite database and creates the schema
func OpenSQLite(dsn string) (*SQLStore, error) {
	if dsn == "" {
		dsn = DefaultSQLiteURL
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	// SQLite allows a single writer; serialize through one connection
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite ping failed: %w", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return NewSQLStore(conn), nil
}

// NewSQLStore wraps a connection whose schema already exists
func NewSQLStore(conn *sql.DB) *SQLStore {
	return &SQLStore{db: conn}
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) Put(ctx context.Context, receipt models.Receipt, points int) (string, error) {
	id := newID()
	processedAt := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO receipt (id, retailer, purchase_date, purchase_time, total, points, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, receipt.Retailer, receipt.PurchaseDate, receipt.PurchaseTime, receipt.Total, points, processedAt)
	if err != nil {
		return "", fmt.Errorf("failed to insert receipt: %w", err)
	}

	for i, item := range receipt.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO receipt_item (receipt_id, position, short_description, price)
			VALUES (?, ?, ?, ?)
		`, id, i, item.ShortDescription, item.Price)
		if err != nil {
			return "", fmt.Errorf("failed to insert item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit receipt: %w", err)
	}

	return id, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (models.StoredReceipt, error) {
	var stored models.StoredReceipt
	var processedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, retailer, purchase_date, purchase_time, total, points, processed_at
		FROM receipt
		WHERE id = ?
	`, id).Scan(
		&stored.ID, &stored.Receipt.Retailer, &stored.Receipt.PurchaseDate,
		&stored.Receipt.PurchaseTime, &stored.Receipt.Total, &stored.Points, &processedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredReceipt{}, ErrNotFound
	}
	if err != nil {
		return models.StoredReceipt{}, fmt.Errorf("failed to query receipt: %w", err)
	}

	stored.ProcessedAt, err = time.Parse(time.RFC3339Nano, processedAt)
	if err != nil {
		return models.StoredReceipt{}, fmt.Errorf("invalid processed_at for receipt %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT short_description, price
		FROM receipt_item
		WHERE receipt_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return models.StoredReceipt{}, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ShortDescription, &item.Price); err != nil {
			return models.StoredReceipt{}, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return models.StoredReceipt{}, fmt.Errorf("failed to read items: %w", err)
	}
	stored.Receipt.Items = items

	return stored, nil
}

func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM receipt`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count receipts: %w", err)
	}
	return count, nil
}
