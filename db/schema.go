// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed by the SQL receipt store.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Receipts
CREATE TABLE IF NOT EXISTS receipt (
    id TEXT PRIMARY KEY,
    retailer TEXT NOT NULL,
    purchase_date TEXT NOT NULL,
    purchase_time TEXT NOT NULL,
    total TEXT NOT NULL,
    points INTEGER NOT NULL CHECK (points >= 0),
    processed_at TEXT NOT NULL
);

-- Items, in receipt order
CREATE TABLE IF NOT EXISTS receipt_item (
    receipt_id TEXT NOT NULL REFERENCES receipt(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    short_description TEXT NOT NULL,
    price TEXT NOT NULL,
    PRIMARY KEY (receipt_id, position)
);

CREATE INDEX IF NOT EXISTS idx_receipt_item_receipt_id ON receipt_item(receipt_id);
`
