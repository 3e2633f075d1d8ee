// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation for the SQL receipt store.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		return err
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - receipt: One row per processed receipt, with its points
  - receipt_item: Line items, keyed by (receipt_id, position)

# Relationships

	receipt 1──* receipt_item

Money values are stored as TEXT so they round-trip exactly.
*/
package db
