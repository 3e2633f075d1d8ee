// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store keeps scored receipts for the lifetime of the process.

# Backends

MemoryStore keeps receipts in a map guarded by a sync.RWMutex:

	st := store.NewMemoryStore()

SQLStore keeps them in an in-memory SQLite database (modernc.org/sqlite),
writing each receipt and its items in a single transaction:

	st, err := store.OpenSQLite(store.DefaultSQLiteURL)
	defer st.Close()

New picks the backend from configuration:

	st, err := store.New(cfg) // cfg.StoreType: "memory" (default) or "sqlite"

# Operations

	id, err := st.Put(ctx, receipt, points) // fresh UUID
	stored, err := st.Get(ctx, id)          // ErrNotFound if unknown
	n, err := st.Count(ctx)

Nothing is ever updated or removed. An id is either absent or resolves
to the complete receipt and its points.
*/
package store
