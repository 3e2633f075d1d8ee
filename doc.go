// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the receipt processor.

The service accepts purchase receipts as JSON, scores them with a fixed
set of point rules and keeps them in memory for the life of the process.
Each stored receipt gets a UUID that can later be exchanged for its points.

# Starting the Server

No configuration is required:

	go run .

Or with flags:

	go run . -p 9000 -s sqlite -log-format json

# Configuration

Settings come from CLI flags, then environment variables, then defaults.
A .env file in the working directory is loaded first if present.

  - PORT (-p): Server port (default: 8080)
  - STORE_TYPE (-s): memory or sqlite (default: memory)
  - DATABASE_URL (-d): SQLite DSN for the sqlite store (default: shared in-memory database)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)
  - LOG_FORMAT (-log-format): text or json (default: text)
  - METRICS_ENABLED (-metrics): expose GET /metrics (default: true)

Both stores are in-memory; nothing survives a restart.

# Architecture

  - handlers: HTTP request handlers for receipts
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - validate: Receipt shape and format checks
  - points: Point rules
  - store: Receipt storage (map or SQLite)
  - metrics: Prometheus collectors
  - models: Request/response types
  - db: Schema for the SQLite store
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
