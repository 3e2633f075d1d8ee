// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - StoreType: "memory" (default) or "sqlite"
  - DatabaseURL: SQLite data source name, used by the sqlite store only
  - LogLevel: debug, info (default), warn, error
  - LogFormat: text (default) or json
  - MetricsEnabled: expose /metrics (default: true)

# CLI Flags

	-p            Server port
	-s            Store type
	-d            SQLite data source name
	-log-level    Log level
	-log-format   Log format
	-metrics      Enable /metrics

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	STORE_TYPE      → -s
	DATABASE_URL    → -d
	LOG_LEVEL       → -log-level
	LOG_FORMAT      → -log-format
	METRICS_ENABLED → -metrics

CLI flags take precedence over environment variables. LoadEnvFile reads a
.env file into the environment first; it never overrides variables that
are already set.

# Example

	// In main.go
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Warn("ignoring env file", "error", err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
*/
package cliparse
