// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus collectors for the service.

	mux.HandleFunc("POST /receipts/process",
		metrics.Instrument("/receipts/process", handler.ProcessReceipt))
	mux.Handle("GET /metrics", metrics.Handler())

Collectors, all under the "receipts" namespace:

  - http_requests_total{method,route,status}
  - http_request_duration_seconds{method,route}
  - processed_total{result}: accepted, malformed, invalid, error
  - points_awarded: histogram of accepted scores
  - lookups_total{result}: found, not_found
*/
package metrics
