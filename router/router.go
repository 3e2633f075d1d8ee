// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/receipt-processor/cliparse"
	"github.com/danielhkuo/receipt-processor/handlers"
	"github.com/danielhkuo/receipt-processor/metrics"
	"github.com/danielhkuo/receipt-processor/middleware"
	"github.com/danielhkuo/receipt-processor/store"
)

const (
	RouteProcess = "/receipts/process"
	RoutePoints  = "/receipts/{id}/points"
)

// routes is a mux plus the set of patterns that serve real endpoints
type routes struct {
	mux    *http.ServeMux
	served map[string]bool
}

func (rt *routes) handle(pattern string, h http.Handler) {
	rt.mux.Handle(pattern, h)
	rt.served[pattern] = true

	// GET patterns also match HEAD; HEAD is not an endpoint
	if method, path, ok := strings.Cut(pattern, " "); ok && method == http.MethodGet {
		rt.mux.HandleFunc(http.MethodHead+" "+path, middleware.NotFound)
	}
}

// servesPreflight reports whether a CORS preflight asks for a served route
func (rt *routes) servesPreflight(r *http.Request) bool {
	lookup := r.Clone(r.Context())
	lookup.Method = r.Header.Get("Access-Control-Request-Method")
	_, pattern := rt.mux.Handler(lookup)
	return rt.served[pattern]
}

func newRoutes(st store.Store, cfg cliparse.Config) *routes {
	rt := &routes{mux: http.NewServeMux(), served: make(map[string]bool)}

	// Initialize handlers
	receiptHandler := handlers.NewReceiptHandler(st)

	// Health check
	rt.handle("GET /health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))

	// Receipts
	rt.handle("POST "+RouteProcess, middleware.WithLogging(metrics.Instrument(RouteProcess, receiptHandler.ProcessReceipt)))
	rt.handle("GET "+RoutePoints, middleware.WithLogging(metrics.Instrument(RoutePoints, receiptHandler.GetPoints)))

	if cfg.MetricsEnabled {
		rt.handle("GET /metrics", metrics.Handler())
	}

	// Anything else, including a known path with the wrong method
	rt.mux.HandleFunc("/", middleware.NotFound)

	return rt
}

// NewRouter returns the route table alone
func NewRouter(st store.Store, cfg cliparse.Config) *http.ServeMux {
	return newRoutes(st, cfg).mux
}

// NewHandler returns the routes with path canonicalization and CORS,
// as served by the server
func NewHandler(st store.Store, cfg cliparse.Config) http.Handler {
	rt := newRoutes(st, cfg)
	return middleware.RequireCleanPath(middleware.CORS(rt.mux, rt.servesPreflight))
}
