// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the receipt processor.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

NewHandler wraps the same routes the way the server serves them:

	handler := router.NewHandler(st, cfg)

# Endpoints

Receipts:

	POST /receipts/process     - Validate, score and store a receipt
	GET  /receipts/{id}/points - Points awarded to a stored receipt

Operational:

	GET /health  - Liveness, plain "OK"
	GET /metrics - Prometheus exposition (when metrics are enabled)

Every other method and path gets 404 with {"message":"Not Found"}.
The mux never answers 405: the catch-all pattern matches any method.
HEAD on a GET route is routed to the same 404, and paths that are not
in canonical form ("/receipts//points", "/health/") get 404 instead of
the mux's redirect.

CORS preflight (OPTIONS with Access-Control-Request-Method) is answered
with 204 only when the requested method and path name a served route.
Any other OPTIONS request gets the 404.

Receipt routes are wrapped with request logging and metrics
instrumentation, labeled by route pattern rather than raw path.
*/
package router
