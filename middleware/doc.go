// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /receipts/{id}/points", middleware.WithLogging(handler))

Logs request start at debug level (method, path, remote) and completion
(status, duration_ms).

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Preflight requests are answered with 204 and never reach the mux.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, models.MessageNoReceipt)
	middleware.ErrorResponseWithData(w, http.StatusBadRequest, models.MessageInvalidReceipt, detail)

Parse JSON request bodies (one JSON value, at most MaxBodyBytes):

	var raw map[string]any
	if err := middleware.ParseJSONBody(r, &raw); err != nil {
		...
	}

NotFound is the catch-all handler for unmatched routes.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
