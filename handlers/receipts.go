// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/receipt-processor/metrics"
	"github.com/danielhkuo/receipt-processor/middleware"
	"github.com/danielhkuo/receipt-processor/models"
	"github.com/danielhkuo/receipt-processor/points"
	"github.com/danielhkuo/receipt-processor/store"
	"github.com/danielhkuo/receipt-processor/validate"
)

var ErrMalformedBody = errors.New("malformed request body")

type ReceiptHandler struct {
	store store.Store
}

func NewReceiptHandler(st store.Store) *ReceiptHandler {
	return &ReceiptHandler{store: st}
}

// ProcessReceipt handles POST /receipts/process
func (h *ReceiptHandler) ProcessReceipt(w http.ResponseWriter, r *http.Request) {
	// Decode into a map so missing fields and wrong types reach the validator
	var raw map[string]any
	if err := middleware.ParseJSONBody(r, &raw); err != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedBody, err)
		slog.Warn("receipt rejected", "error", err)
		metrics.RecordProcessed(metrics.ResultMalformed, 0)
		middleware.ErrorResponseWithData(w, http.StatusBadRequest, models.MessageInvalidReceipt, err.Error())
		return
	}

	// Validate input
	receipt, err := validate.Receipt(raw)
	if err != nil {
		slog.Warn("receipt rejected", "error", err)
		metrics.RecordProcessed(metrics.ResultInvalid, 0)
		middleware.ErrorResponseWithData(w, http.StatusBadRequest, models.MessageInvalidReceipt, err.Error())
		return
	}

	// Score the receipt
	breakdown, err := points.Compute(receipt)
	if errors.Is(err, points.ErrScoreOverflow) {
		slog.Warn("receipt rejected", "retailer", receipt.Retailer, "error", err)
		metrics.RecordProcessed(metrics.ResultInvalid, 0)
		middleware.ErrorResponseWithData(w, http.StatusBadRequest, models.MessageInvalidReceipt, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to score receipt", "error", err)
		metrics.RecordProcessed(metrics.ResultError, 0)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to process receipt")
		return
	}
	score := breakdown.Sum()

	// Store under a fresh id
	id, err := h.store.Put(r.Context(), receipt, score)
	if err != nil {
		slog.Error("failed to store receipt", "error", err)
		metrics.RecordProcessed(metrics.ResultError, 0)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to process receipt")
		return
	}

	slog.Info("receipt processed", "receipt_id", id, "retailer", receipt.Retailer, "points", score)
	slog.Debug("points breakdown",
		"receipt_id", id,
		"retailer", breakdown.Retailer,
		"total", breakdown.Total,
		"items", breakdown.Items,
		"date", breakdown.Date,
		"time", breakdown.Time,
	)
	metrics.RecordProcessed(metrics.ResultAccepted, score)

	// Return the id
	middleware.JSONResponse(w, http.StatusOK, models.ProcessReceiptResponse{ID: id})
}

// GetPoints handles GET /receipts/{id}/points
func (h *ReceiptHandler) GetPoints(w http.ResponseWriter, r *http.Request) {
	// Extract receipt ID from path
	id := r.PathValue("id")
	if id == "" {
		metrics.RecordLookup(false)
		middleware.ErrorResponse(w, http.StatusNotFound, models.MessageNoReceipt)
		return
	}

	// Look up the stored score; points are never recomputed
	stored, err := h.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		metrics.RecordLookup(false)
		middleware.ErrorResponse(w, http.StatusNotFound, models.MessageNoReceipt)
		return
	}
	if err != nil {
		slog.Error("failed to load receipt", "receipt_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load receipt")
		return
	}

	metrics.RecordLookup(true)
	middleware.JSONResponse(w, http.StatusOK, models.PointsResponse{Points: stored.Points})
}
