// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Error messages returned to clients
const (
	MessageInvalidReceipt = "The receipt is invalid"
	MessageNoReceipt      = "No receipt found for that id"
	MessageNotFound       = "Not Found"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Domain types

// Receipt is a validated purchase record. Money fields keep their
// original string form so scoring can parse them as exact decimals.
type Receipt struct {
	Retailer     string `json:"retailer"`
	PurchaseDate string `json:"purchaseDate"`
	PurchaseTime string `json:"purchaseTime"`
	Total        string `json:"total"`
	Items        []Item `json:"items"`
}

type Item struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}

// StoredReceipt is a receipt after scoring. Points never change once stored.
type StoredReceipt struct {
	ID          string    `json:"id"`
	Receipt     Receipt   `json:"receipt"`
	Points      int       `json:"points"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Response types

type ProcessReceiptResponse struct {
	ID string `json:"id"`
}

type PointsResponse struct {
	Points int `json:"points"`
}

// Error response

type ErrorResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
