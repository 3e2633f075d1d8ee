// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Receipt: retailer, purchaseDate, purchaseTime, total, items
  - Item: shortDescription, price
  - StoredReceipt: id, receipt, points, processed_at

Receipts are only built by the validate package, so every Receipt value
seen by the scoring engine and the store is well-formed.

# Response Types

  - ProcessReceiptResponse: id
  - PointsResponse: points
  - ErrorResponse: message, data (optional detail)

# Constants

Client-facing messages:

	MessageInvalidReceipt = "The receipt is invalid"
	MessageNoReceipt      = "No receipt found for that id"
	MessageNotFound       = "Not Found"

Store backends:

	StoreMemory = "memory"
	StoreSQLite = "sqlite"
*/
package models
