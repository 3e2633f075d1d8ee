// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate turns a decoded request body into a typed receipt.

# Usage

	var raw map[string]any
	if err := middleware.ParseJSONBody(r, &raw); err != nil { ... }

	receipt, err := validate.Receipt(raw)
	if errors.Is(err, validate.ErrInvalidReceipt) { ... }

# Order of Checks

 1. All of retailer, purchaseDate, purchaseTime, total, items are present.
    Every missing name is listed in InvalidReceiptError.Missing.
 2. retailer, purchaseDate, purchaseTime, total match their patterns,
    in that order.
 3. items is a non-empty array and each element has a valid
    shortDescription and price, in sequence order.

The first failure wins; errors are never aggregated across fields.

# Patterns

	retailer          ^[ \S]+$
	purchaseDate      ^\d{4}-(0[1-9]|1[012])-(0[1-9]|[12][0-9]|3[01])$
	purchaseTime      ^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$
	total, price      ^\d+\.\d{2}$
	shortDescription  ^[\p{L}\p{N}_\s\-]+$
*/
package validate
