// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package points implements the receipt scoring rules.

# Rules

A receipt's score is the sum of five independent contributions:

  - Retailer: one point per letter or digit in the retailer name
  - Total: 50 if the total has no cents, plus 25 if it is a multiple of 0.25
  - Items: 5 per pair of items, plus ceil(price * 0.2) for each item whose
    trimmed description length is a multiple of 3
  - Date: 6 if the purchase day is odd
  - Time: 10 if the purchase is after 14:00 and before 16:00

# Usage

	score, err := points.Calculate(receipt)

	b, err := points.Compute(receipt)
	slog.Debug("score breakdown", "retailer", b.Retailer, "items", b.Items)

Prices have no digit limit, so a receipt can be worth more points than an
int holds. Calculate and Compute return ErrScoreOverflow instead of
wrapping around.

Prices are parsed with shopspring/decimal so the item bonus is computed
on exact values before rounding up. All functions are pure.
*/
package points
