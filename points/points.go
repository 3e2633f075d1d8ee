// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package points

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/receipt-processor/models"
)

// Rule values
const (
	RoundTotalPoints   = 50
	QuarterTotalPoints = 25
	ItemPairPoints     = 5
	OddDayPoints       = 6
	AfternoonPoints    = 10
)

// ErrScoreOverflow is returned when a receipt's score does not fit in an int.
// Prices have no digit limit, so the item bonus alone can exceed it.
var ErrScoreOverflow = errors.New("points exceed the supported range")

var (
	descriptionMultiplier = decimal.RequireFromString("0.2")
	hundred               = decimal.NewFromInt(100)
	maxScore              = decimal.NewFromInt(math.MaxInt)
)

// Breakdown holds each rule's contribution to a receipt's score
type Breakdown struct {
	Retailer int `json:"retailer"`
	Total    int `json:"total"`
	Items    int `json:"items"`
	Date     int `json:"date"`
	Time     int `json:"time"`
}

// Sum returns the receipt's score
func (b Breakdown) Sum() int {
	return b.Retailer + b.Total + b.Items + b.Date + b.Time
}

// Calculate returns the score for a validated receipt
func Calculate(r models.Receipt) (int, error) {
	b, err := Compute(r)
	if err != nil {
		return 0, err
	}
	return b.Sum(), nil
}

// Compute applies every rule to the receipt.
// Fields are assumed to have passed validate.Receipt; a value that does
// not parse contributes nothing.
func Compute(r models.Receipt) (Breakdown, error) {
	items, err := Items(r.Items)
	if err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{
		Retailer: Retailer(r.Retailer),
		Total:    Total(r.Total),
		Items:    items,
		Date:     Date(r.PurchaseDate),
		Time:     Time(r.PurchaseTime),
	}

	// Every rule but Items is bounded by the body size
	rest := b.Retailer + b.Total + b.Date + b.Time
	if b.Items > math.MaxInt-rest {
		return Breakdown{}, ErrScoreOverflow
	}
	return b, nil
}

// Retailer awards one point per letter or digit in the retailer name
func Retailer(name string) int {
	count := 0
	for _, c := range name {
		if unicode.IsLetter(c) || unicode.IsNumber(c) {
			count++
		}
	}
	return count
}

// Total awards 50 points for a round dollar amount and, independently,
// 25 points for a multiple of 0.25. A round total earns both.
func Total(total string) int {
	amount, err := decimal.NewFromString(total)
	if err != nil {
		return 0
	}

	cents := amount.Sub(amount.Floor()).Mul(hundred).IntPart()

	points := 0
	if cents == 0 {
		points += RoundTotalPoints
	}
	if cents%25 == 0 {
		points += QuarterTotalPoints
	}
	return points
}

// Items awards 5 points per pair of items, plus ceil(price * 0.2) for
// each item whose trimmed description length is a multiple of 3.
// The sum is kept as a decimal and only converted once it is known to fit.
func Items(items []models.Item) (int, error) {
	sum := decimal.NewFromInt(int64(len(items)/2) * ItemPairPoints)

	for _, item := range items {
		length := utf8.RuneCountInString(strings.TrimSpace(item.ShortDescription))
		if length%3 != 0 {
			continue
		}

		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			continue
		}
		sum = sum.Add(price.Mul(descriptionMultiplier).Ceil())
	}

	if sum.GreaterThan(maxScore) {
		return 0, ErrScoreOverflow
	}
	return int(sum.IntPart()), nil
}

// Date awards 6 points when the day of the month is odd
func Date(purchaseDate string) int {
	parts := strings.Split(purchaseDate, "-")
	if len(parts) != 3 {
		return 0
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0
	}
	if day%2 == 1 {
		return OddDayPoints
	}
	return 0
}

// Time awards 10 points for purchases after 14:00 and before 16:00.
// 14:00 itself earns nothing.
func Time(purchaseTime string) int {
	hourStr, minuteStr, ok := strings.Cut(purchaseTime, ":")
	if !ok {
		return 0
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0
	}

	if hour == 15 || (hour == 14 && minute > 0) {
		return AfternoonPoints
	}
	return 0
}
