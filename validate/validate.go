// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/danielhkuo/receipt-processor/models"
)

// Field names as they appear in the request body
const (
	FieldRetailer         = "retailer"
	FieldPurchaseDate     = "purchaseDate"
	FieldPurchaseTime     = "purchaseTime"
	FieldTotal            = "total"
	FieldItems            = "items"
	FieldShortDescription = "shortDescription"
	FieldPrice            = "price"
)

var ErrInvalidReceipt = errors.New("invalid receipt")

// Checked in this order; the first failure is reported.
var receiptFields = []string{
	FieldRetailer,
	FieldPurchaseDate,
	FieldPurchaseTime,
	FieldTotal,
	FieldItems,
}

var itemFields = []string{
	FieldShortDescription,
	FieldPrice,
}

// Calendar validity is not checked: 2023-02-31 matches.
// A retailer needs at least one non-space character.
var patterns = map[string]*regexp.Regexp{
	FieldRetailer:         regexp.MustCompile(`^[ \S]*\S[ \S]*$`),
	FieldPurchaseDate:     regexp.MustCompile(`^\d{4}-(0[1-9]|1[012])-(0[1-9]|[12][0-9]|3[01])$`),
	FieldPurchaseTime:     regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`),
	FieldTotal:            regexp.MustCompile(`^\d+\.\d{2}$`),
	FieldShortDescription: regexp.MustCompile(`^[\p{L}\p{N}_\s\-]+$`),
	FieldPrice:            regexp.MustCompile(`^\d+\.\d{2}$`),
}

// InvalidReceiptError describes the first rule a submitted receipt broke.
// Missing is set when required top-level fields are absent, otherwise
// Field names the offending field.
type InvalidReceiptError struct {
	Field   string
	Missing []string
	Reason  string
}

func (e *InvalidReceiptError) Error() string {
	if len(e.Missing) > 0 {
		return "missing required fields: " + strings.Join(e.Missing, ", ")
	}
	if e.Reason == "" {
		return "invalid field: " + e.Field
	}
	return fmt.Sprintf("invalid field: %s (%s)", e.Field, e.Reason)
}

func (e *InvalidReceiptError) Unwrap() error {
	return ErrInvalidReceipt
}

// Receipt checks a decoded request body and returns the typed receipt.
// Presence of every top-level field is checked first, then each field's
// format in a fixed order, then the items one by one.
func Receipt(raw map[string]any) (models.Receipt, error) {
	if raw == nil {
		return models.Receipt{}, &InvalidReceiptError{Missing: append([]string(nil), receiptFields...)}
	}

	var missing []string
	for _, name := range receiptFields {
		if _, ok := raw[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return models.Receipt{}, &InvalidReceiptError{Missing: missing}
	}

	var receipt models.Receipt
	targets := map[string]*string{
		FieldRetailer:     &receipt.Retailer,
		FieldPurchaseDate: &receipt.PurchaseDate,
		FieldPurchaseTime: &receipt.PurchaseTime,
		FieldTotal:        &receipt.Total,
	}

	for _, name := range receiptFields {
		if name == FieldItems {
			items, err := Items(raw[name])
			if err != nil {
				return models.Receipt{}, err
			}
			receipt.Items = items
			continue
		}

		value, ok := matchString(name, raw[name])
		if !ok {
			return models.Receipt{}, &InvalidReceiptError{Field: name}
		}
		*targets[name] = value
	}

	return receipt, nil
}

// Items validates the items array. Every failure is reported against the
// items field, with the reason naming the offending element.
func Items(raw any) ([]models.Item, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, &InvalidReceiptError{Field: FieldItems, Reason: "must be an array"}
	}
	if len(list) == 0 {
		return nil, &InvalidReceiptError{Field: FieldItems, Reason: "must not be empty"}
	}

	items := make([]models.Item, 0, len(list))
	for i, elem := range list {
		item, err := itemAt(i, elem)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func itemAt(index int, raw any) (models.Item, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return models.Item{}, &InvalidReceiptError{
			Field:  FieldItems,
			Reason: fmt.Sprintf("item %d must be an object", index),
		}
	}

	values := make(map[string]string, len(itemFields))
	for _, name := range itemFields {
		v, present := obj[name]
		if !present {
			return models.Item{}, &InvalidReceiptError{
				Field:  FieldItems,
				Reason: fmt.Sprintf("item %d is missing %s", index, name),
			}
		}
		s, ok := matchString(name, v)
		if !ok {
			return models.Item{}, &InvalidReceiptError{
				Field:  FieldItems,
				Reason: fmt.Sprintf("item %d has invalid %s", index, name),
			}
		}
		values[name] = s
	}

	return models.Item{
		ShortDescription: values[FieldShortDescription],
		Price:            values[FieldPrice],
	}, nil
}

// matchString reports whether v is a string matching the pattern for field.
func matchString(field string, v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return s, patterns[field].MatchString(s)
}
