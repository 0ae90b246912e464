package expense

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the textual form expense dates are entered and stored in.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD form")
	ErrEmptyCategory    = errors.New("category cannot be empty")
	ErrInvalidAmount    = errors.New("amount must be a number")
	ErrEmptyDescription = errors.New("description cannot be empty")
)

// Record is one expense entry. The date keeps its textual YYYY-MM-DD form.
// Records loaded from storage may carry blank fields; such records are
// incomplete and get skipped at display time rather than rejected.
type Record struct {
	Date        string
	Category    string
	Amount      float64
	Description string
}

// IsComplete reports whether the record carries all its textual fields.
// The amount always holds a numeric value (bad values load as zero), so it
// cannot make a record incomplete.
func (r Record) IsComplete() bool {
	return strings.TrimSpace(r.Date) != "" &&
		strings.TrimSpace(r.Category) != "" &&
		strings.TrimSpace(r.Description) != ""
}

// ValidateDate checks that raw is a real YYYY-MM-DD calendar date and
// returns it trimmed.
func ValidateDate(raw string) (string, error) {
	date := strings.TrimSpace(raw)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", ErrInvalidDate
	}
	return date, nil
}

// ValidateCategory checks that raw is non-empty after trimming.
func ValidateCategory(raw string) (string, error) {
	category := strings.TrimSpace(raw)
	if category == "" {
		return "", ErrEmptyCategory
	}
	return category, nil
}

// ParseAmount parses raw as a decimal number. Negative amounts are
// accepted: a refund is an expense with a negative amount.
func ParseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}

// ValidateDescription checks that raw is non-empty after trimming.
func ValidateDescription(raw string) (string, error) {
	description := strings.TrimSpace(raw)
	if description == "" {
		return "", ErrEmptyDescription
	}
	return description, nil
}
