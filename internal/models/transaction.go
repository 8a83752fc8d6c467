package models

import (
	"bytes"
	"strconv"
	"strings"
	"time"
)

// TransactionType discriminates ledger records into income and expense.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction is one ledger record. Category must belong to the fixed
// vocabulary for its type (see category.go); the backend assigns the ID.
type Transaction struct {
	ID       int64           `json:"id,omitempty"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Amount   Amount          `json:"amount"`
	Date     Date            `json:"date"`
	Note     string          `json:"note,omitempty"`
}

// Summary holds overall ledger totals. Balance is always
// TotalIncome - TotalExpense.
type Summary struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

// Amount is a monetary value that decodes leniently: a JSON number, a
// numeric string, or anything else. Values that cannot be interpreted as a
// number decode to 0 rather than failing, so one bad record never poisons a
// whole list response.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(b), `"`)))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}

// Float64 returns the amount as a plain float64 for accumulation.
func (a Amount) Float64() float64 { return float64(a) }

// dateFormats are tried in order when decoding a backend timestamp string.
// The backend stores full timestamps, but date-only values occur in older
// records and in user input.
var dateFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date wraps time.Time with the backend's timestamp-string encoding.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC, convenient for date-only input.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a timestamp or date-only string.
func ParseDate(s string) (Date, error) {
	var lastErr error
	for _, layout := range dateFormats {
		t, err := time.Parse(layout, s)
		if err == nil {
			return Date{Time: t}, nil
		}
		lastErr = err
	}
	return Date{}, lastErr
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(time.RFC3339))), nil
}
