// Package ledger derives summary statistics and chart-ready groupings from a
// list of transactions. Every function is pure: inputs are never mutated and
// no function errors on empty or odd input.
package ledger

import (
	"sort"
	"time"

	"daybook/internal/models"
)

// CategoryBreakdown accumulates income and expense totals for one category.
type CategoryBreakdown struct {
	Category string
	Income   float64
	Expense  float64
}

// CategoryTotal is one slice of the expense distribution.
type CategoryTotal struct {
	Category string
	Total    float64
}

// FilterByRange returns the transactions whose date falls within the
// inclusive window [start 00:00:00, end 23:59:59.999999999]. Bounds are
// widened to full calendar days in each bound's own location, so the
// time-of-day component of start and end is irrelevant.
func FilterByRange(txs []models.Transaction, start, end time.Time) []models.Transaction {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())

	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		d := tx.Date.Time
		if !d.Before(from) && !d.After(to) {
			out = append(out, tx)
		}
	}
	return out
}

// AggregateByCategory groups transactions by category and accumulates a
// running income and expense total per group. A missing category lands in
// the fallback bucket. Groups appear in first-encounter order, each category
// exactly once.
func AggregateByCategory(txs []models.Transaction) []CategoryBreakdown {
	index := make(map[string]int, len(txs))
	out := make([]CategoryBreakdown, 0, len(txs))

	for _, tx := range txs {
		key := tx.Category
		if key == "" {
			key = models.FallbackCategory
		}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, CategoryBreakdown{Category: key})
		}
		if tx.Type == models.Income {
			out[i].Income += tx.Amount.Float64()
		} else {
			out[i].Expense += tx.Amount.Float64()
		}
	}
	return out
}

// ExpenseDistribution sums expense amounts per category and returns the
// result sorted by descending total. Ties keep first-encounter order, which
// makes proportional charts stable across refreshes.
func ExpenseDistribution(txs []models.Transaction) []CategoryTotal {
	index := make(map[string]int, len(txs))
	out := make([]CategoryTotal, 0, len(txs))

	for _, tx := range txs {
		if tx.Type != models.Expense {
			continue
		}
		key := tx.Category
		if key == "" {
			key = models.FallbackCategory
		}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, CategoryTotal{Category: key})
		}
		out[i].Total += tx.Amount.Float64()
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// Summarize computes overall totals. All fields are 0 for an empty input and
// Balance is always TotalIncome - TotalExpense.
func Summarize(txs []models.Transaction) models.Summary {
	var s models.Summary
	for _, tx := range txs {
		if tx.Type == models.Income {
			s.TotalIncome += tx.Amount.Float64()
		} else {
			s.TotalExpense += tx.Amount.Float64()
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}
