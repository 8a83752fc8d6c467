package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"daybook/internal/api"
	"daybook/internal/ledger"
	"daybook/internal/models"
)

const transactionsSnapshot = "transactions"

// Transactions lists all ledger records with a trailing totals line. Falls
// back to the cached copy when the server is unreachable.
func (a *App) Transactions(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	txs, err := a.api.ListTransactions(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			return a.cachedTransactions(ctx)
		}
		printfFn("error: %v\n", err)
		return err
	}

	a.saveSnapshot(ctx, transactionsSnapshot, txs)
	renderTransactions(txs)
	return nil
}

func (a *App) cachedTransactions(ctx context.Context) error {
	snap, err := a.snapshots.Load(ctx, transactionsSnapshot)
	if err != nil {
		printlnFn("server unavailable and no cached copy exists")
		return err
	}
	var txs []models.Transaction
	if err := json.Unmarshal(snap.Payload, &txs); err != nil {
		return err
	}
	printfFn("server unavailable, showing copy cached at %s\n", snap.SavedAt.Format(time.RFC3339))
	renderTransactions(txs)
	return nil
}

func renderTransactions(txs []models.Transaction) {
	if len(txs) == 0 {
		printlnFn("No transactions yet.")
		return
	}
	for _, tx := range txs {
		sign := "-"
		if tx.Type == models.Income {
			sign = "+"
		}
		note := ""
		if tx.Note != "" {
			note = "  " + tx.Note
		}
		printfFn("%d  %s  %s  %s%.2f%s\n",
			tx.ID, tx.Date.Format("2006-01-02"), tx.Category, sign, tx.Amount.Float64(), note)
	}
	renderSummary(ledger.Summarize(txs))
}

func renderSummary(s models.Summary) {
	printfFn("income %.2f  expense %.2f  balance %.2f\n", s.TotalIncome, s.TotalExpense, s.Balance)
}

// AddTransaction walks the form: type, category (validated against the
// fixed vocabulary for the chosen type), amount, date, note. Validation
// failures stay local; no request is issued for them.
func (a *App) AddTransaction(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	rawType, err := getSimpleText(a.reader, "Enter type (INCOME/EXPENSE)", os.Stdout)
	if err != nil {
		return err
	}
	txType := models.TransactionType(strings.ToUpper(strings.TrimSpace(rawType)))
	if txType != models.Income && txType != models.Expense {
		printlnFn("type must be INCOME or EXPENSE")
		return nil
	}

	printlnFn("Categories:", strings.Join(models.CategoriesFor(txType), ", "))
	category, err := getSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		return err
	}
	if !models.ValidCategory(txType, category) {
		printfFn("category %q is not valid for %s\n", category, txType)
		return nil
	}

	rawAmount, err := getSimpleText(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		printfFn("invalid amount %q\n", rawAmount)
		return nil
	}

	rawDate, err := getSimpleText(a.reader, "Enter date (YYYY-MM-DD, empty = today)", os.Stdout)
	if err != nil {
		return err
	}
	date := models.Date{Time: time.Now()}
	if rawDate != "" {
		date, err = models.ParseDate(rawDate)
		if err != nil {
			printfFn("invalid date %q\n", rawDate)
			return nil
		}
	}

	note, err := getSimpleText(a.reader, "Enter note (optional)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.api.CreateTransaction(ctx, models.Transaction{
		Type:     txType,
		Category: category,
		Amount:   models.Amount(amount),
		Date:     date,
		Note:     note,
	})
	if err != nil {
		printfFn("error: %v\n", err)
		return err
	}
	printfFn("Added transaction %d.\n", created.ID)
	return nil
}

// RemoveTransaction deletes one record.
func (a *App) RemoveTransaction(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	id, err := a.promptID("Enter transaction id to delete")
	if err != nil {
		return err
	}
	if err := a.api.DeleteTransaction(ctx, id); err != nil {
		printfFn("error: %v\n", err)
		return err
	}
	printfFn("Transaction %d deleted.\n", id)
	return nil
}

// EditTransaction re-walks the form for one existing record. Every prompt
// shows the current value and keeps it on empty input; the resulting
// category must still belong to the vocabulary of the resulting type.
func (a *App) EditTransaction(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	id, err := a.promptID("Enter transaction id to edit")
	if err != nil {
		return err
	}

	txs, err := a.api.ListTransactions(ctx)
	if err != nil {
		printfFn("error: %v\n", err)
		return err
	}
	var tx *models.Transaction
	for i := range txs {
		if txs[i].ID == id {
			tx = &txs[i]
			break
		}
	}
	if tx == nil {
		printfFn("transaction %d not found\n", id)
		return nil
	}

	rawType, err := getSimpleText(a.reader, fmt.Sprintf("Enter type (INCOME/EXPENSE, empty = %s)", tx.Type), os.Stdout)
	if err != nil {
		return err
	}
	if rawType != "" {
		txType := models.TransactionType(strings.ToUpper(strings.TrimSpace(rawType)))
		if txType != models.Income && txType != models.Expense {
			printlnFn("type must be INCOME or EXPENSE")
			return nil
		}
		tx.Type = txType
	}

	printlnFn("Categories:", strings.Join(models.CategoriesFor(tx.Type), ", "))
	category, err := getSimpleText(a.reader, fmt.Sprintf("Enter category (empty = %s)", tx.Category), os.Stdout)
	if err != nil {
		return err
	}
	if category != "" {
		tx.Category = category
	}
	if !models.ValidCategory(tx.Type, tx.Category) {
		printfFn("category %q is not valid for %s\n", tx.Category, tx.Type)
		return nil
	}

	rawAmount, err := getSimpleText(a.reader, fmt.Sprintf("Enter amount (empty = %.2f)", tx.Amount.Float64()), os.Stdout)
	if err != nil {
		return err
	}
	if rawAmount != "" {
		amount, err := strconv.ParseFloat(rawAmount, 64)
		if err != nil {
			printfFn("invalid amount %q\n", rawAmount)
			return nil
		}
		tx.Amount = models.Amount(amount)
	}

	rawDate, err := getSimpleText(a.reader, fmt.Sprintf("Enter date (YYYY-MM-DD, empty = %s)", tx.Date.Format("2006-01-02")), os.Stdout)
	if err != nil {
		return err
	}
	if rawDate != "" {
		date, err := models.ParseDate(rawDate)
		if err != nil {
			printfFn("invalid date %q\n", rawDate)
			return nil
		}
		tx.Date = date
	}

	note, err := getSimpleText(a.reader, "Enter note (empty = keep current)", os.Stdout)
	if err != nil {
		return err
	}
	if note != "" {
		tx.Note = note
	}

	if _, err := a.api.UpdateTransaction(ctx, *tx); err != nil {
		printfFn("error: %v\n", err)
		return err
	}
	printfFn("Transaction %d updated.\n", id)
	return nil
}

// Range shows the transactions inside a date window. The full list is
// fetched and windowed locally, matching the behavior of the views this
// client descends from.
func (a *App) Range(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	rawStart, err := getSimpleText(a.reader, "Enter start date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	start, err := models.ParseDate(rawStart)
	if err != nil {
		printfFn("invalid date %q\n", rawStart)
		return nil
	}
	rawEnd, err := getSimpleText(a.reader, "Enter end date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	end, err := models.ParseDate(rawEnd)
	if err != nil {
		printfFn("invalid date %q\n", rawEnd)
		return nil
	}

	txs, err := a.api.ListTransactions(ctx)
	if err != nil {
		printfFn("error: %v\n", err)
		return err
	}

	renderTransactions(ledger.FilterByRange(txs, start.Time, end.Time))
	return nil
}

// Summary prints income/expense/balance totals for a date window, computed
// by the backend summary endpoint. Empty prompts default to the current
// month, the window the summary card opens with.
func (a *App) Summary(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	start, ok, err := a.promptDate("Enter start date (YYYY-MM-DD, empty = %s)", monthStart)
	if err != nil || !ok {
		return err
	}
	end, ok, err := a.promptDate("Enter end date (YYYY-MM-DD, empty = %s)", monthEnd)
	if err != nil || !ok {
		return err
	}

	s, err := a.api.TransactionSummary(ctx, start, end)
	if err != nil {
		printfFn("error: %v\n", err)
		return err
	}
	renderSummary(*s)
	return nil
}

// promptDate asks for a date, falling back to fallback on empty input. The
// second return value is false when the input was present but unparseable;
// the rejection has already been printed in that case.
func (a *App) promptDate(format string, fallback time.Time) (time.Time, bool, error) {
	raw, err := getSimpleText(a.reader, fmt.Sprintf(format, fallback.Format("2006-01-02")), os.Stdout)
	if err != nil {
		return time.Time{}, false, err
	}
	if raw == "" {
		return fallback, true, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		printfFn("invalid date %q\n", raw)
		return time.Time{}, false, nil
	}
	return d.Time, true, nil
}

// Chart prints the per-category income/expense breakdown and the expense
// distribution with share-of-total percentages.
func (a *App) Chart(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	txs, err := a.api.ListTransactions(ctx)
	if err != nil {
		printfFn("error: %v\n", err)
		return err
	}
	if len(txs) == 0 {
		printlnFn("No transactions yet.")
		return nil
	}

	renderBreakdown(ledger.AggregateByCategory(txs))
	renderDistribution(ledger.ExpenseDistribution(txs))
	return nil
}
