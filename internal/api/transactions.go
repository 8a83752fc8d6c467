package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"daybook/internal/models"
)

const transactionsPath = "/api/transactions"

// ListTransactions fetches the full transaction list. Date windowing happens
// client-side (see the ledger package); this keeps the observed contract of
// the views, which never scope the query upstream.
func (c *Client) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := c.do(ctx, http.MethodGet, transactionsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTransactionsByRange asks the backend for transactions within
// [start, end], both sent as ISO timestamps.
func (c *Client) ListTransactionsByRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	q := url.Values{}
	q.Set("start", start.Format(time.RFC3339))
	q.Set("end", end.Format(time.RFC3339))

	var out []models.Transaction
	if err := c.do(ctx, http.MethodGet, transactionsPath+"/range?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTransactionsByCategory fetches transactions tagged with one category.
func (c *Client) ListTransactionsByCategory(ctx context.Context, category string) ([]models.Transaction, error) {
	var out []models.Transaction
	path := transactionsPath + "/category/" + url.PathEscape(category)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TransactionSummary asks the backend for income/expense/balance totals over
// [start, end].
func (c *Client) TransactionSummary(ctx context.Context, start, end time.Time) (*models.Summary, error) {
	q := url.Values{}
	q.Set("start", start.Format(time.RFC3339))
	q.Set("end", end.Format(time.RFC3339))

	var out models.Summary
	if err := c.do(ctx, http.MethodGet, transactionsPath+"/summary?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTransaction submits a new record; the backend assigns the identifier.
func (c *Client) CreateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.do(ctx, http.MethodPost, transactionsPath, tx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTransaction replaces the record identified by tx.ID.
func (c *Client) UpdateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", transactionsPath, tx.ID), tx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTransaction removes the record.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", transactionsPath, id), nil, nil)
}
