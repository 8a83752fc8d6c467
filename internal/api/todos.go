package api

import (
	"context"
	"fmt"
	"net/http"

	"daybook/internal/models"
)

// ListTodos fetches every to-do item for the current session.
func (c *Client) ListTodos(ctx context.Context) ([]models.Todo, error) {
	var out []models.Todo
	if err := c.do(ctx, http.MethodGet, "/todolist", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTodo submits a new item; the backend assigns the identifier.
func (c *Client) CreateTodo(ctx context.Context, todo models.Todo) (*models.Todo, error) {
	var out models.Todo
	if err := c.do(ctx, http.MethodPost, "/todolist", todo, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTodo replaces the item identified by todo.ID.
func (c *Client) UpdateTodo(ctx context.Context, todo models.Todo) (*models.Todo, error) {
	var out models.Todo
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/todolist/%d", todo.ID), todo, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTodo removes the item.
func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/todolist/%d", id), nil, nil)
}
