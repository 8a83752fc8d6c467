package cli

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"time"

	"daybook/internal/api"
	"daybook/internal/models"
)

const todosSnapshot = "todos"

// Todos lists the to-do items. When the server is unreachable, the last
// successfully fetched copy is shown instead, labelled as cached.
func (a *App) Todos(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	todos, err := a.api.ListTodos(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			return a.cachedTodos(ctx)
		}
		printfFn("error: %v\n", err)
		return err
	}

	a.saveSnapshot(ctx, todosSnapshot, todos)
	renderTodos(todos)
	return nil
}

func (a *App) cachedTodos(ctx context.Context) error {
	snap, err := a.snapshots.Load(ctx, todosSnapshot)
	if err != nil {
		printlnFn("server unavailable and no cached copy exists")
		return err
	}
	var todos []models.Todo
	if err := json.Unmarshal(snap.Payload, &todos); err != nil {
		return err
	}
	printfFn("server unavailable, showing copy cached at %s\n", snap.SavedAt.Format(time.RFC3339))
	renderTodos(todos)
	return nil
}

func renderTodos(todos []models.Todo) {
	if len(todos) == 0 {
		printlnFn("No todos yet.")
		return
	}
	for _, todo := range todos {
		mark := " "
		if todo.Completed {
			mark = "x"
		}
		printfFn("[%s] %d  %s\n", mark, todo.ID, todo.Text)
	}
}

// AddTodo creates a new item. Empty text is rejected locally; no request is
// issued.
func (a *App) AddTodo(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	text, err := getSimpleText(a.reader, "Enter todo text", os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		printlnFn("todo text cannot be empty")
		return nil
	}

	created, err := a.api.CreateTodo(ctx, models.Todo{Text: text})
	if err != nil {
		printfFn("error: %v\n", err)
		return err
	}
	printfFn("Added todo %d.\n", created.ID)
	return nil
}

// ToggleTodo flips the completed flag of one item.
func (a *App) ToggleTodo(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	id, err := a.promptID("Enter todo id")
	if err != nil {
		return err
	}

	todos, err := a.api.ListTodos(ctx)
	if err != nil {
		printfFn("error: %v\n", err)
		return err
	}
	for _, todo := range todos {
		if todo.ID != id {
			continue
		}
		todo.Completed = !todo.Completed
		if _, err := a.api.UpdateTodo(ctx, todo); err != nil {
			printfFn("error: %v\n", err)
			return err
		}
		printfFn("Todo %d toggled.\n", id)
		return nil
	}

	printfFn("todo %d not found\n", id)
	return nil
}

// RemoveTodo deletes one item.
func (a *App) RemoveTodo(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	id, err := a.promptID("Enter todo id to delete")
	if err != nil {
		return err
	}
	if err := a.api.DeleteTodo(ctx, id); err != nil {
		printfFn("error: %v\n", err)
		return err
	}
	printfFn("Todo %d deleted.\n", id)
	return nil
}

func (a *App) promptID(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		printfFn("invalid id %q\n", raw)
		return 0, err
	}
	return id, nil
}

// saveSnapshot caches a fetched payload for offline display. Failures are
// logged only; caching must never break the command that triggered it.
func (a *App) saveSnapshot(ctx context.Context, name string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		a.log.Warn(ctx, "failed to encode snapshot", "name", name, "error", err)
		return
	}
	if err := a.snapshots.Save(ctx, name, raw); err != nil {
		a.log.Warn(ctx, "failed to save snapshot", "name", name, "error", err)
	}
}
