package api

import (
	"context"
	"time"

	"daybook/internal/models"
)

// Service is the full adapter surface of the daybook backend. Each operation
// performs exactly one HTTP call and returns the envelope payload unchanged;
// adapters never cache, retry, or mutate shared state.
type Service interface {
	// Todos
	ListTodos(ctx context.Context) ([]models.Todo, error)
	CreateTodo(ctx context.Context, todo models.Todo) (*models.Todo, error)
	UpdateTodo(ctx context.Context, todo models.Todo) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error

	// Transactions
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	ListTransactionsByRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error)
	ListTransactionsByCategory(ctx context.Context, category string) ([]models.Transaction, error)
	TransactionSummary(ctx context.Context, start, end time.Time) (*models.Summary, error)
	CreateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx models.Transaction) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error

	// Users
	Register(ctx context.Context, username, email, password string) (*models.Identity, error)
	Login(ctx context.Context, username, password string) (*models.Identity, error)
	Logout(ctx context.Context) error
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ValidatePasswordResetToken(ctx context.Context, token string) (bool, error)
	ResetPassword(ctx context.Context, token, password string) error
}
