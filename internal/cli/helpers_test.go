package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"daybook/internal/logging"
	"daybook/internal/models"
	"daybook/internal/repositories/snapshots"
	"daybook/internal/session"

	"daybook/internal/common"
)

// ---- output capture ----

func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var sb strings.Builder
	origLn, origF := printlnFn, printfFn
	printlnFn = func(args ...any) { fmt.Fprintln(&sb, args...) }
	printfFn = func(format string, args ...any) { fmt.Fprintf(&sb, format, args...) }
	t.Cleanup(func() {
		printlnFn = origLn
		printfFn = origF
	})
	return &sb
}

// ---- input stubs ----

func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	ti, pi := 0, 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if ti >= len(texts) {
			return "", io.EOF
		}
		s := texts[ti]
		ti++
		return s, nil
	}
	getPassword = func(_ io.Writer) (string, error) {
		if pi >= len(passwords) {
			return "", io.EOF
		}
		s := passwords[pi]
		pi++
		return s, nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

// ---- fakes ----

type fakeKV struct {
	data map[string][]byte
}

func newFakeKV() *fakeKV { return &fakeKV{data: map[string][]byte{}} }

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}
func (f *fakeKV) Set(_ context.Context, key string, value []byte) error {
	f.data[key] = value
	return nil
}
func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}
func (f *fakeKV) Clear(context.Context) error {
	f.data = map[string][]byte{}
	return nil
}

type fakeSnapshots struct {
	data map[string][]byte
}

func newFakeSnapshots() *fakeSnapshots { return &fakeSnapshots{data: map[string][]byte{}} }

func (f *fakeSnapshots) Save(_ context.Context, name string, payload []byte) error {
	f.data[name] = payload
	return nil
}
func (f *fakeSnapshots) Load(_ context.Context, name string) (*snapshots.Snapshot, error) {
	v, ok := f.data[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &snapshots.Snapshot{Name: name, Payload: v, SavedAt: time.Unix(0, 0).UTC()}, nil
}
func (f *fakeSnapshots) Clear(context.Context) error {
	f.data = map[string][]byte{}
	return nil
}

// fakeAPI implements api.Service with canned results.
type fakeAPI struct {
	todos    []models.Todo
	todosErr error

	createdTodo    *models.Todo
	createTodoErr  error
	createTodoGot  *models.Todo
	updatedTodoGot *models.Todo
	deleteTodoID   int64

	txs    []models.Transaction
	txsErr error

	createdTx    *models.Transaction
	createTxErr  error
	createTxGot  *models.Transaction
	updatedTxGot *models.Transaction
	deleteTxID   int64

	summary      *models.Summary
	summaryErr   error
	summaryStart time.Time
	summaryEnd   time.Time

	identity    *models.Identity
	loginErr    error
	loginUser   string
	loginPass   string
	logoutErr   error
	registered  bool
	regUser     string
	regEmail    string
	regPass     string
	registerErr error

	usernameTaken bool
	emailTaken    bool
	existsErr     error

	resetRequested string
	tokenValid     bool
	resetToken     string
	resetPass      string
}

func (f *fakeAPI) ListTodos(context.Context) ([]models.Todo, error) {
	return f.todos, f.todosErr
}
func (f *fakeAPI) CreateTodo(_ context.Context, todo models.Todo) (*models.Todo, error) {
	f.createTodoGot = &todo
	if f.createTodoErr != nil {
		return nil, f.createTodoErr
	}
	if f.createdTodo != nil {
		return f.createdTodo, nil
	}
	todo.ID = 1
	return &todo, nil
}
func (f *fakeAPI) UpdateTodo(_ context.Context, todo models.Todo) (*models.Todo, error) {
	f.updatedTodoGot = &todo
	return &todo, nil
}
func (f *fakeAPI) DeleteTodo(_ context.Context, id int64) error {
	f.deleteTodoID = id
	return nil
}

func (f *fakeAPI) ListTransactions(context.Context) ([]models.Transaction, error) {
	return f.txs, f.txsErr
}
func (f *fakeAPI) ListTransactionsByRange(context.Context, time.Time, time.Time) ([]models.Transaction, error) {
	return f.txs, f.txsErr
}
func (f *fakeAPI) ListTransactionsByCategory(context.Context, string) ([]models.Transaction, error) {
	return f.txs, f.txsErr
}
func (f *fakeAPI) TransactionSummary(_ context.Context, start, end time.Time) (*models.Summary, error) {
	f.summaryStart, f.summaryEnd = start, end
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	if f.summary != nil {
		return f.summary, nil
	}
	return &models.Summary{}, nil
}
func (f *fakeAPI) CreateTransaction(_ context.Context, tx models.Transaction) (*models.Transaction, error) {
	f.createTxGot = &tx
	if f.createTxErr != nil {
		return nil, f.createTxErr
	}
	if f.createdTx != nil {
		return f.createdTx, nil
	}
	tx.ID = 1
	return &tx, nil
}
func (f *fakeAPI) UpdateTransaction(_ context.Context, tx models.Transaction) (*models.Transaction, error) {
	f.updatedTxGot = &tx
	return &tx, nil
}
func (f *fakeAPI) DeleteTransaction(_ context.Context, id int64) error {
	f.deleteTxID = id
	return nil
}

func (f *fakeAPI) Register(_ context.Context, username, email, password string) (*models.Identity, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = true
	f.regUser, f.regEmail, f.regPass = username, email, password
	return &models.Identity{Username: username, Email: email}, nil
}
func (f *fakeAPI) Login(_ context.Context, username, password string) (*models.Identity, error) {
	f.loginUser, f.loginPass = username, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if f.identity != nil {
		return f.identity, nil
	}
	return &models.Identity{Username: username}, nil
}
func (f *fakeAPI) Logout(context.Context) error { return f.logoutErr }
func (f *fakeAPI) UsernameExists(context.Context, string) (bool, error) {
	return f.usernameTaken, f.existsErr
}
func (f *fakeAPI) EmailExists(context.Context, string) (bool, error) {
	return f.emailTaken, f.existsErr
}
func (f *fakeAPI) RequestPasswordReset(_ context.Context, email string) error {
	f.resetRequested = email
	return nil
}
func (f *fakeAPI) ValidatePasswordResetToken(context.Context, string) (bool, error) {
	return f.tokenValid, nil
}
func (f *fakeAPI) ResetPassword(_ context.Context, token, password string) error {
	f.resetToken, f.resetPass = token, password
	return nil
}

// ---- app construction ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestApp wires an App over fakes. The session store is initialized; pass
// loggedIn to start with a persisted identity.
func newTestApp(t *testing.T, f *fakeAPI, loggedIn bool) *App {
	t.Helper()
	store := session.NewStore(newFakeKV(), testLogger())
	store.Initialize(context.Background())
	if loggedIn {
		if err := store.Login(context.Background(), models.Identity{Username: "alice"}); err != nil {
			t.Fatalf("login: %v", err)
		}
	}
	return &App{
		api:       f,
		session:   store,
		snapshots: newFakeSnapshots(),
		log:       testLogger(),
		reader:    bufio.NewReader(strings.NewReader("")),
	}
}
