package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printfFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printlnFn = func(args ...any) { fmt.Println(args...) }
	printfFn  = func(format string, args ...any) { fmt.Printf(format, args...) }
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error
	Todos(ctx context.Context) error
	AddTodo(ctx context.Context) error
	ToggleTodo(ctx context.Context) error
	RemoveTodo(ctx context.Context) error
	Transactions(ctx context.Context) error
	AddTransaction(ctx context.Context) error
	EditTransaction(ctx context.Context) error
	RemoveTransaction(ctx context.Context) error
	Range(ctx context.Context) error
	Summary(ctx context.Context) error
	Chart(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the daybook CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors inline. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printfFn("daybook %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: todos, add, toggle, rm, tx, txadd, txedit, txrm, range, summary, chart, logout, exit")
			} else {
				printlnFn("Available commands: login, register, forgot, reset, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "t", "todos":
			_ = a.Todos(ctx)

		case "add":
			_ = a.AddTodo(ctx)

		case "toggle":
			_ = a.ToggleTodo(ctx)

		case "rm":
			_ = a.RemoveTodo(ctx)

		case "tx":
			_ = a.Transactions(ctx)

		case "txadd":
			_ = a.AddTransaction(ctx)

		case "txedit":
			_ = a.EditTransaction(ctx)

		case "txrm":
			_ = a.RemoveTransaction(ctx)

		case "range":
			_ = a.Range(ctx)

		case "summary":
			_ = a.Summary(ctx)

		case "chart":
			_ = a.Chart(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
