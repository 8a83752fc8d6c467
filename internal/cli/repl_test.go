package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Register(context.Context) error          { return f.record("register") }
func (f *fakeExec) Login(context.Context) error             { return f.record("login") }
func (f *fakeExec) Logout(context.Context) error            { return f.record("logout") }
func (f *fakeExec) Forgot(context.Context) error            { return f.record("forgot") }
func (f *fakeExec) Reset(context.Context) error             { return f.record("reset") }
func (f *fakeExec) Todos(context.Context) error             { return f.record("todos") }
func (f *fakeExec) AddTodo(context.Context) error           { return f.record("add") }
func (f *fakeExec) ToggleTodo(context.Context) error        { return f.record("toggle") }
func (f *fakeExec) RemoveTodo(context.Context) error        { return f.record("rm") }
func (f *fakeExec) Transactions(context.Context) error      { return f.record("tx") }
func (f *fakeExec) AddTransaction(context.Context) error    { return f.record("txadd") }
func (f *fakeExec) EditTransaction(context.Context) error   { return f.record("txedit") }
func (f *fakeExec) RemoveTransaction(context.Context) error { return f.record("txrm") }
func (f *fakeExec) Range(context.Context) error             { return f.record("range") }
func (f *fakeExec) Summary(context.Context) error           { return f.record("summary") }
func (f *fakeExec) Chart(context.Context) error             { return f.record("chart") }

func runScript(t *testing.T, f *fakeExec, script string) string {
	t.Helper()
	out := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
	return out.String()
}

func TestREPLDispatch(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "login\ntodos\nadd\ntoggle\nrm\ntx\ntxadd\ntxedit\ntxrm\nrange\nsummary\nchart\nlogout\nexit\n")

	assert.Equal(t, []string{
		"login", "todos", "add", "toggle", "rm",
		"tx", "txadd", "txedit", "txrm", "range", "summary", "chart", "logout",
	}, f.calls)
}

func TestREPLTodosAlias(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "t\nexit\n")
	assert.Equal(t, []string{"todos"}, f.calls)
}

func TestREPLExit(t *testing.T) {
	f := &fakeExec{}
	out := runScript(t, f, "exit\nlogin\n")

	assert.Contains(t, out, "Bye!")
	assert.Empty(t, f.calls)
}

func TestREPLQuit(t *testing.T) {
	f := &fakeExec{}
	out := runScript(t, f, "quit\n")
	assert.Contains(t, out, "Bye!")
}

func TestREPLEOF(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "login\n")
	assert.Equal(t, []string{"login"}, f.calls)
}

func TestREPLUnknownCommand(t *testing.T) {
	f := &fakeExec{}
	out := runScript(t, f, "frobnicate\nexit\n")

	assert.Contains(t, out, "Unknown command: frobnicate")
	assert.Empty(t, f.calls)
}

func TestREPLBlankLine(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "\n   \nexit\n")
	assert.Empty(t, f.calls)
}

func TestREPLHelp(t *testing.T) {
	f := &fakeExec{}
	out := runScript(t, f, "help\nexit\n")
	assert.Contains(t, out, "login, register, forgot, reset, exit")

	f = &fakeExec{loggedIn: true}
	out = runScript(t, f, "help\nexit\n")
	assert.Contains(t, out, "todos, add, toggle, rm, tx, txadd, txedit, txrm, range, summary, chart, logout, exit")
}

func TestREPLPromptShowsStatus(t *testing.T) {
	f := &fakeExec{}
	out := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader("exit\n"))
	runREPL(context.Background(), f, func() string { return "(alice)" }, scanner)

	assert.Contains(t, out.String(), "daybook (alice)> ")
}
