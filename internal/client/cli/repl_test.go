package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophfiles/internal/client/services"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) List(context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Search(_ context.Context, q string) error {
	f.calls = append(f.calls, "search:"+q)
	return nil
}
func (f *fakeExec) Upload(_ context.Context, p string) error {
	f.calls = append(f.calls, "upload:"+p)
	return nil
}
func (f *fakeExec) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete:"+id)
	return nil
}
func (f *fakeExec) Share(_ context.Context, id string) error {
	f.calls = append(f.calls, "share:"+id)
	return nil
}

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func run(exec execIface, lines ...string) {
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrints(t)
	exec := &fakeExec{}

	run(exec,
		"help",
		"login",
		"l",
		"search q1 report",
		"search",
		"upload /tmp/a b.txt",
		"delete 7",
		"share 7",
		"logout",
		"exit",
		"list",
	)

	assert.Equal(t, []string{
		"login", "list", "search:q1 report", "search:", "upload:/tmp/a b.txt",
		"delete:7", "share:7", "logout",
	}, exec.calls)
}

func TestRunREPL_FileCommandsNeedLogin(t *testing.T) {
	out := capturePrints(t)
	exec := &fakeExec{}

	run(exec, "list", "upload x", "delete 1", "share 1", "quit")

	assert.Empty(t, exec.calls)
	n := 0
	for _, l := range *out {
		if l == services.MsgLoginFirst {
			n++
		}
	}
	assert.Equal(t, 4, n)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	out := capturePrints(t)
	exec := &fakeExec{loggedIn: true}

	run(exec, "upload", "delete", "share a b", "frobnicate")

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Usage: upload <path>")
	assert.Contains(t, *out, "Usage: delete <id>")
	assert.Contains(t, *out, "Usage: share <id>")
	assert.Contains(t, *out, "Unknown command: frobnicate")
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	out := capturePrints(t)

	run(&fakeExec{}, "exit")

	assert.Equal(t, "gf status>", (*out)[0])
	assert.Equal(t, "Bye!", (*out)[1])
}

func TestRunREPL_KeepsInnerSpacing(t *testing.T) {
	capturePrints(t)
	exec := &fakeExec{loggedIn: true}

	run(exec, "search my  report", "  search\tq", "upload /tmp/two  spaces.txt")

	assert.Equal(t, []string{
		"search:my  report", "search:q", "upload:/tmp/two  spaces.txt",
	}, exec.calls)
}

func TestRestOf(t *testing.T) {
	tests := []struct {
		line, cmd, want string
	}{
		{"search", "search", ""},
		{"search ", "search", ""},
		{"search a  b", "search", "a  b"},
		{"  upload  x", "upload", " x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, restOf(tt.line, tt.cmd), tt.line)
	}
}
