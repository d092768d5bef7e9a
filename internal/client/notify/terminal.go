package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

const clearToEOL = "\033[K"

// Terminal prints notifications to a terminal. Loading messages that share
// an id rewrite the same line; the terminal message for that id replaces it.
type Terminal struct {
	mu      sync.Mutex
	w       io.Writer
	pending string

	busy *color.Color
	ok   *color.Color
	fail *color.Color
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		w:    w,
		busy: color.New(color.FgYellow),
		ok:   color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
	}
}

// WithoutColor disables escape codes for colors, e.g. when w is a file.
func (t *Terminal) WithoutColor() *Terminal {
	t.busy.DisableColor()
	t.ok.DisableColor()
	t.fail.DisableColor()
	return t
}

func (t *Terminal) Loading(id, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id == "" {
		t.breakPending()
		fmt.Fprintf(t.w, "%s %s\n", t.busy.Sprint("..."), msg)
		return
	}
	if t.pending != "" && t.pending != id {
		t.breakPending()
	}
	fmt.Fprintf(t.w, "\r%s %s%s", t.busy.Sprint("..."), msg, clearToEOL)
	t.pending = id
}

func (t *Terminal) Success(id, msg string) {
	t.finish(id, t.ok.Sprint("OK"), msg)
}

func (t *Terminal) Error(id, msg string) {
	t.finish(id, t.fail.Sprint("ERR"), msg)
}

func (t *Terminal) finish(id, mark, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != "" && t.pending == id {
		fmt.Fprint(t.w, "\r")
		t.pending = ""
	} else {
		t.breakPending()
	}
	fmt.Fprintf(t.w, "%s %s%s\n", mark, msg, clearToEOL)
}

// breakPending ends a rewritable line so the next output starts fresh.
func (t *Terminal) breakPending() {
	if t.pending != "" {
		fmt.Fprintln(t.w)
		t.pending = ""
	}
}
