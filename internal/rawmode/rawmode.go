// Package rawmode guards raw-mode stdin handling for prompts that run
// outside the Bubble Tea program (which manages its own terminal state).
// The guard restores the saved state exactly once, so deferred and explicit
// restores can coexist on panic paths.
package rawmode

import (
	"errors"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin is not attached to a terminal.
var ErrNotTerminal = errors.New("rawmode: stdin is not a terminal")

// Guard holds the saved terminal state for a raw-mode session.
type Guard struct {
	fd    int
	state *term.State
	once  sync.Once
}

// Enter switches the file descriptor into raw mode and returns a guard that
// restores the previous state. Callers should defer Restore immediately.
func Enter(fd int) (*Guard, error) {
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &Guard{fd: fd, state: state}, nil
}

// EnterStdin is Enter for os.Stdin.
func EnterStdin() (*Guard, error) {
	return Enter(int(os.Stdin.Fd()))
}

// Restore reverts the terminal to its saved state. Safe to call multiple
// times and on a nil guard; only the first call touches the terminal.
func (g *Guard) Restore() error {
	if g == nil || g.state == nil {
		return nil
	}
	var err error
	g.once.Do(func() {
		err = term.Restore(g.fd, g.state)
	})
	return err
}

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
