package rawmode

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnterRejectsNonTerminal(t *testing.T) {
	// A pipe is never a terminal, regardless of the test environment.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	g, err := Enter(int(r.Fd()))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrNotTerminal)
}

func TestIsTerminalOnPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.False(t, IsTerminal(int(r.Fd())))
}

func TestRestoreNilGuard(t *testing.T) {
	var g *Guard
	assert.NoError(t, g.Restore())
	assert.NoError(t, (&Guard{}).Restore())
}
