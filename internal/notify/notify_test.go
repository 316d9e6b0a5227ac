package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		title  string
		body   string
		want   string
	}{
		{
			name:   "osc777",
			method: MethodOSC777,
			title:  "parley",
			body:   "reply ready",
			want:   "\x1b]777;notify;parley;reply ready\x1b\\",
		},
		{
			name:   "osc9 joins title and body",
			method: MethodOSC9,
			title:  "parley",
			body:   "reply ready",
			want:   "\x1b]9;parley: reply ready\x1b\\",
		},
		{
			name:   "osc9 title only",
			method: MethodOSC9,
			title:  "parley",
			want:   "\x1b]9;parley\x1b\\",
		},
		{
			name:   "bell",
			method: MethodBell,
			title:  "ignored",
			want:   "\a",
		},
		{
			name:   "none",
			method: MethodNone,
			title:  "ignored",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sequence(tt.method, tt.title, tt.body))
		})
	}
}

func TestSequenceSanitizesPayload(t *testing.T) {
	// Control bytes and semicolons must not leak into the OSC payload.
	got := Sequence(MethodOSC777, "ti;tle\x1b", "bo\ady\x07")
	assert.Equal(t, "\x1b]777;notify;title;body\x1b\\", got)
}

func TestNotifyWrites(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf, MethodOSC777, true)

	assert.True(t, n.Notify("parley", "done"))
	assert.Equal(t, Sequence(MethodOSC777, "parley", "done"), buf.String())
}

func TestNotifySuppressed(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		var buf bytes.Buffer
		n := New(&buf, MethodBell, false)
		assert.False(t, n.Notify("t", "b"))
		assert.Empty(t, buf.String())
	})

	t.Run("focused terminal", func(t *testing.T) {
		var buf bytes.Buffer
		n := New(&buf, MethodBell, true)
		n.SetFocused(true)
		assert.False(t, n.Notify("t", "b"))
		assert.Empty(t, buf.String())

		n.SetFocused(false)
		assert.True(t, n.Notify("t", "b"))
	})

	t.Run("method none", func(t *testing.T) {
		var buf bytes.Buffer
		n := New(&buf, MethodNone, true)
		assert.False(t, n.Notify("t", "b"))
	})
}

func TestSetEnabledToggle(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf, MethodBell, false)

	n.SetEnabled(true)
	assert.True(t, n.Notify("t", ""))
	n.SetEnabled(false)
	assert.False(t, n.Notify("t", ""))
}
