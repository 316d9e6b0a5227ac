// Package notify raises desktop notifications from the terminal using escape
// sequences. Delivery is best-effort: unsupported terminals simply ignore the
// sequences, and the BEL fallback still gets the user's attention in most
// multiplexers.
package notify

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Method selects how a notification is emitted.
type Method string

const (
	// MethodOSC777 uses the urxvt/rxvt extension adopted by several modern
	// terminals (wezterm, foot, kitty via extension).
	MethodOSC777 Method = "osc777"
	// MethodOSC9 uses the iTerm2/ConEmu growl-style sequence.
	MethodOSC9 Method = "osc9"
	// MethodBell rings the terminal bell.
	MethodBell Method = "bell"
	// MethodNone disables notifications entirely.
	MethodNone Method = "none"
)

// Notifier emits desktop notification triggers to a terminal writer.
// Safe for use from a single UI goroutine; the mutex only guards against
// the config watcher flipping Enabled concurrently.
type Notifier struct {
	mu      sync.Mutex
	w       io.Writer
	method  Method
	enabled bool
	focused bool
}

// New returns a notifier writing to w, typically the terminal's stdout.
func New(w io.Writer, method Method, enabled bool) *Notifier {
	return &Notifier{w: w, method: method, enabled: enabled}
}

// SetEnabled toggles notification delivery at runtime.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

// SetFocused records terminal focus. Notifications are suppressed while the
// terminal is focused; the user is already looking at the reply.
func (n *Notifier) SetFocused(focused bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.focused = focused
}

// Notify emits a notification with the given title and body. Returns false
// when delivery was suppressed (disabled, focused, or method none); write
// errors are swallowed since a failed notification must never fail the UI.
func (n *Notifier) Notify(title, body string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.enabled || n.focused || n.method == MethodNone {
		return false
	}

	seq := Sequence(n.method, title, body)
	if seq == "" {
		return false
	}
	_, _ = io.WriteString(n.w, seq)
	return true
}

// Sequence returns the raw escape sequence for a notification, or "" if the
// method emits nothing. Exposed for tests and for callers that batch writes.
func Sequence(method Method, title, body string) string {
	title = sanitize(title)
	body = sanitize(body)
	switch method {
	case MethodOSC777:
		return fmt.Sprintf("\x1b]777;notify;%s;%s\x1b\\", title, body)
	case MethodOSC9:
		text := title
		if body != "" {
			text = title + ": " + body
		}
		return fmt.Sprintf("\x1b]9;%s\x1b\\", text)
	case MethodBell:
		return "\a"
	default:
		return ""
	}
}

// sanitize strips bytes that would terminate or corrupt the OSC payload.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || r == ';' {
			return -1
		}
		return r
	}, s)
}
