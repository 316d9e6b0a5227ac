package chat

import (
	"context"
	"fmt"
	"time"
)

// EchoResponder is the built-in responder used when no backend is wired. It
// echoes the prompt back, which keeps the chat surface fully exercisable
// offline and in tests.
type EchoResponder struct {
	// Delay simulates backend latency so the loading spinner is visible.
	Delay time.Duration
}

// NewEchoResponder returns an echo responder with a short simulated delay.
func NewEchoResponder() *EchoResponder {
	return &EchoResponder{Delay: 300 * time.Millisecond}
}

// Reply implements Responder.
func (e *EchoResponder) Reply(ctx context.Context, prompt string) (string, error) {
	if e.Delay > 0 {
		select {
		case <-time.After(e.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return fmt.Sprintf("You said:\n\n> %s\n\nConnect a backend responder to get real replies.", prompt), nil
}
