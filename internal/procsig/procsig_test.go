package procsig

import (
	"context"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatchCancelsOnSignal(t *testing.T) {
	var hookSig atomic.Value
	ctx, w := Watch(context.Background(), nil, func(sig os.Signal) {
		hookSig.Store(sig)
	})
	defer w.Stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not canceled after SIGINT")
	}
	assert.Equal(t, syscall.SIGINT, hookSig.Load())
}

func TestStopReleasesWithoutSignal(t *testing.T) {
	ctx, w := Watch(context.Background(), nil)
	w.Stop()

	select {
	case <-ctx.Done():
	default:
		t.Fatal("Stop must cancel the derived context")
	}

	// Second Stop is a no-op.
	w.Stop()
}

func TestParentCancellationPropagates(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, w := Watch(parent, nil)
	defer w.Stop()

	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("parent cancellation did not propagate")
	}
}
