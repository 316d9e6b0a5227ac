// Package procsig translates process termination signals into context
// cancellation so the UI loop and its collaborators shut down through one
// path. Hooks run before cancellation to restore terminal state.
package procsig

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

// Hook runs when a termination signal arrives, before the context is
// canceled. Hooks must be quick and must not block on the UI.
type Hook func(os.Signal)

// Watcher owns the signal subscription for the process.
type Watcher struct {
	log    *zap.Logger
	hooks  []Hook
	cancel context.CancelFunc
	ch     chan os.Signal
	done   chan struct{}
	stop   sync.Once
}

// Watch subscribes to SIGINT and SIGTERM and returns a context that is
// canceled when either arrives. Stop releases the subscription.
func Watch(parent context.Context, log *zap.Logger, hooks ...Hook) (context.Context, *Watcher) {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(parent)

	w := &Watcher{
		log:    log,
		hooks:  hooks,
		cancel: cancel,
		ch:     make(chan os.Signal, 1),
		done:   make(chan struct{}),
	}
	signal.Notify(w.ch, syscall.SIGINT, syscall.SIGTERM)
	go w.run(ctx)

	return ctx, w
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	select {
	case sig := <-w.ch:
		w.log.Info("termination signal received", zap.String("signal", sig.String()))
		for _, hook := range w.hooks {
			hook(sig)
		}
		w.cancel()
	case <-ctx.Done():
	}
}

// Stop unsubscribes, cancels the derived context, and waits for the watcher
// goroutine to exit. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stop.Do(func() {
		signal.Stop(w.ch)
		w.cancel()
		<-w.done
	})
}
