package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/sprout/internal/config"
	"github.com/aretw0/sprout/internal/logging"
	"github.com/aretw0/sprout/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger from the profile.
// It writes to Err so sequences and geometry on Out stay machine readable.
func createLogger(w io.Writer, profile config.Profile) *slog.Logger {
	level, err := logging.ParseLevel(profile.LogLevel)
	if err != nil {
		return logging.NewNop()
	}
	return logging.NewWithWriter(w, level, logging.Format(profile.LogFormat))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGeneration: func(ctx context.Context, e *domain.GenerationEvent) {
			logger.Debug("Generation", "grammar", e.Grammar, "index", e.Index, "length", e.Length, "expanded", e.Expanded)
		},
		OnFixedPoint: func(ctx context.Context, e *domain.GenerationEvent) {
			logger.Debug("Fixed Point", "grammar", e.Grammar, "index", e.Index)
		},
		OnMap: func(ctx context.Context, e *domain.MapEvent) {
			logger.Debug("Mapped", "grammar", e.Grammar, "dimension", int(e.Dimension), "lines", e.Lines, "markers", e.Markers)
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

// handleExecutionError maps interruptions to a clean exit, reporting the signal on w
// when ctx recorded one.
func handleExecutionError(ctx context.Context, w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if !isInterrupted(err) {
		return err
	}
	if sc, ok := ctx.(interface{ Signal() os.Signal }); ok {
		if sig := sc.Signal(); sig != nil {
			printSystemMessage(w, "Interrupted by %s", sig)
		}
	}
	return nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
