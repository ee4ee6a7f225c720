package test

import (
	"context"

	"go.uber.org/fx"
)

// LifecycleRecorder captures hooks appended during fx wiring so tests can
// run them directly.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// Start invokes every recorded OnStart hook in order.
func (l *LifecycleRecorder) Start(ctx context.Context) error {
	for _, h := range l.Hooks {
		if h.OnStart == nil {
			continue
		}
		if err := h.OnStart(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Stop invokes every recorded OnStop hook in reverse order.
func (l *LifecycleRecorder) Stop(ctx context.Context) error {
	for i := len(l.Hooks) - 1; i >= 0; i-- {
		if l.Hooks[i].OnStop == nil {
			continue
		}
		if err := l.Hooks[i].OnStop(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ShutdownerStub records that the application requested shutdown.
type ShutdownerStub struct {
	Called chan struct{}
}

// NewShutdownerStub constructs a stub with a buffered signal channel.
func NewShutdownerStub() *ShutdownerStub {
	return &ShutdownerStub{Called: make(chan struct{}, 1)}
}

func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	select {
	case s.Called <- struct{}{}:
	default:
	}
	return nil
}
