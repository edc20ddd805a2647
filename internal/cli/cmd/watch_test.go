package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/systheme/pkg/theme"
)

// fakePump records event loop servicing.
type fakePump struct {
	needed bool
	pumps  int
	err    error
	onPump func()
}

func (p *fakePump) NeedsEventPump() bool { return p.needed }

func (p *fakePump) PumpEvents(d time.Duration) error {
	p.pumps++
	if p.onPump != nil {
		p.onPump()
	}
	return p.err
}

func nextStep(t *testing.T, steps <-chan string) string {
	t.Helper()
	select {
	case s := <-steps:
		return s
	case <-time.After(time.Second):
		t.Fatal("no wake-up dispatched")
		return ""
	}
}

func TestWakeups_DispatchOnServingGoroutine(t *testing.T) {
	w := newWakeups()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{})
	go w.forward(func(yield func(struct{}) bool) {
		for range changes {
			if !yield(struct{}{}) {
				return
			}
		}
	})

	steps := make(chan string, 3)
	served := make(chan error)
	go func() {
		served <- w.serve(ctx, &fakePump{}, wakeHandlers{
			appearance: func() { steps <- "appearance" },
			config:     func() { steps <- "config" },
			ended: func() {
				steps <- "ended"
				cancel()
			},
		})
	}()

	changes <- struct{}{}
	assert.Equal(t, "appearance", nextStep(t, steps))

	poke(w.config)
	assert.Equal(t, "config", nextStep(t, steps))

	close(changes)
	assert.Equal(t, "ended", nextStep(t, steps))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("serve did not return")
	}
}

func TestWakeups_PendingSignalAbsorbsLaterOnes(t *testing.T) {
	w := newWakeups()
	poke(w.config)
	poke(w.config)
	poke(w.config)

	assert.Len(t, w.config, 1)
}

func TestWakeups_ServiceEventLoopWhenNeeded(t *testing.T) {
	w := newWakeups()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := 0
	pump := &fakePump{needed: true}
	pump.onPump = func() {
		if pump.pumps == 2 {
			// An observer fired while the loop ran
			poke(w.appearance)
		}
		if changes > 0 || pump.pumps > 1000 {
			cancel()
		}
	}

	err := w.serve(ctx, pump, wakeHandlers{
		appearance: func() { changes++ },
		config:     func() {},
		ended:      func() {},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, changes)
	assert.Greater(t, pump.pumps, 2)
}

func TestWakeups_EventLoopFailureStopsServing(t *testing.T) {
	w := newWakeups()
	pump := &fakePump{needed: true, err: theme.ErrMainThreadRequired}

	err := w.serve(context.Background(), pump, wakeHandlers{})
	assert.ErrorIs(t, err, theme.ErrMainThreadRequired)
	assert.Equal(t, 1, pump.pumps)
}

func TestWakeups_NoPumpBlocksUntilCancelled(t *testing.T) {
	w := newWakeups()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	pump := &fakePump{}
	err := w.serve(ctx, pump, wakeHandlers{})
	require.NoError(t, err)
	assert.Zero(t, pump.pumps)
	assert.True(t, errors.Is(ctx.Err(), context.DeadlineExceeded))
}
