// Package notify provides a payload-free broadcast wake-up primitive.
//
// Every goroutine waiting when Notify is called is woken; nothing is stored
// for goroutines that start waiting afterwards. Producers may call Notify
// from any goroutine, including OS callback threads.
package notify

import (
	"sync"

	"go.uber.org/atomic"
)

// Notifier is a multi-producer, multi-consumer wake-up channel.
type Notifier struct {
	mu    sync.Mutex
	next  chan struct{}
	done  chan struct{}
	count atomic.Uint64
}

// New creates a Notifier.
func New() *Notifier {
	return &Notifier{
		next: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Wait returns a channel that is closed by the next Notify.
// Grab the channel before checking state to avoid missing a wake-up.
func (n *Notifier) Wait() <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.next
}

// Notify wakes every current waiter. It is a no-op once closed.
func (n *Notifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()

	select {
	case <-n.done:
		return
	default:
	}

	close(n.next)
	n.next = make(chan struct{})
	n.count.Inc()
}

// Done is closed when the notification source is permanently gone.
func (n *Notifier) Done() <-chan struct{} {
	return n.done
}

// Close marks the source as finished. Waiters observe Done, not a wake-up.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	select {
	case <-n.done:
	default:
		close(n.done)
	}
}

// Count returns how many notifications have been broadcast.
func (n *Notifier) Count() uint64 {
	return n.count.Load()
}
