package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestNotifier_WakesAllWaiters(t *testing.T) {
	n := New()

	a := n.Wait()
	b := n.Wait()
	assert.False(t, isClosed(a))
	assert.False(t, isClosed(b))

	n.Notify()

	assert.True(t, isClosed(a))
	assert.True(t, isClosed(b))
	assert.Equal(t, uint64(1), n.Count())
}

func TestNotifier_NoReplayForLateWaiters(t *testing.T) {
	n := New()
	n.Notify()

	late := n.Wait()
	assert.False(t, isClosed(late))
}

func TestNotifier_CloseStopsNotifications(t *testing.T) {
	n := New()
	w := n.Wait()

	n.Close()
	n.Close()
	n.Notify()

	assert.True(t, isClosed(n.Done()))
	assert.False(t, isClosed(w))
	assert.Equal(t, uint64(0), n.Count())
}

func TestNotifier_ConcurrentProducers(t *testing.T) {
	n := New()

	const producers = 8
	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				n.Notify()
			}
		}()
	}

	w := n.Wait()
	wg.Wait()
	n.Notify()

	select {
	case <-w:
	case <-time.After(time.Second):
		t.Fatal("waiter was never woken")
	}
	assert.Equal(t, uint64(producers*50+1), n.Count())
}
