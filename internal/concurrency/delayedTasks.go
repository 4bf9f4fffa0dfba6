package concurrency

import (
	"sync"
	"time"
)

type taskKey struct {
	owner string
	name  string
}

// DelayedTasks runs functions after a delay. Tasks are keyed by owner and
// name: scheduling a key again replaces the pending task, and all tasks of an
// owner can be cancelled at once (e.g. when an accessory is removed).
type DelayedTasks struct {
	mu      sync.Mutex
	pending map[taskKey]*time.Timer
}

func NewDelayedTasks() *DelayedTasks {
	return &DelayedTasks{pending: map[taskKey]*time.Timer{}}
}

func (d *DelayedTasks) Schedule(owner string, name string, delay time.Duration, fn func()) {
	key := taskKey{owner, name}

	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, ok := d.pending[key]; ok {
		existing.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		d.mu.Lock()
		// only the latest timer for a key may clear it
		current, ok := d.pending[key]
		if !ok || current != timer {
			d.mu.Unlock()
			return
		}
		delete(d.pending, key)
		d.mu.Unlock()

		fn()
	})
	d.pending[key] = timer
}

// CancelOwner stops every pending task of the owner, returning how many were stopped.
func (d *DelayedTasks) CancelOwner(owner string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	cancelled := 0
	for key, timer := range d.pending {
		if key.owner != owner {
			continue
		}
		timer.Stop()
		delete(d.pending, key)
		cancelled++
	}
	return cancelled
}

func (d *DelayedTasks) Pending(owner string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for key := range d.pending {
		if key.owner == owner {
			n++
		}
	}
	return n
}

func (d *DelayedTasks) StopAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, timer := range d.pending {
		timer.Stop()
		delete(d.pending, key)
	}
}
