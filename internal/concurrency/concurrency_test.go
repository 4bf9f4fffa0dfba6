package concurrency_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mab2k/homebridge-teufel/internal/concurrency"
	"github.com/stretchr/testify/assert"
)

func Test_ThrottledWorker(t *testing.T) {

	t.Run("should run every job in order and report errors", func(t *testing.T) {
		// arrange
		var ran []string
		var failed []string
		tw := concurrency.NewThrottledWorker(time.Millisecond,
			func(arg string) error {
				ran = append(ran, arg)
				if arg == "b" {
					return errors.New("boom")
				}
				return nil
			},
			func(arg string, err error) {
				failed = append(failed, arg)
			})

		// act
		tw.Run([]string{"a", "b", "c"})

		// assert
		assert.Equal(t, []string{"a", "b", "c"}, ran)
		assert.Equal(t, []string{"b"}, failed)
	})

	t.Run("zero or negative interval: should run every job without waiting", func(t *testing.T) {
		for _, interval := range []time.Duration{0, -time.Second} {
			// arrange
			var ran []string
			tw := concurrency.NewThrottledWorker(interval, func(arg string) error {
				ran = append(ran, arg)
				return nil
			}, nil)

			// act
			assert.NotPanics(t, func() { tw.Run([]string{"a", "b"}) })

			// assert
			assert.Equal(t, []string{"a", "b"}, ran)
		}
	})

	t.Run("no jobs: should return straight away", func(t *testing.T) {
		tw := concurrency.NewThrottledWorker(time.Hour, func(arg int) error { return nil }, nil)
		tw.Run(nil)
	})
}

func Test_DelayedTasks(t *testing.T) {

	t.Run("should run the task after the delay", func(t *testing.T) {
		tasks := concurrency.NewDelayedTasks()
		var ran atomic.Bool

		tasks.Schedule("acc1", "push", 10*time.Millisecond, func() { ran.Store(true) })

		assert.Equal(t, 1, tasks.Pending("acc1"))
		assert.Eventually(t, ran.Load, time.Second, 5*time.Millisecond)
		assert.Equal(t, 0, tasks.Pending("acc1"))
	})

	t.Run("rescheduling a key: should replace the pending task", func(t *testing.T) {
		tasks := concurrency.NewDelayedTasks()
		var calls atomic.Int32
		var last atomic.Int32

		tasks.Schedule("acc1", "push", 20*time.Millisecond, func() { calls.Add(1); last.Store(1) })
		tasks.Schedule("acc1", "push", 20*time.Millisecond, func() { calls.Add(1); last.Store(2) })

		assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, int32(2), last.Load())
	})

	t.Run("cancelling an owner: should stop only its tasks", func(t *testing.T) {
		tasks := concurrency.NewDelayedTasks()
		var removedRan, otherRan atomic.Bool

		tasks.Schedule("removed", "push", 20*time.Millisecond, func() { removedRan.Store(true) })
		tasks.Schedule("removed", "play", 20*time.Millisecond, func() { removedRan.Store(true) })
		tasks.Schedule("other", "push", 20*time.Millisecond, func() { otherRan.Store(true) })

		cancelled := tasks.CancelOwner("removed")

		assert.Equal(t, 2, cancelled)
		assert.Eventually(t, otherRan.Load, time.Second, 5*time.Millisecond)
		time.Sleep(30 * time.Millisecond)
		assert.False(t, removedRan.Load())
	})

	t.Run("stop all: should leave nothing pending", func(t *testing.T) {
		tasks := concurrency.NewDelayedTasks()
		tasks.Schedule("a", "push", time.Hour, func() {})
		tasks.Schedule("b", "push", time.Hour, func() {})

		tasks.StopAll()

		assert.Equal(t, 0, tasks.Pending("a"))
		assert.Equal(t, 0, tasks.Pending("b"))
	})
}
