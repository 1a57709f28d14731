package watchdog

import (
	"sync"
	"time"
)

// Task owns at most one pending callback. Scheduling a new callback
// supersedes the previous one, even if its timer has already fired and the
// callback is waiting to run.
type Task struct {
	mu         sync.Mutex
	clock      Clock
	timer      Timer
	generation uint64
}

// NewTask creates an idle task on the given clock.
func NewTask(clock Clock) *Task {
	if clock == nil {
		clock = SystemClock()
	}
	return &Task{clock: clock}
}

// Schedule cancels any pending callback and runs fn after duration.
func (task *Task) Schedule(duration time.Duration, fn func()) {
	task.mu.Lock()
	defer task.mu.Unlock()

	task.stopLocked()
	task.generation++
	generation := task.generation
	task.timer = task.clock.AfterFunc(duration, func() {
		task.mu.Lock()
		if generation != task.generation {
			task.mu.Unlock()
			return
		}
		task.timer = nil
		task.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending callback, if any.
func (task *Task) Cancel() {
	task.mu.Lock()
	defer task.mu.Unlock()
	task.stopLocked()
	task.generation++
}

// Pending reports whether a callback is scheduled and has not run yet.
func (task *Task) Pending() bool {
	task.mu.Lock()
	defer task.mu.Unlock()
	return task.timer != nil
}

func (task *Task) stopLocked() {
	if task.timer != nil {
		task.timer.Stop()
		task.timer = nil
	}
}
