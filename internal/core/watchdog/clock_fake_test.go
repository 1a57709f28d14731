package watchdog

import (
	"sort"
	"sync"
	"time"
)

type fakeTimer struct {
	clock *fakeClock
	id    int
	due   time.Time
	fn    func()
}

func (timer *fakeTimer) Stop() bool {
	return timer.clock.remove(timer.id)
}

// fakeClock runs callbacks synchronously from Advance, in due order.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	nextID int
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) AfterFunc(duration time.Duration, fn func()) Timer {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.nextID++
	timer := &fakeTimer{clock: clock, id: clock.nextID, due: clock.now.Add(duration), fn: fn}
	clock.timers = append(clock.timers, timer)
	return timer
}

func (clock *fakeClock) Advance(duration time.Duration) {
	clock.mu.Lock()
	target := clock.now.Add(duration)
	clock.mu.Unlock()

	for {
		clock.mu.Lock()
		sort.SliceStable(clock.timers, func(i, j int) bool {
			return clock.timers[i].due.Before(clock.timers[j].due)
		})
		if len(clock.timers) == 0 || clock.timers[0].due.After(target) {
			clock.now = target
			clock.mu.Unlock()
			return
		}
		timer := clock.timers[0]
		clock.timers = clock.timers[1:]
		clock.now = timer.due
		clock.mu.Unlock()

		timer.fn()
	}
}

func (clock *fakeClock) Pending() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return len(clock.timers)
}

func (clock *fakeClock) remove(id int) bool {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	for index, timer := range clock.timers {
		if timer.id == id {
			clock.timers = append(clock.timers[:index], clock.timers[index+1:]...)
			return true
		}
	}
	return false
}
