package watchdog

import (
	"math/rand"
	"sync"
	"time"

	"calcfetti/internal/core/model"

	"github.com/rs/zerolog"
)

// Options contains collaborators for the Watchdog.
type Options struct {
	Clock   Clock
	Burster Burster
	Rand    *rand.Rand
	Logger  zerolog.Logger
}

// Watchdog fires a confetti burst after a quiet period and then rearms.
// Every user signal calls Reset, which pushes the next burst out by a
// freshly drawn delay.
type Watchdog struct {
	mu        sync.Mutex
	config    model.WatchdogConfig
	clock     Clock
	burster   Burster
	rng       *rand.Rand
	delays    DelayPolicy
	counts    CountPolicy
	fire      *Task
	countdown *Task
	deadline  time.Time
	cycle     uint64
	running   bool
	paused    bool
	events    []chan Event
	logger    zerolog.Logger
}

// New creates a stopped keeper. Call Start to arm it.
func New(config model.WatchdogConfig, options Options) *Watchdog {
	if options.Clock == nil {
		options.Clock = SystemClock()
	}
	if options.Burster == nil {
		options.Burster = NopBurster{}
	}
	if options.Rand == nil {
		options.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	config = normalizeConfig(config)
	return &Watchdog{
		config:    config,
		clock:     options.Clock,
		burster:   options.Burster,
		rng:       options.Rand,
		delays:    newDelayPolicy(config, options.Rand),
		counts:    newCountPolicy(config.Burst, options.Rand),
		fire:      NewTask(options.Clock),
		countdown: NewTask(options.Clock),
		logger:    options.Logger.With().Str("component", "watchdog").Logger(),
	}
}

// SetBurster swaps the renderer. A nil burster disables drawing.
func (keeper *Watchdog) SetBurster(burster Burster) {
	if burster == nil {
		burster = NopBurster{}
	}
	keeper.mu.Lock()
	keeper.burster = burster
	keeper.mu.Unlock()
}

// Subscribe registers a new observer channel.
func (keeper *Watchdog) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start arms the first quiet period.
func (keeper *Watchdog) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.running {
		return
	}
	keeper.running = true
	keeper.paused = false
	keeper.armLocked()
}

// Stop cancels pending callbacks and closes observers.
func (keeper *Watchdog) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = false
	keeper.disarmLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Reset restarts the quiet period. It is a no-op while stopped or paused.
func (keeper *Watchdog) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running || keeper.paused {
		return
	}
	keeper.armLocked()
}

// Touch is an alias of Reset so the watchdog can observe the calculator.
func (keeper *Watchdog) Touch() {
	keeper.Reset()
}

// Pause cancels the pending burst until Resume.
func (keeper *Watchdog) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running || keeper.paused {
		return
	}
	keeper.paused = true
	keeper.disarmLocked()
	keeper.emitLocked(Event{Type: EventPaused, At: keeper.clock.Now()})
}

// Resume rearms a paused watchdog with a fresh quiet period.
func (keeper *Watchdog) Resume() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running || !keeper.paused {
		return
	}
	keeper.paused = false
	keeper.emitLocked(Event{Type: EventResumed, At: keeper.clock.Now()})
	keeper.armLocked()
}

// Paused reports whether the watchdog is paused.
func (keeper *Watchdog) Paused() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.paused
}

// FireNow bursts immediately. Unless paused, the quiet period restarts.
func (keeper *Watchdog) FireNow() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.burstLocked(!keeper.paused)
}

// UpdateConfig replaces the policies and restarts the quiet period.
// An unchanged config leaves the pending burst alone.
func (keeper *Watchdog) UpdateConfig(config model.WatchdogConfig) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	config = normalizeConfig(config)
	if config == keeper.config {
		return
	}
	keeper.config = config
	keeper.delays = newDelayPolicy(config, keeper.rng)
	keeper.counts = newCountPolicy(config.Burst, keeper.rng)
	if !keeper.config.CountdownEnabled {
		keeper.countdown.Cancel()
	}
	if keeper.running && !keeper.paused {
		keeper.armLocked()
	}
}

// Deadline returns when the next burst is due, or the zero time when none is pending.
func (keeper *Watchdog) Deadline() time.Time {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.fire.Pending() {
		return time.Time{}
	}
	return keeper.deadline
}

func (keeper *Watchdog) armLocked() {
	keeper.cycle++
	cycle := keeper.cycle
	delay := keeper.delays.Next()
	now := keeper.clock.Now()
	keeper.deadline = now.Add(delay)

	keeper.fire.Schedule(delay, func() {
		keeper.onFire(cycle)
	})
	keeper.emitLocked(Event{Type: EventReset, Delay: delay, At: now})

	if !keeper.config.CountdownEnabled {
		keeper.countdown.Cancel()
		return
	}
	keeper.countdownLocked(cycle, now)
}

func (keeper *Watchdog) disarmLocked() {
	keeper.cycle++
	keeper.fire.Cancel()
	keeper.countdown.Cancel()
	keeper.deadline = time.Time{}
}

func (keeper *Watchdog) onFire(cycle uint64) {
	keeper.mu.Lock()
	if !keeper.running || keeper.paused || cycle != keeper.cycle {
		keeper.mu.Unlock()
		return
	}
	keeper.burstLocked(true)
}

// burstLocked optionally rearms, then draws outside the lock.
// It releases keeper.mu.
func (keeper *Watchdog) burstLocked(rearm bool) {
	burst := Burst{
		ParticleCount: keeper.counts.Next(),
		Spread:        keeper.config.Burst.Spread,
		Origin: Point{
			X: keeper.config.Burst.OriginX,
			Y: keeper.config.Burst.OriginY,
		},
	}
	burster := keeper.burster
	keeper.emitLocked(Event{Type: EventFire, Burst: burst, At: keeper.clock.Now()})
	if rearm {
		keeper.armLocked()
	}
	keeper.mu.Unlock()

	keeper.logger.Debug().Int("particles", burst.ParticleCount).Msg("confetti burst")
	keeper.draw(burster, burst)
}

func (keeper *Watchdog) draw(burster Burster, burst Burst) {
	defer func() {
		if recovered := recover(); recovered != nil {
			keeper.logger.Warn().Interface("panic", recovered).Msg("confetti renderer failed")
		}
	}()
	burster.Burst(burst)
}

func (keeper *Watchdog) onCountdown(cycle uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running || keeper.paused || cycle != keeper.cycle {
		return
	}
	keeper.countdownLocked(cycle, keeper.clock.Now())
}

func (keeper *Watchdog) countdownLocked(cycle uint64, now time.Time) {
	remaining := remainingSeconds(keeper.deadline, now)
	keeper.emitLocked(Event{Type: EventCountdown, Remaining: remaining, At: now})
	if remaining <= 0 {
		keeper.countdown.Cancel()
		return
	}
	keeper.countdown.Schedule(keeper.config.CountdownInterval, func() {
		keeper.onCountdown(cycle)
	})
}

func remainingSeconds(deadline, now time.Time) int {
	left := deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

func (keeper *Watchdog) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
