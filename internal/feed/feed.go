// Package feed simulates liveness for the dashboard's vital signs.
//
// Jitter draws fresh vitals within fixed bounds and is a pure function of its
// random source. Handle is the refresh timer: Start acquires it, Stop releases
// it, and after Stop returns no further tick is delivered. History keeps recent
// readings for the trend lines.
package feed

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rileyhilliard/hdt/internal/logger"
	"github.com/rileyhilliard/hdt/internal/twin"
)

// DefaultInterval is the refresh cadence of the vitals.
const DefaultInterval = 2 * time.Second

// MinInterval is the fastest cadence the feed accepts.
const MinInterval = 100 * time.Millisecond

// Bounds is an inclusive integer range.
type Bounds struct {
	Min int
	Max int
}

// Contains reports whether v lies within the bounds.
func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

func (b Bounds) draw(r *rand.Rand) int {
	return b.Min + r.IntN(b.Max-b.Min+1)
}

// Bounds for each refreshed vital.
var (
	HeartRateBounds = Bounds{Min: 70, Max: 79}
	SystolicBounds  = Bounds{Min: 118, Max: 122}
	DiastolicBounds = Bounds{Min: 78, Max: 82}
	SpO2Bounds      = Bounds{Min: 97, Max: 98}
)

// Jitter produces the next vitals reading.
type Jitter struct {
	rng *rand.Rand
}

// NewJitter creates a Jitter drawing from src. A nil src seeds from the runtime.
func NewJitter(src rand.Source) *Jitter {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Jitter{rng: rand.New(src)}
}

// Next returns v with heart rate, systolic, diastolic, and SpO2 redrawn
// uniformly within their bounds. Temperature is carried over unchanged.
func (j *Jitter) Next(v twin.Vitals) twin.Vitals {
	v.HeartRate = HeartRateBounds.draw(j.rng)
	v.Systolic = SystolicBounds.draw(j.rng)
	v.Diastolic = DiastolicBounds.draw(j.rng)
	v.SpO2 = SpO2Bounds.draw(j.rng)
	return v
}

// Handle owns a running refresh timer.
type Handle struct {
	interval time.Duration
	ticks    chan time.Time
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	fired    atomic.Int64
	log      logger.Logger
}

// Start launches a timer that ticks every interval until Stop is called.
// Intervals below MinInterval are raised to MinInterval.
func Start(interval time.Duration, log logger.Logger) *Handle {
	if interval < MinInterval {
		interval = MinInterval
	}
	if log == nil {
		log = logger.Noop()
	}

	h := &Handle{
		interval: interval,
		// One slot: a slow reader sees the latest tick, never a backlog.
		ticks: make(chan time.Time, 1),
		done:  make(chan struct{}),
		log:   log,
	}
	h.running.Store(true)
	h.wg.Add(1)
	go h.run(time.NewTicker(interval))

	log.Debug("feed started, interval %s", interval)
	return h
}

func (h *Handle) run(t *time.Ticker) {
	defer func() {
		t.Stop()
		// Discard an undelivered tick so nothing reaches the reader after Stop.
		select {
		case <-h.ticks:
		default:
		}
		close(h.ticks)
		h.wg.Done()
	}()

	for {
		select {
		case <-h.done:
			return
		case now := <-t.C:
			select {
			case h.ticks <- now:
				h.fired.Add(1)
			case <-h.done:
				return
			default:
				// reader is behind; drop this tick
			}
		}
	}
}

// C returns the tick channel. It is closed once the handle is stopped.
func (h *Handle) C() <-chan time.Time {
	return h.ticks
}

// Interval returns the cadence of the timer.
func (h *Handle) Interval() time.Duration {
	return h.interval
}

// Fired returns how many ticks have been delivered to the channel.
func (h *Handle) Fired() int64 {
	return h.fired.Load()
}

// Pending returns the number of scheduled callbacks still outstanding:
// one while the timer runs, zero once it has been stopped.
func (h *Handle) Pending() int {
	if h.running.Load() {
		return 1
	}
	return 0
}

// Stop releases the timer and waits for its goroutine to exit.
// Safe to call more than once and from any goroutine.
func (h *Handle) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.wg.Wait()
		h.running.Store(false)
		h.log.Debug("feed stopped after %d ticks", h.fired.Load())
	})
}
