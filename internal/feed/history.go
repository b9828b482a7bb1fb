package feed

import "github.com/rileyhilliard/hdt/internal/twin"

// DefaultHistorySize is the number of readings kept for trend lines.
const DefaultHistorySize = 30

// History keeps the most recent vitals readings in a ring buffer.
// It is owned by the dashboard's update loop and is not safe for concurrent use.
type History struct {
	data  []twin.Vitals
	head  int
	count int
}

// NewHistory creates a history holding up to size readings.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{data: make([]twin.Vitals, size)}
}

// Push records a reading, evicting the oldest once full.
func (h *History) Push(v twin.Vitals) {
	h.data[h.head] = v
	h.head = (h.head + 1) % len(h.data)
	if h.count < len(h.data) {
		h.count++
	}
}

// Len returns the number of readings stored.
func (h *History) Len() int {
	return h.count
}

// Last returns up to count readings, oldest first.
func (h *History) Last(count int) []twin.Vitals {
	if count <= 0 || h.count == 0 {
		return nil
	}
	if count > h.count {
		count = h.count
	}

	size := len(h.data)
	start := (h.head - count + size) % size
	out := make([]twin.Vitals, count)
	for i := range out {
		out[i] = h.data[(start+i)%size]
	}
	return out
}

// Series extracts one field from the stored readings, oldest first.
func (h *History) Series(field func(twin.Vitals) int) []float64 {
	readings := h.Last(h.count)
	out := make([]float64, len(readings))
	for i, v := range readings {
		out[i] = float64(field(v))
	}
	return out
}

// Field selectors for Series.
var (
	HeartRate = func(v twin.Vitals) int { return v.HeartRate }
	Systolic  = func(v twin.Vitals) int { return v.Systolic }
	Diastolic = func(v twin.Vitals) int { return v.Diastolic }
	SpO2      = func(v twin.Vitals) int { return v.SpO2 }
)
