package dashboard

import (
	"strings"

	"github.com/rileyhilliard/hdt/internal/feed"
)

// sparklineBlocks are block characters for 8-level vertical resolution (lowest to highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// maxSparklineWidth keeps trends compact inside the vitals banner.
const maxSparklineWidth = 16

// renderSparkline draws data as a single row of block characters scaled to
// the feed bounds, so a flat line means the vital sat at one value.
func renderSparkline(data []float64, bounds feed.Bounds, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) < width {
		width = len(data)
	}

	var b strings.Builder
	for _, v := range resample(data, width) {
		idx := int(normalize(v, float64(bounds.Min), float64(bounds.Max)) * float64(len(sparklineBlocks)-1))
		b.WriteRune(sparklineBlocks[clampInt(idx, len(sparklineBlocks)-1)])
	}
	return b.String()
}

func normalize(v, lo, hi float64) float64 {
	if hi > lo {
		return (v - lo) / (hi - lo)
	}
	return 0.5
}

func clampInt(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// resample compresses data to size points, keeping the peak of each bucket.
// Callers never ask for more points than they have.
func resample(data []float64, size int) []float64 {
	if len(data) <= size {
		return data
	}

	out := make([]float64, size)
	bucket := float64(len(data)) / float64(size)
	for i := range out {
		start := int(float64(i) * bucket)
		end := int(float64(i+1) * bucket)
		if end > len(data) {
			end = len(data)
		}
		if start >= end {
			start = end - 1
		}

		peak := data[start]
		for _, v := range data[start+1 : end] {
			if v > peak {
				peak = v
			}
		}
		out[i] = peak
	}
	return out
}
