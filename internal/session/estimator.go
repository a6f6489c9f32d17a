package session

// windowSize is the fixed capacity of the tap window. A bounded window
// keeps the estimate responsive to tempo drift and timing jitter
// without growing memory with the number of taps.
const windowSize = 10

// Window is a fixed-capacity circular buffer of instantaneous BPM
// samples backing the rolling estimate.
//
// Once full, pushing a sample overwrites the oldest one. The zero
// value is an empty window ready for use.
type Window struct {
	samples [windowSize]float64
	count   int
	cursor  int
}

// Push records one BPM sample, evicting the oldest when the window is
// full.
func (w *Window) Push(sample float64) {
	w.samples[w.cursor] = sample
	w.cursor = (w.cursor + 1) % windowSize
	if w.count < windowSize {
		w.count++
	}
}

// Count returns how many samples are currently populated (0..10).
func (w *Window) Count() int {
	return w.count
}

// Average returns the arithmetic mean of the populated samples,
// truncated toward zero. The second return value is false while the
// window is empty.
func (w *Window) Average() (uint, bool) {
	if w.count == 0 {
		return 0, false
	}
	var sum float64
	for _, s := range w.samples[:w.count] {
		sum += s
	}
	// Truncation, not rounding: 119.9 reports as 119.
	return uint(sum / float64(w.count)), true
}

// Reset empties the window.
func (w *Window) Reset() {
	*w = Window{}
}
