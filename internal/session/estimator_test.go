package session

import "testing"

func TestWindow_EmptyHasNoAverage(t *testing.T) {
	var w Window
	if _, ok := w.Average(); ok {
		t.Error("fresh window should have no average")
	}
	if w.Count() != 0 {
		t.Errorf("fresh window count = %d, want 0", w.Count())
	}
}

func TestWindow_AverageIsTruncatedMean(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    uint
	}{
		{"single sample", []float64{120}, 120},
		{"exact mean", []float64{100, 120, 140}, 120},
		{"mean truncates toward zero", []float64{1, 2, 2}, 1}, // 5/3 = 1.66
		{"fractional samples truncate", []float64{119.9}, 119},
		{"just below next integer", []float64{120, 121}, 120}, // 120.5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w Window
			for _, s := range tt.samples {
				w.Push(s)
			}
			got, ok := w.Average()
			if !ok {
				t.Fatal("Average() reported no value")
			}
			if got != tt.want {
				t.Errorf("Average() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWindow_OverwritesOldestPastCapacity(t *testing.T) {
	var w Window
	for i := 1; i <= 15; i++ {
		w.Push(float64(i))
	}

	if w.Count() != windowSize {
		t.Fatalf("Count() = %d, want %d", w.Count(), windowSize)
	}

	// Only 6..15 survive; their mean is 10.5, truncated to 10.
	got, ok := w.Average()
	if !ok {
		t.Fatal("Average() reported no value")
	}
	if got != 10 {
		t.Errorf("Average() = %d, want mean of the most recent 10 samples (10)", got)
	}
}

func TestWindow_Reset(t *testing.T) {
	var w Window
	w.Push(120)
	w.Reset()

	if _, ok := w.Average(); ok {
		t.Error("reset window should have no average")
	}
	if w.Count() != 0 {
		t.Errorf("reset window count = %d, want 0", w.Count())
	}
}
