package random

import "testing"

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewSeededSource(42)
	b := NewSeededSource(42)

	for i := 0; i < 1000; i++ {
		if x, y := a.IntN(2900), b.IntN(2900); x != y {
			t.Fatalf("draw %d: IntN = %d vs %d", i, x, y)
		}
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: Float64 = %v vs %v", i, x, y)
		}
	}
}

func TestScriptedSourceReplaysThenZero(t *testing.T) {
	s := NewScriptedSource([]int{3, 7}, []float64{0.25})

	if got := s.IntN(5); got != 3 {
		t.Fatalf("IntN = %d, want 3", got)
	}
	if got := s.IntN(5); got != 2 {
		t.Fatalf("IntN = %d, want 2 (7 mod 5)", got)
	}
	if got := s.IntN(5); got != 0 {
		t.Fatalf("IntN after exhaustion = %d, want 0", got)
	}
	if got := s.Float64(); got != 0.25 {
		t.Fatalf("Float64 = %v, want 0.25", got)
	}
	if got := s.Float64(); got != 0 {
		t.Fatalf("Float64 after exhaustion = %v, want 0", got)
	}
}
