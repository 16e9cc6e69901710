// internal/utils/prng_test.go
package utils

import "testing"

func TestSeededStreamsMatch(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same seed must give the same stream (draw %d)", i)
		}
	}
}

func TestIntRangeInclusive(t *testing.T) {
	rng := NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := rng.IntRange(-2, 2)
		if v < -2 || v > 2 {
			t.Fatalf("value %d outside [-2, 2]", v)
		}
		seen[v] = true
	}
	for v := -2; v <= 2; v++ {
		if !seen[v] {
			t.Fatalf("value %d never drawn in 1000 tries", v)
		}
	}
}

func TestIntRangeDegenerate(t *testing.T) {
	rng := NewPRNGService(7)
	if v := rng.IntRange(3, 3); v != 3 {
		t.Fatalf("min==max must return min, got %d", v)
	}
	if v := rng.IntRange(5, 2); v != 5 {
		t.Fatalf("max<min must return min, got %d", v)
	}
}

func TestFloatRangeBounds(t *testing.T) {
	rng := NewPRNGService(11)
	for i := 0; i < 1000; i++ {
		v := rng.FloatRange(0.05, 0.85)
		if v < 0.05 || v >= 0.85 {
			t.Fatalf("value %v outside [0.05, 0.85)", v)
		}
	}
}

func TestChanceExtremes(t *testing.T) {
	rng := NewPRNGService(13)
	for i := 0; i < 100; i++ {
		if rng.Chance(0) {
			t.Fatalf("probability 0 must never fire")
		}
		if !rng.Chance(1) {
			t.Fatalf("probability 1 must always fire")
		}
	}
}
