package machining

import (
	"reflect"
	"testing"
)

func TestEffectiveDepth(t *testing.T) {
	limits := map[float64]float64{2.0: 2.0}

	tests := []struct {
		name     string
		diameter float64
		want     float64
	}{
		{"exact limit clamps", 2.0, 2.0},
		{"no limit keeps nominal", 8.0, 19.0},
		{"within tolerance clamps", 2.05, 2.0},
		{"outside tolerance keeps nominal", 2.2, 19.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveDepth(19.0, tt.diameter, limits, 0)
			if got != tt.want {
				t.Errorf("EffectiveDepth(19, %g) = %g, want %g", tt.diameter, got, tt.want)
			}
		})
	}
}

func TestEffectiveDepthLimitAboveNominal(t *testing.T) {
	// A ceiling above the nominal depth never raises the depth.
	got := EffectiveDepth(10.0, 5.0, map[float64]float64{5.0: 15.0}, 0)
	if got != 10.0 {
		t.Errorf("EffectiveDepth() = %g, want 10", got)
	}
}

func TestEffectiveDepthNearestMatch(t *testing.T) {
	limits := map[float64]float64{2.0: 3.0, 2.2: 7.0}

	// 2.05 is closer to 2.0 than to 2.2.
	got := EffectiveDepth(19.0, 2.05, limits, 0.3)
	if got != 3.0 {
		t.Errorf("EffectiveDepth() = %g, want 3 (nearest limit)", got)
	}
}

func TestEffectiveDepthTieBreaksToSmallerDiameter(t *testing.T) {
	limits := map[float64]float64{1.9: 4.0, 2.1: 6.0}

	// Equidistant from both entries; the smaller diameter wins.
	got := EffectiveDepth(19.0, 2.0, limits, 0.15)
	if got != 4.0 {
		t.Errorf("EffectiveDepth() = %g, want 4 (tie broken to smaller diameter)", got)
	}
}

func TestEffectiveDepthNeverMutatesLimits(t *testing.T) {
	limits := map[float64]float64{2.0: 2.0, 5.0: 4.0}
	snapshot := map[float64]float64{2.0: 2.0, 5.0: 4.0}

	EffectiveDepth(19.0, 2.05, limits, 0)
	EffectiveDepth(19.0, 8.0, limits, 0)

	if !reflect.DeepEqual(limits, snapshot) {
		t.Errorf("limit table mutated: %v", limits)
	}
}

func TestEffectiveDepthEmptyLimits(t *testing.T) {
	if got := EffectiveDepth(12.0, 3.0, nil, 0); got != 12.0 {
		t.Errorf("EffectiveDepth() = %g, want 12", got)
	}
}
