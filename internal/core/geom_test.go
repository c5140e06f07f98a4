package core

import (
	"math"
	"testing"
)

func TestNormalizeZeroVector(t *testing.T) {
	v := Vec2{}.Normalize()
	if !v.IsZero() {
		t.Errorf("Normalize() of zero vector = %+v, expected zero vector", v)
	}
}

func TestNormalizeLength(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
	}{
		{"unit x", Vec2{1, 0}},
		{"diagonal", Vec2{3, 4}},
		{"negative", Vec2{-7, 2}},
		{"tiny", Vec2{0.001, -0.002}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Normalize().Len()
			if math.Abs(got-1) > 1e-12 {
				t.Errorf("Normalize().Len() = %v, expected 1", got)
			}
		})
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"zero", 0, 0},
		{"pi stays", math.Pi, math.Pi},
		{"negative pi wraps up", -math.Pi, math.Pi},
		{"just over pi", math.Pi + 0.5, -math.Pi + 0.5},
		{"two full turns", 4 * math.Pi, 0},
		{"large negative", -7 * math.Pi, math.Pi},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := WrapAngle(tc.in)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("WrapAngle(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestAngleDeltaShortestPath(t *testing.T) {
	// Crossing the branch cut must take the short way around.
	d := AngleDelta(3, -3)
	if d < 0 {
		t.Errorf("AngleDelta(3, -3) = %v, expected positive (short way across the cut)", d)
	}
	if math.Abs(d-(2*math.Pi-6)) > 1e-9 {
		t.Errorf("AngleDelta(3, -3) = %v, expected %v", d, 2*math.Pi-6)
	}
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b     int
		div, mod int
	}{
		{10, 16, 0, 10},
		{16, 16, 1, 0},
		{-1, 16, -1, 15},
		{-16, 16, -1, 0},
		{-17, 16, -2, 15},
		{31, 16, 1, 15},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.a, tc.b); got != tc.div {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.div)
		}
		if got := FloorMod(tc.a, tc.b); got != tc.mod {
			t.Errorf("FloorMod(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.mod)
		}
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"normal frame", 0.016, 0.016},
		{"stalled frame capped", 1.5, MaxFrameDelta},
		{"negative collapses", -0.5, 0},
		{"nan collapses", math.NaN(), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampDelta(tc.in); got != tc.expected {
				t.Errorf("ClampDelta(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"separate", NewRect(0, 0, 10, 10), NewRect(20, 0, 10, 10), false},
		{"edge adjacent", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
