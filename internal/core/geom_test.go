package core

import "testing"

func TestMod(t *testing.T) {
	tests := []struct {
		name     string
		a, n     int
		expected int
	}{
		{"in range", 7, 50, 7},
		{"zero", 0, 50, 0},
		{"exact bound wraps to zero", 50, 50, 0},
		{"past bound", 51, 50, 1},
		{"minus one wraps high", -1, 50, 49},
		{"far negative", -41, 40, 39},
		{"multiple negative laps", -100, 50, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Mod(tc.a, tc.n); got != tc.expected {
				t.Errorf("Mod(%d, %d) = %d, expected %d", tc.a, tc.n, got, tc.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 4}.Add(Point{X: -1, Y: 2})
	if p != (Point{X: 2, Y: 6}) {
		t.Errorf("Add() = %+v, expected {2 6}", p)
	}
}
