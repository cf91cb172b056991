package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected core.Point
	}{
		{DirUp, core.Point{X: 0, Y: -1}},
		{DirDown, core.Point{X: 0, Y: 1}},
		{DirLeft, core.Point{X: -1, Y: 0}},
		{DirRight, core.Point{X: 1, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Delta(); got != tc.expected {
				t.Errorf("Delta() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestDirectionPerpendicular(t *testing.T) {
	all := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for _, a := range all {
		for _, b := range all {
			expected := a.Vertical() != b.Vertical()
			if got := a.Perpendicular(b); got != expected {
				t.Errorf("%v.Perpendicular(%v) = %v, expected %v", a, b, got, expected)
			}
		}
	}

	if DirLeft.Perpendicular(DirRight) {
		t.Error("opposite directions must not be perpendicular")
	}
	if !DirLeft.Perpendicular(DirUp) {
		t.Error("left and up must be perpendicular")
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 50, Height: 40}

	tests := []struct {
		in, expected core.Point
	}{
		{core.Point{X: -1, Y: 8}, core.Point{X: 49, Y: 8}},
		{core.Point{X: 50, Y: 8}, core.Point{X: 0, Y: 8}},
		{core.Point{X: 8, Y: -1}, core.Point{X: 8, Y: 39}},
		{core.Point{X: 8, Y: 40}, core.Point{X: 8, Y: 0}},
		{core.Point{X: 12, Y: 30}, core.Point{X: 12, Y: 30}},
	}

	for _, tc := range tests {
		if got := g.Wrap(tc.in); got != tc.expected {
			t.Errorf("Wrap(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
		}
	}

	if g.Size() != 2000 {
		t.Errorf("Size() = %d, expected 2000", g.Size())
	}
}
