package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents a movement direction on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the one-cell offset for the direction. Up decreases y.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	case DirRight:
		return core.Point{X: 1, Y: 0}
	}
	return core.Point{}
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Perpendicular reports whether d and other lie on different axes.
// Only perpendicular turns are allowed; this rules out both reversal and
// re-requesting the current direction.
func (d Direction) Perpendicular(other Direction) bool {
	return d.Vertical() != other.Vertical()
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
