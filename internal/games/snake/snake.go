package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// TickResult reports what a call to Snake.Tick did.
type TickResult int

const (
	// TickBlocked means the move interval has not elapsed; nothing changed.
	TickBlocked TickResult = iota
	// TickMoved means the snake advanced one cell.
	TickMoved
	// TickDied means the snake advanced into its own body, or was already dead.
	TickDied
)

func (r TickResult) String() string {
	switch r {
	case TickBlocked:
		return "blocked"
	case TickMoved:
		return "moved"
	case TickDied:
		return "died"
	default:
		return "unknown"
	}
}

// SpeedRamp controls how the move interval shrinks as food is eaten.
// The interval drops by Step on every Every-th food, but only while it is
// still above Floor. The guard is checked before subtracting, so an interval
// of Floor+4 with Step 5 ends at Floor-1.
type SpeedRamp struct {
	Floor int
	Step  int
	Every int
}

// DefaultSpeedRamp is 5ms faster every 5 foods, down to 20ms.
var DefaultSpeedRamp = SpeedRamp{Floor: 20, Step: 5, Every: 5}

// Snake is the player-controlled body.
// Segment 0 is the head; each move shifts every segment into its predecessor's cell.
type Snake struct {
	grid     Grid
	segments []core.Point
	tailSlot core.Point // Cell vacated by the last segment on the latest move

	heading   Direction // Requested direction, applied on the next move
	direction Direction // Direction of the latest move

	speed        int   // Milliseconds between moves
	ramp         SpeedRamp
	nextMoveTime int64 // Ticks at or before this time are blocked
	alive        bool
}

// NewSnake creates a length-1 snake at start, facing right.
// The first Tick moves it regardless of the clock value.
func NewSnake(grid Grid, start core.Point, speed int, ramp SpeedRamp) *Snake {
	start = grid.Wrap(start)
	return &Snake{
		grid:         grid,
		segments:     []core.Point{start},
		tailSlot:     start,
		heading:      DirRight,
		direction:    DirRight,
		speed:        speed,
		ramp:         ramp,
		nextMoveTime: -1,
		alive:        true,
	}
}

// SetHeading requests a turn for the next move. Only turns perpendicular to
// the last moved direction are accepted; anything else is ignored.
// Reports whether the heading was updated.
func (s *Snake) SetHeading(d Direction) bool {
	if !d.Perpendicular(s.direction) {
		return false
	}
	s.heading = d
	return true
}

// FaceLeft requests a left turn.
func (s *Snake) FaceLeft() { s.SetHeading(DirLeft) }

// FaceRight requests a right turn.
func (s *Snake) FaceRight() { s.SetHeading(DirRight) }

// FaceUp requests an upward turn.
func (s *Snake) FaceUp() { s.SetHeading(DirUp) }

// FaceDown requests a downward turn.
func (s *Snake) FaceDown() { s.SetHeading(DirDown) }

// Tick advances the snake one cell if now is past the next move time.
// Death is detected after the move is applied, so a dead snake's head
// overlaps the segment it ran into. A dead snake never moves again.
func (s *Snake) Tick(now int64) TickResult {
	if !s.alive {
		return TickDied
	}
	if now <= s.nextMoveTime {
		return TickBlocked
	}

	s.direction = s.heading
	head := s.grid.Wrap(s.segments[0].Add(s.direction.Delta()))

	last := len(s.segments) - 1
	s.tailSlot = s.segments[last]
	copy(s.segments[1:], s.segments[:last])
	s.segments[0] = head

	for _, seg := range s.segments[1:] {
		if seg == head {
			s.alive = false
			return TickDied
		}
	}

	s.nextMoveTime = now + int64(s.speed)
	return TickMoved
}

// Grow appends a segment in the cell the tail vacated on the latest move.
func (s *Snake) Grow() {
	s.segments = append(s.segments, s.tailSlot)
}

// CollidedWithFood eats food if the head is on it: the snake grows, the
// food's eaten count goes up, and the speed ramp is applied.
func (s *Snake) CollidedWithFood(food *Food) bool {
	if s.segments[0] != food.Position() {
		return false
	}

	s.Grow()
	food.Consume()

	if s.speed > s.ramp.Floor && s.ramp.Every > 0 && food.EatenCount()%s.ramp.Every == 0 {
		s.speed -= s.ramp.Step
	}
	return true
}

// OccupiedCells returns the set of cells covered by the body.
func (s *Snake) OccupiedCells() map[core.Point]struct{} {
	cells := make(map[core.Point]struct{}, len(s.segments))
	for _, seg := range s.segments {
		cells[seg] = struct{}{}
	}
	return cells
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []core.Point {
	out := make([]core.Point, len(s.segments))
	copy(out, s.segments)
	return out
}

// Head returns the head cell.
func (s *Snake) Head() core.Point { return s.segments[0] }

// Len returns the number of segments.
func (s *Snake) Len() int { return len(s.segments) }

// Alive reports whether the snake has not run into itself.
func (s *Snake) Alive() bool { return s.alive }

// Speed returns the current move interval in milliseconds.
func (s *Snake) Speed() int { return s.speed }

// NextMoveTime returns the clock value ticks must exceed to move.
func (s *Snake) NextMoveTime() int64 { return s.nextMoveTime }

// Heading returns the requested direction for the next move.
func (s *Snake) Heading() Direction { return s.heading }

// Direction returns the direction of the latest move.
func (s *Snake) Direction() Direction { return s.direction }
