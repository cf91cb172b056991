package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var testGrid = Grid{Width: 50, Height: 40}

func newTestSnake(x, y int) *Snake {
	return NewSnake(testGrid, core.Point{X: x, Y: y}, 100, DefaultSpeedRamp)
}

func TestTickThrottle(t *testing.T) {
	s := newTestSnake(8, 8)

	if r := s.Tick(0); r != TickMoved {
		t.Fatalf("Tick(0) = %v, expected moved", r)
	}
	if s.Head() != (core.Point{X: 9, Y: 8}) {
		t.Errorf("head = %+v, expected (9,8)", s.Head())
	}
	if s.Direction() != DirRight {
		t.Errorf("direction = %v, expected right", s.Direction())
	}
	if s.NextMoveTime() != 100 {
		t.Errorf("nextMoveTime = %d, expected 100", s.NextMoveTime())
	}

	if r := s.Tick(50); r != TickBlocked {
		t.Errorf("Tick(50) = %v, expected blocked", r)
	}
	if r := s.Tick(100); r != TickBlocked {
		t.Errorf("Tick(100) = %v, expected blocked (gate is inclusive)", r)
	}
	if s.Head() != (core.Point{X: 9, Y: 8}) {
		t.Errorf("blocked tick moved the head to %+v", s.Head())
	}

	if r := s.Tick(150); r != TickMoved {
		t.Errorf("Tick(150) = %v, expected moved", r)
	}
	if s.Head() != (core.Point{X: 10, Y: 8}) {
		t.Errorf("head = %+v, expected (10,8)", s.Head())
	}
	if s.NextMoveTime() != 250 {
		t.Errorf("nextMoveTime = %d, expected 250", s.NextMoveTime())
	}
}

func TestTickWrapsAtEdges(t *testing.T) {
	tests := []struct {
		name     string
		start    core.Point
		moved    Direction // direction of a setup move, perpendicular to turn
		turn     Direction
		expected core.Point
	}{
		{"right edge", core.Point{X: 49, Y: 8}, DirRight, DirRight, core.Point{X: 0, Y: 8}},
		{"left edge", core.Point{X: 0, Y: 8}, DirUp, DirLeft, core.Point{X: 49, Y: 8}},
		{"top edge", core.Point{X: 8, Y: 0}, DirRight, DirUp, core.Point{X: 8, Y: 39}},
		{"bottom edge", core.Point{X: 8, Y: 39}, DirRight, DirDown, core.Point{X: 8, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSnake(tc.start.X, tc.start.Y)
			s.direction = tc.moved
			s.heading = tc.moved
			s.SetHeading(tc.turn)

			if r := s.Tick(0); r != TickMoved {
				t.Fatalf("Tick = %v, expected moved", r)
			}
			if s.Head() != tc.expected {
				t.Errorf("head = %+v, expected %+v", s.Head(), tc.expected)
			}
		})
	}
}

func TestSetHeadingOnlyPerpendicular(t *testing.T) {
	s := newTestSnake(8, 8) // moving right

	s.FaceLeft()
	if s.Heading() != DirRight {
		t.Errorf("reversal accepted: heading = %v", s.Heading())
	}

	if s.SetHeading(DirRight) {
		t.Error("re-requesting the current direction should be ignored")
	}

	s.FaceUp()
	if s.Heading() != DirUp {
		t.Errorf("heading = %v, expected up", s.Heading())
	}

	// Still moving right, so down is perpendicular too and replaces up.
	s.FaceDown()
	if s.Heading() != DirDown {
		t.Errorf("heading = %v, expected down", s.Heading())
	}

	s.Tick(0)
	if s.Direction() != DirDown {
		t.Fatalf("direction = %v, expected down", s.Direction())
	}

	s.FaceUp()
	if s.Heading() != DirDown {
		t.Errorf("reversal accepted after move: heading = %v", s.Heading())
	}
	s.FaceRight()
	if s.Heading() != DirRight {
		t.Errorf("heading = %v, expected right", s.Heading())
	}
}

func TestNeverReversesProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := newTestSnake(25, 20)
	s.segments = append(s.segments, core.Point{X: 24, Y: 20}, core.Point{X: 23, Y: 20})
	turns := []func(){s.FaceLeft, s.FaceRight, s.FaceUp, s.FaceDown}

	prev := s.Direction()
	for now := int64(0); now < 5000; now += 100 {
		turns[rng.Intn(len(turns))]()
		if s.Heading() != prev && !s.Heading().Perpendicular(prev) {
			t.Fatalf("heading %v is parallel to direction %v", s.Heading(), prev)
		}
		if s.Tick(now) != TickMoved {
			break
		}
		prev = s.Direction()

		for _, seg := range s.Segments() {
			if !testGrid.Contains(seg) {
				t.Fatalf("segment %+v left the grid", seg)
			}
		}
	}
}

func TestGrowAppendsVacatedTail(t *testing.T) {
	s := newTestSnake(10, 10)
	s.segments = []core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	preTail := s.segments[2]

	s.Tick(0)
	food := NewFood(s.Head())

	if !s.CollidedWithFood(food) {
		t.Fatal("expected the head to hit the food")
	}
	if s.Len() != 4 {
		t.Errorf("len = %d, expected 4", s.Len())
	}
	if got := s.Segments()[3]; got != preTail {
		t.Errorf("new segment = %+v, expected pre-tick tail %+v", got, preTail)
	}
}

func TestEatLengthOneSnake(t *testing.T) {
	s := newTestSnake(5, 5)
	food := NewFood(core.Point{X: 5, Y: 5})

	if !s.CollidedWithFood(food) {
		t.Fatal("CollidedWithFood() = false, expected true")
	}
	if s.Len() != 2 {
		t.Errorf("len = %d, expected 2", s.Len())
	}
	// No move yet, so the tail slot is the spawn cell.
	if got := s.Segments()[1]; got != (core.Point{X: 5, Y: 5}) {
		t.Errorf("grown segment = %+v, expected (5,5)", got)
	}
	if food.EatenCount() != 1 {
		t.Errorf("eaten = %d, expected 1", food.EatenCount())
	}
	if s.Speed() != 100 {
		t.Errorf("speed = %d, expected 100", s.Speed())
	}

	// The overlapping segment peels off on the next move without killing the snake.
	if r := s.Tick(0); r != TickMoved {
		t.Errorf("Tick = %v, expected moved", r)
	}
}

func TestMissFood(t *testing.T) {
	s := newTestSnake(5, 5)
	food := NewFood(core.Point{X: 6, Y: 5})

	if s.CollidedWithFood(food) {
		t.Error("CollidedWithFood() = true for a different cell")
	}
	if s.Len() != 1 || food.EatenCount() != 0 {
		t.Error("a miss must not change the snake or the food")
	}
}

func TestSpeedRamp(t *testing.T) {
	s := newTestSnake(5, 5)
	food := NewFood(s.Head())

	for i := 1; i <= 4; i++ {
		s.CollidedWithFood(food)
		if s.Speed() != 100 {
			t.Fatalf("speed changed to %d after %d foods", s.Speed(), i)
		}
	}

	s.CollidedWithFood(food)
	if s.Speed() != 95 {
		t.Errorf("speed = %d after 5 foods, expected 95", s.Speed())
	}
}

func TestSpeedFloor(t *testing.T) {
	s := newTestSnake(5, 5)
	food := NewFood(s.Head())

	for i := 0; i < 500; i++ {
		s.CollidedWithFood(food)
		if s.Speed() < 20 {
			t.Fatalf("speed dropped to %d after %d foods", s.Speed(), food.EatenCount())
		}
	}
	if s.Speed() != 20 {
		t.Errorf("speed = %d, expected to settle at 20", s.Speed())
	}
}

func TestSpeedRampChecksEntryNotResult(t *testing.T) {
	s := NewSnake(testGrid, core.Point{X: 5, Y: 5}, 24, DefaultSpeedRamp)
	food := NewFood(s.Head())
	food.eaten = 4

	s.CollidedWithFood(food)
	if s.Speed() != 19 {
		t.Errorf("speed = %d, expected 19 (24 is above the floor, so 5 is subtracted)", s.Speed())
	}

	food.eaten = 9
	s.CollidedWithFood(food)
	if s.Speed() != 19 {
		t.Errorf("speed = %d, expected ramp to stop below the floor", s.Speed())
	}
}

func TestSelfCollision(t *testing.T) {
	s := newTestSnake(5, 5)
	s.segments = []core.Point{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	s.direction = DirUp
	s.heading = DirUp
	s.FaceRight()

	if r := s.Tick(0); r != TickDied {
		t.Fatalf("Tick = %v, expected died", r)
	}
	if s.Alive() {
		t.Fatal("snake should be dead")
	}
	// The fatal move is still applied.
	if s.Head() != (core.Point{X: 6, Y: 5}) {
		t.Errorf("head = %+v, expected (6,5)", s.Head())
	}

	before := s.Segments()
	for now := int64(1000); now < 5000; now += 1000 {
		if r := s.Tick(now); r != TickDied {
			t.Errorf("Tick after death = %v, expected died", r)
		}
	}
	if s.Alive() {
		t.Error("death must be permanent")
	}
	for i, seg := range s.Segments() {
		if seg != before[i] {
			t.Fatalf("dead snake moved: %+v -> %+v", before, s.Segments())
		}
	}
}

func TestChasingTailIsSafe(t *testing.T) {
	s := newTestSnake(1, 1)
	s.segments = []core.Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}}
	s.direction = DirUp
	s.heading = DirUp
	s.FaceRight() // into the cell the tail leaves

	if r := s.Tick(0); r != TickMoved {
		t.Errorf("Tick = %v, expected moved", r)
	}
	if !s.Alive() {
		t.Error("entering the vacated tail cell should not kill the snake")
	}
}

func TestOccupiedCells(t *testing.T) {
	s := newTestSnake(3, 3)
	s.segments = []core.Point{{X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}}

	cells := s.OccupiedCells()
	if len(cells) != 3 {
		t.Fatalf("len = %d, expected 3", len(cells))
	}
	for _, seg := range s.segments {
		if _, ok := cells[seg]; !ok {
			t.Errorf("missing %+v", seg)
		}
	}

	// Segments returns a copy
	segs := s.Segments()
	segs[0] = core.Point{X: 40, Y: 30}
	if s.Head() != (core.Point{X: 3, Y: 3}) {
		t.Error("Segments() must not alias the body")
	}
}

func TestTickResultString(t *testing.T) {
	if TickMoved.String() != "moved" || TickBlocked.String() != "blocked" || TickDied.String() != "died" {
		t.Error("unexpected TickResult names")
	}
}
