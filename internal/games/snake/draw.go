package snake

import "fmt"

// TileKind identifies what a draw command paints.
type TileKind int

const (
	TileFood TileKind = iota
	TileBody
	TileHead
)

// DrawCommand is one square tile in pixel space.
type DrawCommand struct {
	Kind TileKind
	X, Y int // Top-left corner in pixels
	Size int // Edge length in pixels
}

// Frame is everything a pixel renderer needs to draw one view.
type Frame struct {
	Width, Height int // Viewport size in pixels
	Tiles         []DrawCommand
	Message       string // Non-empty once the game is over
}

// GameOverMessage is the text shown when the snake dies.
func GameOverMessage(score int) string {
	return fmt.Sprintf("Game Over! Score: %d", score)
}

// Draw turns a view into draw commands, each tile at coord*tileSize.
// Food is emitted first and the head last, so the head is painted on top.
func Draw(v View, tileSize int) Frame {
	f := Frame{
		Width:  v.Grid.Width * tileSize,
		Height: v.Grid.Height * tileSize,
		Tiles:  make([]DrawCommand, 0, len(v.Segments)+1),
	}

	f.Tiles = append(f.Tiles, DrawCommand{Kind: TileFood, X: v.Food.X * tileSize, Y: v.Food.Y * tileSize, Size: tileSize})

	for i := len(v.Segments) - 1; i >= 0; i-- {
		kind := TileBody
		if i == 0 {
			kind = TileHead
		}
		seg := v.Segments[i]
		f.Tiles = append(f.Tiles, DrawCommand{Kind: kind, X: seg.X * tileSize, Y: seg.Y * tileSize, Size: tileSize})
	}

	if !v.Alive {
		f.Message = GameOverMessage(v.Score)
	}
	return f
}
