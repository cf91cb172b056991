package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDrawPixelCoordinates(t *testing.T) {
	v := View{
		Grid:     Grid{Width: 50, Height: 40},
		Segments: []core.Point{{X: 10, Y: 5}, {X: 9, Y: 5}, {X: 8, Y: 5}},
		Food:     core.Point{X: 3, Y: 4},
		Alive:    true,
	}

	f := Draw(v, 16)

	if f.Width != 800 || f.Height != 640 {
		t.Errorf("viewport = %dx%d, expected 800x640", f.Width, f.Height)
	}
	if f.Message != "" {
		t.Errorf("message = %q while alive", f.Message)
	}

	expected := []DrawCommand{
		{Kind: TileFood, X: 48, Y: 64, Size: 16},
		{Kind: TileBody, X: 128, Y: 80, Size: 16},
		{Kind: TileBody, X: 144, Y: 80, Size: 16},
		{Kind: TileHead, X: 160, Y: 80, Size: 16},
	}
	if len(f.Tiles) != len(expected) {
		t.Fatalf("got %d tiles, expected %d", len(f.Tiles), len(expected))
	}
	for i, cmd := range expected {
		if f.Tiles[i] != cmd {
			t.Errorf("tile %d = %+v, expected %+v", i, f.Tiles[i], cmd)
		}
	}
}

func TestDrawGameOver(t *testing.T) {
	v := View{
		Grid:     Grid{Width: 50, Height: 40},
		Segments: []core.Point{{X: 0, Y: 0}},
		Score:    7,
		Alive:    false,
	}

	f := Draw(v, 16)
	if f.Message != "Game Over! Score: 7" {
		t.Errorf("message = %q", f.Message)
	}
	if f.Tiles[len(f.Tiles)-1].Kind != TileHead {
		t.Error("the head should still be drawn after death")
	}
}

func TestDrawIsPure(t *testing.T) {
	s := newTestSession(1)
	v := s.View()

	a := Draw(v, 16)
	b := Draw(v, 16)
	if len(a.Tiles) != len(b.Tiles) {
		t.Fatal("Draw returned different results for the same view")
	}
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Errorf("tile %d differs between calls", i)
		}
	}
	if s.Snake.Len() != 1 || s.Score() != 0 {
		t.Error("Draw must not touch the session")
	}
}
