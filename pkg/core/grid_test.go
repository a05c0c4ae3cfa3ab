package core

import (
	"errors"
	"testing"
)

// walledGrid 只有外圈墙的测试地图
func walledGrid(t *testing.T, width, height int, spawns ...GridPos) *Grid {
	t.Helper()
	g, err := NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", width, height, err)
	}
	for pos := range g.Positions() {
		if g.IsEdge(pos) {
			g.SetTile(pos, SolidWallTile())
		}
	}
	g.SetSpawnPoints(spawns)
	return g
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, -1}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) err = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestGridContains(t *testing.T) {
	g, _ := NewGrid(4, 3)
	for x := -2; x <= 5; x++ {
		for y := -2; y <= 4; y++ {
			want := x >= 0 && x < 4 && y >= 0 && y < 3
			if got := g.Contains(GridPos{GridX: x, GridY: y}); got != want {
				t.Errorf("Contains(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestGridEdgeCount(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {3, 3}, {5, 4}, {19, 13}} {
		w, h := dims[0], dims[1]
		g, _ := NewGrid(w, h)
		edges := 0
		for pos := range g.Positions() {
			if g.IsEdge(pos) {
				edges++
			}
		}
		if want := 2*w + 2*h - 4; edges != want {
			t.Errorf("%dx%d: %d edge cells, want %d", w, h, edges, want)
		}
	}
}

func TestCoordFromPosition(t *testing.T) {
	g, _ := NewGrid(4, 3)
	tests := []struct {
		pos  Vec2
		want GridPos
		ok   bool
	}{
		{Vec2{X: 0, Y: 0}, GridPos{GridX: 0, GridY: 0}, true},
		{Vec2{X: 0.49, Y: 0.5}, GridPos{GridX: 0, GridY: 1}, true},
		{Vec2{X: 2.6, Y: 1.4}, GridPos{GridX: 3, GridY: 1}, true},
		{Vec2{X: -0.4, Y: 0}, GridPos{GridX: 0, GridY: 0}, true},
		{Vec2{X: -0.6, Y: 0}, GridPos{}, false},
		{Vec2{X: 3.5, Y: 0}, GridPos{}, false},
		{Vec2{X: 1, Y: 2.5}, GridPos{}, false},
	}
	for _, tt := range tests {
		got, ok := g.CoordFromPosition(tt.pos)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("CoordFromPosition(%v) = %v, %v; want %v, %v", tt.pos, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPositionsColumnMajor(t *testing.T) {
	g, _ := NewGrid(2, 3)
	want := []GridPos{
		{GridX: 0, GridY: 0}, {GridX: 0, GridY: 1}, {GridX: 0, GridY: 2},
		{GridX: 1, GridY: 0}, {GridX: 1, GridY: 1}, {GridX: 1, GridY: 2},
	}

	// 可以重复遍历
	for round := 0; round < 2; round++ {
		var got []GridPos
		for pos := range g.Positions() {
			got = append(got, pos)
		}
		if len(got) != len(want) {
			t.Fatalf("round %d: %d positions, want %d", round, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("round %d: position %d = %v, want %v", round, i, got[i], want[i])
			}
		}
	}

	n := 0
	for range g.Positions() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("early break visited %d positions", n)
	}
}

func TestTileAtOutOfBounds(t *testing.T) {
	g, _ := NewGrid(3, 3)
	if _, ok := g.TileAt(GridPos{GridX: 3, GridY: 0}); ok {
		t.Error("TileAt outside the grid should report false")
	}
	if g.SetTile(GridPos{GridX: -1, GridY: 0}, SolidWallTile()) {
		t.Error("SetTile outside the grid should report false")
	}
}

func TestSetTileNotifiesOnChange(t *testing.T) {
	g, _ := NewGrid(3, 3)
	var changes []TileChange
	g.Subscribe(func(c TileChange) { changes = append(changes, c) })

	pos := GridPos{GridX: 1, GridY: 2}
	g.SetTile(pos, EmptyTile())
	if len(changes) != 0 {
		t.Fatalf("writing the same tile produced %d notifications", len(changes))
	}

	g.SetTile(pos, PowerUpTile(PowerUpExtraBomb))
	if len(changes) != 1 {
		t.Fatalf("got %d notifications, want 1", len(changes))
	}
	c := changes[0]
	if c.Pos != pos || c.Old.Kind != TileEmpty || !c.New.Equal(PowerUpTile(PowerUpExtraBomb)) {
		t.Errorf("unexpected change %+v", c)
	}
}
