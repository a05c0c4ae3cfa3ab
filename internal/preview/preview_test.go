package preview

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"killercritters/pkg/core"
)

func newSource(seed int64) core.RandomSource {
	return rand.New(rand.NewSource(seed))
}

func TestPlainFixedMap(t *testing.T) {
	g := core.MakePillarMap5x5()
	want := strings.Join([]string{
		"#####",
		"#S..#",
		"#.#.#",
		"#...#",
		"#####",
	}, "\n")
	if got := Plain(g); got != want {
		t.Errorf("Plain =\n%s\nwant\n%s", got, want)
	}
}

func TestPlainShowsContents(t *testing.T) {
	g, err := core.NewGrid(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g.SetTile(core.GridPos{GridX: 0, GridY: 0}, core.BreakableWallTile(core.EmptyTile()))
	g.SetTile(core.GridPos{GridX: 1, GridY: 0}, core.BreakableWallTile(core.PowerUpTile(core.PowerUpFirepower)))
	g.SetTile(core.GridPos{GridX: 2, GridY: 0}, core.BreakableWallTile(core.PowerUpTile(core.PowerUpExtraBomb)))
	g.SetTile(core.GridPos{GridX: 3, GridY: 0}, core.PowerUpTile(core.PowerUpExtraBomb))
	g.SetTile(core.GridPos{GridX: 0, GridY: 1}, core.BombTile(core.NewBomb(1, 1, now, time.Second)))
	g.SetTile(core.GridPos{GridX: 1, GridY: 1}, core.ExplosionTile(now, core.EmptyTile()))

	if got, want := Plain(g), "+fbP\no*.."; got != want {
		t.Errorf("Plain = %q, want %q", got, want)
	}

	s := Collect(g)
	if s != (Stats{Bricks: 3, Firepower: 1, ExtraBombs: 1}) {
		t.Errorf("Collect = %+v", s)
	}
}

func TestPlainMatchesGrid(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		g, err := core.MakeBasicMap(15, 11, newSource(seed))
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(Plain(g), "\n")
		if len(lines) != g.Height() {
			t.Fatalf("seed %d: %d lines, want %d", seed, len(lines), g.Height())
		}
		bricks := 0
		for _, line := range lines {
			if len(line) != g.Width() {
				t.Fatalf("seed %d: line %q has %d runes", seed, line, len(line))
			}
			bricks += strings.Count(line, "+") + strings.Count(line, "f") + strings.Count(line, "b")
		}
		if s := Collect(g); s.Bricks != bricks {
			t.Errorf("seed %d: %d bricks in text, Collect says %d", seed, bricks, s.Bricks)
		}
		if strings.Count(Plain(g), "S") != 4 {
			t.Errorf("seed %d: want 4 spawns", seed)
		}
	}
}

func TestRenderContainsLegend(t *testing.T) {
	out := Render(core.MakeOpenMap3x3(), 42)
	for _, want := range []string{"3x3  seed 42", "solid wall", "brick (0)", "spawn"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q", want)
		}
	}
}
