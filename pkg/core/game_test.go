package core

import (
	"errors"
	"math"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	arrows = Controller{Kind: ControllerKeyboardArrows}
	wasd   = Controller{Kind: ControllerKeyboardWASD}
)

func newTestGame(t *testing.T, grid *Grid) *Game {
	t.Helper()
	g, err := NewGameWithGrid(DefaultConfig(), grid)
	if err != nil {
		t.Fatalf("NewGameWithGrid: %v", err)
	}
	return g
}

func mustJoin(t *testing.T, g *Game, c Controller) *Player {
	t.Helper()
	p, err := g.Join(c)
	if err != nil {
		t.Fatalf("Join(%s): %v", c, err)
	}
	return p
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	broken := []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.BombFuse = 0 },
		func(c *Config) { c.MotionPerTick = 1 },
		func(c *Config) { c.ProbeRadius = 0 },
		func(c *Config) { c.StartFirepower = 0 },
		func(c *Config) { c.MaxPlayers = 0 },
		func(c *Config) { c.Recipe.RubbleDensity = 1.5 },
	}
	for i, mutate := range broken {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("case %d: err = %v, want ErrInvalidConfig", i, err)
		}
	}
}

func TestJoinAssignsSpawnsAndCharacters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPlayers = 2
	g, err := NewGame(cfg, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	p1 := mustJoin(t, g, arrows)
	p2 := mustJoin(t, g, wasd)
	if p1.Pos != (Vec2{X: 1, Y: 1}) || p2.Pos != (Vec2{X: 1, Y: float64(cfg.Height - 2)}) {
		t.Errorf("spawned at %v and %v", p1.Pos, p2.Pos)
	}
	if p1.Character != CritterColobus || p2.Character != CritterPudu {
		t.Errorf("characters %s and %s", p1.Character, p2.Character)
	}
	if p1.NumBombs != cfg.StartBombs || p1.Firepower != cfg.StartFirepower {
		t.Errorf("start resources %d bombs, %d firepower", p1.NumBombs, p1.Firepower)
	}

	if again := mustJoin(t, g, arrows); again != p1 || len(g.Players) != 2 {
		t.Error("joining twice created a second player")
	}
	if _, err := g.Join(Controller{Kind: ControllerGamepad}); !errors.Is(err, ErrGameFull) {
		t.Errorf("third join err = %v, want ErrGameFull", err)
	}
}

func TestJoinWithoutSpawnPoint(t *testing.T) {
	g := newTestGame(t, walledGrid(t, 5, 5, pos(1, 1)))
	mustJoin(t, g, arrows)
	if _, err := g.Join(wasd); !errors.Is(err, ErrNoSpawnPoint) {
		t.Errorf("err = %v, want ErrNoSpawnPoint", err)
	}
}

func TestTickHotJoin(t *testing.T) {
	g := newTestGame(t, walledGrid(t, 7, 7, pos(1, 1), pos(5, 5)))

	g.Tick(t0, []Intent{{Controller: wasd}})
	if len(g.Players) != 0 {
		t.Fatal("an idle controller joined the game")
	}

	right := Intent{Controller: arrows, Motion: Vec2{X: 1}}
	g.Tick(t0, []Intent{right})
	p := g.PlayerByController(arrows)
	if p == nil {
		t.Fatal("controller with input did not join")
	}
	if p.Pos != (Vec2{X: 1, Y: 1}) {
		t.Errorf("player moved on the joining tick: %v", p.Pos)
	}

	g.Tick(t0.Add(TickDuration), []Intent{right})
	if !near(p.Pos.X, 1+DefaultMotionPerTick) {
		t.Errorf("x = %v after one tick, want %v", p.Pos.X, 1+DefaultMotionPerTick)
	}
}

func TestMotionIsClampedToUnitLength(t *testing.T) {
	g := newTestGame(t, walledGrid(t, 7, 7, pos(3, 3)))
	p := mustJoin(t, g, arrows)

	g.ApplyIntent(Intent{Controller: arrows, Motion: Vec2{X: 3, Y: 4}}, t0)
	moved := p.Pos.Sub(Vec2{X: 3, Y: 3}).Length()
	if !near(moved, DefaultMotionPerTick) {
		t.Errorf("moved %v, want %v", moved, DefaultMotionPerTick)
	}
	if !near(p.Facing.X, 0.6) || !near(p.Facing.Y, 0.8) {
		t.Errorf("facing %v", p.Facing)
	}
}

func TestMovementAlongCorridor(t *testing.T) {
	g := newTestGame(t, walledGrid(t, 7, 7, pos(1, 1)))
	p := mustJoin(t, g, arrows)

	for i := 0; i < 20; i++ {
		g.ApplyIntent(Intent{Controller: arrows, Motion: Vec2{X: 1}}, t0)
	}
	if math.Abs(p.Pos.X-2) > 1e-9 || p.Pos.Y != 1 {
		t.Errorf("after 20 ticks at %v, want (2, 1)", p.Pos)
	}
}

func TestMovementNeverEntersWall(t *testing.T) {
	g := newTestGame(t, walledGrid(t, 7, 7, pos(1, 1)))
	p := mustJoin(t, g, arrows)

	for i := 0; i < 100; i++ {
		g.ApplyIntent(Intent{Controller: arrows, Motion: Vec2{Y: -1}}, t0)
		if p.Pos.Y <= 0.5 {
			t.Fatalf("tick %d: player entered the wall at %v", i, p.Pos)
		}
		if p.Pos.X != 1 {
			t.Fatalf("tick %d: player drifted sideways to %v", i, p.Pos)
		}
	}
}

func TestBombBlocksAfterLeaving(t *testing.T) {
	g := newTestGame(t, walledGrid(t, 7, 7, pos(1, 1)))
	p := mustJoin(t, g, arrows)

	if !g.ApplyIntent(Intent{Controller: arrows, Action: ActionDropBomb}, t0) {
		t.Fatal("could not drop a bomb at spawn")
	}
	// 站在自己的炸弹上可以离开
	for i := 0; i < 20; i++ {
		g.ApplyIntent(Intent{Controller: arrows, Motion: Vec2{X: 1}}, t0)
	}
	if p.Pos.X < 1.9 {
		t.Fatalf("player stuck on own bomb at %v", p.Pos)
	}
	// 离开后炸弹挡路
	for i := 0; i < 40; i++ {
		g.ApplyIntent(Intent{Controller: arrows, Motion: Vec2{X: -1}}, t0)
		if p.Pos.X <= 1.5 {
			t.Fatalf("tick %d: player walked back onto the bomb at %v", i, p.Pos)
		}
	}
}

func TestMoveOffGridKeepsPosition(t *testing.T) {
	grid, _ := NewGrid(3, 3)
	grid.SetSpawnPoints([]GridPos{pos(0, 0)})
	g := newTestGame(t, grid)
	p := mustJoin(t, g, arrows)

	p.Pos = Vec2{X: -0.45, Y: 0}
	dropped := g.ApplyIntent(Intent{Controller: arrows, Motion: Vec2{X: -1}, Action: ActionDropBomb}, t0)
	if dropped {
		t.Error("dropped a bomb while stepping off the grid")
	}
	if p.Pos != (Vec2{X: -0.45, Y: 0}) {
		t.Errorf("position changed to %v", p.Pos)
	}
	if n := grid.Count(func(tile Tile) bool { return tile.Kind == TileBomb }); n != 0 {
		t.Errorf("%d bombs on the grid", n)
	}
}

func TestDropBombPreconditions(t *testing.T) {
	g := newTestGame(t, walledGrid(t, 7, 7, pos(1, 1)))
	p := mustJoin(t, g, arrows)
	drop := Intent{Controller: arrows, Action: ActionDropBomb}

	if !g.ApplyIntent(drop, t0) {
		t.Fatal("first drop failed")
	}
	if p.NumBombs != 0 {
		t.Errorf("NumBombs = %d after dropping, want 0", p.NumBombs)
	}
	if g.ApplyIntent(drop, t0) {
		t.Error("dropped without bombs left")
	}

	p.NumBombs = 2
	if g.ApplyIntent(drop, t0) {
		t.Error("dropped onto an occupied cell")
	}
	if p.NumBombs != 2 {
		t.Errorf("failed drop changed NumBombs to %d", p.NumBombs)
	}
}

func TestOwnBombKillsAndIsReturned(t *testing.T) {
	g := newTestGame(t, walledGrid(t, 7, 7, pos(1, 1), pos(5, 5)))
	p1 := mustJoin(t, g, arrows)
	p2 := mustJoin(t, g, wasd)

	g.Tick(t0, []Intent{{Controller: arrows, Action: ActionDropBomb}})
	if p1.NumBombs != 0 {
		t.Fatalf("NumBombs = %d after dropping", p1.NumBombs)
	}

	g.Tick(t0.Add(DefaultBombFuse-TickDuration), nil)
	if !p1.Alive {
		t.Fatal("bomb exploded early")
	}

	report := g.Tick(t0.Add(DefaultBombFuse), nil)
	if len(report.Detonations) != 1 {
		t.Fatalf("got %d detonations, want 1", len(report.Detonations))
	}
	if p1.Alive {
		t.Error("player survived standing on own bomb")
	}
	if p1.NumBombs != 1 {
		t.Errorf("NumBombs = %d after detonation, want 1", p1.NumBombs)
	}

	winner, over := g.Outcome()
	if !over || winner != p2 {
		t.Errorf("Outcome() = %v, %v; want player %d to win", winner, over, p2.ID)
	}
}

func TestDraw(t *testing.T) {
	g := newTestGame(t, walledGrid(t, 7, 7, pos(1, 1), pos(1, 1)))
	mustJoin(t, g, arrows)
	mustJoin(t, g, wasd)

	g.Tick(t0, []Intent{{Controller: arrows, Action: ActionDropBomb}})
	g.Tick(t0.Add(DefaultBombFuse), nil)

	winner, over := g.Outcome()
	if !over || winner != nil {
		t.Errorf("Outcome() = %v, %v; want a draw", winner, over)
	}
	if g.AliveCount() != 0 {
		t.Errorf("%d players alive", g.AliveCount())
	}
}

func TestSinglePlayerGameDoesNotEnd(t *testing.T) {
	g := newTestGame(t, walledGrid(t, 7, 7, pos(1, 1)))
	p := mustJoin(t, g, arrows)

	g.Tick(t0, []Intent{{Controller: arrows, Action: ActionDropBomb}})
	g.Tick(t0.Add(DefaultBombFuse), nil)
	if p.Alive {
		t.Fatal("player survived own bomb")
	}
	if _, over := g.Outcome(); over {
		t.Error("single player game ended")
	}
}

func TestTickAfterGameOverIsIgnored(t *testing.T) {
	g := newTestGame(t, walledGrid(t, 7, 7, pos(1, 1), pos(5, 5)))
	mustJoin(t, g, arrows)
	p2 := mustJoin(t, g, wasd)

	g.Tick(t0, []Intent{{Controller: arrows, Action: ActionDropBomb}})
	g.Tick(t0.Add(DefaultBombFuse), nil)
	if g.State != StateGameOver {
		t.Fatal("game not over")
	}

	before := p2.Pos
	g.Tick(t0.Add(DefaultBombFuse+TickDuration), []Intent{{Controller: wasd, Motion: Vec2{X: -1}}})
	if p2.Pos != before {
		t.Errorf("player moved after game over: %v", p2.Pos)
	}
}

func TestPowerUpRevealAndPickup(t *testing.T) {
	grid := walledGrid(t, 7, 7, pos(1, 5), pos(5, 5))
	g := newTestGame(t, grid)
	p1 := mustJoin(t, g, arrows)
	mustJoin(t, g, wasd)

	grid.SetTile(pos(3, 1), BreakableWallTile(PowerUpTile(PowerUpFirepower)))
	grid.SetTile(pos(2, 1), BombTile(NewBomb(p1.ID, 1, t0, time.Second)))

	now := t0.Add(time.Second)
	g.Tick(now, nil)
	if k := kindAt(t, grid, pos(3, 1)); k != TileExplosion {
		t.Fatalf("wall is %s after the blast", k)
	}
	now = now.Add(DefaultExplosionDuration)
	g.Tick(now, nil)
	if tile, _ := grid.TileAt(pos(3, 1)); !tile.Equal(PowerUpTile(PowerUpFirepower)) {
		t.Fatalf("burn-out left %s", tile)
	}

	p1.Pos = Vec2{X: 3, Y: 1}
	g.Tick(now.Add(TickDuration), nil)
	if p1.Firepower != 2 {
		t.Errorf("Firepower = %d, want 2", p1.Firepower)
	}
	if k := kindAt(t, grid, pos(3, 1)); k != TileEmpty {
		t.Errorf("picked up power-up left %s", k)
	}

	g.Tick(now.Add(2*TickDuration), nil)
	if p1.Firepower != 2 {
		t.Errorf("Firepower = %d after a second tick, want 2", p1.Firepower)
	}
}

func TestWalkOntoPowerUp(t *testing.T) {
	grid := walledGrid(t, 7, 7, pos(1, 1))
	g := newTestGame(t, grid)
	p := mustJoin(t, g, arrows)
	grid.SetTile(pos(2, 1), PowerUpTile(PowerUpExtraBomb))

	now := t0
	for i := 0; i < 12; i++ {
		now = now.Add(TickDuration)
		g.Tick(now, []Intent{{Controller: arrows, Motion: Vec2{X: 1}}})
	}
	if p.NumBombs != 2 {
		t.Errorf("NumBombs = %d, want 2", p.NumBombs)
	}
	if k := kindAt(t, grid, pos(2, 1)); k != TileEmpty {
		t.Errorf("power-up cell is %s after pickup", k)
	}
}

func TestConcurrentPickupConsumesOnce(t *testing.T) {
	grid := walledGrid(t, 7, 7, pos(3, 3), pos(3, 3))
	g := newTestGame(t, grid)
	p1 := mustJoin(t, g, arrows)
	p2 := mustJoin(t, g, wasd)
	grid.SetTile(pos(3, 3), PowerUpTile(PowerUpExtraBomb))

	var picked atomic.Int32
	var eg errgroup.Group
	for i := 0; i < 16; i++ {
		p := p1
		if i%2 == 1 {
			p = p2
		}
		eg.Go(func() error {
			if g.Pickup(p) {
				picked.Add(1)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatal(err)
	}

	if n := picked.Load(); n != 1 {
		t.Errorf("power-up picked up %d times", n)
	}
	if total := p1.NumBombs + p2.NumBombs; total != 2*DefaultStartBombs+1 {
		t.Errorf("players hold %d bombs, want %d", total, 2*DefaultStartBombs+1)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, walledGrid(t, 7, 7, pos(1, 1), pos(5, 5)))
	p1 := mustJoin(t, g, arrows)
	p2 := mustJoin(t, g, wasd)

	g.Tick(t0, []Intent{{Controller: arrows, Action: ActionDropBomb}})
	g.Tick(t0.Add(DefaultBombFuse), nil)
	if _, over := g.Outcome(); !over {
		t.Fatal("game not over before restart")
	}

	changes := 0
	g.Subscribe(func(TileChange) { changes++ })

	if err := g.Restart(rand.New(rand.NewSource(9))); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if _, over := g.Outcome(); over {
		t.Error("game still over after restart")
	}
	if !p1.Alive || !p2.Alive {
		t.Error("players not revived")
	}
	if p1.Pos != (Vec2{X: 1, Y: 1}) || p2.Pos != (Vec2{X: 1, Y: 5}) {
		t.Errorf("players at %v and %v after restart", p1.Pos, p2.Pos)
	}
	if p1.NumBombs != DefaultStartBombs || p1.Firepower != DefaultStartFirepower {
		t.Errorf("resources not reset: %d bombs, %d firepower", p1.NumBombs, p1.Firepower)
	}

	g.Grid.SetTile(pos(3, 3), PowerUpTile(PowerUpFirepower))
	if changes != 1 {
		t.Errorf("listener saw %d changes on the new grid, want 1", changes)
	}
}
