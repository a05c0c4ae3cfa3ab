package core

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrGameFull     = errors.New("玩家已满")
	ErrNoSpawnPoint = errors.New("没有可用的出生点")
)

// GameState 对局状态
type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
)

func (s GameState) String() string {
	if s == StateGameOver {
		return "GameOver"
	}
	return "Playing"
}

// Game 游戏状态（纯逻辑，不包含渲染）
// 所有修改都在 mu 下串行执行，同一帧内对同一格子先到先得
type Game struct {
	mu sync.Mutex

	Config  Config
	Grid    *Grid
	Players []*Player
	State   GameState

	winnerID  int
	nextID    int
	listeners []func(TileChange)
}

// NewGame 创建新游戏并生成第一张地图
func NewGame(cfg Config, rnd RandomSource) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{Config: cfg, winnerID: -1, nextID: 1}
	if err := g.Restart(rnd); err != nil {
		return nil, err
	}
	return g, nil
}

// NewGameWithGrid 使用现成的地图创建游戏（测试地图、预设地图）
func NewGameWithGrid(cfg Config, grid *Grid) (*Game, error) {
	cfg.Width, cfg.Height = grid.Width(), grid.Height()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{Config: cfg, winnerID: -1, nextID: 1}
	g.installGrid(grid)
	return g, nil
}

// Restart 生成新地图，所有玩家回到出生点
func (g *Game) Restart(rnd RandomSource) error {
	grid, err := MakeMap(g.Config.Width, g.Config.Height, g.Config.Recipe, rnd)
	if err != nil {
		return fmt.Errorf("生成地图失败: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.installGrid(grid)
	return nil
}

func (g *Game) installGrid(grid *Grid) {
	for _, fn := range g.listeners {
		grid.Subscribe(fn)
	}
	g.Grid = grid
	g.State = StatePlaying
	g.winnerID = -1

	spawns := grid.SpawnPoints()
	for slot, p := range g.Players {
		if slot < len(spawns) {
			p.Reset(spawns[slot], g.Config)
		} else {
			p.Reset(GridPos{}, g.Config)
			p.Alive = false
		}
	}
}

// Subscribe 订阅格子变化，重新开局后自动转到新地图上
func (g *Game) Subscribe(fn func(TileChange)) {
	if fn == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, fn)
	if g.Grid != nil {
		g.Grid.Subscribe(fn)
	}
}

// Join 为输入源创建玩家，已存在则直接返回
func (g *Game) Join(c Controller) (*Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.join(c)
}

func (g *Game) join(c Controller) (*Player, error) {
	if p := g.playerByController(c); p != nil {
		return p, nil
	}
	slot := len(g.Players)
	if slot >= g.Config.MaxPlayers {
		return nil, fmt.Errorf("%w (%d/%d)", ErrGameFull, slot, g.Config.MaxPlayers)
	}
	spawns := g.Grid.SpawnPoints()
	if slot >= len(spawns) {
		return nil, fmt.Errorf("%w: 第 %d 个玩家", ErrNoSpawnPoint, slot+1)
	}

	p := NewPlayer(g.nextID, c, characterForSlot(slot), spawns[slot], g.Config)
	g.nextID++
	g.Players = append(g.Players, p)
	return p, nil
}

// Tick 推进一帧：意图（移动、放炸弹）→ 拾取 → 炸弹/爆炸 → 死亡判定 → 胜负判定
// 本帧放下的炸弹最早在之后的帧才会爆炸
func (g *Game) Tick(now time.Time, intents []Intent) TickReport {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.State != StatePlaying {
		return TickReport{}
	}

	for _, in := range intents {
		g.applyIntent(in, now)
	}
	for _, p := range g.Players {
		p.Pickup(g.Grid)
	}

	report := AdvanceTiles(g.Grid, now, g.Config.ExplosionDuration, g.creditBomb)

	g.checkDeaths()
	g.checkWin()
	return report
}

// ApplyIntent 单独应用一个意图，返回是否放下了炸弹
func (g *Game) ApplyIntent(in Intent, now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.State != StatePlaying {
		return false
	}
	return g.applyIntent(in, now)
}

func (g *Game) applyIntent(in Intent, now time.Time) bool {
	in = in.normalized()

	p := g.playerByController(in.Controller)
	if p == nil {
		// 未知输入源有输入时加入游戏，本帧不移动
		if in.IsSomething() {
			_, _ = g.join(in.Controller)
		}
		return false
	}
	if !p.Alive {
		return false
	}

	cell, ok := p.Move(g.Grid, in.Motion, g.Config)
	if !ok || in.Action != ActionDropBomb {
		return false
	}
	return p.PlaceBomb(g.Grid, cell, now, g.Config)
}

// Pickup 让玩家拾取脚下的道具，多个调用方同时争抢时只有一个成功
func (g *Game) Pickup(p *Player) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return p.Pickup(g.Grid)
}

// creditBomb 炸弹爆炸后归还给所有者
func (g *Game) creditBomb(b *Bomb) {
	if p := g.playerByID(b.OwnerID); p != nil {
		p.NumBombs++
	}
}

func (g *Game) checkDeaths() {
	for _, p := range g.Players {
		if p.Alive && p.InExplosion(g.Grid) {
			p.Alive = false
		}
	}
}

// checkWin 多人对战：只剩一人获胜，全灭平局；单人不会因此结束
func (g *Game) checkWin() {
	if len(g.Players) <= 1 {
		return
	}
	alive := 0
	winner := -1
	for _, p := range g.Players {
		if p.Alive {
			alive++
			winner = p.ID
		}
	}
	switch alive {
	case 0:
		g.State = StateGameOver
		g.winnerID = -1
	case 1:
		g.State = StateGameOver
		g.winnerID = winner
	}
}

// Outcome 对局结果：over 为 false 表示还在进行；over 为 true 且 winner 为 nil 表示平局
func (g *Game) Outcome() (winner *Player, over bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.State != StateGameOver {
		return nil, false
	}
	return g.playerByID(g.winnerID), true
}

// PlayerByController 根据输入源获取玩家
func (g *Game) PlayerByController(c Controller) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playerByController(c)
}

// AliveCount 存活玩家数
func (g *Game) AliveCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, p := range g.Players {
		if p.Alive {
			n++
		}
	}
	return n
}

func (g *Game) playerByController(c Controller) *Player {
	for _, p := range g.Players {
		if p.Controller == c {
			return p
		}
	}
	return nil
}

func (g *Game) playerByID(id int) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}
