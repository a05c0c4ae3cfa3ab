package client

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"

	"killercritters/pkg/ai"
	"killercritters/pkg/core"
)

// TileSize 每个格子的像素大小
const TileSize = 40

// Options 客户端参数
type Options struct {
	Config    core.Config
	Seed      int64
	AIPlayers int
	AIConfig  ai.AIConfig
	ShowSDF   bool
}

// Game 游戏主结构（Ebiten 游戏循环）
type Game struct {
	coreGame *core.Game
	rnd      *rand.Rand

	input   InputManager
	ais     []*ai.AIController
	tiles   *TileLayer
	sdf     *SDFOverlay
	players map[int]*PlayerRenderer

	lastUpdateTime time.Time
	gameOver       bool
	blastLog       rate.Sometimes
}

// NewGame 创建新游戏，电脑玩家先加入
func NewGame(opts Options) (*Game, error) {
	rnd := rand.New(rand.NewSource(opts.Seed))
	coreGame, err := core.NewGame(opts.Config, rnd)
	if err != nil {
		return nil, err
	}

	g := &Game{
		coreGame:       coreGame,
		rnd:            rnd,
		tiles:          NewTileLayer(coreGame.Grid),
		sdf:            NewSDFOverlay(opts.Config.ProbeRadius, opts.ShowSDF),
		players:        make(map[int]*PlayerRenderer),
		lastUpdateTime: time.Now(),
		blastLog:       rate.Sometimes{First: 3, Interval: time.Second},
	}
	coreGame.Subscribe(g.tiles.OnTileChange)
	coreGame.Subscribe(g.sdf.OnTileChange)

	for i := 0; i < opts.AIPlayers; i++ {
		c := ai.NewAIController(i, opts.AIConfig, opts.Seed)
		p, err := coreGame.Join(c.Controller)
		if err != nil {
			log.Printf("电脑玩家 %d 无法加入: %v", i, err)
			break
		}
		g.ais = append(g.ais, c)
		log.Printf("电脑玩家 P%d 加入 (%s)", p.ID, GetCharacterInfo(p.Character).Name)
	}

	log.Printf("新对局 %dx%d，种子 %d", opts.Config.Width, opts.Config.Height, opts.Seed)
	return g, nil
}

// Update 更新游戏状态
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.sdf.Toggle()
	}

	if g.gameOver {
		if g.input.RestartPressed() {
			g.restart()
		}
		return nil
	}

	intents := g.input.Poll()
	for _, c := range g.ais {
		intents = append(intents, c.Decide(g.coreGame, now))
	}

	report := g.coreGame.Tick(now, intents)
	for _, d := range report.Detonations {
		g.blastLog.Do(func() {
			log.Printf("P%d 的炸弹在 %v 爆炸：%d 格，炸毁 %d 块砖，引爆 %d 个炸弹",
				d.OwnerID, d.Origin, len(d.Cells), len(d.Revealed), len(d.Chained))
		})
	}

	g.syncRenderers()
	for _, r := range g.players {
		r.Update(deltaTime)
	}

	if winner, over := g.coreGame.Outcome(); over {
		g.gameOver = true
		if winner != nil {
			log.Printf("游戏结束，P%d 获胜", winner.ID)
		} else {
			log.Printf("游戏结束，平局")
		}
	}
	return nil
}

// syncRenderers 为新加入的玩家创建渲染器
func (g *Game) syncRenderers() {
	for _, p := range g.coreGame.Players {
		if _, ok := g.players[p.ID]; !ok {
			g.players[p.ID] = NewPlayerRenderer(p)
			log.Printf("P%d 加入 (%s, %s)", p.ID, GetCharacterInfo(p.Character).Name, p.Controller)
		}
	}
}

func (g *Game) restart() {
	if err := g.coreGame.Restart(g.rnd); err != nil {
		log.Printf("重新开始失败: %v", err)
		return
	}
	g.tiles.Reset(g.coreGame.Grid)
	g.sdf.Invalidate()
	g.gameOver = false
	log.Printf("重新开始")
}

// Draw 绘制游戏画面
func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	grid := g.coreGame.Grid

	g.tiles.Draw(screen)
	drawActiveTiles(screen, g.tiles, grid, now, g.coreGame.Config.ExplosionDuration)

	for _, p := range g.coreGame.Players {
		if r, ok := g.players[p.ID]; ok {
			r.Draw(screen)
		}
	}

	g.sdf.Draw(screen, grid)

	mapW, mapH := grid.Width()*TileSize, grid.Height()*TileSize
	drawHUD(screen, g.coreGame.Players, mapH)

	if g.gameOver {
		winner, _ := g.coreGame.Outcome()
		drawGameOver(screen, winner, mapW, mapH)
	}
}

// Layout 设置屏幕布局
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize(g.coreGame.Config)
}

// ScreenSize 地图加 HUD 的像素尺寸
func ScreenSize(cfg core.Config) (int, int) {
	return cfg.Width * TileSize, cfg.Height*TileSize + HUDHeight
}
