package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"killercritters/internal/client"
	"killercritters/pkg/ai"
	"killercritters/pkg/core"
)

func main() {
	var (
		fullscreen = flag.Bool("fullscreen", false, "全屏")
		width      = flag.Int("width", core.DefaultMapWidth, "地图宽度（格子）")
		height     = flag.Int("height", core.DefaultMapHeight, "地图高度（格子）")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "随机种子")
		aiPlayers  = flag.Int("ai", 1, "电脑玩家数量")
		difficulty = flag.String("difficulty", "normal", "电脑难度 easy/normal/hard")
		fuse       = flag.Duration("fuse", core.DefaultBombFuse, "炸弹引线时间")
		burn       = flag.Duration("burn", core.DefaultExplosionDuration, "爆炸燃烧时间")
		showSDF    = flag.Bool("sdf", false, "显示 SDF 调试层（F1 切换）")
	)
	flag.Parse()

	aiConfig, err := ai.ConfigByName(*difficulty)
	if err != nil {
		log.Fatal(err)
	}

	cfg := core.DefaultConfig()
	cfg.Width, cfg.Height = *width, *height
	cfg.BombFuse = *fuse
	cfg.ExplosionDuration = *burn

	game, err := client.NewGame(client.Options{
		Config:    cfg,
		Seed:      *seed,
		AIPlayers: *aiPlayers,
		AIConfig:  aiConfig,
		ShowSDF:   *showSDF,
	})
	if err != nil {
		log.Fatal(err)
	}

	// 设置窗口选项
	w, h := client.ScreenSize(cfg)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Killer Critters")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetTPS(core.TPS)

	// 运行游戏
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
