package client

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"killercritters/pkg/core"
)

// HUD 高度（像素），每个玩家一行
const (
	hudLineHeight = 16
	HUDHeight     = hudLineHeight*core.DefaultMaxPlayers + 8
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

var (
	hudBackground = color.RGBA{24, 24, 32, 255}
	hudText       = color.RGBA{230, 230, 230, 255}
	hudDead       = color.RGBA{120, 120, 120, 255}
)

// drawText 在 (x, y) 处绘制一行文字，y 为文字顶部
func drawText(dst *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, hudFace, op)
}

// playerLine HUD 中一个玩家的状态
func playerLine(p *core.Player) string {
	info := GetCharacterInfo(p.Character)
	status := fmt.Sprintf("bombs %d  fire %d", p.NumBombs, p.Firepower)
	if !p.Alive {
		status = "out"
	}
	return fmt.Sprintf("P%d %-8s %-7s %s", p.ID, info.Name, controllerLabel(p.Controller), status)
}

// outcomeBanner 结束时的提示
func outcomeBanner(winner *core.Player) string {
	if winner == nil {
		return "DRAW - press SPACE"
	}
	return fmt.Sprintf("P%d %s WINS - press SPACE", winner.ID, GetCharacterInfo(winner.Character).Name)
}

// drawHUD 在地图下方绘制玩家信息
func drawHUD(screen *ebiten.Image, players []*core.Player, top int) {
	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, float32(top), float32(w), HUDHeight, hudBackground, false)

	if len(players) == 0 {
		drawText(screen, "Press any key or button to join", 8, float64(top+4), hudText)
		return
	}
	for i, p := range players {
		y := float64(top + 4 + i*hudLineHeight)
		info := GetCharacterInfo(p.Character)
		vector.DrawFilledRect(screen, 8, float32(y)+2, 10, 10, info.BodyColor, false)
		clr := hudText
		if !p.Alive {
			clr = hudDead
		}
		drawText(screen, playerLine(p), 24, y, clr)
	}
}

// drawGameOver 结束时在地图中央绘制结果
func drawGameOver(screen *ebiten.Image, winner *core.Player, mapWidth, mapHeight int) {
	// 半透明遮罩
	vector.DrawFilledRect(screen, 0, 0, float32(mapWidth), float32(mapHeight), color.RGBA{0, 0, 0, 150}, false)

	msg := outcomeBanner(winner)
	textW, textH := text.Measure(msg, hudFace, 0)
	x := (float64(mapWidth) - textW) / 2
	y := (float64(mapHeight) - textH) / 2
	drawText(screen, msg, x, y, color.RGBA{255, 215, 0, 255})
}
