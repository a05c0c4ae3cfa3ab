package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/zyedidia/generic/mapset"

	"killercritters/pkg/core"
)

var (
	grassColor = color.RGBA{34, 139, 34, 255}   // 草地绿
	wallColor  = color.RGBA{80, 80, 80, 255}    // 灰色墙
	brickColor = color.RGBA{205, 133, 63, 255}  // 砖块棕色
	gridLine   = color.RGBA{0, 0, 0, 100}       // 格子边框
	brickLine  = color.RGBA{180, 118, 53, 255}  // 砖块纹理
	wallLine   = color.RGBA{60, 60, 60, 255}    // 墙壁纹理
	fireColor  = color.RGBA{255, 140, 0, 255}   // 火力道具
	bombColor  = color.RGBA{20, 20, 20, 255}    // 炸弹道具
	pickupRing = color.RGBA{255, 255, 255, 200} // 道具外圈
)

// TileLayer 地图的静态图层，只在格子变化时重绘对应的格子
// 炸弹和爆炸是动画，记录在 active 中每帧单独绘制
type TileLayer struct {
	grid   *core.Grid
	image  *ebiten.Image
	dirty  mapset.Set[core.GridPos]
	active mapset.Set[core.GridPos]
	full   bool
}

// NewTileLayer 创建地图图层
func NewTileLayer(grid *core.Grid) *TileLayer {
	l := &TileLayer{}
	l.Reset(grid)
	return l
}

// Reset 换一张地图（重新开局），整层重绘
func (l *TileLayer) Reset(grid *core.Grid) {
	w, h := grid.Width()*TileSize, grid.Height()*TileSize
	if l.image == nil || l.image.Bounds().Dx() != w || l.image.Bounds().Dy() != h {
		l.image = ebiten.NewImage(w, h)
	}
	l.grid = grid
	l.dirty = mapset.New[core.GridPos]()
	l.active = mapset.New[core.GridPos]()
	l.full = true
	for pos := range grid.Positions() {
		if tile, _ := grid.TileAt(pos); isAnimated(tile) {
			l.active.Put(pos)
		}
	}
}

// OnTileChange 订阅 Grid 的格子变化
func (l *TileLayer) OnTileChange(c core.TileChange) {
	l.dirty.Put(c.Pos)
	if isAnimated(c.New) {
		l.active.Put(c.Pos)
	} else {
		l.active.Remove(c.Pos)
	}
}

// Active 正在播放动画的格子
func (l *TileLayer) Active() mapset.Set[core.GridPos] {
	return l.active
}

// Draw 先刷新变化的格子，再把整层画到屏幕上
func (l *TileLayer) Draw(screen *ebiten.Image) {
	if l.full {
		for pos := range l.grid.Positions() {
			l.drawTile(pos)
		}
		l.full = false
	} else if l.dirty.Size() > 0 {
		l.dirty.Each(l.drawTile)
	}
	l.dirty = mapset.New[core.GridPos]()
	screen.DrawImage(l.image, nil)
}

func (l *TileLayer) drawTile(pos core.GridPos) {
	tile, ok := l.grid.TileAt(pos)
	if !ok {
		return
	}
	px := float32(pos.GridX * TileSize)
	py := float32(pos.GridY * TileSize)
	const size = float32(TileSize)

	var c color.Color = grassColor
	switch tile.Kind {
	case core.TileSolidWall:
		c = wallColor
	case core.TileBreakableWall:
		c = brickColor
	}

	// 绘制方块
	vector.DrawFilledRect(l.image, px, py, size, size, c, false)

	// 绘制边框
	vector.StrokeRect(l.image, px, py, size, size, 1, gridLine, false)

	switch tile.Kind {
	case core.TileBreakableWall:
		// 简单的横线模拟砖块纹理
		for i := 0; i < 3; i++ {
			lineY := py + size*float32(2*i+1)/6
			vector.StrokeLine(l.image, px+2, lineY, px+size-2, lineY, 1, brickLine, false)
		}
	case core.TileSolidWall:
		// 十字纹理
		vector.StrokeLine(l.image, px+size/2, py+5, px+size/2, py+size-5, 2, wallLine, false)
		vector.StrokeLine(l.image, px+5, py+size/2, px+size-5, py+size/2, 2, wallLine, false)
	case core.TilePowerUp:
		drawPowerUp(l.image, px+size/2, py+size/2, tile.PowerUp)
	}
}

func drawPowerUp(dst *ebiten.Image, cx, cy float32, kind core.PowerUpKind) {
	r := float32(TileSize) * 0.3
	vector.StrokeCircle(dst, cx, cy, r, 2, pickupRing, false)
	switch kind {
	case core.PowerUpFirepower:
		vector.DrawFilledCircle(dst, cx, cy, r*0.7, fireColor, false)
		vector.DrawFilledCircle(dst, cx, cy-r*0.2, r*0.35, color.RGBA{255, 230, 80, 255}, false)
	case core.PowerUpExtraBomb:
		vector.DrawFilledCircle(dst, cx, cy+r*0.1, r*0.6, bombColor, false)
		vector.StrokeLine(dst, cx, cy-r*0.5, cx+r*0.3, cy-r*0.8, 2, color.RGBA{139, 69, 19, 255}, false)
	}
}

func isAnimated(tile core.Tile) bool {
	return tile.Kind == core.TileBomb || tile.Kind == core.TileExplosion
}
