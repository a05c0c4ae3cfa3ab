package client

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"killercritters/pkg/core"
)

// drawBomb 绘制炸弹，引线随时间变短，快爆炸时加红圈警告
func drawBomb(screen *ebiten.Image, pos core.GridPos, bomb *core.Bomb, now time.Time) {
	// 格子坐标转像素坐标
	centerOffset := float32(TileSize) / 2
	cx := float32(pos.GridX*TileSize) + centerOffset
	cy := float32(pos.GridY*TileSize) + centerOffset

	ratio := 0.0
	elapsed := 0.0
	if bomb != nil {
		ratio = bomb.FuseProgress(now)
		elapsed = now.Sub(bomb.PlacedAt).Seconds()
	}

	// 炸弹半径
	radius := float32(TileSize) * 0.3

	// 根据时间闪烁
	blink := math.Sin(elapsed * 6)
	alpha := uint8(200 + 55*blink)

	// 炸弹主体（黑色）
	vector.DrawFilledCircle(screen, cx, cy, radius, color.RGBA{0, 0, 0, alpha}, false)

	// 炸弹轮廓
	vector.StrokeCircle(screen, cx, cy, radius, 2, color.RGBA{50, 50, 50, 255}, false)

	// 引线（根据时间变短）
	fuseLength := float32(15 * (1 - ratio))
	if fuseLength > 0 {
		fuseX := cx - radius*0.5
		fuseY := cy - radius

		vector.StrokeLine(screen, fuseX, fuseY, fuseX-fuseLength*0.5, fuseY-fuseLength,
			2, color.RGBA{139, 69, 19, 255}, false)

		// 引线火花（闪烁）
		if blink > 0 {
			sparkColor := color.RGBA{255, uint8(100 + 155*blink), 0, 255}
			vector.DrawFilledCircle(screen, fuseX-fuseLength*0.5, fuseY-fuseLength, 3, sparkColor, false)
		}
	}

	// 如果接近爆炸，添加警告效果
	if ratio > 0.7 {
		warningAlpha := uint8((ratio - 0.7) / 0.3 * 100)
		warningRadius := radius + float32(10*(ratio-0.7)/0.3)
		vector.StrokeCircle(screen, cx, cy, warningRadius, 2, color.RGBA{255, 0, 0, warningAlpha}, false)
	}
}

// drawExplosion 绘制一个燃烧中的格子，从中心扩散并逐渐消失
func drawExplosion(screen *ebiten.Image, pos core.GridPos, burnUntil, now time.Time, duration time.Duration) {
	ratio := 1.0
	if duration > 0 {
		ratio = 1 - float64(burnUntil.Sub(now))/float64(duration)
	}
	ratio = math.Max(0, math.Min(1, ratio))

	alpha := uint8(255 * (1 - ratio))
	px := float32(pos.GridX * TileSize)
	py := float32(pos.GridY * TileSize)

	scale := float32(0.3 + 0.7*math.Min(ratio*2, 1.0))
	offset := float32(TileSize) * (1 - scale) / 2

	// 火焰效果：黄色到红色渐变
	var explosionColor color.RGBA
	switch {
	case ratio < 0.3:
		explosionColor = color.RGBA{255, 255, 0, alpha}
	case ratio < 0.6:
		explosionColor = color.RGBA{255, 165, 0, alpha}
	default:
		explosionColor = color.RGBA{255, 0, 0, alpha}
	}

	size := float32(TileSize) * scale
	vector.DrawFilledRect(screen, px+offset, py+offset, size, size, explosionColor, false)

	// 内部高亮（白色中心）
	if ratio < 0.5 {
		innerAlpha := uint8(200 * (1 - ratio*2))
		innerScale := scale * 0.6
		innerOffset := float32(TileSize) * (1 - innerScale) / 2
		innerSize := float32(TileSize) * innerScale
		vector.DrawFilledRect(screen, px+innerOffset, py+innerOffset, innerSize, innerSize,
			color.RGBA{255, 255, 255, innerAlpha}, false)
	}

	vector.StrokeRect(screen, px+offset, py+offset, size, size, 2, color.RGBA{255, 100, 0, alpha}, false)
}

// drawActiveTiles 绘制所有炸弹和爆炸
func drawActiveTiles(screen *ebiten.Image, layer *TileLayer, grid *core.Grid, now time.Time, burn time.Duration) {
	layer.Active().Each(func(pos core.GridPos) {
		tile, ok := grid.TileAt(pos)
		if !ok {
			return
		}
		switch tile.Kind {
		case core.TileBomb:
			drawBomb(screen, pos, tile.Bomb, now)
		case core.TileExplosion:
			drawExplosion(screen, pos, tile.BurnUntil, now, burn)
		}
	})
}
