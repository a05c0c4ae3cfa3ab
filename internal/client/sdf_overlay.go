package client

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"killercritters/pkg/core"
)

// 每个格子的采样点数
const sdfSamplesPerTile = 8

// SDFOverlay 调试用的 SDF 叠加层，格子变化后下次绘制时重新采样
type SDFOverlay struct {
	Enabled bool

	radius int
	dirty  bool
	image  *ebiten.Image
	pixels []byte
}

// NewSDFOverlay 创建叠加层
func NewSDFOverlay(radius int, enabled bool) *SDFOverlay {
	return &SDFOverlay{Enabled: enabled, radius: radius, dirty: true}
}

// Toggle 开关叠加层
func (o *SDFOverlay) Toggle() {
	o.Enabled = !o.Enabled
}

// Invalidate 标记需要重新采样
func (o *SDFOverlay) Invalidate() {
	o.dirty = true
}

// OnTileChange 订阅 Grid 的格子变化
func (o *SDFOverlay) OnTileChange(core.TileChange) {
	o.dirty = true
}

// Draw 半透明地画在地图上
func (o *SDFOverlay) Draw(screen *ebiten.Image, grid *core.Grid) {
	if !o.Enabled {
		return
	}
	if o.dirty || o.image == nil {
		o.resample(grid)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(TileSize)/sdfSamplesPerTile, float64(TileSize)/sdfSamplesPerTile)
	op.ColorScale.ScaleAlpha(0.55)
	screen.DrawImage(o.image, op)
}

func (o *SDFOverlay) resample(grid *core.Grid) {
	field := core.SampleSDF(grid, sdfSamplesPerTile, o.radius)
	if o.image == nil || o.image.Bounds().Dx() != field.Width || o.image.Bounds().Dy() != field.Height {
		o.image = ebiten.NewImage(field.Width, field.Height)
		o.pixels = make([]byte, 4*field.Width*field.Height)
	}
	for i, v := range field.Values {
		c := jet(v, float64(o.radius))
		o.pixels[4*i] = c.R
		o.pixels[4*i+1] = c.G
		o.pixels[4*i+2] = c.B
		o.pixels[4*i+3] = c.A
	}
	o.image.WritePixels(o.pixels)
	o.dirty = false
}

// jet 把 [-limit, limit] 映射到 jet 色表：空地一侧偏蓝，墙内偏红
func jet(v, limit float64) color.RGBA {
	t := 0.5
	if limit > 0 {
		t = (v/limit + 1) / 2
	}
	t = math.Max(0, math.Min(1, t))
	channel := func(center float64) uint8 {
		c := 1.5 - math.Abs(4*t-center)
		return uint8(math.Round(255 * math.Max(0, math.Min(1, c))))
	}
	return color.RGBA{R: channel(3), G: channel(2), B: channel(1), A: 255}
}
