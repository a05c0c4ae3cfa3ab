package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"killercritters/pkg/core"
)

// 动画速度：每0.15秒切换一帧
const animFrameSeconds = 0.15

// PlayerRenderer 玩家渲染器
type PlayerRenderer struct {
	corePlayer *core.Player
	CharInfo   CharacterInfo
	AnimFrame  int
	AnimTime   float64
}

// NewPlayerRenderer 为 core.Player 创建渲染器
func NewPlayerRenderer(p *core.Player) *PlayerRenderer {
	return &PlayerRenderer{
		corePlayer: p,
		CharInfo:   GetCharacterInfo(p.Character),
	}
}

// Update 更新动画
func (r *PlayerRenderer) Update(deltaTime float64) {
	if !r.corePlayer.IsMoving {
		r.AnimTime = 0
		r.AnimFrame = 0
		return
	}

	r.AnimTime += deltaTime
	if r.AnimTime >= animFrameSeconds {
		r.AnimTime = 0
		r.AnimFrame = (r.AnimFrame + 1) % 2
	}
}

// Draw 绘制玩家
func (r *PlayerRenderer) Draw(screen *ebiten.Image) {
	player := r.corePlayer
	if !player.Alive {
		return
	}

	// 连续坐标是格子中心，转成像素
	cx := float32((player.Pos.X + 0.5) * TileSize)
	cy := float32((player.Pos.Y + 0.5) * TileSize)

	// 身体尺寸（略小于格子）
	bodyWidth := float32(TileSize) * 0.55
	bodyHeight := float32(TileSize) * 0.55
	drawX := cx - bodyWidth/2
	drawY := cy - bodyHeight/2 - 2

	// 绘制身体
	vector.DrawFilledRect(screen, drawX, drawY, bodyWidth, bodyHeight, r.CharInfo.BodyColor, false)

	// 绘制轮廓（2像素宽）
	vector.StrokeRect(screen, drawX, drawY, bodyWidth, bodyHeight, 2, r.CharInfo.OutlineColor, false)

	swing := float32(0)
	if r.AnimFrame == 1 {
		swing = 2
	}

	// 手
	handSize := bodyWidth * 0.2
	vector.DrawFilledCircle(screen, drawX-swing-2, drawY+bodyHeight*0.6, handSize, r.CharInfo.HandColor, false)
	vector.DrawFilledCircle(screen, drawX+bodyWidth+swing+2, drawY+bodyHeight*0.6, handSize, r.CharInfo.HandColor, false)

	// 脚
	footSize := bodyWidth * 0.3
	vector.DrawFilledRect(screen, drawX+bodyWidth*0.2-swing, drawY+bodyHeight, footSize, footSize*0.6, r.CharInfo.ShoeColor, false)
	vector.DrawFilledRect(screen, drawX+bodyWidth*0.5+swing, drawY+bodyHeight, footSize, footSize*0.6, r.CharInfo.ShoeColor, false)

	// 眼睛朝着最后一次移动的方向看
	eyeSize := bodyWidth * 0.15
	look := player.Facing.Scale(float64(eyeSize))
	eyeY := drawY + bodyHeight*0.35 + float32(look.Y)
	eyeLeftX := drawX + bodyWidth*0.3 + float32(look.X)
	eyeRightX := drawX + bodyWidth*0.7 + float32(look.X)

	white := color.RGBA{255, 255, 255, 255}
	vector.DrawFilledCircle(screen, eyeLeftX, eyeY, eyeSize, white, false)
	vector.DrawFilledCircle(screen, eyeRightX, eyeY, eyeSize, white, false)

	// 瞳孔再往前偏一点
	pupilSize := eyeSize * 0.5
	px := float32(look.X) * 0.5
	py := float32(look.Y) * 0.5
	black := color.RGBA{0, 0, 0, 255}
	vector.DrawFilledCircle(screen, eyeLeftX+px, eyeY+py, pupilSize, black, false)
	vector.DrawFilledCircle(screen, eyeRightX+px, eyeY+py, pupilSize, black, false)
}
