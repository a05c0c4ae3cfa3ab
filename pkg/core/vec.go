package core

import "math"

// Vec2 连续坐标，单位为格子，格子 (x, y) 的中心位于 (x, y)
type Vec2 struct {
	X, Y float64
}

// GridPos 格子坐标（通用类型）
// 地图格子坐标x轴是横向，正方向向右，y轴纵向，正方向向下，0点在左上角
type GridPos struct {
	GridX, GridY int
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }

func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize 返回单位向量，零向量原样返回
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// ClampLength 把长度限制在 max 以内
func (v Vec2) ClampLength(max float64) Vec2 {
	l := v.Length()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Clamp 逐轴限制到 [lo, hi]
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{
		X: math.Min(math.Max(v.X, lo.X), hi.X),
		Y: math.Min(math.Max(v.Y, lo.Y), hi.Y),
	}
}

// Round 四舍五入到最近的格子（.5 远离零）
func (v Vec2) Round() GridPos {
	return GridPos{GridX: int(math.Round(v.X)), GridY: int(math.Round(v.Y))}
}

func (p GridPos) Add(o GridPos) GridPos {
	return GridPos{GridX: p.GridX + o.GridX, GridY: p.GridY + o.GridY}
}

func (p GridPos) Scale(n int) GridPos {
	return GridPos{GridX: p.GridX * n, GridY: p.GridY * n}
}

// AsVec2 格子中心的连续坐标
func (p GridPos) AsVec2() Vec2 {
	return Vec2{X: float64(p.GridX), Y: float64(p.GridY)}
}

// DistanceSquared 欧氏距离的平方
func (p GridPos) DistanceSquared(o GridPos) int {
	dx := p.GridX - o.GridX
	dy := p.GridY - o.GridY
	return dx*dx + dy*dy
}
