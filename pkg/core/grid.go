package core

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidDimensions 地图宽高必须为正整数
var ErrInvalidDimensions = errors.New("地图尺寸必须为正整数")

// TileChange 地图变化记录，每次格子内容改变时发送给订阅者
type TileChange struct {
	Pos GridPos // 格子坐标
	Old Tile    // 变化前
	New Tile    // 变化后
}

// Grid 固定尺寸的格子地图（核心逻辑，不包含渲染）
// 每个合法坐标恰好对应一个 Tile，按 y*width+x 存放在连续数组里
type Grid struct {
	width       int
	height      int
	tiles       []Tile
	spawnPoints []GridPos
	listeners   []func(TileChange)
}

// NewGrid 创建全部为空地的地图
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Center 地图中心的连续坐标
func (g *Grid) Center() Vec2 {
	return Vec2{X: float64(g.width) / 2, Y: float64(g.height) / 2}
}

// SpawnPoints 玩家出生点（按加入顺序使用）
func (g *Grid) SpawnPoints() []GridPos {
	out := make([]GridPos, len(g.spawnPoints))
	copy(out, g.spawnPoints)
	return out
}

func (g *Grid) SetSpawnPoints(points []GridPos) {
	g.spawnPoints = append(g.spawnPoints[:0], points...)
}

// Contains 坐标是否在地图内
func (g *Grid) Contains(pos GridPos) bool {
	return pos.GridX >= 0 && pos.GridX < g.width && pos.GridY >= 0 && pos.GridY < g.height
}

// CoordFromPosition 连续坐标四舍五入到格子，越界返回 false
func (g *Grid) CoordFromPosition(pos Vec2) (GridPos, bool) {
	idx := pos.Round()
	if !g.Contains(idx) {
		return GridPos{}, false
	}
	return idx, true
}

// IsEdge 是否位于最外圈
func (g *Grid) IsEdge(pos GridPos) bool {
	return pos.GridX == 0 || pos.GridY == 0 || pos.GridX == g.width-1 || pos.GridY == g.height-1
}

// Positions 按列优先顺序（x=0 的所有 y，然后 x=1 ...）遍历所有坐标
// 地图生成依赖这个顺序保证同一种子得到同一张地图
func (g *Grid) Positions() iter.Seq[GridPos] {
	width, height := g.width, g.height
	return func(yield func(GridPos) bool) {
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				if !yield(GridPos{GridX: x, GridY: y}) {
					return
				}
			}
		}
	}
}

func (g *Grid) index(pos GridPos) int {
	if !g.Contains(pos) {
		panic(fmt.Sprintf("core: 格子 (%d, %d) 不在 %dx%d 地图内", pos.GridX, pos.GridY, g.width, g.height))
	}
	return pos.GridY*g.width + pos.GridX
}

// TileAt 获取指定位置的地图块，越界返回 false
func (g *Grid) TileAt(pos GridPos) (Tile, bool) {
	if !g.Contains(pos) {
		return Tile{}, false
	}
	return g.tiles[g.index(pos)], true
}

// mustTile 读取地图内的格子，越界说明调用方破坏了不变量
func (g *Grid) mustTile(pos GridPos) Tile {
	return g.tiles[g.index(pos)]
}

// SetTile 设置指定位置的地图块，内容变化时通知订阅者
// 越界时不做任何事并返回 false
func (g *Grid) SetTile(pos GridPos, tile Tile) bool {
	if !g.Contains(pos) {
		return false
	}
	i := g.index(pos)
	old := g.tiles[i]
	g.tiles[i] = tile
	if !old.Equal(tile) {
		change := TileChange{Pos: pos, Old: old, New: tile}
		for _, fn := range g.listeners {
			fn(change)
		}
	}
	return true
}

// Subscribe 订阅格子变化
func (g *Grid) Subscribe(fn func(TileChange)) {
	if fn == nil {
		return
	}
	g.listeners = append(g.listeners, fn)
}

// Count 统计满足条件的格子数
func (g *Grid) Count(match func(Tile) bool) int {
	n := 0
	for _, t := range g.tiles {
		if match(t) {
			n++
		}
	}
	return n
}
