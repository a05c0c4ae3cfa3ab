package core

// Surface SDF 探针读取的地图视图，*Grid 实现了它
type Surface interface {
	Contains(pos GridPos) bool
	CoordFromPosition(pos Vec2) (GridPos, bool)
	TileAt(pos GridPos) (Tile, bool)
}

// 搜索窗口内没有边界时返回的饱和距离
const saturatedDistance = 2.0

// ClosestDistToTile 点到格子单位正方形（中心 ±0.5）的最近距离，点在格子内为 0
func ClosestDistToTile(pos Vec2, cell GridPos) float64 {
	tileMin := cell.AsVec2().Sub(Vec2{X: 0.5, Y: 0.5})
	tileMax := tileMin.Add(Vec2{X: 1, Y: 1})
	closest := pos.Clamp(tileMin, tileMax)
	return pos.Sub(closest).Length()
}

// walkableAt exempt 用来处理玩家站在自己刚放下的炸弹上的情况
func walkableAt(tile Tile, pos GridPos, exempt *GridPos) bool {
	return tile.Walkable() || (exempt != nil && *exempt == pos)
}

// Probe 估算 target 到最近的可走/不可走边界的有符号距离
//
// 在可走区域内为负，在障碍内为正；radius 为搜索窗口半径（格子）。
// 返回的推出方向从边界格子指向 target，距离为 0 时为零向量。
// 窗口内没有边界时返回 ∓2（深处），推出方向为零。
func Probe(s Surface, target Vec2, exempt *GridPos, radius int) (float64, Vec2) {
	center, ok := s.CoordFromPosition(target)
	if !ok {
		center = GridPos{}
	}

	inEmpty := true
	if tile, ok := s.TileAt(center); ok {
		inEmpty = walkableAt(tile, center, exempt)
	}

	found := false
	minDist := 0.0
	var closest GridPos
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			pos := center.Add(GridPos{GridX: dx, GridY: dy})
			if !s.Contains(pos) {
				continue
			}
			tile, ok := s.TileAt(pos)
			if !ok || walkableAt(tile, pos, exempt) == inEmpty {
				continue
			}
			dist := ClosestDistToTile(target, pos)
			if !found || dist < minDist {
				found = true
				minDist = dist
				closest = pos
			}
		}
	}

	if !found {
		if inEmpty {
			return -saturatedDistance, Vec2{}
		}
		return saturatedDistance, Vec2{}
	}

	sdf := minDist
	if inEmpty {
		sdf = -minDist
	}
	if sdf == 0 {
		return sdf, Vec2{}
	}
	return sdf, target.Sub(closest.AsVec2()).Normalize()
}

// SDFField 整张地图的 SDF 采样结果，行优先
type SDFField struct {
	Width, Height int
	Values        []float64
}

// At 取采样值
func (f SDFField) At(x, y int) float64 {
	return f.Values[y*f.Width+x]
}

// SampleSDF 以每格 scale 个采样点对整张地图求 SDF，用于调试叠加层
// 采样点 (x, y) 对应连续坐标 (x/scale-0.5, y/scale-0.5)
func SampleSDF(g *Grid, scale, radius int) SDFField {
	if scale < 1 {
		scale = 1
	}
	w := g.Width() * scale
	h := g.Height() * scale
	field := SDFField{Width: w, Height: h, Values: make([]float64, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pos := Vec2{X: float64(x)/float64(scale) - 0.5, Y: float64(y)/float64(scale) - 0.5}
			sdf, _ := Probe(g, pos, nil, radius)
			field.Values[y*w+x] = sdf
		}
	}
	return field
}
