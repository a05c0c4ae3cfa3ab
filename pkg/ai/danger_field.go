package ai

import (
	"time"

	"killercritters/pkg/core"
)

// pendingBomb 一颗尚未爆炸的炸弹（真实的或假设的）
type pendingBomb struct {
	Pos        core.GridPos
	Firepower  int
	DetonateAt time.Time
}

// DangerField 每个格子最早会被爆炸覆盖的时刻
type DangerField struct {
	Now      time.Time
	Fuse     time.Duration
	Earliest map[core.GridPos]time.Time
}

// Update 从地图重新计算危险场；extra 为假设放下的炸弹
// fullChain 为 true 时反复传播连锁直到稳定，否则只传播一层
func (df *DangerField) Update(grid *core.Grid, now time.Time, fuse time.Duration, fullChain bool, extra ...pendingBomb) {
	df.Now = now
	df.Fuse = fuse
	df.Earliest = make(map[core.GridPos]time.Time)

	bombs := append(scanBombs(grid), extra...)
	cells := make([][]core.GridPos, len(bombs))
	actual := make([]time.Time, len(bombs))
	at := make(map[core.GridPos]int, len(bombs))
	for i, b := range bombs {
		cells[i] = core.BlastCells(grid, b.Pos, b.Firepower)
		actual[i] = b.DetonateAt
		at[b.Pos] = i
	}

	// 连锁爆炸：被波及的炸弹提前到引爆它的炸弹的时刻
	for changed := true; changed; {
		changed = false
		for i := range bombs {
			for _, cell := range cells[i] {
				j, ok := at[cell]
				if !ok || j == i {
					continue
				}
				if actual[i].Before(actual[j]) {
					actual[j] = actual[i]
					changed = true
				}
			}
		}
		if !fullChain {
			break
		}
	}

	for i := range bombs {
		for _, cell := range cells[i] {
			df.mark(cell, actual[i])
		}
	}

	// 正在燃烧的格子立即危险
	for pos := range grid.Positions() {
		if tile, _ := grid.TileAt(pos); tile.Kind == core.TileExplosion {
			df.mark(pos, now)
		}
	}
}

func (df *DangerField) mark(pos core.GridPos, when time.Time) {
	if prev, ok := df.Earliest[pos]; !ok || when.Before(prev) {
		df.Earliest[pos] = when
	}
}

func scanBombs(grid *core.Grid) []pendingBomb {
	var bombs []pendingBomb
	for pos := range grid.Positions() {
		tile, _ := grid.TileAt(pos)
		if tile.Kind != core.TileBomb || tile.Bomb == nil {
			continue
		}
		bombs = append(bombs, pendingBomb{Pos: pos, Firepower: tile.Bomb.Firepower, DetonateAt: tile.Bomb.DetonateAt})
	}
	return bombs
}

// Level 危险程度 0~1，越接近爆炸越高
func (df *DangerField) Level(pos core.GridPos) float64 {
	when, ok := df.Earliest[pos]
	if !ok {
		return 0
	}
	remaining := when.Sub(df.Now)
	if remaining <= 0 {
		return 1
	}
	if df.Fuse <= 0 || remaining >= df.Fuse {
		return 0
	}
	return 1 - float64(remaining)/float64(df.Fuse)
}

// InDanger 格子是否会被任何已知的爆炸覆盖
func (df *DangerField) InDanger(pos core.GridPos) bool {
	_, ok := df.Earliest[pos]
	return ok
}

// SafeAt 在 t 时刻到达该格子是否还来得及
func (df *DangerField) SafeAt(pos core.GridPos, t time.Time) bool {
	when, ok := df.Earliest[pos]
	return !ok || t.Before(when)
}
