package ai

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"killercritters/pkg/core"
)

// 上下左右
var neighbours = [4]core.GridPos{
	{GridX: 0, GridY: -1},
	{GridX: 0, GridY: 1},
	{GridX: -1, GridY: 0},
	{GridX: 1, GridY: 0},
}

type stepNode struct {
	Pos   core.GridPos
	Prev  *stepNode
	Steps int
}

// isWalkable 寻路时可以经过的格子（炸弹、墙、爆炸都不行）
func isWalkable(grid *core.Grid, pos core.GridPos) bool {
	tile, ok := grid.TileAt(pos)
	return ok && tile.Walkable()
}

// bfs 从 start 出发按步数扩散，visit 返回 true 时停止并返回该节点
// start 本身总是可以站立（可能正站在自己的炸弹上）
func bfs(grid *core.Grid, start core.GridPos, visit func(n *stepNode) bool, enter func(pos core.GridPos, steps int) bool) *stepNode {
	visited := mapset.New[core.GridPos]()
	visited.Put(start)
	queue := []*stepNode{{Pos: start}}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if visit(n) {
			return n
		}
		for _, d := range neighbours {
			next := n.Pos.Add(d)
			if visited.Has(next) || !isWalkable(grid, next) {
				continue
			}
			if enter != nil && !enter(next, n.Steps+1) {
				continue
			}
			visited.Put(next)
			queue = append(queue, &stepNode{Pos: next, Prev: n, Steps: n.Steps + 1})
		}
	}
	return nil
}

// firstStep 回溯到 start 之后的第一步
func firstStep(n *stepNode) core.GridPos {
	for n.Prev != nil && n.Prev.Prev != nil {
		n = n.Prev
	}
	return n.Pos
}

func nextStepToward(grid *core.Grid, start, target core.GridPos) (core.GridPos, bool) {
	if start == target {
		return start, true
	}
	n := bfs(grid, start, func(n *stepNode) bool { return n.Pos == target }, nil)
	if n == nil {
		return core.GridPos{}, false
	}
	return firstStep(n), true
}

// findNearestSafe 最近的不在危险区内的格子
func findNearestSafe(grid *core.Grid, danger *DangerField, start core.GridPos) *core.GridPos {
	n := bfs(grid, start, func(n *stepNode) bool { return !danger.InDanger(n.Pos) }, nil)
	if n == nil {
		return nil
	}
	pos := n.Pos
	return &pos
}

// canEscapeAfterPlacement 放下炸弹后能否在爆炸前走到安全的格子
// 沿途每一格都必须在到达时还没有爆炸
func canEscapeAfterPlacement(grid *core.Grid, danger *DangerField, start core.GridPos, cellTime time.Duration) bool {
	maxSteps := int(danger.Fuse / cellTime)
	arrival := func(steps int) time.Time {
		return danger.Now.Add(time.Duration(steps+1) * cellTime)
	}
	n := bfs(grid, start,
		func(n *stepNode) bool { return !danger.InDanger(n.Pos) },
		func(pos core.GridPos, steps int) bool {
			return steps <= maxSteps && danger.SafeAt(pos, arrival(steps))
		},
	)
	return n != nil
}

// findBombSpot 最近的一个安全空地，在那里放炸弹能炸到 wanted 的格子
func findBombSpot(grid *core.Grid, danger *DangerField, start core.GridPos, firepower int, wanted func(pos core.GridPos, tile core.Tile) bool) *core.GridPos {
	n := bfs(grid, start, func(n *stepNode) bool {
		tile, _ := grid.TileAt(n.Pos)
		if tile.Kind != core.TileEmpty || danger.InDanger(n.Pos) {
			return false
		}
		for _, cell := range core.BlastCells(grid, n.Pos, firepower) {
			if cell == n.Pos {
				continue
			}
			if t, _ := grid.TileAt(cell); wanted(cell, t) {
				return true
			}
		}
		return false
	}, func(pos core.GridPos, _ int) bool { return !danger.InDanger(pos) })
	if n == nil {
		return nil
	}
	pos := n.Pos
	return &pos
}
