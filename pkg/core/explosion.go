package core

import "time"

// 四个方向扩散
var blastDirections = [4]GridPos{
	{GridX: 0, GridY: 1},  // 下
	{GridX: 0, GridY: -1}, // 上
	{GridX: 1, GridY: 0},  // 右
	{GridX: -1, GridY: 0}, // 左
}

// Detonation 一次爆炸的记录，供表现层播放音效/动画
type Detonation struct {
	Origin   GridPos   // 炸弹所在格子
	OwnerID  int       // 炸弹所有者
	Cells    []GridPos // 变成爆炸的格子（含中心）
	Revealed []GridPos // 被炸毁的砖块
	Chained  []GridPos // 被波及而提前引爆的炸弹
}

// TickReport 一次推进的结果
type TickReport struct {
	Detonations []Detonation
	Burnouts    int // 燃尽恢复的格子数
}

// AdvanceTiles 推进所有格子的计时器：炸弹到时爆炸，爆炸到时燃尽
//
// 按 Positions 的列优先顺序单次遍历并原地修改。被波及的炸弹把 DetonateAt
// 设为 now：如果它还没被遍历到，会在本次遍历中爆炸；已经遍历过的要到下一次。
// onDetonate 在每颗炸弹爆炸时调用一次（用来归还炸弹数）。
func AdvanceTiles(g *Grid, now time.Time, burn time.Duration, onDetonate func(*Bomb)) TickReport {
	var report TickReport
	for pos := range g.Positions() {
		tile := g.mustTile(pos)
		switch tile.Kind {
		case TileBomb:
			if tile.Bomb == nil || !tile.Bomb.Due(now) {
				continue
			}
			report.Detonations = append(report.Detonations, detonate(g, pos, tile.Bomb, now, burn, onDetonate))
		case TileExplosion:
			if !now.Before(tile.BurnUntil) {
				g.SetTile(pos, tile.Residue())
				report.Burnouts++
			}
		}
	}
	return report
}

func detonate(g *Grid, origin GridPos, bomb *Bomb, now time.Time, burn time.Duration, onDetonate func(*Bomb)) Detonation {
	burnUntil := now.Add(burn)
	g.SetTile(origin, ExplosionTile(burnUntil, EmptyTile()))
	if onDetonate != nil {
		onDetonate(bomb)
	}

	d := Detonation{
		Origin:  origin,
		OwnerID: bomb.OwnerID,
		Cells:   []GridPos{origin},
	}

	for _, dir := range blastDirections {
	ray:
		for dist := 1; dist <= bomb.Firepower; dist++ {
			pos := origin.Add(dir.Scale(dist))
			if !g.Contains(pos) {
				break
			}

			tile := g.mustTile(pos)
			switch tile.Kind {
			case TileEmpty, TilePowerUp:
				g.SetTile(pos, ExplosionTile(burnUntil, EmptyTile()))
				d.Cells = append(d.Cells, pos)
			case TileBreakableWall:
				// 炸毁砖块后停止该方向
				g.SetTile(pos, ExplosionTile(burnUntil, tile.Hidden()))
				d.Cells = append(d.Cells, pos)
				d.Revealed = append(d.Revealed, pos)
				break ray
			case TileSolidWall:
				break ray
			case TileBomb:
				// 炸弹不阻挡爆炸
				if tile.Bomb != nil {
					tile.Bomb.Force(now)
					d.Chained = append(d.Chained, pos)
				}
			}
		}
	}
	return d
}

// BlastCells 计算一颗炸弹在当前地图上会覆盖的格子，不修改地图
// 与 AdvanceTiles 的射线规则一致，用于 AI 危险预测和渲染预览
func BlastCells(g *Grid, origin GridPos, firepower int) []GridPos {
	if !g.Contains(origin) {
		return nil
	}
	cells := []GridPos{origin}
	for _, dir := range blastDirections {
		for dist := 1; dist <= firepower; dist++ {
			pos := origin.Add(dir.Scale(dist))
			if !g.Contains(pos) {
				break
			}
			tile := g.mustTile(pos)
			if tile.Kind == TileSolidWall {
				break
			}
			cells = append(cells, pos)
			if tile.Kind == TileBreakableWall {
				break
			}
		}
	}
	return cells
}
