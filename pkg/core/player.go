package core

import "time"

// Player 玩家（纯逻辑，不包含渲染）
type Player struct {
	ID         int           // 玩家ID
	Controller Controller    // 输入源
	Character  CharacterType // 角色类型
	Pos        Vec2          // 连续坐标（格子单位）
	Facing     Vec2          // 最后一次移动的方向
	IsMoving   bool          // 本帧是否在移动
	Alive      bool          // 是否存活

	NumBombs  int // 当前可放置的炸弹数
	Firepower int // 炸弹爆炸范围
}

// NewPlayer 创建新玩家
func NewPlayer(id int, controller Controller, character CharacterType, spawn GridPos, cfg Config) *Player {
	p := &Player{
		ID:         id,
		Controller: controller,
		Character:  character,
	}
	p.Reset(spawn, cfg)
	return p
}

// Reset 回到出生点并恢复初始属性
func (p *Player) Reset(spawn GridPos, cfg Config) {
	p.Pos = spawn.AsVec2()
	p.Facing = Vec2{Y: 1}
	p.IsMoving = false
	p.Alive = true
	p.NumBombs = cfg.StartBombs
	p.Firepower = cfg.StartFirepower
}

// GridPosition 获取玩家所在格子
func (p *Player) GridPosition(g *Grid) (GridPos, bool) {
	return g.CoordFromPosition(p.Pos)
}

// Move 按本帧的移动向量移动玩家，返回移动后所在的格子
//
// 目标点落在离边界 FreeSpaceBorder 以内时，改为沿 SDF 推出方向移动同样的距离，
// 这样玩家会沿墙滑动而不是穿进墙里。站在炸弹上时该格子视为可走。
// 目标离开地图时位置不变。
func (p *Player) Move(g *Grid, motion Vec2, cfg Config) (GridPos, bool) {
	if !p.Alive {
		return GridPos{}, false
	}

	cur := p.Pos
	target := cur.Add(motion.Scale(cfg.MotionPerTick))
	p.IsMoving = !motion.IsZero()
	if p.IsMoving {
		p.Facing = motion.Normalize()
	}

	icur, okCur := g.CoordFromPosition(cur)
	inew, okNew := g.CoordFromPosition(target)
	if !okCur || !okNew {
		p.IsMoving = false
		return GridPos{}, false
	}

	var exempt *GridPos
	if tile := g.mustTile(icur); tile.Kind == TileBomb {
		exempt = &icur
	}

	sdf, push := Probe(g, target, exempt, cfg.ProbeRadius)
	if -cfg.FreeSpaceBorder < sdf && sdf < 0 {
		slid := cur.Add(push.Scale(cfg.MotionPerTick))
		idx, ok := g.CoordFromPosition(slid)
		if !ok {
			p.IsMoving = false
			return icur, true
		}
		target, inew = slid, idx
	}

	p.Pos = target
	return inew, true
}

// PlaceBomb 在指定格子放置炸弹（返回是否成功）
// 只能放在空地上，且需要有剩余炸弹
func (p *Player) PlaceBomb(g *Grid, at GridPos, now time.Time, cfg Config) bool {
	if !p.Alive || p.NumBombs <= 0 {
		return false
	}
	tile, ok := g.TileAt(at)
	if !ok || tile.Kind != TileEmpty {
		return false
	}
	g.SetTile(at, BombTile(NewBomb(p.ID, p.Firepower, now, cfg.BombFuse)))
	p.NumBombs--
	return true
}

// Pickup 拾取脚下的道具，返回是否拾取成功
func (p *Player) Pickup(g *Grid) bool {
	if !p.Alive {
		return false
	}
	pos, ok := p.GridPosition(g)
	if !ok {
		return false
	}
	tile := g.mustTile(pos)
	if tile.Kind != TilePowerUp {
		return false
	}
	switch tile.PowerUp {
	case PowerUpFirepower:
		p.Firepower++
	case PowerUpExtraBomb:
		p.NumBombs++
	}
	g.SetTile(pos, EmptyTile())
	return true
}

// InExplosion 脚下是否正在爆炸
func (p *Player) InExplosion(g *Grid) bool {
	pos, ok := p.GridPosition(g)
	if !ok {
		return false
	}
	return g.mustTile(pos).Kind == TileExplosion
}
