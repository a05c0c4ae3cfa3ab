package core

import (
	"fmt"
	"time"
)

// TileKind 格子内容的种类
type TileKind int

const (
	TileEmpty         TileKind = iota // 空地
	TileSolidWall                     // 不可破坏的墙
	TileBreakableWall                 // 砖块，被炸后露出隐藏内容
	TileBomb                          // 炸弹
	TileExplosion                     // 正在燃烧的爆炸
	TilePowerUp                       // 道具
)

func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "Empty"
	case TileSolidWall:
		return "SolidWall"
	case TileBreakableWall:
		return "BreakableWall"
	case TileBomb:
		return "Bomb"
	case TileExplosion:
		return "Explosion"
	case TilePowerUp:
		return "PowerUp"
	}
	return fmt.Sprintf("TileKind(%d)", int(k))
}

// PowerUpKind 道具种类
type PowerUpKind int

const (
	PowerUpFirepower PowerUpKind = iota // 火力 +1
	PowerUpExtraBomb                    // 炸弹数 +1
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpFirepower:
		return "Firepower"
	case PowerUpExtraBomb:
		return "ExtraBomb"
	}
	return fmt.Sprintf("PowerUpKind(%d)", int(k))
}

// Tile 一个格子的状态
// 只有与 Kind 对应的字段有意义：
//   - TilePowerUp: PowerUp
//   - TileBomb: Bomb（nil 表示不会爆炸的哑弹）
//   - TileBreakableWall: Inner 为隐藏内容
//   - TileExplosion: BurnUntil 与 Inner（燃尽后恢复的残留）
type Tile struct {
	Kind      TileKind
	PowerUp   PowerUpKind
	Bomb      *Bomb
	BurnUntil time.Time
	Inner     *Tile
}

func EmptyTile() Tile     { return Tile{Kind: TileEmpty} }
func SolidWallTile() Tile { return Tile{Kind: TileSolidWall} }

func BreakableWallTile(hidden Tile) Tile {
	return Tile{Kind: TileBreakableWall, Inner: &hidden}
}

func BombTile(b *Bomb) Tile {
	return Tile{Kind: TileBomb, Bomb: b}
}

func ExplosionTile(burnUntil time.Time, residue Tile) Tile {
	return Tile{Kind: TileExplosion, BurnUntil: burnUntil, Inner: &residue}
}

func PowerUpTile(kind PowerUpKind) Tile {
	return Tile{Kind: TilePowerUp, PowerUp: kind}
}

// Hidden 砖块里藏着的内容
func (t Tile) Hidden() Tile {
	if t.Kind != TileBreakableWall || t.Inner == nil {
		return EmptyTile()
	}
	return *t.Inner
}

// Residue 爆炸燃尽后恢复的内容
func (t Tile) Residue() Tile {
	if t.Kind != TileExplosion || t.Inner == nil {
		return EmptyTile()
	}
	return *t.Inner
}

// Walkable 是否可以行走（空地或道具）
func (t Tile) Walkable() bool {
	return t.Kind == TileEmpty || t.Kind == TilePowerUp
}

// BlocksBlast 是否阻挡爆炸射线
func (t Tile) BlocksBlast() bool {
	return t.Kind == TileSolidWall || t.Kind == TileBreakableWall
}

// Equal 比较两个格子的状态
func (t Tile) Equal(o Tile) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case TilePowerUp:
		return t.PowerUp == o.PowerUp
	case TileBomb:
		return t.Bomb == o.Bomb
	case TileBreakableWall:
		return t.Hidden().Equal(o.Hidden())
	case TileExplosion:
		return t.BurnUntil.Equal(o.BurnUntil) && t.Residue().Equal(o.Residue())
	}
	return true
}

func (t Tile) String() string {
	switch t.Kind {
	case TilePowerUp:
		return fmt.Sprintf("PowerUp(%s)", t.PowerUp)
	case TileBomb:
		if t.Bomb == nil {
			return "Bomb(nil)"
		}
		return fmt.Sprintf("Bomb(owner=%d, firepower=%d)", t.Bomb.OwnerID, t.Bomb.Firepower)
	case TileBreakableWall:
		return fmt.Sprintf("BreakableWall(%s)", t.Hidden())
	case TileExplosion:
		return fmt.Sprintf("Explosion(%s)", t.Residue())
	}
	return t.Kind.String()
}
