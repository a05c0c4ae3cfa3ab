package ai

import (
	"killercritters/pkg/ai/bt"
	"killercritters/pkg/core"
)

func condHasBombCapacity(bb *Blackboard) bool {
	return bb.Player.NumBombs > 0
}

func actFindTarget(bb *Blackboard) bt.Status {
	finders := []func(*Blackboard) *core.GridPos{findEnemyTarget, findBrickTarget}
	if bb.Config.PreferBricks {
		finders[0], finders[1] = finders[1], finders[0]
	}
	for _, find := range finders {
		if target := find(bb); target != nil {
			bb.Target = target
			return bt.StatusSuccess
		}
	}
	return bt.StatusFailure
}

// actPreCheckEscape 到达目标后，先确认放下炸弹还能逃掉
func actPreCheckEscape(bb *Blackboard) bt.Status {
	if bb.Target == nil {
		return bt.StatusFailure
	}
	if *bb.Target != bb.Pos {
		return bt.StatusSuccess
	}

	cfg := bb.Game.Config
	var temp DangerField
	temp.Update(bb.grid(), bb.Now, cfg.BombFuse, bb.Config.FullChainRecursion, pendingBomb{
		Pos:        bb.Pos,
		Firepower:  bb.Player.Firepower,
		DetonateAt: bb.Now.Add(cfg.BombFuse),
	})
	if !canEscapeAfterPlacement(bb.grid(), &temp, bb.Pos, cfg.CellCrossTime()) {
		return bt.StatusFailure
	}
	return bt.StatusSuccess
}

func actMoveToTarget(bb *Blackboard) bt.Status {
	if bb.Target == nil {
		return bt.StatusFailure
	}
	if *bb.Target == bb.Pos {
		return bt.StatusSuccess
	}
	step, ok := nextStepToward(bb.grid(), bb.Pos, *bb.Target)
	if !ok {
		return bt.StatusFailure
	}
	bb.Step = &step
	return bt.StatusRunning
}

func actPlaceBomb(bb *Blackboard) bt.Status {
	if bb.Target == nil || *bb.Target != bb.Pos {
		return bt.StatusFailure
	}
	bb.DropBomb = true
	bb.EscapeTo = nil
	return bt.StatusSuccess
}

// findEnemyTarget 能炸到其他存活玩家的最近位置
func findEnemyTarget(bb *Blackboard) *core.GridPos {
	enemies := make(map[core.GridPos]bool)
	for _, p := range bb.Game.Players {
		if p.ID == bb.Player.ID || !p.Alive {
			continue
		}
		if pos, ok := p.GridPosition(bb.grid()); ok {
			enemies[pos] = true
		}
	}
	if len(enemies) == 0 {
		return nil
	}
	return findBombSpot(bb.grid(), bb.Danger, bb.Pos, bb.Player.Firepower, func(pos core.GridPos, _ core.Tile) bool {
		return enemies[pos]
	})
}

// findBrickTarget 能炸到砖块的最近位置
func findBrickTarget(bb *Blackboard) *core.GridPos {
	return findBombSpot(bb.grid(), bb.Danger, bb.Pos, bb.Player.Firepower, func(_ core.GridPos, tile core.Tile) bool {
		return tile.Kind == core.TileBreakableWall
	})
}
