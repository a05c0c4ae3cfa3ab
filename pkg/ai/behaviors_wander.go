package ai

import (
	"killercritters/pkg/ai/bt"
	"killercritters/pkg/core"
)

// 游荡时保持同一方向的思考次数
const wanderDirectionThinks = 3

func actWander(bb *Blackboard) bt.Status {
	if bb.RNG == nil {
		return bt.StatusFailure
	}

	// 如果当前方向仍然可行且未超时，继续保持
	if bb.WanderTicks > 0 && bb.WanderDirection != (core.GridPos{}) {
		bb.WanderTicks--
		next := bb.Pos.Add(bb.WanderDirection)
		if canWanderTo(bb, next) {
			bb.Step = &next
			return bt.StatusRunning
		}
		bb.WanderDirection = core.GridPos{}
		bb.WanderTicks = 0
	}

	var safe, walkable []core.GridPos
	for _, d := range neighbours {
		next := bb.Pos.Add(d)
		if !isWalkable(bb.grid(), next) {
			continue
		}
		walkable = append(walkable, d)
		if canWanderTo(bb, next) {
			safe = append(safe, d)
		}
	}

	choices := safe
	if len(choices) == 0 {
		choices = walkable
	}
	if len(choices) == 0 {
		// 完全被困，原地不动
		return bt.StatusRunning
	}

	bb.WanderDirection = choices[bb.RNG.Intn(len(choices))]
	bb.WanderTicks = wanderDirectionThinks
	next := bb.Pos.Add(bb.WanderDirection)
	bb.Step = &next
	return bt.StatusRunning
}

func canWanderTo(bb *Blackboard, pos core.GridPos) bool {
	return isWalkable(bb.grid(), pos) && !bb.Danger.InDanger(pos)
}
