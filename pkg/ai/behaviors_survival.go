package ai

import "killercritters/pkg/ai/bt"

func condInDanger(bb *Blackboard) bool {
	return bb.Danger.InDanger(bb.Pos)
}

func actFindSafe(bb *Blackboard) bt.Status {
	// 之前的逃生目标仍然安全就继续用
	if bb.EscapeTo != nil && !bb.Danger.InDanger(*bb.EscapeTo) {
		if _, ok := nextStepToward(bb.grid(), bb.Pos, *bb.EscapeTo); ok {
			return bt.StatusSuccess
		}
	}
	bb.EscapeTo = findNearestSafe(bb.grid(), bb.Danger, bb.Pos)
	if bb.EscapeTo == nil {
		return bt.StatusFailure
	}
	return bt.StatusSuccess
}

func actMoveToSafe(bb *Blackboard) bt.Status {
	if bb.EscapeTo == nil {
		return bt.StatusFailure
	}
	step, ok := nextStepToward(bb.grid(), bb.Pos, *bb.EscapeTo)
	if !ok {
		bb.EscapeTo = nil
		return bt.StatusFailure
	}
	bb.Step = &step
	return bt.StatusRunning
}
