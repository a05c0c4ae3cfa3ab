package ai

import (
	"math/rand"
	"time"

	"killercritters/pkg/core"
)

type Blackboard struct {
	Game   *core.Game
	Player *core.Player
	Now    time.Time
	RNG    *rand.Rand
	Danger *DangerField
	Config *AIConfig

	Pos      core.GridPos  // 玩家所在格子
	Target   *core.GridPos // 放炸弹的位置
	EscapeTo *core.GridPos // 逃生目标
	Step     *core.GridPos // 下一步要走到的格子
	DropBomb bool

	// 游荡方向
	WanderDirection core.GridPos
	WanderTicks     int
}

// ResetThink 每次思考前清空上一次的决策
func (bb *Blackboard) ResetThink(game *core.Game, player *core.Player, pos core.GridPos, now time.Time) {
	bb.Game = game
	bb.Player = player
	bb.Pos = pos
	bb.Now = now
	bb.Target = nil
	bb.Step = nil
	bb.DropBomb = false
	// EscapeTo 和游荡方向跨思考保留，到达或失效时才清空
}

func (bb *Blackboard) grid() *core.Grid {
	return bb.Game.Grid
}
