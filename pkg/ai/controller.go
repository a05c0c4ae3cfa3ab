package ai

import (
	"math/rand"
	"time"

	"killercritters/pkg/ai/bt"
	"killercritters/pkg/core"
)

// 到达格子中心的容差（格子）
const arriveTolerance = 0.1

// AIController 电脑玩家：每隔若干帧运行一次行为树，其余帧沿着上次的决策移动
// Decide 读取 Game 的地图和玩家，必须和 Game.Tick 在同一个 goroutine 中调用
type AIController struct {
	Controller core.Controller

	rnd    *rand.Rand
	config AIConfig

	thinkCounter int
	plan         *core.GridPos
	dropPending  bool
	lastInDanger bool
	lastBombs    int

	blackboard Blackboard
	tree       bt.Node[*Blackboard]
	danger     DangerField
}

// NewAIController 创建 AI 控制器，index 区分不同的电脑玩家
func NewAIController(index int, config AIConfig, seed int64) *AIController {
	c := &AIController{
		Controller: core.Controller{Kind: core.ControllerComputer, Index: index},
		rnd:        rand.New(rand.NewSource(seed + int64(index))),
		config:     config,
	}
	c.blackboard = Blackboard{
		RNG:    c.rnd,
		Danger: &c.danger,
		Config: &c.config,
	}

	c.tree = bt.Select[*Blackboard](
		bt.Seq[*Blackboard](
			bt.If(condInDanger),
			bt.Do(actFindSafe),
			bt.Do(actMoveToSafe),
		),
		bt.Seq[*Blackboard](
			bt.If(condHasBombCapacity),
			bt.Do(actFindTarget),
			bt.Do(actPreCheckEscape),
			bt.Do(actMoveToTarget),
			bt.Do(actPlaceBomb),
		),
		bt.Do(actWander),
	)
	return c
}

// Config 当前配置
func (c *AIController) Config() AIConfig {
	return c.config
}

// SetConfig 设置新配置，下一帧立即重新思考
func (c *AIController) SetConfig(config AIConfig) {
	c.config = config
	c.thinkCounter = config.ThinkIntervalTicks
}

// Decide 计算本帧的意图
func (c *AIController) Decide(game *core.Game, now time.Time) core.Intent {
	intent := core.Intent{Controller: c.Controller}

	player := game.PlayerByController(c.Controller)
	if player == nil || !player.Alive {
		return intent
	}
	grid := game.Grid
	pos, ok := player.GridPosition(grid)
	if !ok {
		return intent
	}

	inDanger := c.danger.InDanger(pos)
	bombs := len(scanBombs(grid))
	force := (inDanger && !c.lastInDanger) || bombs != c.lastBombs || c.arrived(player, pos)
	c.lastInDanger = inDanger
	c.lastBombs = bombs

	c.thinkCounter++
	if force || c.thinkCounter >= c.config.ThinkIntervalTicks {
		c.think(game, player, pos, now)
	}

	target := pos
	if c.plan != nil {
		target = *c.plan
	}
	intent.Motion = steer(player.Pos, target, game.Config.MotionPerTick)

	if c.dropPending {
		intent.Action = core.ActionDropBomb
		c.dropPending = false
	}
	return intent
}

func (c *AIController) think(game *core.Game, player *core.Player, pos core.GridPos, now time.Time) {
	c.thinkCounter = 0
	c.danger.Update(game.Grid, now, game.Config.BombFuse, c.config.FullChainRecursion)
	c.blackboard.ResetThink(game, player, pos, now)

	_ = c.tree.Tick(&c.blackboard)

	c.plan = c.blackboard.Step
	c.dropPending = c.blackboard.DropBomb

	// 应用随机失误
	if c.config.MistakeRate > 0 && c.rnd.Float64() < c.config.MistakeRate {
		switch c.rnd.Intn(3) {
		case 0:
			// 什么都不做
			c.plan = nil
			c.dropPending = false
		case 1:
			// 随机方向
			step := pos.Add(neighbours[c.rnd.Intn(len(neighbours))])
			c.plan = &step
		case 2:
			// 保持原决策
		}
	}
}

// arrived 已经走到计划的格子中心
func (c *AIController) arrived(player *core.Player, pos core.GridPos) bool {
	if c.plan == nil || *c.plan != pos {
		return false
	}
	return player.Pos.Sub(pos.AsVec2()).Length() <= arriveTolerance
}

// steer 朝格子中心移动，快到时减速以免越过中心
func steer(from core.Vec2, cell core.GridPos, motionPerTick float64) core.Vec2 {
	delta := cell.AsVec2().Sub(from)
	if delta.Length() < 1e-6 || motionPerTick <= 0 {
		return core.Vec2{}
	}
	return delta.Scale(1 / motionPerTick).ClampLength(1)
}
