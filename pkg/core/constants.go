package core

import "time"

// 地图配置
const (
	DefaultMapWidth  = 19
	DefaultMapHeight = 13
)

// 地图生成概率
const (
	DefaultRubbleDensity   = 0.8  // 砖块密度
	DefaultFirepowerChance = 0.08 // 火力道具
	DefaultExtraBombChance = 0.08 // 炸弹道具
	DefaultSpawnClearance  = 1    // 出生点保护距离
)

// 游戏帧率
const (
	TPS          = 60
	TickDuration = time.Second / TPS
)

// 移动配置（单位：格子）
const (
	DefaultMotionPerTick   = 1.0 / 20 // 每帧移动距离
	DefaultFreeSpaceBorder = 0.4      // 离墙小于该距离时沿推出方向滑动
	DefaultProbeRadius     = 2        // SDF 搜索半径
)

// 炸弹配置
const (
	DefaultBombFuse          = 3 * time.Second
	DefaultExplosionDuration = 100 * time.Millisecond
	DefaultStartBombs        = 1
	DefaultStartFirepower    = 1
)

// 玩家数量上限（出生点只有四个）
const DefaultMaxPlayers = 4
