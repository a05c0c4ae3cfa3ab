package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("配置无效")

// Config 一局游戏的参数
type Config struct {
	Width  int
	Height int
	Recipe MapRecipe

	BombFuse          time.Duration // 引线时间
	ExplosionDuration time.Duration // 爆炸燃烧时间

	MotionPerTick   float64 // 每帧移动距离（格子）
	FreeSpaceBorder float64 // 贴墙滑动的边距
	ProbeRadius     int     // SDF 搜索半径

	StartBombs     int
	StartFirepower int
	MaxPlayers     int
}

// DefaultConfig 默认配置
func DefaultConfig() Config {
	return Config{
		Width:             DefaultMapWidth,
		Height:            DefaultMapHeight,
		Recipe:            DefaultRecipe(),
		BombFuse:          DefaultBombFuse,
		ExplosionDuration: DefaultExplosionDuration,
		MotionPerTick:     DefaultMotionPerTick,
		FreeSpaceBorder:   DefaultFreeSpaceBorder,
		ProbeRadius:       DefaultProbeRadius,
		StartBombs:        DefaultStartBombs,
		StartFirepower:    DefaultStartFirepower,
		MaxPlayers:        DefaultMaxPlayers,
	}
}

// Validate 检查配置是否合法
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: 地图尺寸 %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.BombFuse <= 0:
		return fmt.Errorf("%w: 引线时间 %v", ErrInvalidConfig, c.BombFuse)
	case c.ExplosionDuration <= 0:
		return fmt.Errorf("%w: 燃烧时间 %v", ErrInvalidConfig, c.ExplosionDuration)
	case c.MotionPerTick <= 0 || c.MotionPerTick >= 1:
		return fmt.Errorf("%w: 每帧移动距离 %v", ErrInvalidConfig, c.MotionPerTick)
	case c.FreeSpaceBorder < 0:
		return fmt.Errorf("%w: 滑动边距 %v", ErrInvalidConfig, c.FreeSpaceBorder)
	case c.ProbeRadius < 1:
		return fmt.Errorf("%w: 搜索半径 %d", ErrInvalidConfig, c.ProbeRadius)
	case c.StartBombs < 0 || c.StartFirepower < 1:
		return fmt.Errorf("%w: 初始炸弹 %d 火力 %d", ErrInvalidConfig, c.StartBombs, c.StartFirepower)
	case c.MaxPlayers < 1:
		return fmt.Errorf("%w: 玩家上限 %d", ErrInvalidConfig, c.MaxPlayers)
	}
	for name, p := range map[string]float64{
		"砖块密度": c.Recipe.RubbleDensity,
		"火力道具": c.Recipe.FirepowerChance,
		"炸弹道具": c.Recipe.ExtraBombChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s概率 %v", ErrInvalidConfig, name, p)
		}
	}
	return nil
}

// CellCrossTime 以默认帧率走完一个格子需要的时间
func (c Config) CellCrossTime() time.Duration {
	return time.Duration(float64(TickDuration) / c.MotionPerTick)
}
