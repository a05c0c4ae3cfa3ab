package ai

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty 未知的难度名称
var ErrUnknownDifficulty = errors.New("未知的 AI 难度")

// AIConfig 定义 AI 的行为参数，用于控制 AI 的智力水平
type AIConfig struct {
	// ThinkIntervalTicks 思考间隔（帧），值越小 AI 反应越快
	ThinkIntervalTicks int

	// MistakeRate 随机失误率 (0.0-1.0)，值越高 AI 越容易犯错
	MistakeRate float64

	// FullChainRecursion 是否启用完整连锁爆炸计算
	// 开启时 AI 会精确计算连锁爆炸，关闭时只计算一层
	FullChainRecursion bool

	// PreferBricks 是否优先炸砖块而非追击敌人
	PreferBricks bool
}

// 预设配置：简单难度
var AIConfigEasy = AIConfig{
	ThinkIntervalTicks: 45,
	MistakeRate:        0.2,
	FullChainRecursion: false,
	PreferBricks:       true,
}

// 预设配置：普通难度
var AIConfigNormal = AIConfig{
	ThinkIntervalTicks: 20,
	MistakeRate:        0.05,
	FullChainRecursion: false,
	PreferBricks:       true, // 优先炸砖块开路
}

// 预设配置：困难难度
var AIConfigHard = AIConfig{
	ThinkIntervalTicks: 6,
	MistakeRate:        0.0,
	FullChainRecursion: true,
	PreferBricks:       false, // 敌人优先
}

// ConfigByName 根据名称获取预设配置（easy / normal / hard）
func ConfigByName(name string) (AIConfig, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return AIConfigEasy, nil
	case "", "normal":
		return AIConfigNormal, nil
	case "hard":
		return AIConfigHard, nil
	}
	return AIConfig{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}
