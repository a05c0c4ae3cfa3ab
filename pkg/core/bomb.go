package core

import "time"

// Bomb 炸弹（纯逻辑结构，不包含渲染）
// 存放在 TileBomb 格子里，连锁引爆时通过指针原地修改 DetonateAt
type Bomb struct {
	OwnerID    int       // 放置者
	Firepower  int       // 爆炸范围（格子数），至少为 1
	PlacedAt   time.Time // 放置时间
	DetonateAt time.Time // 计划爆炸时间
}

// NewBomb 创建新炸弹
func NewBomb(ownerID, firepower int, placedAt time.Time, fuse time.Duration) *Bomb {
	if firepower < 1 {
		firepower = 1
	}
	return &Bomb{
		OwnerID:    ownerID,
		Firepower:  firepower,
		PlacedAt:   placedAt,
		DetonateAt: placedAt.Add(fuse),
	}
}

// Due 检查炸弹是否应该爆炸
func (b *Bomb) Due(now time.Time) bool {
	return !now.Before(b.DetonateAt)
}

// Force 连锁反应：立即引爆
func (b *Bomb) Force(now time.Time) {
	b.DetonateAt = now
}

// FuseProgress 引线燃烧比例 [0, 1]，用于渲染闪烁
func (b *Bomb) FuseProgress(now time.Time) float64 {
	total := b.DetonateAt.Sub(b.PlacedAt)
	if total <= 0 {
		return 1
	}
	ratio := float64(now.Sub(b.PlacedAt)) / float64(total)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
