package core

import "fmt"

// Action 每帧的动作
type Action int

const (
	ActionNone Action = iota
	ActionDropBomb
)

// ControllerKind 输入源种类
type ControllerKind int

const (
	ControllerKeyboardArrows ControllerKind = iota // 方向键 + 空格
	ControllerKeyboardWASD                         // WASD + Q
	ControllerGamepad                              // 手柄，Index 为手柄 ID
	ControllerComputer                             // 电脑玩家，Index 为编号
)

// Controller 输入源，同时也是玩家的身份
type Controller struct {
	Kind  ControllerKind
	Index int
}

func (c Controller) String() string {
	switch c.Kind {
	case ControllerKeyboardArrows:
		return "方向键"
	case ControllerKeyboardWASD:
		return "WASD"
	case ControllerGamepad:
		return fmt.Sprintf("手柄%d", c.Index)
	case ControllerComputer:
		return fmt.Sprintf("电脑%d", c.Index)
	}
	return "未知"
}

// Intent 表示一帧内一个输入源的意图
type Intent struct {
	Controller Controller
	Motion     Vec2 // 长度不超过 1，可以为零
	Action     Action
}

// IsSomething 是否有任何输入
func (in Intent) IsSomething() bool {
	return !in.Motion.IsZero() || in.Action != ActionNone
}

// normalized 把移动向量限制到单位长度
func (in Intent) normalized() Intent {
	in.Motion = in.Motion.ClampLength(1)
	return in
}
