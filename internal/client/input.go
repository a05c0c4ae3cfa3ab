package client

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"killercritters/pkg/core"
)

// 摇杆死区
const stickDeadzone = 0.2

// keyScheme 一套键盘按键
type keyScheme struct {
	kind                  core.ControllerKind
	up, down, left, right ebiten.Key
	drop                  ebiten.Key
}

var keySchemes = []keyScheme{
	{core.ControllerKeyboardArrows, ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeySpace},
	{core.ControllerKeyboardWASD, ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD, ebiten.KeyQ},
}

// InputManager 每帧把键盘和手柄转换成意图
// 放炸弹只在按下的那一帧触发
type InputManager struct {
	gamepads []ebiten.GamepadID
}

// Poll 读取所有输入源，返回本帧的意图
func (m *InputManager) Poll() []core.Intent {
	intents := make([]core.Intent, 0, len(keySchemes)+len(m.gamepads))

	for _, ks := range keySchemes {
		in := core.Intent{
			Controller: core.Controller{Kind: ks.kind},
			Motion: keyboardMotion(
				ebiten.IsKeyPressed(ks.up),
				ebiten.IsKeyPressed(ks.down),
				ebiten.IsKeyPressed(ks.left),
				ebiten.IsKeyPressed(ks.right),
			),
		}
		if inpututil.IsKeyJustPressed(ks.drop) {
			in.Action = core.ActionDropBomb
		}
		intents = append(intents, in)
	}

	m.gamepads = ebiten.AppendGamepadIDs(m.gamepads[:0])
	for _, id := range m.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		in := core.Intent{
			Controller: core.Controller{Kind: core.ControllerGamepad, Index: int(id)},
			Motion: stickMotion(
				ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
				ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
				stickDeadzone,
			),
		}
		// 十字键优先于摇杆
		if dpad := keyboardMotion(
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop),
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom),
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft),
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight),
		); !dpad.IsZero() {
			in.Motion = dpad
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			in.Action = core.ActionDropBomb
		}
		intents = append(intents, in)
	}
	return intents
}

// RestartPressed 空格或者任意手柄的开始键
func (m *InputManager) RestartPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	for _, id := range m.gamepads {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

// keyboardMotion 方向键转成移动向量，斜向时归一化
func keyboardMotion(up, down, left, right bool) core.Vec2 {
	var v core.Vec2
	if up {
		v.Y--
	}
	if down {
		v.Y++
	}
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	return v.Normalize()
}

// stickMotion 摇杆转成移动向量：死区内为零，死区外线性映射到 (0, 1]
func stickMotion(x, y, deadzone float64) core.Vec2 {
	v := core.Vec2{X: x, Y: y}
	l := v.Length()
	if l <= deadzone || deadzone >= 1 {
		return core.Vec2{}
	}
	scaled := math.Min((l-deadzone)/(1-deadzone), 1)
	return v.Scale(scaled / l)
}

// controllerLabel HUD 上显示的输入源名称（位图字体只有 ASCII）
func controllerLabel(c core.Controller) string {
	switch c.Kind {
	case core.ControllerKeyboardArrows:
		return "Arrows"
	case core.ControllerKeyboardWASD:
		return "WASD"
	case core.ControllerGamepad:
		return fmt.Sprintf("Pad%d", c.Index)
	case core.ControllerComputer:
		return fmt.Sprintf("CPU%d", c.Index)
	}
	return "?"
}
