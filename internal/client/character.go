package client

import (
	"image/color"

	"killercritters/pkg/core"
)

// CharacterInfo 角色信息（渲染相关）
type CharacterInfo struct {
	Type         core.CharacterType
	Name         string // HUD 使用的 ASCII 名称
	BodyColor    color.RGBA
	OutlineColor color.RGBA
	HandColor    color.RGBA
	ShoeColor    color.RGBA
}

// GetCharacterInfo 获取角色信息
func GetCharacterInfo(charType core.CharacterType) CharacterInfo {
	switch charType {
	case core.CritterColobus:
		return CharacterInfo{
			Type:         core.CritterColobus,
			Name:         "Colobus",
			BodyColor:    color.RGBA{245, 245, 240, 255},
			OutlineColor: color.RGBA{20, 20, 20, 255},
			HandColor:    color.RGBA{60, 60, 60, 255},
			ShoeColor:    color.RGBA{30, 30, 30, 255},
		}
	case core.CritterPudu:
		return CharacterInfo{
			Type:         core.CritterPudu,
			Name:         "Pudu",
			BodyColor:    color.RGBA{170, 110, 60, 255},
			OutlineColor: color.RGBA{90, 50, 20, 255},
			HandColor:    color.RGBA{210, 170, 120, 255},
			ShoeColor:    color.RGBA{60, 35, 15, 255},
		}
	case core.CritterInkfish:
		return CharacterInfo{
			Type:         core.CritterInkfish,
			Name:         "Inkfish",
			BodyColor:    color.RGBA{150, 90, 200, 255},
			OutlineColor: color.RGBA{60, 20, 100, 255},
			HandColor:    color.RGBA{220, 170, 255, 255},
			ShoeColor:    color.RGBA{40, 10, 70, 255},
		}
	case core.CritterGecko:
		return CharacterInfo{
			Type:         core.CritterGecko,
			Name:         "Gecko",
			BodyColor:    color.RGBA{120, 210, 90, 255},
			OutlineColor: color.RGBA{30, 100, 20, 255},
			HandColor:    color.RGBA{230, 240, 120, 255},
			ShoeColor:    color.RGBA{20, 70, 10, 255},
		}
	default:
		return GetCharacterInfo(core.CritterColobus)
	}
}
