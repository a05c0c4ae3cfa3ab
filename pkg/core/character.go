package core

// CharacterType 角色类型，按加入顺序分配
type CharacterType int

const (
	CritterColobus CharacterType = iota // 疣猴
	CritterPudu                         // 普度鹿
	CritterInkfish                      // 墨鱼
	CritterGecko                        // 壁虎
)

// AllCharacters 按加入顺序排列的角色
var AllCharacters = []CharacterType{CritterColobus, CritterPudu, CritterInkfish, CritterGecko}

// String 返回角色类型的字符串表示
func (c CharacterType) String() string {
	switch c {
	case CritterColobus:
		return "疣猴"
	case CritterPudu:
		return "普度鹿"
	case CritterInkfish:
		return "墨鱼"
	case CritterGecko:
		return "壁虎"
	}
	return "未知"
}

// characterForSlot 第 n 个加入的玩家的角色
func characterForSlot(slot int) CharacterType {
	return AllCharacters[slot%len(AllCharacters)]
}
