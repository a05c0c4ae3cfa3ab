package core

// RandomSource 地图生成使用的随机源，*rand.Rand 即可满足
type RandomSource interface {
	Float64() float64
}

// MapRecipe 随机地图参数
type MapRecipe struct {
	RubbleDensity   float64 // 非墙格子放砖块的概率
	FirepowerChance float64 // 砖块里藏火力道具的概率
	ExtraBombChance float64 // 火力没抽中时，藏炸弹道具的概率
	SpawnClearance  int     // 出生点周围保持空地的距离（平方比较）
}

// DefaultRecipe 默认地图参数
func DefaultRecipe() MapRecipe {
	return MapRecipe{
		RubbleDensity:   DefaultRubbleDensity,
		FirepowerChance: DefaultFirepowerChance,
		ExtraBombChance: DefaultExtraBombChance,
		SpawnClearance:  DefaultSpawnClearance,
	}
}

// CornerSpawnPoints 四个角向内一格的出生点
func CornerSpawnPoints(width, height int) []GridPos {
	return []GridPos{
		{GridX: 1, GridY: 1},
		{GridX: 1, GridY: height - 2},
		{GridX: width - 2, GridY: 1},
		{GridX: width - 2, GridY: height - 2},
	}
}

func withinDistanceOfSpawnPoints(pos GridPos, spawnPoints []GridPos, distance int) bool {
	for _, sp := range spawnPoints {
		if sp.DistanceSquared(pos) <= distance*distance {
			return true
		}
	}
	return false
}

// MakeBasicMap 使用默认参数生成地图
func MakeBasicMap(width, height int, rnd RandomSource) (*Grid, error) {
	return MakeMap(width, height, DefaultRecipe(), rnd)
}

// MakeMap 生成地图：外圈和偶数坐标为墙，其余格子按概率放砖块并藏入道具
// 随机数的抽取顺序固定（先抽砖块，再判断出生点，再抽道具），同一种子得到同一张地图
func MakeMap(width, height int, recipe MapRecipe, rnd RandomSource) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	spawns := CornerSpawnPoints(width, height)
	g.SetSpawnPoints(spawns)

	for pos := range g.Positions() {
		var tile Tile
		switch {
		case g.IsEdge(pos):
			tile = SolidWallTile()
		case pos.GridX%2 == 0 && pos.GridY%2 == 0:
			tile = SolidWallTile()
		case rnd.Float64() < recipe.RubbleDensity && !withinDistanceOfSpawnPoints(pos, spawns, recipe.SpawnClearance):
			tile = BreakableWallTile(hiddenContents(recipe, rnd))
		default:
			tile = EmptyTile()
		}
		g.tiles[g.index(pos)] = tile
	}
	return g, nil
}

func hiddenContents(recipe MapRecipe, rnd RandomSource) Tile {
	if rnd.Float64() < recipe.FirepowerChance {
		return PowerUpTile(PowerUpFirepower)
	}
	if rnd.Float64() < recipe.ExtraBombChance {
		return PowerUpTile(PowerUpExtraBomb)
	}
	return EmptyTile()
}

// MakeOpenMap3x3 3x3 测试地图：只有外圈墙，两个出生点都在中心
func MakeOpenMap3x3() *Grid {
	g, _ := NewGrid(3, 3)
	g.SetSpawnPoints([]GridPos{{GridX: 1, GridY: 1}, {GridX: 1, GridY: 1}})
	for pos := range g.Positions() {
		if g.IsEdge(pos) {
			g.tiles[g.index(pos)] = SolidWallTile()
		}
	}
	return g
}

// MakePillarMap5x5 5x5 测试地图：外圈墙加中心柱子
func MakePillarMap5x5() *Grid {
	g, _ := NewGrid(5, 5)
	g.SetSpawnPoints([]GridPos{{GridX: 1, GridY: 1}, {GridX: 1, GridY: 1}})
	for pos := range g.Positions() {
		if g.IsEdge(pos) || (pos.GridX == 2 && pos.GridY == 2) {
			g.tiles[g.index(pos)] = SolidWallTile()
		}
	}
	return g
}
