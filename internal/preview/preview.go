// Package preview 在终端里打印地图，用于检查地图生成的结果
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"killercritters/pkg/core"
)

// 每个格子占两个字符，看起来接近正方形
var (
	solidStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#505050")).
			Foreground(lipgloss.Color("#3c3c3c"))

	brickStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#cd853f")).
			Foreground(lipgloss.Color("#b47635"))

	grassStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#228b22")).
			Foreground(lipgloss.Color("#228b22"))

	spawnStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#228b22")).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true)

	fireStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#cd853f")).
			Foreground(lipgloss.Color("#ff2200")).
			Bold(true)

	extraBombStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#cd853f")).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	legendStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)
)

// 纯文本模式下的字符
const (
	plainSolid     = '#'
	plainBrick     = '+'
	plainEmpty     = '.'
	plainSpawn     = 'S'
	plainFire      = 'f'
	plainExtraBomb = 'b'
	plainPowerUp   = 'P'
	plainBomb      = 'o'
	plainExplosion = '*'
)

// Stats 地图统计
type Stats struct {
	Bricks     int
	Firepower  int
	ExtraBombs int
}

// Collect 统计砖块和藏在砖块里的道具
func Collect(g *core.Grid) Stats {
	var s Stats
	for pos := range g.Positions() {
		tile, _ := g.TileAt(pos)
		if tile.Kind != core.TileBreakableWall {
			continue
		}
		s.Bricks++
		if hidden := tile.Hidden(); hidden.Kind == core.TilePowerUp {
			switch hidden.PowerUp {
			case core.PowerUpFirepower:
				s.Firepower++
			case core.PowerUpExtraBomb:
				s.ExtraBombs++
			}
		}
	}
	return s
}

// Plain 每个格子一个字符，行之间用换行分隔，末尾没有换行
func Plain(g *core.Grid) string {
	spawns := spawnSet(g)
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			pos := core.GridPos{GridX: x, GridY: y}
			tile, _ := g.TileAt(pos)
			b.WriteRune(plainRune(tile, spawns[pos]))
		}
	}
	return b.String()
}

func plainRune(tile core.Tile, spawn bool) rune {
	switch tile.Kind {
	case core.TileSolidWall:
		return plainSolid
	case core.TileBreakableWall:
		if hidden := tile.Hidden(); hidden.Kind == core.TilePowerUp {
			if hidden.PowerUp == core.PowerUpFirepower {
				return plainFire
			}
			return plainExtraBomb
		}
		return plainBrick
	case core.TilePowerUp:
		return plainPowerUp
	case core.TileBomb:
		return plainBomb
	case core.TileExplosion:
		return plainExplosion
	}
	if spawn {
		return plainSpawn
	}
	return plainEmpty
}

// Render 彩色地图加图例
func Render(g *core.Grid, seed int64) string {
	spawns := spawnSet(g)
	rows := make([]string, 0, g.Height())
	for y := 0; y < g.Height(); y++ {
		cells := make([]string, 0, g.Width())
		for x := 0; x < g.Width(); x++ {
			pos := core.GridPos{GridX: x, GridY: y}
			tile, _ := g.TileAt(pos)
			cells = append(cells, renderCell(tile, spawns[pos]))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	board := strings.Join(rows, "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", legend(g, seed))
}

func renderCell(tile core.Tile, spawn bool) string {
	switch tile.Kind {
	case core.TileSolidWall:
		return solidStyle.Render("██")
	case core.TileBreakableWall:
		if hidden := tile.Hidden(); hidden.Kind == core.TilePowerUp {
			if hidden.PowerUp == core.PowerUpFirepower {
				return fireStyle.Render("▒F")
			}
			return extraBombStyle.Render("▒B")
		}
		return brickStyle.Render("▒▒")
	}
	if spawn {
		return spawnStyle.Render("<>")
	}
	return grassStyle.Render("  ")
}

func legend(g *core.Grid, seed int64) string {
	s := Collect(g)
	lines := []string{
		fmt.Sprintf("%dx%d  seed %d", g.Width(), g.Height(), seed),
		"",
		solidStyle.Render("██") + " solid wall",
		brickStyle.Render("▒▒") + fmt.Sprintf(" brick (%d)", s.Bricks),
		fireStyle.Render("▒F") + fmt.Sprintf(" firepower (%d)", s.Firepower),
		extraBombStyle.Render("▒B") + fmt.Sprintf(" extra bomb (%d)", s.ExtraBombs),
		spawnStyle.Render("<>") + " spawn",
	}
	return legendStyle.Render(strings.Join(lines, "\n"))
}

func spawnSet(g *core.Grid) map[core.GridPos]bool {
	spawns := make(map[core.GridPos]bool)
	for _, p := range g.SpawnPoints() {
		spawns[p] = true
	}
	return spawns
}
