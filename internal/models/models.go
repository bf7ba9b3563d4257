// Package models defines the closed set of games the site publishes
// solutions for.
package models

// Game identifies one of the puzzle games. The set is closed: the site
// layout has exactly one directory per game and the updater never invents
// new ones.
type Game string

const (
	GameMiniSudoku Game = "minisudoku"
	GameZip        Game = "zip"
	GameQueens     Game = "queens"
	GameTango      Game = "tango"
)

// Games lists every game in site order. Iteration order matters: it is the
// order operations run in and the order changed files are staged.
var Games = []Game{GameMiniSudoku, GameZip, GameQueens, GameTango}

var gameTitles = map[Game]string{
	GameMiniSudoku: "Mini Sudoku",
	GameZip:        "Zip",
	GameQueens:     "Queens",
	GameTango:      "Tango",
}

// IsValidGame reports whether g is one of the known games.
func IsValidGame(g Game) bool {
	_, ok := gameTitles[g]
	return ok
}

// Title returns the human-readable title for a game, or the raw identifier
// if the game is unknown.
func (g Game) Title() string {
	if title, ok := gameTitles[g]; ok {
		return title
	}
	return string(g)
}

// Dir returns the per-game directory name relative to the site root.
func (g Game) Dir() string {
	return string(g)
}
