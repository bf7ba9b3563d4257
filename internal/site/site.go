package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcus/solsite/internal/models"
	"github.com/natefinch/atomic"
)

// DefaultSiteName is the site display name used in the homepage title and
// social metadata unless overridden by config.
const DefaultSiteName = "LinkedIn Games Solutions"

// Updater performs the per-run file transformations against a site tree.
// Root anchors every path; nothing reads the process working directory.
type Updater struct {
	Root     string
	SiteName string
	// DryRun reports what would change without writing anything.
	DryRun bool
}

// NewUpdater returns an Updater for the site rooted at root.
func NewUpdater(root string) *Updater {
	return &Updater{Root: root, SiteName: DefaultSiteName}
}

// IndexPath returns the per-game index document path relative to the root.
func IndexPath(game models.Game) string {
	return filepath.Join(game.Dir(), "index.html")
}

// PagePath returns the daily page path for a game and date code, relative
// to the root.
func PagePath(game models.Game, code string) string {
	return filepath.Join(game.Dir(), code+".html")
}

// HomepagePath is the root summary document, relative to the root.
const HomepagePath = "index.html"

// LandingPath is the "today" landing document, relative to the root.
var LandingPath = filepath.Join("today", "index.html")

func (u *Updater) abs(rel string) string {
	return filepath.Join(u.Root, rel)
}

// readDocument reads a site document fully into memory. A missing file is
// reported as ErrMissingFile so callers can skip the document and continue.
func (u *Updater) readDocument(rel string) (string, error) {
	data, err := os.ReadFile(u.abs(rel))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrMissingFile, rel)
		}
		return "", err
	}
	return string(data), nil
}

// writeDocument atomically replaces a site document. No partial write is
// ever observable at the target path.
func (u *Updater) writeDocument(rel, content string) error {
	if u.DryRun {
		return nil
	}
	return atomic.WriteFile(u.abs(rel), strings.NewReader(content))
}
