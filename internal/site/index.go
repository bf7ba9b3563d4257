package site

import (
	"fmt"

	"github.com/marcus/solsite/internal/datecode"
	"github.com/marcus/solsite/internal/models"
)

// EntryLine renders the canonical <li> line for a dated entry.
func EntryLine(date datecode.Date) string {
	return fmt.Sprintf(`    <li><a href="%s.html">%s</a></li>`, date.Code(), date.Display())
}

// MergeEntry inserts a dated entry into a game's index document and
// re-sorts the entry block descending by date. Returns whether a new entry
// was inserted. Re-sorting or dropping unparseable block lines rewrites the
// file but does not count as a change; the existing line for an
// already-present date is kept as-is.
func (u *Updater) MergeEntry(game models.Game, date datecode.Date) (bool, error) {
	rel := IndexPath(game)

	content, err := u.readDocument(rel)
	if err != nil {
		return false, err
	}

	doc, err := ParseDocument(content)
	if err != nil {
		return false, fmt.Errorf("%s: %w", rel, err)
	}

	inserted := doc.Insert(date.Code(), EntryLine(date))
	doc.Sort()

	if rendered := doc.Render(); rendered != content {
		if err := u.writeDocument(rel, rendered); err != nil {
			return false, err
		}
	}
	return inserted, nil
}

// Entries parses a game's index document and returns its dated entries in
// their current order.
func (u *Updater) Entries(game models.Game) ([]Entry, error) {
	if !models.IsValidGame(game) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, game)
	}

	content, err := u.readDocument(IndexPath(game))
	if err != nil {
		return nil, err
	}

	doc, err := ParseDocument(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", IndexPath(game), err)
	}
	return doc.Entries(), nil
}
