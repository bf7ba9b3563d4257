package site

import (
	"fmt"
	"strings"

	"github.com/marcus/solsite/internal/datecode"
	"github.com/marcus/solsite/internal/models"
)

const cardMarker = `<div class="game-card">`

// cardLookahead bounds how far past a card's sub-heading the link line may
// sit. Cards whose link is not found within the window pass through
// unmodified.
const cardLookahead = 4

// PatchLandingPage rewrites the landing document for a new date: the first
// <h1> heading becomes the display date, and each recognized game card's
// link is repointed at ../<game>/<code>.html. Every other line, including
// lines between a card's sub-heading and its link, is preserved verbatim.
func (u *Updater) PatchLandingPage(date datecode.Date) (bool, error) {
	content, err := u.readDocument(LandingPath)
	if err != nil {
		return false, err
	}

	lines := strings.Split(content, "\n")
	changed := false
	headingDone := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if !headingDone && strings.HasPrefix(strings.TrimSpace(line), "<h1>") {
			heading := fmt.Sprintf("    <h1>%s</h1>", date.Display())
			if line != heading {
				lines[i] = heading
				changed = true
			}
			headingDone = true
			continue
		}

		if !strings.Contains(line, cardMarker) {
			continue
		}
		if i+1 >= len(lines) || !strings.HasPrefix(strings.TrimSpace(lines[i+1]), "<h3>") {
			continue
		}

		// Card recognized: locate its link line within the window.
		linkIdx := -1
		for j := i + 2; j < len(lines) && j <= i+1+cardLookahead; j++ {
			if strings.Contains(lines[j], "<a href=") && strings.Contains(lines[j], "../") {
				linkIdx = j
				break
			}
		}
		if linkIdx == -1 {
			continue
		}

		for _, game := range models.Games {
			if !strings.Contains(lines[linkIdx], "../"+game.Dir()+"/") {
				continue
			}
			link := fmt.Sprintf(`        <a href="../%s/%s.html">View Solution</a>`, game.Dir(), date.Code())
			if lines[linkIdx] != link {
				lines[linkIdx] = link
				changed = true
			}
			break
		}
		i = linkIdx
	}

	if !changed {
		return false, nil
	}
	if err := u.writeDocument(LandingPath, strings.Join(lines, "\n")); err != nil {
		return false, err
	}
	return true, nil
}

// LandingStats reports whether the landing document has a heading line and
// how many game cards are fully recognized (card marker, sub-heading, and a
// known game link within the lookahead window).
func (u *Updater) LandingStats() (hasHeading bool, cards int, err error) {
	content, err := u.readDocument(LandingPath)
	if err != nil {
		return false, 0, err
	}

	lines := strings.Split(content, "\n")
	for i := 0; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "<h1>") {
			hasHeading = true
			continue
		}
		if !strings.Contains(lines[i], cardMarker) {
			continue
		}
		if i+1 >= len(lines) || !strings.HasPrefix(strings.TrimSpace(lines[i+1]), "<h3>") {
			continue
		}
		for j := i + 2; j < len(lines) && j <= i+1+cardLookahead; j++ {
			if !strings.Contains(lines[j], "<a href=") || !strings.Contains(lines[j], "../") {
				continue
			}
			for _, game := range models.Games {
				if strings.Contains(lines[j], "../"+game.Dir()+"/") {
					cards++
					i = j
					break
				}
			}
			break
		}
	}
	return hasHeading, cards, nil
}
