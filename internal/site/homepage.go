package site

import (
	"fmt"
	"strings"

	"github.com/marcus/solsite/internal/datecode"
	"github.com/marcus/solsite/internal/models"
)

const (
	todayLinkMarker = `<a href="/today/">`
	ogTitleMarker   = `property="og:title"`
)

// gameTitleList renders the fixed game titles as "A, B, C & D" for the
// homepage <title> line.
func gameTitleList() string {
	titles := make([]string, len(models.Games))
	for i, g := range models.Games {
		titles[i] = g.Title()
	}
	if len(titles) < 2 {
		return strings.Join(titles, "")
	}
	return strings.Join(titles[:len(titles)-1], ", ") + " & " + titles[len(titles)-1]
}

// PatchHomepage rewrites three independent lines of the root index
// document: the "today" link with the new display date, the <title> line,
// and the og:title metadata line. The file is rewritten only if at least
// one line actually changed. Absent markers are left alone; a document with
// none of them is reported unchanged, not an error.
func (u *Updater) PatchHomepage(date datecode.Date) (bool, error) {
	content, err := u.readDocument(HomepagePath)
	if err != nil {
		return false, err
	}

	todayLine := fmt.Sprintf(`    <li><a href="/today/">🎯 %s</a></li>`, date.Display())
	titleLine := fmt.Sprintf("  <title>%s – %s</title>", u.SiteName, gameTitleList())
	ogLine := fmt.Sprintf(`  <meta property="og:title" content="%s">`, u.SiteName)

	lines := strings.Split(content, "\n")
	changed := false
	for i, line := range lines {
		switch {
		case strings.Contains(line, todayLinkMarker):
			if line != todayLine {
				lines[i] = todayLine
				changed = true
			}
		case strings.HasPrefix(strings.TrimSpace(line), "<title>"):
			if strings.TrimSpace(line) != strings.TrimSpace(titleLine) {
				lines[i] = titleLine
				changed = true
			}
		case strings.Contains(line, ogTitleMarker):
			if strings.TrimSpace(line) != strings.TrimSpace(ogLine) {
				lines[i] = ogLine
				changed = true
			}
		}
	}

	if !changed {
		return false, nil
	}
	if err := u.writeDocument(HomepagePath, strings.Join(lines, "\n")); err != nil {
		return false, err
	}
	return true, nil
}

// HomepageMarkers reports how many of the three patchable homepage lines
// (today link, <title>, og:title) are present.
func (u *Updater) HomepageMarkers() (int, error) {
	content, err := u.readDocument(HomepagePath)
	if err != nil {
		return 0, err
	}

	var todayFound, titleFound, ogFound bool
	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.Contains(line, todayLinkMarker):
			todayFound = true
		case strings.HasPrefix(strings.TrimSpace(line), "<title>"):
			titleFound = true
		case strings.Contains(line, ogTitleMarker):
			ogFound = true
		}
	}

	count := 0
	for _, found := range []bool{todayFound, titleFound, ogFound} {
		if found {
			count++
		}
	}
	return count, nil
}
