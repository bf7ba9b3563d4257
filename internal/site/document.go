// Package site implements the file transformations behind a daily site
// update: merging dated entries into per-game index pages, generating daily
// solution pages, and patching the homepage and "today" landing page.
//
// Documents are plain HTML treated as line-oriented text with recognizable
// structural markers. An index document splits into a preamble, a bounded
// entry block delimited by <ul> and </ul>, and a postamble; the entry block
// holds one <li> line per dated entry.
package site

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	listOpenMarker  = "<ul>"
	listCloseMarker = "</ul>"
)

// entryPattern recognizes a dated entry line by its link target.
var entryPattern = regexp.MustCompile(`href="(\d{8})\.html"`)

// Entry is one dated line of an index document, keyed by its date code.
type Entry struct {
	Code string
	Line string
}

// Document is a parsed index document: everything up to and including the
// list-open line, the dated entries inside the block, and everything from
// the list-close line on. Lines inside the block that carry no recognizable
// date code are dropped on the next render.
type Document struct {
	preamble  []string
	entries   []Entry
	postamble []string
}

// ParseDocument splits content into preamble, entry block and postamble.
// Returns ErrMalformedDocument if either block marker is missing or they
// are out of order.
func ParseDocument(content string) (*Document, error) {
	lines := strings.Split(content, "\n")

	start, end := -1, -1
	for i, line := range lines {
		if start == -1 && strings.Contains(line, listOpenMarker) {
			start = i
		}
		if end == -1 && strings.Contains(line, listCloseMarker) {
			end = i
		}
	}
	if start == -1 || end == -1 {
		return nil, fmt.Errorf("%w: no %s block", ErrMalformedDocument, listOpenMarker)
	}
	if end < start {
		return nil, fmt.Errorf("%w: %s before %s", ErrMalformedDocument, listCloseMarker, listOpenMarker)
	}

	doc := &Document{
		preamble:  lines[:start+1],
		postamble: lines[end:],
	}
	for _, line := range lines[start+1 : end] {
		if m := entryPattern.FindStringSubmatch(line); m != nil {
			doc.entries = append(doc.entries, Entry{Code: m[1], Line: line})
		}
	}
	return doc, nil
}

// Entries returns the dated entries in their current order.
func (d *Document) Entries() []Entry {
	return d.entries
}

// Has reports whether an entry with the given date code exists.
func (d *Document) Has(code string) bool {
	for _, e := range d.entries {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Insert adds a new entry line keyed by code. Returns false without
// modifying the document if the code is already present; the existing line
// is authoritative.
func (d *Document) Insert(code, line string) bool {
	if d.Has(code) {
		return false
	}
	d.entries = append(d.entries, Entry{Code: code, Line: line})
	return true
}

// Sort orders entries by date code descending (most recent first).
// Lexicographic order on fixed-width YYYYMMDD codes is chronological order.
func (d *Document) Sort() {
	sort.Slice(d.entries, func(i, j int) bool {
		return d.entries[i].Code > d.entries[j].Code
	})
}

// Render reassembles the document: preamble and postamble verbatim, the
// entry block as exactly the current entries.
func (d *Document) Render() string {
	lines := make([]string, 0, len(d.preamble)+len(d.entries)+len(d.postamble))
	lines = append(lines, d.preamble...)
	for _, e := range d.entries {
		lines = append(lines, e.Line)
	}
	lines = append(lines, d.postamble...)
	return strings.Join(lines, "\n")
}
