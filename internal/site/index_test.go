package site

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/marcus/solsite/internal/datecode"
	"github.com/marcus/solsite/internal/models"
)

// newTestSite creates a site root with a single game index document
func newTestSite(t *testing.T, game models.Game, content string) *Updater {
	t.Helper()
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, string(game), "index.html"), content)
	return NewUpdater(root)
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(data)
}

func mustDate(t *testing.T, code string) datecode.Date {
	t.Helper()
	d, err := datecode.Parse(code)
	if err != nil {
		t.Fatalf("Parse(%q): %v", code, err)
	}
	return d
}

func TestEntryLine(t *testing.T) {
	got := EntryLine(mustDate(t, "20250923"))
	want := `    <li><a href="20250923.html">September 23, 2025</a></li>`
	if got != want {
		t.Errorf("EntryLine = %q, want %q", got, want)
	}
}

// TestMergeEntryInsertsSorted tests the spec scenario: merging 20250910
// between existing 20250915 and 20250901
func TestMergeEntryInsertsSorted(t *testing.T) {
	u := newTestSite(t, models.GameQueens, indexFixture)

	changed, err := u.MergeEntry(models.GameQueens, mustDate(t, "20250910"))
	if err != nil {
		t.Fatalf("MergeEntry: %v", err)
	}
	if !changed {
		t.Error("Expected first merge to report a change")
	}

	entries, err := u.Entries(models.GameQueens)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	want := []string{"20250915", "20250910", "20250901"}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i, code := range want {
		if entries[i].Code != code {
			t.Errorf("entries[%d].Code = %s, want %s", i, entries[i].Code, code)
		}
	}
}

// TestMergeEntryIdempotent tests that a second merge of the same code is a
// byte-for-byte no-op reporting no change
func TestMergeEntryIdempotent(t *testing.T) {
	u := newTestSite(t, models.GameQueens, indexFixture)
	path := filepath.Join(u.Root, string(models.GameQueens), "index.html")
	date := mustDate(t, "20250910")

	if _, err := u.MergeEntry(models.GameQueens, date); err != nil {
		t.Fatalf("MergeEntry: %v", err)
	}
	after := readTestFile(t, path)

	changed, err := u.MergeEntry(models.GameQueens, date)
	if err != nil {
		t.Fatalf("MergeEntry (second): %v", err)
	}
	if changed {
		t.Error("Expected second merge to report no change")
	}
	if diff := cmp.Diff(after, readTestFile(t, path)); diff != "" {
		t.Errorf("File changed on second merge (-want +got):\n%s", diff)
	}
}

// TestMergeEntryExistingDate tests merging a date already in the index
func TestMergeEntryExistingDate(t *testing.T) {
	u := newTestSite(t, models.GameQueens, indexFixture)
	path := filepath.Join(u.Root, string(models.GameQueens), "index.html")
	before := readTestFile(t, path)

	changed, err := u.MergeEntry(models.GameQueens, mustDate(t, "20250915"))
	if err != nil {
		t.Fatalf("MergeEntry: %v", err)
	}
	if changed {
		t.Error("Expected merge of existing date to report no change")
	}
	if diff := cmp.Diff(before, readTestFile(t, path)); diff != "" {
		t.Errorf("File changed when merging existing date (-want +got):\n%s", diff)
	}
}

func TestMergeEntryMissingFile(t *testing.T) {
	u := NewUpdater(t.TempDir())
	_, err := u.MergeEntry(models.GameQueens, mustDate(t, "20250923"))
	if !errors.Is(err, ErrMissingFile) {
		t.Errorf("Expected ErrMissingFile, got %v", err)
	}
}

func TestMergeEntryMalformed(t *testing.T) {
	u := newTestSite(t, models.GameQueens, "<html>\n<body>no list</body>\n</html>\n")
	_, err := u.MergeEntry(models.GameQueens, mustDate(t, "20250923"))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("Expected ErrMalformedDocument, got %v", err)
	}
}

// TestMergeEntryArbitraryOrder tests that any insertion order yields a
// strictly descending, duplicate-free entry block
func TestMergeEntryArbitraryOrder(t *testing.T) {
	codes := []string{"20250901", "20250910", "20250915", "20250923", "20241231", "20250101"}
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 5; trial++ {
		u := newTestSite(t, models.GameZip, "<ul>\n</ul>\n")

		shuffled := append([]string(nil), codes...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		// Duplicate inserts mixed in
		shuffled = append(shuffled, codes[0], codes[3])

		for _, code := range shuffled {
			if _, err := u.MergeEntry(models.GameZip, mustDate(t, code)); err != nil {
				t.Fatalf("MergeEntry(%s): %v", code, err)
			}
		}

		entries, err := u.Entries(models.GameZip)
		if err != nil {
			t.Fatalf("Entries: %v", err)
		}
		if len(entries) != len(codes) {
			t.Fatalf("Expected %d unique entries, got %d", len(codes), len(entries))
		}
		for i := 1; i < len(entries); i++ {
			if entries[i-1].Code <= entries[i].Code {
				t.Errorf("Entries not strictly descending: %s before %s", entries[i-1].Code, entries[i].Code)
			}
		}
	}
}

func TestMergeEntryDryRun(t *testing.T) {
	u := newTestSite(t, models.GameQueens, indexFixture)
	u.DryRun = true
	path := filepath.Join(u.Root, string(models.GameQueens), "index.html")

	changed, err := u.MergeEntry(models.GameQueens, mustDate(t, "20250910"))
	if err != nil {
		t.Fatalf("MergeEntry: %v", err)
	}
	if !changed {
		t.Error("Expected dry-run merge to report the would-be change")
	}
	if diff := cmp.Diff(indexFixture, readTestFile(t, path)); diff != "" {
		t.Errorf("Dry run modified the file (-want +got):\n%s", diff)
	}
}
