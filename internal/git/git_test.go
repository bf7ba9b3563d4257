package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// initTestRepo creates a test git repository with an initial commit
func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	if err := runCmd(dir, "git", "init"); err != nil {
		t.Fatalf("Failed to init git repo: %v", err)
	}

	runCmd(dir, "git", "config", "user.email", "test@test.com")
	runCmd(dir, "git", "config", "user.name", "Test User")

	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	runCmd(dir, "git", "add", ".")
	runCmd(dir, "git", "commit", "-m", "Initial commit")

	return dir
}

func runCmd(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.Run()
}

func TestIsRepo(t *testing.T) {
	dir := initTestRepo(t)
	if !IsRepo(dir) {
		t.Error("Expected IsRepo to be true in a test repo")
	}

	plain := t.TempDir()
	if IsRepo(plain) {
		t.Error("Expected IsRepo to be false outside a repo")
	}
}

func TestBranchExists(t *testing.T) {
	dir := initTestRepo(t)

	exists, err := BranchExists(dir, "20250923")
	if err != nil {
		t.Fatalf("BranchExists: %v", err)
	}
	if exists {
		t.Error("Expected branch 20250923 to not exist yet")
	}

	if err := runCmd(dir, "git", "branch", "20250923"); err != nil {
		t.Fatalf("Failed to create branch: %v", err)
	}

	exists, err = BranchExists(dir, "20250923")
	if err != nil {
		t.Fatalf("BranchExists: %v", err)
	}
	if !exists {
		t.Error("Expected branch 20250923 to exist")
	}
}

func TestEnsureBranchCreates(t *testing.T) {
	dir := initTestRepo(t)

	created, err := EnsureBranch(dir, "20250923")
	if err != nil {
		t.Fatalf("EnsureBranch: %v", err)
	}
	if !created {
		t.Error("Expected branch to be created")
	}

	state, err := GetState(dir)
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if state.Branch != "20250923" {
		t.Errorf("Expected to be on branch 20250923, got %q", state.Branch)
	}
}

// TestEnsureBranchExisting tests switching to a branch that already has
// prior commits
func TestEnsureBranchExisting(t *testing.T) {
	dir := initTestRepo(t)

	if _, err := EnsureBranch(dir, "20250923"); err != nil {
		t.Fatalf("EnsureBranch: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "extra.html"), []byte("x\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Stage(dir, "extra.html"); err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if err := Commit(dir, "Add extra"); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	runCmd(dir, "git", "checkout", "-")

	created, err := EnsureBranch(dir, "20250923")
	if err != nil {
		t.Fatalf("EnsureBranch on existing branch: %v", err)
	}
	if created {
		t.Error("Expected existing branch to be reused, not created")
	}
}

func TestStageAndCommit(t *testing.T) {
	dir := initTestRepo(t)

	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>new</html>\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "untouched.html"), []byte("keep\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Stage(dir, "index.html"); err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if err := Commit(dir, "Add 20250923 entry"); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	// Only the staged file is in the commit; untouched.html stays untracked
	state, err := GetState(dir)
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if state.Untracked != 1 {
		t.Errorf("Expected 1 untracked file after commit, got %d", state.Untracked)
	}

	cmd := exec.Command("git", "log", "-1", "--format=%s")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("git log: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "Add 20250923 entry" {
		t.Errorf("Commit message = %q, want %q", got, "Add 20250923 entry")
	}
}

func TestStageNoPaths(t *testing.T) {
	dir := initTestRepo(t)
	if err := Stage(dir); err != nil {
		t.Errorf("Stage with no paths should be a no-op, got %v", err)
	}
}

func TestCommitNothingStagedFails(t *testing.T) {
	dir := initTestRepo(t)
	if err := Commit(dir, "empty"); err == nil {
		t.Error("Expected commit with nothing staged to fail")
	}
}

func TestGetStateClean(t *testing.T) {
	dir := initTestRepo(t)
	state, err := GetState(dir)
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if !state.IsClean {
		t.Error("Expected fresh repo to be clean")
	}
	if state.DirtyFiles != 0 {
		t.Errorf("Expected 0 dirty files, got %d", state.DirtyFiles)
	}
}
