// Package git wraps the git command line for the publish step: branch
// management, staging and committing. Every function takes the repository
// directory explicitly; nothing depends on the process working directory.
package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// State represents the current git state of a repository.
type State struct {
	Branch     string
	IsClean    bool
	Modified   int
	Untracked  int
	DirtyFiles int
}

// GetState returns the current git state of the repository at dir.
func GetState(dir string) (*State, error) {
	if !IsRepo(dir) {
		return nil, fmt.Errorf("not a git repository")
	}

	state := &State{}

	branch, err := runGit(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		branch = "HEAD"
	}
	state.Branch = strings.TrimSpace(branch)

	status, _ := runGit(dir, "status", "--porcelain")
	lines := strings.Split(strings.TrimSpace(status), "\n")

	if status == "" || (len(lines) == 1 && lines[0] == "") {
		state.IsClean = true
	} else {
		for _, line := range lines {
			if len(line) < 2 {
				continue
			}
			if line[0] == '?' && line[1] == '?' {
				state.Untracked++
			} else {
				state.Modified++
			}
		}
		state.DirtyFiles = state.Modified + state.Untracked
	}

	return state, nil
}

// IsRepo checks if dir is inside a git repository.
func IsRepo(dir string) bool {
	_, err := runGit(dir, "rev-parse", "--git-dir")
	return err == nil
}

// BranchExists reports whether a local branch with the given name exists.
func BranchExists(dir, name string) (bool, error) {
	output, err := runGit(dir, "branch", "--list", name)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}

// EnsureBranch switches the repository to the named branch, creating it if
// it does not exist. Returns whether the branch was created. Switching to
// an existing branch succeeds regardless of its prior commits.
func EnsureBranch(dir, name string) (created bool, err error) {
	exists, err := BranchExists(dir, name)
	if err != nil {
		return false, err
	}
	if exists {
		if _, err := runGit(dir, "checkout", name); err != nil {
			return false, err
		}
		return false, nil
	}
	if _, err := runGit(dir, "checkout", "-b", name); err != nil {
		return false, err
	}
	return true, nil
}

// Stage adds exactly the given paths to the index. Never stages the whole
// tree.
func Stage(dir string, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	_, err := runGit(dir, args...)
	return err
}

// Commit creates a commit with the given message from the staged changes.
func Commit(dir, message string) error {
	_, err := runGit(dir, "commit", "-m", message)
	return err
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
