package site

// ChangeSet collects the root-relative paths of files actually modified
// during one run, in insertion order and without duplicates. It drives
// whether a publish step happens at all and exactly which files get staged.
type ChangeSet struct {
	paths []string
	seen  map[string]bool
}

// Add records a modified path. Re-adding is a no-op.
func (c *ChangeSet) Add(path string) {
	if c.seen == nil {
		c.seen = make(map[string]bool)
	}
	if c.seen[path] {
		return
	}
	c.seen[path] = true
	c.paths = append(c.paths, path)
}

// Paths returns the recorded paths in insertion order.
func (c *ChangeSet) Paths() []string {
	return c.paths
}

// Empty reports whether no files were modified.
func (c *ChangeSet) Empty() bool {
	return len(c.paths) == 0
}
