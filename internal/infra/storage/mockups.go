package storage

import (
	"os"
	"path/filepath"
)

// FSMockupChecker probes the local mockups directory for variant folders.
type FSMockupChecker struct {
	Root string
}

func NewFSMockupChecker(root string) *FSMockupChecker {
	return &FSMockupChecker{Root: root}
}

func (c *FSMockupChecker) Exists(name string) bool {
	info, err := os.Stat(filepath.Join(c.Root, name))
	return err == nil && info.IsDir()
}
