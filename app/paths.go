package app

import (
	"os"
	"path/filepath"
)

// dirOf returns path itself for directories and its parent otherwise.
func dirOf(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
