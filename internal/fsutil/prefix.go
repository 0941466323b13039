// Package fsutil has the path helpers shared by the spec loader and the
// compiler.
package fsutil

import (
	"path/filepath"
	"strings"
)

// StripPrefix removes root from path when path, made absolute, lies under
// root made absolute. Otherwise path comes back unchanged and the second
// result is false.
func StripPrefix(path, root string) (string, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, false
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return path, false
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path, false
	}
	return rel, true
}

// TrimExt drops the extension of the last path element.
func TrimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
