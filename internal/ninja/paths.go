package ninja

import (
	"path/filepath"

	"ninjagen/internal/fsutil"
)

// Root names one of the three directories paths are resolved against.
type Root int

const (
	SrcRoot Root = iota
	BuildRoot
	BinRoot
)

// Variable is the ninja variable bound to the root in build.ninja.
func (r Root) Variable() string {
	switch r {
	case SrcRoot:
		return "$srcdir"
	case BuildRoot:
		return "$builddir"
	case BinRoot:
		return "$bindir"
	}
	return ""
}

const (
	DefaultSrcDir   = "src"
	DefaultBuildDir = "build"
	DefaultBinDir   = "bin"
)

// PathContext holds the configured root directories for one run.
type PathContext struct {
	SrcDir   string
	BuildDir string
	BinDir   string
}

func DefaultPathContext() PathContext {
	return PathContext{SrcDir: DefaultSrcDir, BuildDir: DefaultBuildDir, BinDir: DefaultBinDir}
}

func (pc PathContext) Dir(r Root) string {
	switch r {
	case SrcRoot:
		return pc.SrcDir
	case BuildRoot:
		return pc.BuildDir
	case BinRoot:
		return pc.BinDir
	}
	return ""
}

// Resolve rewrites path relative to the root variable. Relative paths that
// are not under the root are taken to be root-relative already; absolute
// paths outside the root are returned verbatim.
func (pc PathContext) Resolve(path string, r Root) string {
	rel, under := fsutil.StripPrefix(path, pc.Dir(r))
	if !under && filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	if rel == "." {
		return r.Variable()
	}
	return r.Variable() + "/" + filepath.ToSlash(rel)
}
