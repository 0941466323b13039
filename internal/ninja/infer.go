package ninja

import (
	"path/filepath"
	"strings"

	"ninjagen/internal/errs"
	"ninjagen/internal/fsutil"
)

// Category decides how a rule's targets are inferred and which roots its
// paths resolve against.
type Category int

const (
	Unknown Category = iota
	Compile
	Archive
	Link
)

func (c Category) String() string {
	switch c {
	case Compile:
		return "compile"
	case Archive:
		return "archive"
	case Link:
		return "link"
	}
	return "unknown"
}

// Roots returns the roots a category resolves its target and inputs
// against.
func (c Category) Roots() (target, inputs Root) {
	switch c {
	case Compile:
		return BuildRoot, SrcRoot
	case Link:
		return BinRoot, BuildRoot
	}
	return BuildRoot, BuildRoot
}

// Classify maps a rule name to its category. The archive rule "ar" is an
// extension and is only recognised when allowArchive is set.
func Classify(rule string, allowArchive bool) (Category, error) {
	switch {
	case rule == "cc" || rule == "cxx":
		return Compile, nil
	case rule == "ar" && allowArchive:
		return Archive, nil
	case strings.HasSuffix(rule, "link"):
		return Link, nil
	}
	return Unknown, errs.Configuration("unknown rule %q: expected cc, cxx, ar or a rule ending in 'link'", rule)
}

var sourceExts = map[string]bool{".c": true, ".cc": true, ".cpp": true, ".cxx": true}

// IsSource reports whether name has a C or C++ source extension.
func IsSource(name string) bool {
	return sourceExts[strings.ToLower(filepath.Ext(name))]
}

// InferInput derives the single input of a target that names none.
func InferInput(rule, target string) (string, error) {
	base := fsutil.TrimExt(target)
	switch {
	case rule == "cc":
		return base + ".c", nil
	case rule == "cxx":
		return base + ".cpp", nil
	case strings.HasSuffix(rule, "link"):
		return base + ".o", nil
	}
	return "", errs.Configuration("rule %q: cannot infer inputs of %q, list them explicitly", rule, target)
}

// ObjectFor is the object file a compile rule produces from source. A
// source under srcdir gives an object at the same place under builddir.
func ObjectFor(source, srcdir string) string {
	rel, _ := fsutil.StripPrefix(source, srcdir)
	return fsutil.TrimExt(rel) + ".o"
}
