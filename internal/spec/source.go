package spec

import (
	"path/filepath"
	"strings"

	"ninjagen/internal/fsutil"
)

// FromSource builds the document used when a C or C++ file is named
// directly: compile it, then link the object into a binary of the same
// name. Names are taken relative to srcdir when the file lies under it.
// The second result is false for any other extension.
func FromSource(path, srcdir string) (Document, bool) {
	compile, link := "", ""
	switch strings.ToLower(filepath.Ext(path)) {
	case ".c":
		compile, link = "cc", "cclink"
	case ".cc", ".cpp", ".cxx":
		compile, link = "cxx", "cxxlink"
	default:
		return Document{}, false
	}

	rel, _ := fsutil.StripPrefix(path, srcdir)
	stem := filepath.ToSlash(fsutil.TrimExt(rel))
	return Document{
		Source: path,
		Statements: []Statement{
			NewNote(path),
			NewRuleBlock(compile, BareTarget(path)),
			NewRuleBlock(link, ExplicitTarget(stem, stem+".o")),
		},
	}, true
}
