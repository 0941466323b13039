package main

import "ninjagen/internal/ninja"

// ProjectConfig is the optional ninjagen.toml next to the specs.
//
//	archive = true
//
//	[dirs]
//	srcdir = "src"
//	builddir = "build"
//	bindir = "bin"
//
//	[bindings]
//	cxx = "clang++"
type ProjectConfig struct {
	Archive  *bool             `toml:"archive"`
	Dirs     DirsConfig        `toml:"dirs"`
	Bindings map[string]string `toml:"bindings"`

	// binding names in file order, filled from the TOML metadata
	bindingOrder []string
}

type DirsConfig struct {
	SrcDir   string `toml:"srcdir"`
	BuildDir string `toml:"builddir"`
	BinDir   string `toml:"bindir"`
}

// Options is what a command runs with once flags and the project file are
// merged.
type Options struct {
	Paths          ninja.PathContext
	DisableArchive bool
	Verbose        bool
	Format         string
	Config         *ProjectConfig
}

// flagValues are the raw command line values; empty strings mean unset.
type flagValues struct {
	SrcDir    string
	BuildDir  string
	BinDir    string
	NoArchive bool
	Verbose   bool
	Format    string
}
