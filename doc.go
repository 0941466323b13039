/*
Ninjagen generates ninja build files from terse YAML target specs.

A spec names targets by rule and lets naming conventions fill in the rest:

	---
	- note: Compile GLFW3 examples
	- rebind:
	    - libs: -lglfw3
	- cc:
	    - glad.o: deps/glad.c
	    - heightmap.c
	- cclink:
	    - heightmap: [heightmap.o, glad.o]
	...

becomes

	# ---
	# Compile GLFW3 examples
	build $builddir/glad.o: cc $srcdir/deps/glad.c
	    libs = -lglfw3
	build $builddir/heightmap.o: cc $srcdir/heightmap.c
	    libs = -lglfw3
	build $bindir/heightmap: cclink $builddir/heightmap.o $builddir/glad.o
	    libs = -lglfw3
	# ...

# Commands

	ninjagen targets [--srcdir d] [--builddir d] [--bindir d] specs...   targets.ninja
	ninjagen build [name=value ...]                                      build.ninja
	ninjagen print Makefile.ninja|targets.yaml|CMakeLists.txt
	ninjagen list [--format table|json|yaml]
	ninjagen validate specs...
	ninjagen inspect [--format table|json|yaml] specs...

A .c, .cc, .cpp or .cxx file may be given in place of a spec; it is compiled
and linked into a binary of the same name.

# Rules

cc and cxx compile one source into one object under $builddir. Rules ending
in "link" link objects from $builddir into $bindir. ar archives objects in
$builddir and can be turned off with --no-archive. Any other rule name is an
error.

# Configuration

An optional ninjagen.toml sets the roots and extra build.ninja bindings:

	archive = true

	[dirs]
	srcdir = "src"
	builddir = "build"
	bindir = "bin"

	[bindings]
	cxx = "clang++"

Flags win over the file, which wins over the defaults.

# Exit codes

1 for no input files or other usage errors, 2 for an unreadable file, 3 for
a configuration error in a spec, 4 for a spec that is not valid YAML.
*/
package main
