package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/agilira/orpheus/pkg/orpheus"
)

var version = "dev"

// failure keeps the error a handler returned, before orpheus decorates it,
// so the exit code can be derived from it.
var failure error

func handled(fn func(ctx *orpheus.Context) error) func(ctx *orpheus.Context) error {
	return func(ctx *orpheus.Context) error {
		err := fn(ctx)
		if err != nil {
			failure = err
		}
		return err
	}
}

func withCompileFlags(cmd *orpheus.Command) *orpheus.Command {
	return cmd.
		AddFlag("srcdir", "", "", "Source directory, stripped from inputs of cc/cxx (default src)").
		AddFlag("builddir", "", "", "Build directory for object files and archives (default build)").
		AddFlag("bindir", "", "", "Directory for linked binaries (default bin)").
		AddFlag("config", "c", "", "Project file (default ninjagen.toml when present)").
		AddBoolFlag("no-archive", "", false, "Reject the ar rule").
		AddBoolFlag("verbose", "", false, "Log compilation steps to stderr")
}

func newApp() *orpheus.App {
	app := orpheus.New("ninjagen").
		SetDescription("Generates ninja build files from YAML target specs").
		SetVersion(version)

	app.AddCommand(withCompileFlags(orpheus.NewCommand("targets", "Create targets.ninja from .yaml build specs or .c/.cpp sources").
		SetHandler(handled(targetsCommand))))

	app.AddCommand(orpheus.NewCommand("build", "Create build.ninja; extra arguments are name=value bindings").
		SetHandler(handled(buildCommand)).
		AddFlag("config", "c", "", "Project file (default ninjagen.toml when present)"))

	app.AddCommand(orpheus.NewCommand("print", "Print a sample file: Makefile.ninja, targets.yaml or CMakeLists.txt").
		SetHandler(handled(printCommand)))

	app.AddCommand(orpheus.NewCommand("list", "List the files ninjagen can produce").
		SetHandler(handled(listCommand)).
		AddFlag("format", "f", "table", "Output format: table, json or yaml"))

	app.AddCommand(withCompileFlags(orpheus.NewCommand("validate", "Check specs without writing targets.ninja").
		SetHandler(handled(validateCommand))))

	app.AddCommand(withCompileFlags(orpheus.NewCommand("inspect", "Show compiled build statements as data").
		SetHandler(handled(inspectCommand))).
		AddFlag("format", "f", "table", "Output format: table, json or yaml"))

	return app
}

func main() {
	slog.SetDefault(newLogger(false, os.Stderr))

	if err := newApp().Run(os.Args[1:]); err != nil {
		if failure != nil {
			os.Exit(RaiseException(os.Stderr, failure))
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(NO_INPUT_FILES)
	}
}
