package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/agilira/orpheus/pkg/orpheus"

	"ninjagen/internal/errs"
	"ninjagen/internal/ninja"
	"ninjagen/internal/skeleton"
	"ninjagen/internal/spec"
)

// Streams the handlers write to. Tests swap them for buffers.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// compileFlags reads the flags shared by every command that compiles specs.
func compileFlags(ctx *orpheus.Context) flagValues {
	return flagValues{
		SrcDir:    ctx.GetFlagString("srcdir"),
		BuildDir:  ctx.GetFlagString("builddir"),
		BinDir:    ctx.GetFlagString("bindir"),
		NoArchive: ctx.GetFlagBool("no-archive"),
		Verbose:   ctx.GetFlagBool("verbose"),
	}
}

func commandOptions(ctx *orpheus.Context, fv flagValues) (Options, error) {
	configPath := ctx.GetFlagString("config")
	cfg, err := loadConfig(configPath, configPath != "")
	if err != nil {
		return Options{}, err
	}
	return resolveOptions(fv, cfg), nil
}

func targetsCommand(ctx *orpheus.Context) error {
	opts, err := commandOptions(ctx, compileFlags(ctx))
	if err != nil {
		return err
	}
	return runTargets(context.Background(), stdout, opts, ctx.Args)
}

func buildCommand(ctx *orpheus.Context) error {
	opts, err := commandOptions(ctx, flagValues{})
	if err != nil {
		return err
	}
	return runBuild(stdout, opts, ctx.Args)
}

func printCommand(ctx *orpheus.Context) error {
	if len(ctx.Args) != 1 {
		return errs.Usage("print takes one skeleton name")
	}
	return skeleton.Print(stdout, ctx.Args[0])
}

func listCommand(ctx *orpheus.Context) error {
	format := ctx.GetFlagString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	return listSkeletons(stdout, format)
}

func validateCommand(ctx *orpheus.Context) error {
	opts, err := commandOptions(ctx, compileFlags(ctx))
	if err != nil {
		return err
	}
	return runValidate(context.Background(), stdout, stderr, opts, ctx.Args)
}

func inspectCommand(ctx *orpheus.Context) error {
	fv := compileFlags(ctx)
	fv.Format = ctx.GetFlagString("format")
	opts, err := commandOptions(ctx, fv)
	if err != nil {
		return err
	}
	return runInspect(context.Background(), stdout, opts, ctx.Args)
}

// loadDocuments reads every file in order. The roots must exist when they
// were configured away from their defaults, since paths get stripped
// against them.
func loadDocuments(opts Options, files []string) ([]spec.Document, error) {
	if len(files) == 0 {
		return nil, errs.Usage("no input files: give one or more .yaml specs or .c/.cpp sources")
	}
	if opts.Paths.SrcDir != ninja.DefaultSrcDir {
		if _, err := os.Stat(opts.Paths.SrcDir); err != nil {
			return nil, errs.File(opts.Paths.SrcDir, err)
		}
	}

	var docs []spec.Document
	for _, f := range files {
		d, err := spec.LoadFile(f, opts.Paths.SrcDir)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d...)
	}
	return docs, nil
}

func newCompiler(opts Options) *ninja.Compiler {
	c := ninja.NewCompiler(opts.Paths)
	c.DisableArchive = opts.DisableArchive
	c.Logger = newLogger(opts.Verbose, stderr)
	return c
}

// runTargets writes targets.ninja. Output is streamed, so a failure part
// way leaves the statements before it on w.
func runTargets(ctx context.Context, w io.Writer, opts Options, files []string) error {
	docs, err := loadDocuments(opts, files)
	if err != nil {
		return err
	}

	sink := ninja.NewWriterSink(w)
	compileErr := newCompiler(opts).CompileTo(ctx, docs, sink)
	if err := sink.Flush(); err != nil && compileErr == nil {
		return err
	}
	return compileErr
}

func runBuild(w io.Writer, opts Options, args []string) error {
	overrides, err := skeleton.ParseAssignments(args)
	if err != nil {
		return err
	}
	overrides = append(opts.Config.OrderedBindings(), overrides...)
	return skeleton.RenderBuild(w, overrides, os.LookupEnv)
}

func runValidate(ctx context.Context, out, errOut io.Writer, opts Options, files []string) error {
	docs, err := loadDocuments(opts, files)
	if err != nil {
		return err
	}

	rec := ninja.NewRecorder(docs)
	if err := newCompiler(opts).Compile(ctx, docs, rec); err != nil {
		return err
	}

	warnings := CheckVars(docs, opts.Config)
	for _, w := range warnings {
		Warn(errOut, "%s: document %d: rebind %s refers to undefined variable $%s", w.Source, w.Document, w.Binding, w.Variable)
	}

	records := 0
	for _, d := range rec.Documents {
		records += len(d.Records)
	}
	_, err = fmt.Fprintf(out, "OK: %d documents, %d build statements, %d warnings\n", len(docs), records, len(warnings))
	return err
}

func runInspect(ctx context.Context, w io.Writer, opts Options, files []string) error {
	if err := checkFormat(opts.Format); err != nil {
		return err
	}
	docs, err := loadDocuments(opts, files)
	if err != nil {
		return err
	}

	rec := ninja.NewRecorder(docs)
	if err := newCompiler(opts).Compile(ctx, docs, rec); err != nil {
		return err
	}
	return writeRecords(w, opts.Format, rec.Documents)
}
