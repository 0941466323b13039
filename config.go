package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"

	"ninjagen/internal/errs"
	"ninjagen/internal/ninja"
	"ninjagen/internal/spec"
)

const defaultConfigFile = "ninjagen.toml"

// loadConfig reads a project file. A missing default file is not an error;
// a missing file that was asked for by name is.
func loadConfig(path string, explicit bool) (*ProjectConfig, error) {
	if path == "" {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errs.File(path, err)
	}

	var cfg ProjectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errs.Configuration("%s: failed to parse TOML: %v", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errs.Configuration("%s: unknown key %s", path, undecoded[0].String())
	}
	for _, key := range meta.Keys() {
		if len(key) == 2 && key[0] == "bindings" {
			cfg.bindingOrder = append(cfg.bindingOrder, key[1])
		}
	}
	return &cfg, nil
}

// OrderedBindings returns [bindings] in file order.
func (c *ProjectConfig) OrderedBindings() []spec.Binding {
	if c == nil {
		return nil
	}
	out := make([]spec.Binding, 0, len(c.bindingOrder))
	for _, name := range c.bindingOrder {
		out = append(out, spec.Binding{Name: name, Value: c.Bindings[name]})
	}
	return out
}

// resolveOptions merges command line flags over the project file over the
// built-in defaults.
func resolveOptions(fv flagValues, cfg *ProjectConfig) Options {
	opts := Options{
		Paths:   ninja.DefaultPathContext(),
		Verbose: fv.Verbose,
		Format:  fv.Format,
		Config:  cfg,
	}
	if cfg != nil {
		opts.Paths.SrcDir = firstNonEmpty(cfg.Dirs.SrcDir, opts.Paths.SrcDir)
		opts.Paths.BuildDir = firstNonEmpty(cfg.Dirs.BuildDir, opts.Paths.BuildDir)
		opts.Paths.BinDir = firstNonEmpty(cfg.Dirs.BinDir, opts.Paths.BinDir)
		if cfg.Archive != nil {
			opts.DisableArchive = !*cfg.Archive
		}
	}
	opts.Paths.SrcDir = firstNonEmpty(fv.SrcDir, opts.Paths.SrcDir)
	opts.Paths.BuildDir = firstNonEmpty(fv.BuildDir, opts.Paths.BuildDir)
	opts.Paths.BinDir = firstNonEmpty(fv.BinDir, opts.Paths.BinDir)
	if fv.NoArchive {
		opts.DisableArchive = true
	}
	return opts
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// newLogger builds the stderr logger; nothing below warn is shown unless
// verbose is set.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
