package main

import (
	"fmt"
	"path/filepath"
	"testing"

	"ninjagen/internal/errs"
	"ninjagen/internal/ninja"
	"ninjagen/internal/spec"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		explicit bool
		wantErr  errCode
		check    func(t *testing.T, cfg *ProjectConfig)
	}{
		{
			name: "Full project file",
			content: `archive = false

[dirs]
srcdir = "code"
bindir = "out/bin"

[bindings]
cxx = "clang++"
home = "/home/me"
cflags = "-O2"
`,
			check: func(t *testing.T, cfg *ProjectConfig) {
				if cfg.Archive == nil || *cfg.Archive {
					t.Errorf("Archive = %v, want false", cfg.Archive)
				}
				if cfg.Dirs.SrcDir != "code" || cfg.Dirs.BinDir != "out/bin" || cfg.Dirs.BuildDir != "" {
					t.Errorf("Dirs = %+v", cfg.Dirs)
				}
				want := []spec.Binding{
					{Name: "cxx", Value: "clang++"},
					{Name: "home", Value: "/home/me"},
					{Name: "cflags", Value: "-O2"},
				}
				got := cfg.OrderedBindings()
				if len(got) != len(want) {
					t.Fatalf("OrderedBindings() = %v, want %v", got, want)
				}
				for i := range want {
					if got[i] != want[i] {
						t.Errorf("OrderedBindings()[%d] = %v, want %v", i, got[i], want[i])
					}
				}
			},
		},
		{
			name:    "Empty file",
			content: "",
			check: func(t *testing.T, cfg *ProjectConfig) {
				if cfg.Archive != nil || len(cfg.OrderedBindings()) != 0 {
					t.Errorf("empty file gave %+v", cfg)
				}
			},
		},
		{
			name:    "Invalid TOML",
			content: "[dirs\nsrcdir = 1",
			wantErr: configErr,
		},
		{
			name:    "Unknown key",
			content: "[dirs]\nsourcedir = \"x\"\n",
			wantErr: configErr,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, fmt.Sprintf("config%d.toml", i), tt.content)
			cfg, err := loadConfig(path, true)
			if tt.wantErr != noErr {
				if !errs.Is(err, errs.ConfigurationError) {
					t.Errorf("loadConfig() error = %v, want ConfigurationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

type errCode int

const (
	noErr errCode = iota
	configErr
)

func TestLoadConfigMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "ninjagen.toml")

	cfg, err := loadConfig(missing, false)
	if err != nil || cfg != nil {
		t.Errorf("loadConfig() of a missing default = %v, %v, want nil, nil", cfg, err)
	}

	if _, err := loadConfig(missing, true); !errs.Is(err, errs.FileError) {
		t.Errorf("loadConfig() of a missing named file error = %v, want FileError", err)
	}
}

func TestResolveOptions(t *testing.T) {
	archive := false
	cfg := &ProjectConfig{
		Archive: &archive,
		Dirs:    DirsConfig{SrcDir: "code", BuildDir: "obj"},
	}

	tests := []struct {
		name        string
		flags       flagValues
		cfg         *ProjectConfig
		wantPaths   ninja.PathContext
		wantArchive bool
	}{
		{
			name:        "Defaults",
			wantPaths:   ninja.PathContext{SrcDir: "src", BuildDir: "build", BinDir: "bin"},
			wantArchive: true,
		},
		{
			name:        "Project file over defaults",
			cfg:         cfg,
			wantPaths:   ninja.PathContext{SrcDir: "code", BuildDir: "obj", BinDir: "bin"},
			wantArchive: false,
		},
		{
			name:        "Flags over project file",
			flags:       flagValues{BuildDir: "out", BinDir: "dist"},
			cfg:         cfg,
			wantPaths:   ninja.PathContext{SrcDir: "code", BuildDir: "out", BinDir: "dist"},
			wantArchive: false,
		},
		{
			name:        "No-archive flag",
			flags:       flagValues{NoArchive: true},
			wantPaths:   ninja.DefaultPathContext(),
			wantArchive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := resolveOptions(tt.flags, tt.cfg)
			if opts.Paths != tt.wantPaths {
				t.Errorf("resolveOptions() paths = %+v, want %+v", opts.Paths, tt.wantPaths)
			}
			if opts.DisableArchive == tt.wantArchive {
				t.Errorf("resolveOptions() DisableArchive = %v, want %v", opts.DisableArchive, !tt.wantArchive)
			}
		})
	}
}

func TestOrderedBindingsNilConfig(t *testing.T) {
	var cfg *ProjectConfig
	if got := cfg.OrderedBindings(); got != nil {
		t.Errorf("OrderedBindings() on nil config = %v, want nil", got)
	}
}
