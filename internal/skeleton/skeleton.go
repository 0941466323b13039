// Package skeleton prints the boilerplate files that go with a generated
// targets.ninja: a build.ninja rendered from variable bindings, and a few
// static samples.
package skeleton

import (
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"ninjagen/internal/errs"
	"ninjagen/internal/spec"
)

//go:embed files
var files embed.FS

// Skeleton describes one file the tool can produce.
type Skeleton struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Command     string `json:"command" yaml:"command"`
}

// Skeletons lists everything the CLI can print, in display order.
var Skeletons = []Skeleton{
	{"Makefile.ninja", "Prints out a sample Makefile that uses the ninja build system", "print Makefile.ninja"},
	{"build.ninja", "Creates a sample build.ninja file", "build [name=value ...]"},
	{"targets.ninja", "Creates targets.ninja from a targets.yaml build spec file", "targets <spec.yaml|source> ..."},
	{"targets.yaml", "Prints out a sample targets.yaml file", "print targets.yaml"},
	{"CMakeLists.txt", "Prints out a cmake configuration file", "print CMakeLists.txt"},
}

var static = map[string]bool{"Makefile.ninja": true, "targets.yaml": true, "CMakeLists.txt": true}

// Print copies the static skeleton name to w.
func Print(w io.Writer, name string) error {
	if !static[name] {
		return errs.Usage("unknown skeleton %q (try: %s)", name, strings.Join(StaticNames(), ", "))
	}
	data, err := files.ReadFile("files/" + name)
	if err != nil {
		return fmt.Errorf("read skeleton %s: %w", name, err)
	}
	_, err = w.Write(data)
	return err
}

func StaticNames() []string {
	var names []string
	for _, s := range Skeletons {
		if static[s.Name] {
			names = append(names, s.Name)
		}
	}
	return names
}

// DefaultBindings are the variables every build.ninja defines.
var DefaultBindings = []spec.Binding{
	{Name: "bindir", Value: "bin"},
	{Name: "builddir", Value: "build"},
	{Name: "srcdir", Value: "src"},
	{Name: "cc", Value: "gcc"},
	{Name: "cflags", Value: "-Wall"},
	{Name: "cxx", Value: "g++"},
	{Name: "cxxflags", Value: "-std=c++11 -Wall"},
	{Name: "ldflags", Value: ""},
	{Name: "libs", Value: ""},
}

// IsDefaultBinding reports whether name is one of DefaultBindings.
func IsDefaultBinding(name string) bool {
	for _, b := range DefaultBindings {
		if b.Name == name {
			return true
		}
	}
	return false
}

var buildTemplate = template.Must(template.ParseFS(files, "files/build.ninja.tmpl"))

type buildContext struct {
	Defaults []spec.Binding
	Other    []spec.Binding
}

// LookupFunc is os.LookupEnv or a stand-in for tests.
type LookupFunc func(name string) (string, bool)

// RenderBuild writes build.ninja. Default bindings may be overridden by an
// environment variable of the same name; overrides win over both, in order.
// Overrides naming new variables are written in an "other bindings" block.
func RenderBuild(w io.Writer, overrides []spec.Binding, lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	ctx := buildContext{Defaults: make([]spec.Binding, len(DefaultBindings))}
	copy(ctx.Defaults, DefaultBindings)
	for i, b := range ctx.Defaults {
		if v, ok := lookup(b.Name); ok {
			ctx.Defaults[i].Value = v
		}
	}

	for _, o := range overrides {
		if i := indexOf(ctx.Defaults, o.Name); i >= 0 {
			ctx.Defaults[i].Value = o.Value
			continue
		}
		if i := indexOf(ctx.Other, o.Name); i >= 0 {
			ctx.Other[i].Value = o.Value
			continue
		}
		ctx.Other = append(ctx.Other, o)
	}

	return buildTemplate.ExecuteTemplate(w, "build.ninja.tmpl", ctx)
}

func indexOf(bindings []spec.Binding, name string) int {
	for i, b := range bindings {
		if b.Name == name {
			return i
		}
	}
	return -1
}

// ParseAssignments turns "name=value" arguments into bindings.
func ParseAssignments(args []string) ([]spec.Binding, error) {
	bindings := make([]spec.Binding, 0, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, errs.Usage("expected name=value, got %q", arg)
		}
		bindings = append(bindings, spec.Binding{Name: strings.TrimSpace(name), Value: value})
	}
	return bindings, nil
}
