package skeleton

import (
	"bytes"
	"strings"
	"testing"

	"ninjagen/internal/errs"
	"ninjagen/internal/spec"
)

func noEnv(string) (string, bool) { return "", false }

func TestRenderBuildDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderBuild(&buf, nil, noEnv); err != nil {
		t.Fatalf("RenderBuild() unexpected error: %v", err)
	}
	out := buf.String()

	expected := []string{
		"bindir = bin\nbuilddir = build\nsrcdir = src\ncc = gcc\n",
		"cxxflags = -std=c++11 -Wall\n",
		"libs = \n\nrule cc\n",
		"rule cxxlink\n",
		"include targets.ninja\n",
	}
	for _, e := range expected {
		if !strings.Contains(out, e) {
			t.Errorf("RenderBuild() output missing %q", e)
		}
	}
	if strings.Contains(out, "# other bindings") {
		t.Errorf("RenderBuild() wrote an other bindings block without overrides")
	}
}

func TestRenderBuildOverrides(t *testing.T) {
	env := map[string]string{"cc": "clang", "cxx": "clang++", "home": "/ignored"}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
	overrides := []spec.Binding{
		{Name: "cxx", Value: "g++-12"},
		{Name: "home", Value: "/home/me"},
		{Name: "extra", Value: "1"},
		{Name: "home", Value: "/home/you"},
	}

	var buf bytes.Buffer
	if err := RenderBuild(&buf, overrides, lookup); err != nil {
		t.Fatalf("RenderBuild() unexpected error: %v", err)
	}
	out := buf.String()

	tests := []struct {
		name     string
		contains string
	}{
		{"Environment overrides a default", "cc = clang\n"},
		{"Argument beats environment", "cxx = g++-12\n"},
		{"New variables go last in first-seen order", "libs = \n\n# other bindings\nhome = /home/you\nextra = 1\n\nrule cc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(out, tt.contains) {
				t.Errorf("RenderBuild() output missing %q:\n%s", tt.contains, out)
			}
		})
	}
	if strings.Count(out, "cxx = ") != 1 {
		t.Errorf("RenderBuild() bound cxx more than once:\n%s", out)
	}
}

func TestPrint(t *testing.T) {
	for _, name := range StaticNames() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Print(&buf, name); err != nil {
				t.Fatalf("Print(%q) unexpected error: %v", name, err)
			}
			if buf.Len() == 0 {
				t.Errorf("Print(%q) wrote nothing", name)
			}
		})
	}

	var buf bytes.Buffer
	if err := Print(&buf, "build.ninja"); !errs.Is(err, errs.UsageError) {
		t.Errorf("Print(build.ninja) error = %v, want UsageError", err)
	}
	if err := Print(&buf, "nope"); !errs.Is(err, errs.UsageError) {
		t.Errorf("Print(nope) error = %v, want UsageError", err)
	}
}

func TestTargetsSampleDecodes(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, "targets.yaml"); err != nil {
		t.Fatalf("Print() unexpected error: %v", err)
	}
	docs, err := spec.Decode(&buf, "targets.yaml")
	if err != nil {
		t.Fatalf("sample targets.yaml does not decode: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("sample targets.yaml has %d documents, want 2", len(docs))
	}
}

func TestParseAssignments(t *testing.T) {
	got, err := ParseAssignments([]string{"cc=clang", "cxxflags=-std=c++17 -O2", "empty="})
	if err != nil {
		t.Fatalf("ParseAssignments() unexpected error: %v", err)
	}
	want := []spec.Binding{
		{Name: "cc", Value: "clang"},
		{Name: "cxxflags", Value: "-std=c++17 -O2"},
		{Name: "empty", Value: ""},
	}
	if len(got) != len(want) {
		t.Fatalf("ParseAssignments() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseAssignments()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	for _, bad := range []string{"novalue", "=x"} {
		if _, err := ParseAssignments([]string{bad}); !errs.Is(err, errs.UsageError) {
			t.Errorf("ParseAssignments(%q) error = %v, want UsageError", bad, err)
		}
	}
}
