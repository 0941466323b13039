package main

import (
	"testing"

	"ninjagen/internal/ninja"
	"ninjagen/internal/spec"
)

func TestVarRefs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"No variables", "-O2 -g", nil},
		{"Plain reference", "$cxxflags -O3", []string{"cxxflags"}},
		{"Braced reference", "${cflags}-extra", []string{"cflags"}},
		{"Embedded in a path", "-L$HOME/opt/local/lib", []string{"HOME"}},
		{"Several references", "$cc $ldflags -o $out", []string{"cc", "ldflags", "out"}},
		{"Escaped dollar", "cost$$5 $$x", nil},
		{"Lone dollar", "a $ b", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := VarRefs(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("VarRefs(%q) = %v, want %v", tt.input, result, tt.expected)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("VarRefs(%q)[%d] = %v, want %v", tt.input, i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestIsDefined(t *testing.T) {
	cfg := &ProjectConfig{Bindings: map[string]string{"home": "/home/me"}}
	scope := ninja.NewRebindScope()
	scope.Apply([]spec.Binding{{Name: "extra", Value: "1"}})

	tests := []struct {
		name     string
		variable string
		expected bool
	}{
		{"Ninja built-in", "out", true},
		{"build.ninja default", "cxxflags", true},
		{"Project binding", "home", true},
		{"Earlier rebind", "extra", true},
		{"Undefined", "HOME", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsDefined(tt.variable, cfg, scope); result != tt.expected {
				t.Errorf("IsDefined(%q) = %v, want %v", tt.variable, result, tt.expected)
			}
		})
	}

	if IsDefined("home", nil, nil) {
		t.Errorf("IsDefined(home) without a project file = true, want false")
	}
}

func TestCheckVars(t *testing.T) {
	docs := []spec.Document{
		{Source: "a.yaml", Statements: []spec.Statement{
			spec.NewRebind(
				spec.Binding{Name: "extra", Value: "$extra -x"},
				spec.Binding{Name: "more", Value: "$extra $libs"},
			),
		}},
		{Source: "a.yaml", Statements: []spec.Statement{
			spec.NewRebind(spec.Binding{Name: "again", Value: "$more"}),
			spec.NewNote("$ignored"),
		}},
	}

	warnings := CheckVars(docs, nil)
	want := []VarWarning{
		{Source: "a.yaml", Document: 1, Binding: "extra", Variable: "extra"},
		{Source: "a.yaml", Document: 2, Binding: "again", Variable: "more"},
	}
	if len(warnings) != len(want) {
		t.Fatalf("CheckVars() = %+v, want %+v", warnings, want)
	}
	for i := range want {
		if warnings[i] != want[i] {
			t.Errorf("CheckVars()[%d] = %+v, want %+v", i, warnings[i], want[i])
		}
	}
}
