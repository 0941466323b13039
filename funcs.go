package main

import (
	"ninjagen/internal/ninja"
	"ninjagen/internal/skeleton"
	"ninjagen/internal/spec"
)

// Variables ninja itself binds for every build edge.
var builtinVars = map[string]bool{"in": true, "in_newline": true, "out": true}

// VarWarning is a rebind value referring to a variable nothing defines.
type VarWarning struct {
	Source   string
	Document int
	Binding  string
	Variable string
}

// IsDefined reports whether a variable is visible to a build statement:
// ninja built-ins, build.ninja bindings, project [bindings], then rebinds
// made so far in the document.
func IsDefined(name string, cfg *ProjectConfig, scope *ninja.RebindScope) bool {
	if builtinVars[name] || skeleton.IsDefaultBinding(name) {
		return true
	}
	if cfg != nil {
		if _, ok := cfg.Bindings[name]; ok {
			return true
		}
	}
	if scope != nil {
		if _, ok := scope.Lookup(name); ok {
			return true
		}
	}
	return false
}

// CheckVars walks every rebind and reports references to undefined
// variables. A binding may refer to its own earlier value.
func CheckVars(docs []spec.Document, cfg *ProjectConfig) []VarWarning {
	var warnings []VarWarning
	for i, doc := range docs {
		scope := ninja.NewRebindScope()
		for _, stmt := range doc.Statements {
			if stmt.Kind != spec.Rebind {
				continue
			}
			for _, b := range stmt.Bindings {
				for _, ref := range VarRefs(b.Value) {
					if !IsDefined(ref, cfg, scope) {
						warnings = append(warnings, VarWarning{
							Source:   doc.Source,
							Document: i + 1,
							Binding:  b.Name,
							Variable: ref,
						})
					}
				}
				scope.Apply([]spec.Binding{b})
			}
		}
	}
	return warnings
}
