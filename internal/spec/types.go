// Package spec holds the document model of a targets spec and decodes it
// from YAML.
//
// A spec file is a stream of YAML documents. Each document is a list of
// single-key mappings:
//
//	---
//	- note: Compile object files in debug mode
//	- rebind:
//	    - cxxflags: $cxxflags -DDEBUG -g
//	- cxx:
//	    - hello.g.o: hello.cpp
//	- cxxlink:
//	    - hello-g: hello.g.o
//	...
package spec

type StatementKind int

const (
	Note StatementKind = iota
	Rebind
	RuleBlock
)

func (k StatementKind) String() string {
	switch k {
	case Note:
		return "note"
	case Rebind:
		return "rebind"
	case RuleBlock:
		return "rule"
	}
	return "unknown"
}

type TargetKind int

const (
	// Bare is a target given as a plain string; everything else is inferred.
	Bare TargetKind = iota
	// Explicit is a target given as a mapping from name to inputs. A nil
	// Inputs slice still means "infer the inputs, keep the name".
	Explicit
)

type TargetSpec struct {
	Kind   TargetKind
	Name   string
	Inputs []string
}

// Binding is one name = value override from a rebind statement.
type Binding struct {
	Name  string
	Value string
}

// Statement is a tagged variant. Only the fields of its Kind are set.
type Statement struct {
	Kind     StatementKind
	Text     string       // Note
	Bindings []Binding    // Rebind
	Rule     string       // RuleBlock
	Targets  []TargetSpec // RuleBlock
}

type Document struct {
	Source     string
	Statements []Statement
}

func NewNote(text string) Statement {
	return Statement{Kind: Note, Text: text}
}

func NewRebind(bindings ...Binding) Statement {
	return Statement{Kind: Rebind, Bindings: bindings}
}

func NewRuleBlock(rule string, targets ...TargetSpec) Statement {
	return Statement{Kind: RuleBlock, Rule: rule, Targets: targets}
}

func BareTarget(name string) TargetSpec {
	return TargetSpec{Kind: Bare, Name: name}
}

func ExplicitTarget(name string, inputs ...string) TargetSpec {
	return TargetSpec{Kind: Explicit, Name: name, Inputs: inputs}
}
