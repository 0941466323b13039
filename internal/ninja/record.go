package ninja

import "strings"

// BuildRecord is one compiled build statement. Target and every input are
// already rewritten against a root variable.
type BuildRecord struct {
	Target   string   `json:"target" yaml:"target"`
	Rule     string   `json:"rule" yaml:"rule"`
	Inputs   []string `json:"inputs" yaml:"inputs"`
	Bindings string   `json:"bindings,omitempty" yaml:"bindings,omitempty"`
}

// String renders the record as a ninja build statement.
func (r BuildRecord) String() string {
	return "build " + r.Target + ": " + r.Rule + " " + strings.Join(r.Inputs, " ") + r.Bindings
}
