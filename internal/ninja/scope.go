package ninja

import (
	"strings"

	"ninjagen/internal/spec"
)

// RebindScope is the ordered set of variable overrides active in a
// document. A name keeps the position of its first binding.
type RebindScope struct {
	names  []string
	values map[string]string
}

func NewRebindScope() *RebindScope {
	return &RebindScope{values: make(map[string]string)}
}

func (s *RebindScope) Apply(bindings []spec.Binding) {
	for _, b := range bindings {
		if _, seen := s.values[b.Name]; !seen {
			s.names = append(s.names, b.Name)
		}
		s.values[b.Name] = b.Value
	}
}

func (s *RebindScope) Len() int {
	return len(s.names)
}

func (s *RebindScope) Lookup(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Render returns one indented "\n    name = value" line per binding, or ""
// when nothing is bound.
func (s *RebindScope) Render() string {
	var sb strings.Builder
	for _, name := range s.names {
		sb.WriteString("\n    ")
		sb.WriteString(name)
		sb.WriteString(" = ")
		sb.WriteString(s.values[name])
	}
	return sb.String()
}
