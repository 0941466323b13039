package spec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"ninjagen/internal/errs"
)

const nullTag = "!!null"

// Decode reads every document of a YAML stream. Mapping order is kept by
// decoding into yaml.Node rather than into Go maps.
func Decode(r io.Reader, source string) ([]Document, error) {
	dec := yaml.NewDecoder(r)

	var docs []Document
	for {
		var root yaml.Node
		err := dec.Decode(&root)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errs.SourceParse(source, err)
		}

		doc, err := decodeDocument(&root, source)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// DecodeString is Decode over an in-memory spec.
func DecodeString(text, source string) ([]Document, error) {
	return Decode(strings.NewReader(text), source)
}

// LoadFile turns one command line argument into documents: .yaml/.yml files
// are decoded, C and C++ sources become a single compile-and-link document.
func LoadFile(path, srcdir string) ([]Document, error) {
	if doc, ok := FromSource(path, srcdir); ok {
		if _, err := os.Stat(path); err != nil {
			return nil, errs.File(path, err)
		}
		return []Document{doc}, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
	default:
		return nil, errs.Configuration("%s: not a .yaml spec or a C/C++ source file", path)
	}

	// #nosec G304 - spec files are named by the user on the command line
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.File(path, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, path)
}

func decodeDocument(root *yaml.Node, source string) (Document, error) {
	doc := Document{Source: source}

	n := root
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return doc, nil
		}
		n = n.Content[0]
	}
	n = deref(n)
	if n.Kind == 0 || isNull(n) {
		return doc, nil
	}
	if n.Kind != yaml.SequenceNode {
		return doc, parseError(source, n, "document must be a list of statements")
	}

	for _, item := range n.Content {
		item = deref(item)
		if item.Kind != yaml.MappingNode {
			return doc, parseError(source, item, "statement must be a mapping like '- note: ...' or '- <rule>: [...]'")
		}
		for i := 0; i+1 < len(item.Content); i += 2 {
			stmt, err := decodeStatement(item.Content[i], item.Content[i+1], source)
			if err != nil {
				return doc, err
			}
			doc.Statements = append(doc.Statements, stmt)
		}
	}
	return doc, nil
}

func decodeStatement(key, value *yaml.Node, source string) (Statement, error) {
	key = deref(key)
	value = deref(value)
	if key.Kind != yaml.ScalarNode || key.Value == "" {
		return Statement{}, parseError(source, key, "statement key must be a non-empty string")
	}

	switch key.Value {
	case "note":
		if value.Kind != yaml.ScalarNode {
			return Statement{}, parseError(source, value, "note must be text")
		}
		if isNull(value) {
			return NewNote(""), nil
		}
		return NewNote(value.Value), nil
	case "rebind":
		bindings, err := decodeBindings(value, source)
		if err != nil {
			return Statement{}, err
		}
		return NewRebind(bindings...), nil
	default:
		targets, err := decodeTargets(key.Value, value, source)
		if err != nil {
			return Statement{}, err
		}
		return NewRuleBlock(key.Value, targets...), nil
	}
}

func decodeBindings(value *yaml.Node, source string) ([]Binding, error) {
	if isNull(value) {
		return nil, nil
	}

	var groups []*yaml.Node
	switch value.Kind {
	case yaml.MappingNode:
		groups = []*yaml.Node{value}
	case yaml.SequenceNode:
		groups = value.Content
	default:
		return nil, parseError(source, value, "rebind must be a list of 'name: value' entries")
	}

	var bindings []Binding
	for _, g := range groups {
		g = deref(g)
		if g.Kind != yaml.MappingNode {
			return nil, parseError(source, g, "rebind entry must be a 'name: value' mapping")
		}
		for i := 0; i+1 < len(g.Content); i += 2 {
			k, v := deref(g.Content[i]), deref(g.Content[i+1])
			if k.Kind != yaml.ScalarNode || k.Value == "" {
				return nil, parseError(source, k, "rebind name must be a non-empty string")
			}
			if v.Kind != yaml.ScalarNode {
				return nil, parseError(source, v, fmt.Sprintf("rebind value of %q must be a string", k.Value))
			}
			b := Binding{Name: k.Value}
			if !isNull(v) {
				b.Value = v.Value
			}
			bindings = append(bindings, b)
		}
	}
	return bindings, nil
}

func decodeTargets(rule string, value *yaml.Node, source string) ([]TargetSpec, error) {
	if isNull(value) {
		return nil, nil
	}
	if value.Kind != yaml.SequenceNode {
		return nil, shapeError(source, value, rule, "rule block must be a list of targets")
	}

	var targets []TargetSpec
	for _, entry := range value.Content {
		entry = deref(entry)
		switch entry.Kind {
		case yaml.ScalarNode:
			if isNull(entry) || entry.Value == "" {
				return nil, shapeError(source, entry, rule, "empty target name")
			}
			targets = append(targets, BareTarget(entry.Value))
		case yaml.MappingNode:
			for i := 0; i+1 < len(entry.Content); i += 2 {
				name := deref(entry.Content[i])
				if name.Kind != yaml.ScalarNode || isNull(name) || name.Value == "" {
					return nil, shapeError(source, name, rule, "target name must be a non-empty string")
				}
				inputs, err := decodeInputs(rule, name.Value, deref(entry.Content[i+1]), source)
				if err != nil {
					return nil, err
				}
				targets = append(targets, ExplicitTarget(name.Value, inputs...))
			}
		default:
			return nil, shapeError(source, entry, rule, "target must be a name or a 'name: inputs' mapping")
		}
	}
	return targets, nil
}

// decodeInputs returns nil when the inputs are to be inferred.
func decodeInputs(rule, target string, value *yaml.Node, source string) ([]string, error) {
	switch value.Kind {
	case yaml.ScalarNode:
		if isNull(value) || value.Value == "" {
			return nil, nil
		}
		return []string{value.Value}, nil
	case yaml.SequenceNode:
		var inputs []string
		for _, in := range value.Content {
			in = deref(in)
			if in.Kind != yaml.ScalarNode || isNull(in) || in.Value == "" {
				return nil, shapeError(source, in, rule, fmt.Sprintf("inputs of %q must be non-empty strings", target))
			}
			inputs = append(inputs, in.Value)
		}
		return inputs, nil
	}
	return nil, shapeError(source, value, rule, fmt.Sprintf("inputs of %q must be a string or a list of strings", target))
}

func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == nullTag
}

func parseError(source string, n *yaml.Node, msg string) error {
	return errs.SourceParse(source, fmt.Errorf("line %d: %s", n.Line, msg))
}

func shapeError(source string, n *yaml.Node, rule, msg string) error {
	return errs.Configuration("%s: line %d: rule %q: %s", source, n.Line, rule, msg)
}
