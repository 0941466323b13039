// Package ninja compiles spec documents into ninja build statements.
//
// Each rule block entry becomes one "build <target>: <rule> <inputs>" line.
// Missing inputs are inferred from the rule name, and every path is rewritten
// against $srcdir, $builddir or $bindir depending on the rule category.
package ninja

import (
	"context"
	"fmt"
	"log/slog"

	"ninjagen/internal/spec"
)

// Handler receives the compiled stream in order. *Emitter is the usual
// Handler; Recorder keeps records as data.
type Handler interface {
	BeginDocument() error
	Note(text string) error
	Record(r BuildRecord) error
	End() error
}

type Compiler struct {
	Paths PathContext
	// DisableArchive turns off the "ar" rule, which is otherwise accepted
	// as an extension to cc, cxx and *link.
	DisableArchive bool
	Logger         *slog.Logger
}

func NewCompiler(paths PathContext) *Compiler {
	return &Compiler{Paths: paths}
}

type docState int

const (
	stateStart docState = iota
	stateInDocument
	stateClosed
)

// Compile runs every document through h. It stops at the first error;
// whatever h already received stays there.
func (c *Compiler) Compile(ctx context.Context, docs []spec.Document, h Handler) error {
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.compileDocument(i, doc, h); err != nil {
			return err
		}
	}
	return h.End()
}

// CompileTo is Compile onto an Emitter writing to sink.
func (c *Compiler) CompileTo(ctx context.Context, docs []spec.Document, sink Sink) error {
	return c.Compile(ctx, docs, NewEmitter(sink))
}

func (c *Compiler) compileDocument(index int, doc spec.Document, h Handler) error {
	log := c.logger().With("source", doc.Source, "document", index+1)
	scope := NewRebindScope()
	state := stateStart

	for _, stmt := range doc.Statements {
		if state == stateStart {
			if err := h.BeginDocument(); err != nil {
				return err
			}
			state = stateInDocument
		}

		switch stmt.Kind {
		case spec.Note:
			if err := h.Note(stmt.Text); err != nil {
				return err
			}
		case spec.Rebind:
			scope.Apply(stmt.Bindings)
			log.Debug("rebind", "bindings", scope.Len())
		case spec.RuleBlock:
			for _, ts := range stmt.Targets {
				rec, err := c.Build(stmt.Rule, ts, scope)
				if err != nil {
					return fmt.Errorf("%s: document %d: %w", doc.Source, index+1, err)
				}
				log.Debug("build", "target", rec.Target, "rule", rec.Rule)
				if err := h.Record(rec); err != nil {
					return err
				}
			}
		}
	}

	if state == stateStart {
		if err := h.BeginDocument(); err != nil {
			return err
		}
	}
	state = stateClosed
	log.Debug("document closed", "state", state)
	return nil
}

// Build turns one target of a rule block into a record, inferring inputs
// the entry leaves out and resolving every path. scope may be nil.
func (c *Compiler) Build(rule string, ts spec.TargetSpec, scope *RebindScope) (BuildRecord, error) {
	cat, err := Classify(rule, !c.DisableArchive)
	if err != nil {
		return BuildRecord{}, err
	}

	name, inputs := ts.Name, ts.Inputs
	if len(inputs) == 0 {
		if ts.Kind == spec.Bare && cat == Compile && IsSource(name) {
			inputs = []string{name}
			name = ObjectFor(name, c.Paths.SrcDir)
		} else {
			in, err := InferInput(rule, name)
			if err != nil {
				return BuildRecord{}, err
			}
			inputs = []string{in}
		}
	}

	targetRoot, inputRoot := cat.Roots()
	rec := BuildRecord{
		Target: c.Paths.Resolve(name, targetRoot),
		Rule:   rule,
		Inputs: make([]string, len(inputs)),
	}
	for i, in := range inputs {
		rec.Inputs[i] = c.Paths.Resolve(in, inputRoot)
	}
	if scope != nil {
		rec.Bindings = scope.Render()
	}
	return rec, nil
}

func (c *Compiler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (s docState) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateInDocument:
		return "in-document"
	}
	return "closed"
}

// DocumentRecords is the compiled form of one document.
type DocumentRecords struct {
	Source  string        `json:"source" yaml:"source"`
	Notes   []string      `json:"notes,omitempty" yaml:"notes,omitempty"`
	Records []BuildRecord `json:"records" yaml:"records"`
}

// Recorder is a Handler that keeps the compiled stream as data.
type Recorder struct {
	Documents []DocumentRecords
	sources   []string
}

// NewRecorder expects documents in the order they will be compiled, so each
// DocumentRecords can carry its source.
func NewRecorder(docs []spec.Document) *Recorder {
	r := &Recorder{}
	for _, d := range docs {
		r.sources = append(r.sources, d.Source)
	}
	return r
}

func (r *Recorder) BeginDocument() error {
	d := DocumentRecords{Records: []BuildRecord{}}
	if i := len(r.Documents); i < len(r.sources) {
		d.Source = r.sources[i]
	}
	r.Documents = append(r.Documents, d)
	return nil
}

func (r *Recorder) Note(text string) error {
	d := &r.Documents[len(r.Documents)-1]
	d.Notes = append(d.Notes, text)
	return nil
}

func (r *Recorder) Record(rec BuildRecord) error {
	d := &r.Documents[len(r.Documents)-1]
	d.Records = append(d.Records, rec)
	return nil
}

func (r *Recorder) End() error { return nil }
