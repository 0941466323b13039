package ninja

import (
	"bufio"
	"io"
	"strings"
)

const (
	DocumentSeparator = "# ---"
	StreamEnd         = "# ..."
)

// Sink accepts output lines in order.
type Sink interface {
	WriteLine(line string) error
}

// WriterSink writes lines to an io.Writer through a buffer. Call Flush when
// done.
type WriterSink struct {
	w *bufio.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (s *WriterSink) WriteLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

func (s *WriterSink) Flush() error {
	return s.w.Flush()
}

// LineBuffer keeps every line in memory so output can be inspected or
// committed only after a run succeeds.
type LineBuffer struct {
	Lines []string
}

func (b *LineBuffer) WriteLine(line string) error {
	b.Lines = append(b.Lines, line)
	return nil
}

func (b *LineBuffer) String() string {
	if len(b.Lines) == 0 {
		return ""
	}
	return strings.Join(b.Lines, "\n") + "\n"
}

// WriteTo writes the buffered lines to w.
func (b *LineBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Emitter renders documents, notes and records onto a Sink.
type Emitter struct {
	sink Sink
}

func NewEmitter(sink Sink) *Emitter {
	return &Emitter{sink: sink}
}

func (e *Emitter) BeginDocument() error {
	return e.sink.WriteLine(DocumentSeparator)
}

// Note writes text as a comment. Trailing whitespace is dropped and every
// embedded line gets its own "# " prefix.
func (e *Emitter) Note(text string) error {
	text = strings.TrimRight(text, " \t\r\n")
	for _, line := range strings.Split(text, "\n") {
		if err := e.sink.WriteLine("# " + line); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) Record(r BuildRecord) error {
	return e.sink.WriteLine(r.String())
}

func (e *Emitter) End() error {
	return e.sink.WriteLine(StreamEnd)
}
