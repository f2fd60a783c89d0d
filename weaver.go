package weave

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrEmptyInput is returned when a document has no lines to weave
var ErrEmptyInput = errors.New("input has no lines")

type Weaver struct {
	dialect Dialect
}

func NewWeaver(dialect Dialect) *Weaver {
	return &Weaver{
		dialect: dialect,
	}
}

// InitialMode returns the mode the first line of lines puts the weaver in
func InitialMode(lines []string) (Mode, error) {
	if len(lines) == 0 {
		return ModeCode, ErrEmptyInput
	}
	if IsDocLine(lines[0]) {
		return ModeDoc, nil
	}
	return ModeCode, nil
}

// Weave writes doc to output, fencing every run of code lines with the weaver's dialect.
//
// Documentation lines are written as their payload followed by a newline. Code lines
// are copied byte for byte. A code run that ends the document is closed after a
// blank line. Moving from documentation into code also writes a blank line first,
// moving from code into documentation does not.
//
// Output written before an error is left in place.
func (w *Weaver) Weave(doc *Document, output io.Writer) error {
	mode, err := InitialMode(doc.Lines)
	if err != nil {
		return fmt.Errorf("weaving %q: %w", doc.Metadata.Source, err)
	}

	slog.Debug("weaving document", "source", doc.Metadata.Source, "lines", len(doc.Lines), "dialect", w.dialect.Name, "initial_mode", mode)

	if mode == ModeCode {
		if err := w.open(output); err != nil {
			return err
		}
	}

	for i, line := range doc.Lines {
		next, err := w.step(mode, line, output)
		if err != nil {
			return err
		}
		if next != mode {
			slog.Debug("mode transition", "line", i+1, "from", mode, "to", next)
		}
		mode = next
	}

	if mode == ModeCode {
		if err := w.println(output, ""); err != nil {
			return err
		}
		return w.println(output, w.dialect.Close)
	}

	return nil
}

// step writes a single line given the current mode and returns the mode after it
func (w *Weaver) step(mode Mode, line string, output io.Writer) (Mode, error) {
	if IsDocLine(line) {
		if mode == ModeCode {
			if err := w.println(output, w.dialect.Close); err != nil {
				return mode, err
			}
		}
		return ModeDoc, w.println(output, DocPayload(line))
	}

	if mode == ModeDoc {
		if err := w.println(output, ""); err != nil {
			return mode, err
		}
		if err := w.open(output); err != nil {
			return mode, err
		}
	}

	if _, err := io.WriteString(output, line); err != nil {
		return mode, fmt.Errorf("writing line: %w", err)
	}
	return ModeCode, nil
}

func (w *Weaver) open(output io.Writer) error {
	for _, line := range w.dialect.Open {
		if err := w.println(output, line); err != nil {
			return err
		}
	}
	return nil
}

func (w *Weaver) println(output io.Writer, line string) error {
	if _, err := fmt.Fprintln(output, line); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}
