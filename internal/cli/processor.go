package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jwtly10/weave"
)

type ProcessResult struct {
	Path     string
	Lines    int
	Duration time.Duration
}

type Processor struct {
	weaver *weave.Weaver
}

func NewProcessor(dialect weave.Dialect) *Processor {
	return &Processor{
		weaver: weave.NewWeaver(dialect),
	}
}

// ProcessFile weaves the literate source at path into out.
//
// The file is read fully and closed before any output is written.
func (p *Processor) ProcessFile(path string, out io.Writer) (ProcessResult, error) {
	startTime := time.Now()
	result := ProcessResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return result, fmt.Errorf("error accessing path: %w", err)
	}
	if info.IsDir() {
		return result, fmt.Errorf("%s is a directory, expected a file", path)
	}

	slog.Debug("processing file", "path", path, "size", info.Size())

	content, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("error reading file: %w", err)
	}

	doc, err := weave.ReadDocument(bytes.NewReader(content), weave.MetaData{
		Source: path,
	})
	if err != nil {
		return result, err
	}
	result.Lines = len(doc.Lines)

	if err := p.weaver.Weave(doc, out); err != nil {
		return result, err
	}

	result.Duration = time.Since(startTime)
	slog.Debug("file processed",
		"path", path,
		"lines", result.Lines,
		"duration", result.Duration)

	return result, nil
}
