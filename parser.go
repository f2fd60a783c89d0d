package weave

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Marker is the token that starts a documentation line
const Marker = "#-"

// ReadDocument reads a literate source into a [Document].
//
// The whole input is read into memory. Lines are split on '\n' only and keep
// their terminator, so a final line without a newline stays without one.
func ReadDocument(r io.Reader, md MetaData) (*Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	doc := &Document{
		Metadata: md,
		Lines:    SplitLines(string(content)),
	}

	slog.Debug("read document", "source", md.Source, "bytes", len(content), "lines", len(doc.Lines))
	return doc, nil
}

// SplitLines splits s after every '\n'. An empty string has no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// IsDocLine reports whether line is a documentation line.
//
// Surrounding whitespace is ignored. The trimmed line must either be the
// marker alone or the marker followed by a space:
//
//	#- some prose   -> doc
//	#-              -> doc
//	#-prose         -> code
//	# comment       -> code
func IsDocLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == Marker || strings.HasPrefix(trimmed, Marker+" ")
}

// DocPayload returns the prose of a documentation line, which is the trimmed
// line without the marker and its following space.
//
// Only meaningful when [IsDocLine] is true.
func DocPayload(line string) string {
	trimmed := strings.TrimSpace(line)
	prefix := len(Marker) + 1
	if len(trimmed) <= prefix {
		return ""
	}
	return trimmed[prefix:]
}
