package weave

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Tangle extracts the fenced code blocks tagged with lang from a markdown document,
// such as one woven with the [Markdown] dialect.
//
// Blocks are returned in document order. An empty lang matches every fenced block.
func Tangle(src []byte, lang string) ([]CodeBlock, error) {
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var blocks []CodeBlock
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		cb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		blockLang := string(cb.Language(src))
		if lang != "" && blockLang != lang {
			slog.Debug("skipping code block", "lang", blockLang)
			return ast.WalkSkipChildren, nil
		}

		var buf bytes.Buffer
		l := cb.Lines().Len()
		for i := 0; i < l; i++ {
			line := cb.Lines().At(i)
			buf.Write(line.Value(src))
		}

		slog.Debug("tangled code block", "lang", blockLang, "lines", l)
		blocks = append(blocks, CodeBlock{
			Code: buf.String(),
			Lang: blockLang,
		})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking markdown: %w", err)
	}

	return blocks, nil
}
