package weave

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// expectedBlocks joins every maximal run of code lines. A run that ends the
// document also carries the blank line written before the closing fence.
func expectedBlocks(lines []string) []string {
	var blocks []string
	var cur strings.Builder
	inCode := false
	for _, line := range lines {
		if IsDocLine(line) {
			if inCode {
				blocks = append(blocks, cur.String())
				cur.Reset()
			}
			inCode = false
			continue
		}
		cur.WriteString(line)
		inCode = true
	}
	if inCode {
		cur.WriteString("\n")
		blocks = append(blocks, cur.String())
	}
	return blocks
}

func TestTangleRecoversWovenCode(t *testing.T) {
	inputs := [][]string{
		{"#- Title\n", "let x = 1\n", "#- done\n"},
		{"let x = 1\n", "#- comment\n", "let y = 2\n"},
		{"import os\n", "\n", "  echo paramCount()\n"},
		{"#- a\n", "proc f() =\n", "  discard\n", "\n", "#- b\n", "#-\n", "f()\n"},
		{"#- only prose\n", "#-\n"},
	}

	for _, lines := range inputs {
		woven := weaveString(t, Markdown, lines...)

		blocks, err := Tangle([]byte(woven), "nim")
		require.NoError(t, err)

		var got []string
		for _, b := range blocks {
			require.Equal(t, "nim", b.Lang)
			got = append(got, b.Code)
		}
		require.Equal(t, expectedBlocks(lines), got, "woven:\n%s", woven)
	}
}

func TestTangleFiltersByLanguage(t *testing.T) {
	src := []byte("# Doc\n\n```go\nfmt.Println()\n```\n\n```nim\necho 1\n```\n\n```\nplain\n```\n")

	blocks, err := Tangle(src, "nim")
	require.NoError(t, err)
	require.Equal(t, []CodeBlock{{Code: "echo 1\n", Lang: "nim"}}, blocks)

	all, err := Tangle(src, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "go", all[0].Lang)
	require.Equal(t, "plain\n", all[2].Code)
}
