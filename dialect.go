package weave

// Dialect holds the markup used to fence a run of code lines
type Dialect struct {
	Name string
	// Lines written before a run of code, in order
	Open []string
	// Line written after a run of code
	Close string
}

// AsciiDoc wraps code in a [source,nim] listing block. This is what the weave command emits.
var AsciiDoc = Dialect{
	Name:  "asciidoc",
	Open:  []string{"[source,nim]", "----"},
	Close: "----",
}

// Markdown wraps code in a fenced block tagged as nim, readable by [Tangle].
var Markdown = Dialect{
	Name:  "markdown",
	Open:  []string{"```nim"},
	Close: "```",
}
