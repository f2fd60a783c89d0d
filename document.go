package weave

// Document represents a literate source file split into lines,
// and any other required metadata about the source file
type Document struct {
	// Metadata about the source file
	Metadata MetaData
	// The raw lines of the source, each including its trailing newline if it had one
	Lines []string
}

type MetaData struct {
	// The source file path
	Source string
}

type Mode int

const (
	ModeCode Mode = iota
	ModeDoc
)

func (m Mode) String() string {
	switch m {
	case ModeCode:
		return "code"
	case ModeDoc:
		return "doc"
	default:
		return "unknown"
	}
}

type CodeBlock struct {
	// The code extracted from a woven document
	Code string
	// The language annotation of the block
	Lang string
}
