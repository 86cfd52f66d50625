package sim

// BlockKind discriminates the narrative block types.
type BlockKind string

const (
	BlockText    BlockKind = "text"
	BlockFormula BlockKind = "formula"
)

// Block is one renderable unit inside a document section: either prose or
// a display formula. Blocks have no computational role.
type Block struct {
	Kind  BlockKind
	Text  string
	LaTeX string
}

// Section is the per-module slice of the rendered document.
type Section struct {
	Number string
	Title  string
	Blocks []Block
}

// Text returns a prose block.
func Text(s string) Block { return Block{Kind: BlockText, Text: s} }

// Formula returns a display-formula block with a plain-text fallback.
func Formula(latex, plain string) Block {
	return Block{Kind: BlockFormula, LaTeX: latex, Text: plain}
}
