package docseg

// linecontext.go - Per-line state of the tokenizer.
//
// Whether a line break starts a paragraph depends on properties of the line
// that follows it (indentation, list bullets), and whether a word is flagged
// as a list item depends on it being the first word of such a line. The
// tokenizer classifies each line once, when it reaches the line's start, and
// keeps the result here.

// Context flags for a line.
const (
	// The line starts with a tab or more than two spaces.
	lineCtxIndented = 1 << 0

	// The line is a list item.
	lineCtxBulleted = 1 << 1
)

// lineContext holds what the tokenizer knows about the current line.
type lineContext struct {
	Start  int // index of the first code point of the line
	Indent int // width of the leading whitespace
	Words  int // words emitted from this line so far
	Flags  int // lineCtx* flags
}

// beginLine classifies the line starting at text[start].
func beginLine(text []rune, start int) lineContext {
	ctx := lineContext{Start: start}
	if start >= len(text) {
		return ctx
	}
	line := text[start:]
	if indented, width := IsIndented(line); indented {
		ctx.Flags |= lineCtxIndented
		ctx.Indent = width
	}
	if IsBulleted(line) {
		ctx.Flags |= lineCtxBulleted
	}
	return ctx
}

// endsWithLeader reports whether the line ending at text[eol] (exclusive)
// ends with a period or an ellipsis, ignoring trailing whitespace.
func endsWithLeader(text []rune, eol int) bool {
	i := eol - 1
	for i >= 0 && IsSpaceHorizontal(text[i]) {
		i--
	}
	return i >= 0 && (IsPeriod(text[i]) || text[i] == horizontalEllipsis)
}

// isFirstWord reports whether no word has been emitted from the line yet.
func (c lineContext) isFirstWord() bool {
	return c.Words == 0
}

// has reports whether all the given flags are set.
func (c lineContext) has(flags int) bool {
	return c.Flags&flags == flags
}
