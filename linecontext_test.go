package docseg

import (
	"testing"
)

// TestBeginLine tests the classification of lines.
func TestBeginLine(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		start  int
		flags  int
		indent int
	}{
		{"plain", "hello world", 0, 0, 0},
		{"tab", "\tItem", 0, lineCtxIndented, 1},
		{"spaces", "    indented", 0, lineCtxIndented, 4},
		{"two spaces", "  almost", 0, 0, 0},
		{"bullet", "• dot", 0, lineCtxBulleted, 0},
		{"indented number", "    1. First", 0, lineCtxIndented | lineCtxBulleted, 4},
		{"second line", "a\n- b", 2, lineCtxBulleted, 0},
		{"end of text", "abc", 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := beginLine([]rune(tt.text), tt.start)
			if ctx.Start != tt.start {
				t.Errorf("Start = %d, want %d", ctx.Start, tt.start)
			}
			if ctx.Flags != tt.flags {
				t.Errorf("Flags = %04b, want %04b", ctx.Flags, tt.flags)
			}
			if ctx.Indent != tt.indent {
				t.Errorf("Indent = %d, want %d", ctx.Indent, tt.indent)
			}
			if !ctx.isFirstWord() {
				t.Error("a new line has no words")
			}
		})
	}
}

func TestLineContextHas(t *testing.T) {
	ctx := lineContext{Flags: lineCtxIndented | lineCtxBulleted}
	if !ctx.has(lineCtxIndented) || !ctx.has(lineCtxIndented|lineCtxBulleted) {
		t.Error("set flags not reported")
	}
	if (lineContext{Flags: lineCtxIndented}).has(lineCtxIndented | lineCtxBulleted) {
		t.Error("unset flags reported")
	}
	ctx.Words++
	if ctx.isFirstWord() {
		t.Error("isFirstWord after a word")
	}
}

func TestEndsWithLeader(t *testing.T) {
	tests := []struct {
		text string
		eol  int
		want bool
	}{
		{"Contents ....\n5", 13, true},
		{"Wait…\n", 5, true},
		{"Chapter 1 .  \n", 13, true},
		{"Hello  \n", 7, false},
		{"\n", 0, false},
	}
	for _, tt := range tests {
		if got := endsWithLeader([]rune(tt.text), tt.eol); got != tt.want {
			t.Errorf("endsWithLeader(%q, %d) = %v, want %v", tt.text, tt.eol, got, tt.want)
		}
	}
}
