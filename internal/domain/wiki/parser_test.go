package wiki

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/docwiki/internal/ports"
)

// recordingReporter captures warning messages for assertions.
type recordingReporter struct {
	warnings []string
}

func (r *recordingReporter) Warning(pos ports.Position, msg string) {
	r.warnings = append(r.warnings, msg)
}

// parseBody runs the wiki grammar over text with a throwaway position.
func parseBody(t *testing.T, text string) (Body, *recordingReporter) {
	t.Helper()
	rep := &recordingReporter{}
	return Parse(text, ports.Position{File: "test", Line: 1}, rep), rep
}

func TestParse_EmptyInput(t *testing.T) {
	body, rep := parseBody(t, "")
	assert.Empty(t, body)
	assert.Empty(t, rep.warnings)
}

func TestParse_SingleParagraph(t *testing.T) {
	body, rep := parseBody(t, "hello world")
	require.Len(t, body, 1)
	assert.Equal(t, Paragraph{Text: Text("hello world")}, body[0])
	assert.Empty(t, rep.warnings)
}

func TestParse_ParagraphsSplitOnBlankLine(t *testing.T) {
	body, _ := parseBody(t, "one\n\ntwo")
	require.Len(t, body, 2)
	assert.Equal(t, Paragraph{Text: Text("one")}, body[0])
	assert.Equal(t, Paragraph{Text: Text("two")}, body[1])
}

func TestParse_LoneNewlineMergesIntoOneText(t *testing.T) {
	// A single line end inside a paragraph is preserved as '\n' within
	// one merged Text node.
	body, _ := parseBody(t, "one\ntwo")
	require.Len(t, body, 1)
	assert.Equal(t, Paragraph{Text: Text("one\ntwo")}, body[0])
}

func TestParse_Bold(t *testing.T) {
	body, _ := parseBody(t, "'''bold'''")
	require.Len(t, body, 1)
	assert.Equal(t, Paragraph{Text: Bold{Inner: Text("bold")}}, body[0])
}

func TestParse_Italic(t *testing.T) {
	body, _ := parseBody(t, "''italic''")
	assert.Equal(t, Paragraph{Text: Italic{Inner: Text("italic")}}, body[0])
}

func TestParse_Underline(t *testing.T) {
	body, _ := parseBody(t, "__under__")
	assert.Equal(t, Paragraph{Text: Underline{Inner: Text("under")}}, body[0])
}

func TestParse_Superscript(t *testing.T) {
	body, _ := parseBody(t, "x^2^")
	assert.Equal(t, Paragraph{Text: Chain{Text("x"), Superscript{Inner: Text("2")}}}, body[0])
}

func TestParse_Subscript(t *testing.T) {
	body, _ := parseBody(t, "H,,2,,O")
	assert.Equal(t, Paragraph{Text: Chain{Text("H"), Subscript{Inner: Text("2")}, Text("O")}}, body[0])
}

func TestParse_MonospaceIsRaw(t *testing.T) {
	// No nested inline recognition inside backticks.
	body, _ := parseBody(t, "`a '''b''' c`")
	assert.Equal(t, Paragraph{Text: Monospace("a '''b''' c")}, body[0])
}

func TestParse_MixedInlineBecomesChain(t *testing.T) {
	body, _ := parseBody(t, "a '''b''' c")
	require.Len(t, body, 1)
	para := body[0].(Paragraph)
	assert.Equal(t, Chain{Text("a "), Bold{Inner: Text("b")}, Text(" c")}, para.Text)
}

func TestParse_NestedStyles(t *testing.T) {
	body, _ := parseBody(t, "'''''both'''''")
	// The outer ''' opens bold, the following '' opens italic inside it.
	assert.Equal(t, Paragraph{Text: Bold{Inner: Italic{Inner: Text("both")}}}, body[0])
}

func TestParse_UnclosedBoldWarnsAndStopsAtBlockEnd(t *testing.T) {
	body, rep := parseBody(t, "'''never closed")
	require.Len(t, body, 1)
	assert.Equal(t, Paragraph{Text: Bold{Inner: Text("never closed")}}, body[0])
	assert.Contains(t, rep.warnings, "unclosed ''''' marker")
}

func TestParse_UnclosedMonospaceWarns(t *testing.T) {
	_, rep := parseBody(t, "`oops")
	assert.Contains(t, rep.warnings, "unclosed '`' marker")
}

func TestParse_LinkWithTitle(t *testing.T) {
	body, _ := parseBody(t, "[[t u v]]")
	assert.Equal(t, Paragraph{Text: Link{Target: "t", Title: "u v"}}, body[0])
}

func TestParse_LinkWithoutTitle(t *testing.T) {
	body, _ := parseBody(t, "[[t]]")
	assert.Equal(t, Paragraph{Text: Link{Target: "t"}}, body[0])
}

func TestParse_LinkInsideSentence(t *testing.T) {
	body, _ := parseBody(t, "see [[http://example.com docs]] here")
	para := body[0].(Paragraph)
	assert.Equal(t, Chain{
		Text("see "),
		Link{Target: "http://example.com", Title: "docs"},
		Text(" here"),
	}, para.Text)
}

func TestParse_TitleLevelRoundTrip(t *testing.T) {
	for level := 1; level <= 4; level++ {
		run := strings.Repeat("=", level)
		body, rep := parseBody(t, run+"Heading"+run)
		require.Len(t, body, 1, "level %d", level)
		title := body[0].(Title)
		assert.Equal(t, level, title.Level)
		assert.Equal(t, Text("Heading"), title.Text)
		assert.Empty(t, rep.warnings)
	}
}

func TestParse_TitleWithInlineContent(t *testing.T) {
	body, _ := parseBody(t, "=A `b` C=")
	title := body[0].(Title)
	assert.Equal(t, Chain{Text("A "), Monospace("b"), Text(" C")}, title.Text)
}

func TestParse_UnbalancedTitleWarns(t *testing.T) {
	body, rep := parseBody(t, "=== Title ==")
	require.NotEmpty(t, body)
	_, isTitle := body[0].(Title)
	assert.True(t, isTitle, "AST still contains a Title node")
	assert.Contains(t, rep.warnings, "unbalanced or unclosed heading")
}

func TestParse_TitleThenParagraph(t *testing.T) {
	body, _ := parseBody(t, "=T=\ntext")
	require.Len(t, body, 2)
	assert.Equal(t, Title{Text: Text("T"), Level: 1}, body[0])
	assert.Equal(t, Paragraph{Text: Text("text")}, body[1])
}

func TestParse_ParagraphEndsBeforeTitle(t *testing.T) {
	body, _ := parseBody(t, "text\n=T=")
	require.Len(t, body, 2)
	assert.Equal(t, Paragraph{Text: Text("text")}, body[0])
	assert.Equal(t, Title{Text: Text("T"), Level: 1}, body[1])
}

func TestParse_HorizontalRule(t *testing.T) {
	body, _ := parseBody(t, "----")
	assert.Equal(t, HorizontalRule{}, body[0])
}

func TestParse_LongerRuleStillOneBlock(t *testing.T) {
	body, rep := parseBody(t, "--------")
	require.Len(t, body, 1)
	assert.Equal(t, HorizontalRule{}, body[0])
	assert.Empty(t, rep.warnings)
}

func TestParse_TrailingContentAfterRuleWarns(t *testing.T) {
	body, rep := parseBody(t, "---- junk\nnext")
	assert.Equal(t, HorizontalRule{}, body[0])
	assert.Contains(t, rep.warnings, "no additional content on same line after horizontal rule")
	// The rest of the rule's line is discarded, the next line parses.
	require.Len(t, body, 2)
	assert.Equal(t, Paragraph{Text: Text("next")}, body[1])
}

func TestParse_CodeBlock(t *testing.T) {
	body, rep := parseBody(t, "{{{\nval x = 1\n}}}")
	require.Len(t, body, 1)
	assert.Equal(t, Code("\nval x = 1\n"), body[0])
	assert.Empty(t, rep.warnings)
}

func TestParse_CodeBlockKeepsMarkupLiteral(t *testing.T) {
	body, _ := parseBody(t, "{{{'''not bold'''}}}")
	assert.Equal(t, Code("'''not bold'''"), body[0])
}

func TestParse_UnclosedCodeBlockWarns(t *testing.T) {
	body, rep := parseBody(t, "{{{\nnever closed")
	assert.Equal(t, Code("\nnever closed"), body[0])
	assert.Contains(t, rep.warnings, "unclosed code block")
}

func TestParse_TrailingContentAfterCodeBlockWarns(t *testing.T) {
	_, rep := parseBody(t, "{{{x}}} tail")
	assert.Contains(t, rep.warnings, "no additional content on same line after code block")
}

func TestParse_ParagraphEndsBeforeCodeBlock(t *testing.T) {
	body, _ := parseBody(t, "Example.\n{{{\ncode\n}}}")
	require.Len(t, body, 2)
	assert.Equal(t, Paragraph{Text: Text("Example.")}, body[0])
	assert.Equal(t, Code("\ncode\n"), body[1])
}

func TestParse_UnorderedList(t *testing.T) {
	body, _ := parseBody(t, " - a\n - b")
	require.Len(t, body, 1)
	list := body[0].(UnorderedList)
	assert.Equal(t, []Block{
		Paragraph{Text: Text("a")},
		Paragraph{Text: Text("b")},
	}, list.Items)
}

func TestParse_OrderedList(t *testing.T) {
	body, _ := parseBody(t, " 1 first\n 1 second")
	require.Len(t, body, 1)
	list := body[0].(OrderedList)
	assert.Equal(t, []Block{
		Paragraph{Text: Text("first")},
		Paragraph{Text: Text("second")},
	}, list.Items)
}

func TestParse_NestedListIndentation(t *testing.T) {
	body, _ := parseBody(t, " - item A\n   - child of A\n - item B")
	require.Len(t, body, 1)
	list := body[0].(UnorderedList)
	require.Len(t, list.Items, 3)
	assert.Equal(t, Paragraph{Text: Text("item A")}, list.Items[0])
	nested := list.Items[1].(UnorderedList)
	assert.Equal(t, []Block{Paragraph{Text: Text("child of A")}}, nested.Items)
	assert.Equal(t, Paragraph{Text: Text("item B")}, list.Items[2])
}

func TestParse_ListItemsCarryInlineMarkup(t *testing.T) {
	body, _ := parseBody(t, " - '''bold''' item")
	list := body[0].(UnorderedList)
	para := list.Items[0].(Paragraph)
	assert.Equal(t, Chain{Bold{Inner: Text("bold")}, Text(" item")}, para.Text)
}

func TestParse_ParagraphEndsBeforeListItem(t *testing.T) {
	body, _ := parseBody(t, "intro\n - a")
	require.Len(t, body, 2)
	assert.Equal(t, Paragraph{Text: Text("intro")}, body[0])
	_, isList := body[1].(UnorderedList)
	assert.True(t, isList)
}

func TestParse_NoSingletonChains(t *testing.T) {
	// A paragraph's inline is never a Chain of length 0 or 1.
	for _, input := range []string{"plain", "'''b'''", "a\nb", "x '''y''' z"} {
		body, _ := parseBody(t, input)
		for _, blk := range body {
			para, ok := blk.(Paragraph)
			if !ok {
				continue
			}
			if chain, ok := para.Text.(Chain); ok {
				assert.GreaterOrEqual(t, len(chain), 2, "input %q", input)
			}
		}
	}
}

func TestParse_StylePairingNonEmptyWithoutWarning(t *testing.T) {
	body, rep := parseBody(t, "'''b''' and ''i'' and __u__ and ^s^ and ,,t,,")
	require.Empty(t, rep.warnings)
	var walk func(Inline)
	walk = func(i Inline) {
		switch v := i.(type) {
		case Chain:
			for _, item := range v {
				walk(item)
			}
		case Bold:
			assert.NotEqual(t, Text(""), v.Inner)
		case Italic:
			assert.NotEqual(t, Text(""), v.Inner)
		case Underline:
			assert.NotEqual(t, Text(""), v.Inner)
		case Superscript:
			assert.NotEqual(t, Text(""), v.Inner)
		case Subscript:
			assert.NotEqual(t, Text(""), v.Inner)
		}
	}
	for _, blk := range body {
		if para, ok := blk.(Paragraph); ok {
			walk(para.Text)
		}
	}
}

func TestParse_TerminationOnPathologicalInput(t *testing.T) {
	// Marker soup must not hang or panic; linear-ish time is enough here.
	inputs := []string{
		strings.Repeat("'''", 50),
		strings.Repeat("[[", 50),
		strings.Repeat("=", 100),
		strings.Repeat(" - x\n", 100),
		strings.Repeat("{{{", 30),
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() { parseBody(t, input) }, "input %.20q", input)
	}
}
