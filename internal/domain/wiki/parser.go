package wiki

import (
	"fmt"
	"strings"

	"github.com/corey/docwiki/internal/ports"
)

// Parse runs the wiki grammar over text and returns the block tree.
// All diagnostics are warnings attributed to pos; parsing never fails.
func Parse(text string, pos ports.Position, rep ports.Reporter) Body {
	p := &parser{r: NewReader(text), pos: pos, rep: rep}
	return p.document()
}

// parser threads the grammar state through a single Reader cursor.
// Inline parsing is parameterized by two predicates: the terminator of the
// current inline nesting and the terminator of the enclosing block. The
// latter is passed through unchanged into nested styled spans so an unclosed
// span still stops at the end of its block.
type parser struct {
	r   *Reader
	pos ports.Position
	rep ports.Reporter
}

func (p *parser) warn(msg string) {
	p.rep.Warning(p.pos, msg)
}

func (p *parser) warnf(format string, args ...any) {
	p.rep.Warning(p.pos, fmt.Sprintf(format, args...))
}

// document ::= { block }
func (p *parser) document() Body {
	var blocks Body
	for p.r.Char() != EndOfText {
		blocks = append(blocks, p.block())
	}
	return blocks
}

// block dispatches on pure lookahead; nothing is consumed here.
func (p *parser) block() Block {
	switch {
	case p.checkSkipWhitespace("{{{"):
		return p.code()
	case p.checkSkipWhitespace("="):
		return p.title()
	case p.checkSkipWhitespace("----"):
		return p.hrule()
	default:
		if indent, marker, ok := p.checkList(); ok {
			return p.listBlock(indent, marker)
		}
		return p.para()
	}
}

// checkSkipWhitespace reports whether pat follows the leading whitespace at
// the cursor. Pure lookahead.
func (p *parser) checkSkipWhitespace(pat string) bool {
	saved := p.r.pos
	p.r.JumpWhitespace()
	ok := p.r.Check(pat)
	p.r.pos = saved
	return ok
}

// checkList looks for a list item start: at least one space or tab of
// indentation, a '-' or '1' marker, then a space. Returns the indentation
// and marker on a match.
func (p *parser) checkList() (indent int, marker rune, ok bool) {
	n := p.r.CountWhitespace()
	m := p.r.Peek(n)
	if n > 0 && (m == '-' || m == '1') && p.r.Peek(n+1) == ' ' {
		return n, m, true
	}
	return 0, 0, false
}

// listMarkerAt is checkList anchored at a known indentation.
func (p *parser) listMarkerAt(indent int) (rune, bool) {
	m := p.r.Peek(indent)
	if (m == '-' || m == '1') && p.r.Peek(indent+1) == ' ' {
		return m, true
	}
	return 0, false
}

// code ::= "{{{" chars "}}}" blockEnd
func (p *parser) code() Block {
	p.r.JumpWhitespace()
	p.r.Jump("{{{")
	p.r.ReadUntilString("}}}")
	str := p.r.GetRead()
	if p.r.Char() == EndOfText {
		p.warn("unclosed code block")
	} else {
		p.r.Jump("}}}")
	}
	p.blockEnded("code block")
	return Code(str)
}

// title ::= '=' {'='} inline matching-'='-run blockEnd
func (p *parser) title() Block {
	p.r.JumpWhitespace()
	inLevel := p.r.RepeatJump("=")
	closing := strings.Repeat("=", inLevel)
	text := p.inline(
		func() bool { return p.r.Check(closing) },
		p.checkParaEnded,
	)
	outLevel := p.r.RepeatJumpMax("=", inLevel)
	if inLevel != outLevel {
		p.warn("unbalanced or unclosed heading")
	}
	p.blockEnded("heading")
	return Title{Text: text, Level: inLevel}
}

// hrule ::= "----" {'-'} blockEnd
func (p *parser) hrule() Block {
	p.r.JumpWhitespace()
	p.r.RepeatJump("-")
	p.blockEnded("horizontal rule")
	return HorizontalRule{}
}

// listBlock alternates between list lines at the given indentation and
// nested lists at strictly deeper indentation. The caller has verified the
// first line via checkList.
func (p *parser) listBlock(indent int, marker rune) Block {
	prefix := strings.Repeat(" ", indent) + string(marker) + " "
	var items []Block
	for {
		p.r.Jump(prefix)
		items = append(items, p.listLine())
		if ws := p.r.CountWhitespace(); ws > indent {
			if m, ok := p.listMarkerAt(ws); ok {
				items = append(items, p.listBlock(ws, m))
			}
		}
		if !p.r.Check(prefix) {
			break
		}
	}
	if marker == '1' {
		return OrderedList{Items: items}
	}
	return UnorderedList{Items: items}
}

// listLine ::= inline lineEnd. The item's inline ends at the line end; the
// terminating newline is consumed so the next line starts at column zero.
func (p *parser) listLine() Block {
	inl := p.inline(
		func() bool { return p.r.Char() == EndOfLine },
		func() bool { return false },
	)
	if p.r.Char() == EndOfLine {
		p.r.Next()
	}
	return Paragraph{Text: inl}
}

// para ::= inline paragraphEnd. A paragraph's block end recognizes, beyond
// the shared paragraph terminators, the start of a new list item.
func (p *parser) para() Block {
	inl := p.inline(
		func() bool { return false },
		p.checkParaEndedOrList,
	)
	for p.r.Char() == EndOfLine {
		p.r.Next()
	}
	return Paragraph{Text: inl}
}

// checkParaEnded reports end-of-text, a blank line, or a following code
// fence or title start. Pure lookahead.
func (p *parser) checkParaEnded() bool {
	r := p.r
	if r.Char() == EndOfText {
		return true
	}
	if r.Char() != EndOfLine {
		return false
	}
	saved := r.pos
	r.Next()
	ended := r.Char() == EndOfLine || r.Check("{{{") || r.Check("=")
	r.pos = saved
	return ended
}

// checkParaEndedOrList additionally ends the paragraph before a list item
// on the next line.
func (p *parser) checkParaEndedOrList() bool {
	r := p.r
	if p.checkParaEnded() {
		return true
	}
	if r.Char() != EndOfLine {
		return false
	}
	saved := r.pos
	r.Next()
	_, _, isList := p.checkList()
	r.pos = saved
	return isList
}

// inline ::= inline0 { inline0 }. A lone line end inside the run is skipped
// and the fragments on either side are joined: two plain texts merge with a
// '\n' separator, anything else gets an explicit Text("\n") between them.
func (p *parser) inline(isInlineEnd, isBlockEnd func() bool) Inline {
	items := []Inline{p.inline0(isInlineEnd, isBlockEnd)}
	for p.r.Char() != EndOfText && !isInlineEnd() && !isBlockEnd() {
		skippedLineEnd := false
		if p.r.Char() == EndOfLine {
			p.r.Next()
			skippedLineEnd = true
		}
		cur := p.inline0(isInlineEnd, isBlockEnd)
		if skippedLineEnd {
			if t1, ok1 := items[len(items)-1].(Text); ok1 {
				if t2, ok2 := cur.(Text); ok2 {
					items[len(items)-1] = Text(string(t1) + string(EndOfLine) + string(t2))
					continue
				}
			}
			items = append(items, Text(string(EndOfLine)), cur)
			continue
		}
		items = append(items, cur)
	}
	switch len(items) {
	case 0:
		return Text("")
	case 1:
		return items[0]
	default:
		return Chain(items)
	}
}

// inline0 parses a single styled span or one maximal run of plain text.
func (p *parser) inline0(isInlineEnd, isBlockEnd func() bool) Inline {
	r := p.r
	switch {
	case r.Check("'''"):
		return p.styled("'''", isBlockEnd, func(i Inline) Inline { return Bold{i} })
	case r.Check("''"):
		return p.styled("''", isBlockEnd, func(i Inline) Inline { return Italic{i} })
	case r.Check("`"):
		return p.monospace()
	case r.Check("__"):
		return p.styled("__", isBlockEnd, func(i Inline) Inline { return Underline{i} })
	case r.Check("^"):
		return p.styled("^", isBlockEnd, func(i Inline) Inline { return Superscript{i} })
	case r.Check(",,"):
		return p.styled(",,", isBlockEnd, func(i Inline) Inline { return Subscript{i} })
	case r.Check("[["):
		return p.link()
	default:
		r.ReadUntil(func() bool {
			return r.Check("'''") || r.Check("''") || r.Char() == '`' ||
				r.Check("__") || r.Char() == '^' || r.Check(",,") ||
				r.Check("[[") || isInlineEnd() || isBlockEnd() ||
				r.Char() == EndOfLine
		})
		return Text(r.GetRead())
	}
}

// styled parses one marker-delimited span with nested inline content.
// The nested inline run ends at the closing marker; the enclosing block's
// terminator passes through so an unclosed span stops at the block end.
func (p *parser) styled(marker string, isBlockEnd func() bool, wrap func(Inline) Inline) Inline {
	p.r.Jump(marker)
	inner := p.inline(
		func() bool { return p.r.Check(marker) },
		isBlockEnd,
	)
	if !p.r.Jump(marker) {
		p.warnf("unclosed '%s' marker", marker)
	}
	return wrap(inner)
}

// monospace ::= "`" chars "`" — raw content, no nested inline recognition.
func (p *parser) monospace() Inline {
	p.r.Jump("`")
	p.r.ReadUntilChar('`')
	str := p.r.GetRead()
	if !p.r.Jump("`") {
		p.warn("unclosed '`' marker")
	}
	return Monospace(str)
}

// link ::= "[[" chars "]]" — raw content split on the first space into
// target and optional title.
func (p *parser) link() Inline {
	p.r.Jump("[[")
	p.r.ReadUntilString("]]")
	inner := p.r.GetRead()
	if !p.r.Jump("]]") {
		p.warn("unclosed '[[' marker")
	}
	if idx := strings.Index(inner, " "); idx > 0 {
		return Link{Target: inner[:idx], Title: strings.TrimSpace(inner[idx+1:])}
	}
	return Link{Target: strings.TrimSpace(inner)}
}

// blockEnded enforces the contract after a block's terminating construct:
// only a line end or end-of-text may follow on the same line. Anything else
// is reported and the rest of the line is discarded. Trailing line ends are
// consumed so the next block starts at a line start.
func (p *parser) blockEnded(blockType string) {
	if p.r.Char() != EndOfLine && p.r.Char() != EndOfText {
		p.warnf("no additional content on same line after %s", blockType)
		p.r.JumpUntilChar(EndOfLine)
	}
	for p.r.Char() == EndOfLine {
		p.r.Next()
	}
}
