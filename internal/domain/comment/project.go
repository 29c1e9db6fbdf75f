package comment

import (
	"fmt"
	"sort"

	"github.com/corey/docwiki/internal/domain/wiki"
	"github.com/corey/docwiki/internal/ports"
)

// projector consumes entries from the tag multimap as they are projected
// into Comment fields. Whatever remains afterwards is unrecognized.
type projector struct {
	tags map[TagKey][]string
	pos  ports.Position
	rep  ports.Reporter
}

func (p *projector) warnf(format string, args ...any) {
	p.rep.Warning(p.pos, fmt.Sprintf(format, args...))
}

func (p *projector) parse(value string) wiki.Body {
	return wiki.Parse(value, p.pos, p.rep)
}

// oneTag projects an at-most-once tag. Extra occurrences warn and the
// first one is kept.
func (p *projector) oneTag(name string) *wiki.Body {
	key := SimpleKey{Name: name}
	vals, ok := p.tags[key]
	if !ok {
		return nil
	}
	delete(p.tags, key)
	if len(vals) > 1 {
		p.warnf("Only one '@%s' tag is allowed", name)
	}
	body := p.parse(vals[0])
	return &body
}

// allTags projects a repeatable tag, in encounter order.
func (p *projector) allTags(name string) []wiki.Body {
	key := SimpleKey{Name: name}
	vals, ok := p.tags[key]
	if !ok {
		return nil
	}
	delete(p.tags, key)
	bodies := make([]wiki.Body, 0, len(vals))
	for _, v := range vals {
		bodies = append(bodies, p.parse(v))
	}
	return bodies
}

// allSymsOneTag projects a symbol-keyed tag into a symbol → body mapping.
// A bare occurrence without a symbol warns and is dropped; duplicates per
// symbol warn and keep the first.
func (p *projector) allSymsOneTag(name string) map[string]wiki.Body {
	if _, ok := p.tags[SimpleKey{Name: name}]; ok {
		delete(p.tags, SimpleKey{Name: name})
		p.warnf("Tag '@%s' must be followed by a symbol name", name)
	}

	var syms []string
	for k := range p.tags {
		if sk, ok := k.(SymbolKey); ok && sk.Name == name {
			syms = append(syms, sk.Symbol)
		}
	}
	if len(syms) == 0 {
		return nil
	}
	sort.Strings(syms)

	out := make(map[string]wiki.Body, len(syms))
	for _, sym := range syms {
		key := SymbolKey{Name: name, Symbol: sym}
		vals := p.tags[key]
		delete(p.tags, key)
		if len(vals) > 1 {
			p.warnf("Only one '@%s' tag for symbol %s is allowed", name, sym)
		}
		out[sym] = p.parse(vals[0])
	}
	return out
}

// warnLeftovers reports every tag that no projection consumed.
// Keys are sorted so warnings come out in a stable order.
func (p *projector) warnLeftovers() {
	var names []string
	for k := range p.tags {
		names = append(names, k.TagName())
	}
	sort.Strings(names)
	for _, n := range names {
		p.warnf("Tag '@%s' is not recognised", n)
	}
}
