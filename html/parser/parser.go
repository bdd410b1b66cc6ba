// Package parser converts HTML text into a forest of html.Node values.
//
// Parsing is a single linear pass: each byte of the input is visited a
// bounded number of times regardless of nesting depth. The recursive tree
// builder descends only at element boundaries and reports back the offset
// of the closing tag that ended its window, so the caller never re-scans.
package parser

import (
	"strings"

	"github.com/hamza/htmlbuilder/html"
)

// maxDepth bounds element nesting. Input nested deeper fails with
// NestingTooDeepError instead of exhausting the call stack.
const maxDepth = 512

// Parse converts HTML text into an ordered sequence of root nodes. The
// input is normalized first (comments stripped, tag names lowercased,
// line breaks removed); a DOCTYPE declaration, when present, becomes the
// first node of the result.
func Parse(input string) ([]*html.Node, error) {
	text, err := normalize(input)
	if err != nil {
		return nil, err
	}

	var forest []*html.Node
	doctype, text, found := extractDoctype(text)
	if found {
		forest = append(forest, html.NewDoctype(doctype))
	}

	p := &parser{input: text}
	nodes, _, err := p.parseRange(0, len(text), 0)
	if err != nil {
		return nil, err
	}

	return append(forest, nodes...), nil
}

type parser struct {
	input string
}

// parseRange parses the window [start, end) of the normalized input and
// returns the sibling nodes it contains, plus the offset where parsing
// stopped: the '<' of the closing tag that ended the window, or end when
// the window ran out without one.
func (p *parser) parseRange(start, end, depth int) ([]*html.Node, int, error) {
	if depth > maxDepth {
		return nil, 0, &NestingTooDeepError{Depth: depth}
	}

	var nodes []*html.Node
	pos := start

	for pos < end {
		open := p.indexFrom(pos, end, '<')
		if open < 0 {
			appendText(&nodes, p.input[pos:end])
			break
		}
		if open > pos {
			appendText(&nodes, p.input[pos:open])
		}

		gt := p.indexFrom(open, end, '>')
		if gt < 0 {
			return nil, 0, &MalformedTagError{Offset: open}
		}

		content := p.input[open+1 : gt]
		if content == "" {
			// Inert <>; skip it.
			pos = gt + 1
			continue
		}

		if IsClosingTag(content) {
			// The window's closing tag; the caller consumes it.
			return nodes, open, nil
		}

		name, rawAttrs := splitTag(content)
		name = strings.TrimSpace(name)
		attrs := parseAttributes(rawAttrs)

		if IsVoidTag(name) {
			nodes = append(nodes, html.NewVoid(name, attrs))
			pos = gt + 1
			continue
		}

		elem := html.NewElementAttrs(name, attrs)
		children, stop, err := p.parseRange(gt+1, end, depth+1)
		if err != nil {
			return nil, 0, err
		}
		for _, child := range children {
			elem.AddChild(child)
		}
		nodes = append(nodes, elem)

		if stop >= end {
			// Unterminated element; implicitly closed at the window end.
			pos = end
			continue
		}

		closeGt := p.indexFrom(stop, end, '>')
		if closeGt < 0 {
			return nil, 0, &MalformedTagError{Offset: stop}
		}
		closeName := strings.TrimSpace(p.input[stop+2 : closeGt])
		if closeName != name {
			return nil, 0, &UnmatchedClosingTagError{
				Expected: name,
				Found:    closeName,
				Offset:   stop,
			}
		}
		pos = closeGt + 1
	}

	return nodes, end, nil
}

// indexFrom locates c in [from, end) of the input, or returns -1.
func (p *parser) indexFrom(from, end int, c byte) int {
	i := strings.IndexByte(p.input[from:end], c)
	if i < 0 {
		return -1
	}
	return from + i
}

// appendText adds a text node unless the run is whitespace only. The text
// itself is kept verbatim.
func appendText(nodes *[]*html.Node, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	*nodes = append(*nodes, html.NewText(text))
}
