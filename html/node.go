// Package html provides an in-memory tree of typed nodes representing an
// HTML document, plus serialization and placeholder templating over it.
package html

import (
	"sort"
	"strings"
)

type Kind int

const (
	// KindContainer is a regular element that may hold text and children.
	KindContainer Kind = iota
	// KindText is a raw text run with no element of its own.
	KindText
	// KindVoid is a self-closing element; it never has text or children.
	KindVoid
	// KindDoctype is the document type declaration pseudo-node.
	KindDoctype
)

var kindNames = map[Kind]string{
	KindContainer: "Container",
	KindText:      "Text",
	KindVoid:      "Void",
	KindDoctype:   "Doctype",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is the unit of the document tree: a tag, its attributes, its text,
// and its children. A parent exclusively owns its children; a node never
// appears in two trees.
type Node struct {
	kind     Kind
	tag      string
	text     string
	attrs    map[string]string
	children []*Node
}

// NewElement returns a container element with the given tag name.
func NewElement(tag string) *Node {
	return &Node{kind: KindContainer, tag: tag}
}

// NewElementAttrs returns a container element with tag name and attributes.
func NewElementAttrs(tag string, attrs map[string]string) *Node {
	return &Node{kind: KindContainer, tag: tag, attrs: attrs}
}

// NewText returns a text node holding the given content verbatim.
func NewText(text string) *Node {
	return &Node{kind: KindText, text: text}
}

// NewVoid returns a self-closing element such as <br> or <img>.
func NewVoid(tag string, attrs map[string]string) *Node {
	return &Node{kind: KindVoid, tag: tag, attrs: attrs}
}

// NewDoctype returns a doctype node holding the declaration payload,
// e.g. "html" for <!DOCTYPE html>.
func NewDoctype(doctype string) *Node {
	return &Node{kind: KindDoctype, text: doctype}
}

func (n *Node) Kind() Kind { return n.kind }

func (n *Node) Tag() string { return n.tag }

// Text returns the text owned by this node. Void nodes always report
// empty text.
func (n *Node) Text() string {
	if n.kind == KindVoid {
		return ""
	}
	return n.text
}

// Attributes returns the attribute map. Callers must not modify it.
func (n *Node) Attributes() map[string]string {
	return n.attrs
}

// Attribute returns the value for key, or "" if the attribute is absent.
func (n *Node) Attribute(key string) string {
	return n.attrs[key]
}

// Children returns the ordered child nodes. Void nodes always report none.
func (n *Node) Children() []*Node {
	if n.kind == KindVoid {
		return nil
	}
	return n.children
}

// AddChild appends child in document order. Nil children and additions to
// void or doctype nodes are silently ignored.
func (n *Node) AddChild(child *Node) {
	if child == nil || n.kind == KindVoid || n.kind == KindDoctype {
		return
	}
	n.children = append(n.children, child)
}

// SetText replaces the node's text content. A no-op on void nodes.
func (n *Node) SetText(text string) {
	if n.kind == KindVoid {
		return
	}
	n.text = text
}

// SetAttribute sets or replaces a single attribute.
func (n *Node) SetAttribute(key, value string) {
	if n.kind == KindDoctype {
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// FirstChildTagged returns the first child with the given tag, or nil.
func (n *Node) FirstChildTagged(tag string) *Node {
	for _, child := range n.Children() {
		if child.tag == tag {
			return child
		}
	}
	return nil
}

// FindAll returns every descendant element with the given tag, in
// document order.
func (n *Node) FindAll(tag string) []*Node {
	var result []*Node
	for _, child := range n.Children() {
		if child.tag == tag {
			result = append(result, child)
		}
		result = append(result, child.FindAll(tag)...)
	}
	return result
}

// String renders the subtree as HTML text.
func (n *Node) String() string {
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *Node) writeTo(sb *strings.Builder) {
	switch n.kind {
	case KindText:
		sb.WriteString(n.text)
	case KindDoctype:
		sb.WriteString("<!DOCTYPE ")
		sb.WriteString(n.text)
		sb.WriteString(">")
	case KindVoid:
		sb.WriteString("<")
		sb.WriteString(n.tag)
		writeAttrs(sb, n.attrs)
		sb.WriteString(" />")
	default:
		if n.tag == "" {
			// Fragment: no element of its own.
			sb.WriteString(n.text)
			for _, child := range n.children {
				child.writeTo(sb)
			}
			return
		}
		sb.WriteString("<")
		sb.WriteString(n.tag)
		writeAttrs(sb, n.attrs)
		sb.WriteString(">")
		sb.WriteString(n.text)
		for _, child := range n.children {
			child.writeTo(sb)
		}
		sb.WriteString("</")
		sb.WriteString(n.tag)
		sb.WriteString(">")
	}
}

// writeAttrs renders attributes sorted by name so output is stable across
// runs. Empty values render as bare boolean attributes.
func writeAttrs(sb *strings.Builder, attrs map[string]string) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		sb.WriteString(" ")
		sb.WriteString(key)
		if value := attrs[key]; value != "" {
			sb.WriteString("=\"")
			sb.WriteString(value)
			sb.WriteString("\"")
		}
	}
}
