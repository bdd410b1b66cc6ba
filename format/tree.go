package format

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/hamza/htmlbuilder/html"
)

// TreeEncoder renders a node forest as an indented outline, one node per
// line, for quick inspection of the parsed structure.
type TreeEncoder struct {
	w     io.Writer
	nodes []*html.Node
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(nodes []*html.Node) error {
	e.nodes = nodes
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, node := range e.nodes {
		writeOutline(&sb, node, 0)
	}
	return []byte(sb.String()), nil
}

func writeOutline(sb *strings.Builder, n *html.Node, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}

	switch n.Kind() {
	case html.KindText:
		sb.WriteString("text ")
		sb.WriteString(strconv.Quote(n.Text()))
	case html.KindDoctype:
		sb.WriteString("doctype ")
		sb.WriteString(strconv.Quote(n.Text()))
	default:
		sb.WriteString(n.Tag())
		if n.Kind() == html.KindVoid {
			sb.WriteString(" (void)")
		}
		writeOutlineAttrs(sb, n.Attributes())
	}
	sb.WriteString("\n")

	for _, child := range n.Children() {
		writeOutline(sb, child, indent+1)
	}
}

func writeOutlineAttrs(sb *strings.Builder, attrs map[string]string) {
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
			sb.WriteString("=")
			sb.WriteString(strconv.Quote(value))
		}
	}
}
