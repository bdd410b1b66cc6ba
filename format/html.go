package format

import (
	"io"

	"github.com/hamza/htmlbuilder/html"
)

// HTMLEncoder renders a node forest back to HTML text, one root node
// per line.
type HTMLEncoder struct {
	w     io.Writer
	nodes []*html.Node
}

func NewHTMLEncoder(w io.Writer) *HTMLEncoder {
	return &HTMLEncoder{w: w}
}

func (e *HTMLEncoder) Encode(nodes []*html.Node) error {
	e.nodes = nodes
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *HTMLEncoder) MarshalText() ([]byte, error) {
	var out []byte
	for _, node := range e.nodes {
		out = append(out, node.String()...)
		out = append(out, '\n')
	}
	return out, nil
}
