package format

import (
	"encoding/json"
	"io"

	"github.com/hamza/htmlbuilder/html"
)

// JSONEncoder renders a node forest as indented JSON.
type JSONEncoder struct {
	w     io.Writer
	nodes []*html.Node
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(nodes []*html.Node) error {
	e.nodes = nodes
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := make([]jsonNode, len(e.nodes))
	for i, node := range e.nodes {
		data[i] = buildJSONNode(node)
	}
	return json.MarshalIndent(data, "", "  ")
}

type jsonNode struct {
	Kind       string            `json:"kind"`
	Tag        string            `json:"tag,omitempty"`
	Text       string            `json:"text,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Children   []jsonNode        `json:"children,omitempty"`
}

func buildJSONNode(n *html.Node) jsonNode {
	data := jsonNode{
		Kind:       n.Kind().String(),
		Tag:        n.Tag(),
		Text:       n.Text(),
		Attributes: n.Attributes(),
	}
	for _, child := range n.Children() {
		data.Children = append(data.Children, buildJSONNode(child))
	}
	return data
}
