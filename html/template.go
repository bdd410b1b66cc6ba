package html

import "strings"

// Expand substitutes {{name}} placeholders in text with the matching
// values from params. Replacement is literal; placeholders with no entry
// in params are left verbatim.
func Expand(text string, params map[string]string) string {
	result := text
	for name, value := range params {
		result = strings.ReplaceAll(result, "{{"+name+"}}", value)
	}
	return result
}

// ApplyParams substitutes placeholders in this node's text content and
// attribute values. Children are untouched.
func (n *Node) ApplyParams(params map[string]string) {
	if n.kind == KindVoid {
		// Void nodes carry no text, but their attributes still template.
		n.expandAttrs(params)
		return
	}
	n.text = Expand(n.text, params)
	n.expandAttrs(params)
}

// ApplyParamsRecursive substitutes placeholders in every text-content and
// attribute-value field of the subtree rooted at n.
func (n *Node) ApplyParamsRecursive(params map[string]string) {
	n.ApplyParams(params)
	for _, child := range n.children {
		child.ApplyParamsRecursive(params)
	}
}

func (n *Node) expandAttrs(params map[string]string) {
	for key, value := range n.attrs {
		n.attrs[key] = Expand(value, params)
	}
}
