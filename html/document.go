package html

// Document is a convenience builder for a full HTML document: a doctype
// line followed by a single <html> root element.
type Document struct {
	doctype string
	root    *Node
}

// NewDocument returns a document with the given doctype. An empty doctype
// defaults to "html".
func NewDocument(doctype string) *Document {
	if doctype == "" {
		doctype = "html"
	}
	return &Document{
		doctype: doctype,
		root:    NewElement("html"),
	}
}

// Root returns the <html> root element.
func (d *Document) Root() *Node {
	return d.root
}

// AddChild appends a node to the root element. Nil nodes are ignored.
func (d *Document) AddChild(n *Node) {
	d.root.AddChild(n)
}

func (d *Document) String() string {
	return NewDoctype(d.doctype).String() + "\n" + d.root.String()
}
