package parser

import "strings"

// voidTags is the fixed set of HTML5 void elements: tags that take no
// closing tag and can hold neither text nor children.
var voidTags = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"param":  {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

// IsVoidTag reports whether name is a void (self-closing) element name.
func IsVoidTag(name string) bool {
	_, ok := voidTags[strings.ToLower(name)]
	return ok
}

// IsClosingTag reports whether tag content such as "/div" denotes a
// closing tag. A leading "//" is not a closing tag; it guards against
// mis-detecting stray slashes.
func IsClosingTag(content string) bool {
	return strings.HasPrefix(content, "/") && !strings.HasPrefix(content, "//")
}

// splitTag separates tag content into the tag name and the raw attribute
// string at the first whitespace boundary.
func splitTag(content string) (name, attrs string) {
	i := strings.IndexAny(content, " \t")
	if i < 0 {
		return content, ""
	}
	return content[:i], content[i+1:]
}
