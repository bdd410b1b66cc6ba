// Package format renders parsed node forests in several output formats.
package format

import (
	"encoding"

	"github.com/hamza/htmlbuilder/html"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(nodes []*html.Node) error
}
