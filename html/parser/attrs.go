package parser

import "strings"

// parseAttributes parses the raw substring between a tag name and the
// closing '>' into an attribute map. One left-to-right scan with a single
// in-quotes flag handles quoted values (which may contain '=' and spaces),
// unquoted key=value pairs, and bare boolean attributes.
func parseAttributes(raw string) map[string]string {
	attrs := make(map[string]string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return attrs
	}

	var buf strings.Builder
	key := ""
	haveKey := false
	inQuotes := false

	finalize := func() {
		if haveKey {
			attrs[key] = buf.String()
		} else if k := strings.TrimSpace(buf.String()); k != "" {
			attrs[k] = ""
		}
		key = ""
		haveKey = false
		buf.Reset()
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '=' && !inQuotes && !haveKey:
			key = strings.TrimSpace(buf.String())
			haveKey = true
			buf.Reset()
		case c == '"':
			if inQuotes {
				inQuotes = false
				finalize()
			} else {
				inQuotes = true
			}
		case !inQuotes && (c == ' ' || c == '\t'):
			if buf.Len() > 0 || haveKey {
				finalize()
			}
		default:
			buf.WriteByte(c)
		}
	}
	if buf.Len() > 0 {
		finalize()
	}

	// Fragments of self-closing slash markers and stray whitespace show up
	// as degenerate keys; drop them.
	delete(attrs, "")
	delete(attrs, "/")
	delete(attrs, " ")

	return attrs
}
