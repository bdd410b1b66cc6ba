package parser

import "strings"

// normalize runs the fixed preprocessing pipeline: comment stripping,
// tag-name lowercasing, and line-break removal. DOCTYPE extraction is a
// separate step so the caller can prepend the doctype node.
func normalize(text string) (string, error) {
	text, err := stripComments(text)
	if err != nil {
		return "", err
	}
	text = lowercaseTagNames(text)
	text = removeLineBreaks(text)
	return text, nil
}

// stripComments erases every <!-- ... --> span. An opening marker with no
// matching closer is a fatal error.
func stripComments(text string) (string, error) {
	for {
		start := strings.Index(text, "<!--")
		if start < 0 {
			return text, nil
		}
		end := strings.Index(text[start+4:], "-->")
		if end < 0 {
			return "", &MalformedCommentError{Offset: start}
		}
		text = text[:start] + text[start+4+end+3:]
	}
}

// lowercaseTagNames lowercases, for every <...> region, only the span from
// after '<' up to the first space or the closing '>', whichever comes
// first. Attribute values and text outside tags are untouched.
func lowercaseTagNames(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	pos := 0
	for pos < len(text) {
		open := strings.IndexByte(text[pos:], '<')
		if open < 0 {
			sb.WriteString(text[pos:])
			break
		}
		open += pos
		end := strings.IndexByte(text[open:], '>')
		if end < 0 {
			sb.WriteString(text[pos:])
			break
		}
		end += open

		nameEnd := end
		if space := strings.IndexByte(text[open+1:end], ' '); space >= 0 {
			nameEnd = open + 1 + space
		}

		sb.WriteString(text[pos : open+1])
		sb.WriteString(strings.ToLower(text[open+1 : nameEnd]))
		sb.WriteString(text[nameEnd : end+1])
		pos = end + 1
	}

	return sb.String()
}

func removeLineBreaks(text string) string {
	return strings.ReplaceAll(text, "\n", "")
}

// extractDoctype removes a <!doctype ...> span from text and returns its
// payload: the content between "<!doctype " and ">", trimmed. found is
// false when the text carries no doctype declaration.
func extractDoctype(text string) (doctype, rest string, found bool) {
	start := strings.Index(text, "<!doctype")
	if start < 0 {
		return "", text, false
	}
	end := strings.IndexByte(text[start:], '>')
	if end < 0 {
		return "", text, false
	}
	end += start
	doctype = strings.TrimSpace(text[start+len("<!doctype") : end])
	rest = text[:start] + text[end+1:]
	return doctype, rest, true
}
