package parser

import "fmt"

// MalformedCommentError reports a <!-- with no matching -->.
type MalformedCommentError struct {
	Offset int
}

func (e *MalformedCommentError) Error() string {
	return fmt.Sprintf("malformed comment at offset %d: no closing --> found", e.Offset)
}

// MalformedTagError reports a < with no closing > before the end of input.
type MalformedTagError struct {
	Offset int
}

func (e *MalformedTagError) Error() string {
	return fmt.Sprintf("malformed tag at offset %d: no closing '>' found", e.Offset)
}

// UnmatchedClosingTagError reports a closing tag whose name differs from
// the element currently open.
type UnmatchedClosingTagError struct {
	Expected string
	Found    string
	Offset   int
}

func (e *UnmatchedClosingTagError) Error() string {
	return fmt.Sprintf("unmatched closing tag at offset %d: expected </%s> but found </%s>", e.Offset, e.Expected, e.Found)
}

// NestingTooDeepError reports input nested beyond the parser's depth bound.
type NestingTooDeepError struct {
	Depth int
}

func (e *NestingTooDeepError) Error() string {
	return fmt.Sprintf("nesting too deep: depth %d exceeds limit", e.Depth)
}
