package ess

import "fmt"

// SyntaxError describes a malformed construct in sheet text. It is returned
// only in strict parsing mode - the tolerant mode logs and drops instead.
type SyntaxError struct {
	Tag    string // style tag (or its leading fragment) the error was found in
	Reason string
}

func (e *SyntaxError) Error() string {
	if len(e.Tag) > 0 {
		return fmt.Sprintf("style sheet syntax error near %q: %s", e.Tag, e.Reason)
	}
	return "style sheet syntax error: " + e.Reason
}
