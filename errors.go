package xmlname

import (
	"errors"
	"fmt"
)

// ErrEmptyExpandedName is returned by Parse for an empty input string.
var ErrEmptyExpandedName = errors.New("empty expanded name")

// InvalidExpandedNameError is returned by Parse when the {namespace}local
// brace structure is malformed: missing or misplaced closing brace, empty
// namespace portion, or empty local-name portion.
type InvalidExpandedNameError struct {
	Name string // the offending expanded name
}

func (e *InvalidExpandedNameError) Error() string {
	return fmt.Sprintf("invalid expanded name %q", e.Name)
}

// InvalidLocalNameError is returned when a local name is rejected by the
// NCName grammar.
type InvalidLocalNameError struct {
	Local string // the offending local name
}

func (e *InvalidLocalNameError) Error() string {
	return fmt.Sprintf("invalid local name %q", e.Local)
}
