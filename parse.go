package xmlname

import "strings"

// Parse interns the qualified name written as an expanded name. Two surface
// forms are accepted:
//
//	{namespaceURI}localName
//	localName
//
// The bare form implies the empty "no namespace" namespace. In the braced
// form the namespace URI runs from after the leading { up to the last } in
// the string; the namespace portion must be non-empty and at least one
// local-name character must follow the closing brace.
//
// Parse fails with ErrEmptyExpandedName for the empty string, with an
// *InvalidExpandedNameError for a malformed brace structure, and with an
// *InvalidLocalNameError when the local-name portion is not a valid NCName.
func (r *Registry) Parse(expanded string) (*Name, error) {
	if expanded == "" {
		return nil, ErrEmptyExpandedName
	}
	if expanded[0] != '{' {
		return r.Namespace("").Name(expanded)
	}
	i := strings.LastIndexByte(expanded, '}')
	if i <= 1 || i == len(expanded)-1 {
		return nil, &InvalidExpandedNameError{Name: expanded}
	}
	return r.Namespace(expanded[1:i]).Name(expanded[i+1:])
}

// FromExpandedName is the nullable convenience form of Parse for optional
// name fields: a nil input yields a nil handle and no error. Non-nil input
// behaves exactly like Parse.
func (r *Registry) FromExpandedName(expanded *string) (*Name, error) {
	if expanded == nil {
		return nil, nil
	}
	return r.Parse(*expanded)
}
