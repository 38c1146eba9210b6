package tuft

import "errors"

// Sentinel errors for render failures. Both abort the render
// outright: no partial output is ever returned alongside an error.
var (
	// ErrUnterminatedSection is returned when a section or
	// inverted-section open tag has no matching closing tag later
	// in the template.
	ErrUnterminatedSection = errors.New("unterminated section")

	// ErrUnrecognizedTag is returned when a scanned tag does not
	// dispatch to any known form, such as an end tag with no
	// matching opener.
	ErrUnrecognizedTag = errors.New("unrecognized tag")

	// ErrMaxDepth is returned when section nesting exceeds
	// Options.MaxDepth.
	ErrMaxDepth = errors.New("section nesting too deep")
)
