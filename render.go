package tuft

import (
	"fmt"
	"strings"
)

// renderState carries one render call's inputs and its output
// buffer. The buffer is exclusively owned by the call and appended
// to in strict left-to-right order.
type renderState struct {
	template string
	opts     Options
	out      *strings.Builder
}

// renderRange renders one template range against one context
// frame. An array frame replays the range once per element, in
// array order, with that element as the frame; any other frame
// runs a single pass.
func (st *renderState) renderRange(
	rng span,
	frame interface{},
	depth int,
) error {
	if depth > st.opts.MaxDepth {
		return fmt.Errorf(
			"%w: more than %d levels",
			ErrMaxDepth, st.opts.MaxDepth,
		)
	}

	elems := []interface{}{frame}
	if arr, ok := frame.([]interface{}); ok {
		elems = arr
	}

	for _, elem := range elems {
		if err := st.renderPass(rng, elem, depth); err != nil {
			return err
		}
	}

	return nil
}

// renderPass is one scan of the range: literal text is copied
// verbatim, tags are dispatched, and whatever trails the last tag
// is copied at the end.
func (st *renderState) renderPass(
	rng span,
	frame interface{},
	depth int,
) error {
	cursor := rng.begin

	for {
		tag, found := findNextTag(
			st.template,
			span{begin: cursor, end: rng.end},
			st.opts,
		)
		if !found {
			break
		}

		st.out.WriteString(st.template[cursor:tag.begin])

		next, err := st.renderTag(tag, rng, frame, depth)
		if err != nil {
			return err
		}

		cursor = next
	}

	st.out.WriteString(st.template[cursor:rng.end])

	return nil
}

// renderTag dispatches one scanned tag and returns the position to
// resume scanning from (past the tag, or past a section's closing
// tag).
func (st *renderState) renderTag(
	tag span,
	rng span,
	frame interface{},
	depth int,
) (int, error) {
	name := tagName(st.template, tag, st.opts)

	switch kind := tagKindOf(st.template, tag, st.opts); kind {
	case tagVariable, tagRaw:
		if err := st.renderVariable(tag, name, frame); err != nil {
			return 0, err
		}

		return tag.end, nil

	case tagSection, tagInvertedSection:
		return st.renderSection(
			tag, rng, name, frame,
			kind == tagInvertedSection, depth,
		)

	case tagComment:
		// Comments are reproduced byte-for-byte, delimiters
		// included.
		st.out.WriteString(st.template[tag.begin:tag.end])

		return tag.end, nil

	default:
		// An end tag reached here has no matching opener.
		return 0, fmt.Errorf(
			"%w: %q",
			ErrUnrecognizedTag,
			st.template[tag.begin:tag.end],
		)
	}
}

// renderVariable substitutes a variable tag. An empty or "." name
// refers to the frame itself; a miss on any other name substitutes
// nothing.
func (st *renderState) renderVariable(
	tag span,
	name string,
	frame interface{},
) error {
	value, found := lookupField(frame, name)

	if !found {
		if name != "" && name != "." {
			return nil
		}

		value = frame
	}

	text, err := stringify(value)
	if err != nil {
		return err
	}

	if shouldEscape(st.template, tag, st.opts) {
		text = escapeHTML(text)
	}

	st.out.WriteString(text)

	return nil
}

// renderSection handles "#" and "^" tags. The closing tag is found
// by plain substring search for its exact text, so same-named
// nested sections pair naively with the first close encountered.
func (st *renderState) renderSection(
	tag span,
	rng span,
	name string,
	frame interface{},
	inverted bool,
	depth int,
) (int, error) {
	closing := st.opts.DelimOpen + "/" + name + st.opts.DelimClose

	rel := strings.Index(st.template[tag.end:rng.end], closing)
	if rel < 0 {
		return 0, fmt.Errorf(
			"%w: missing closing tag %q",
			ErrUnterminatedSection, closing,
		)
	}

	closeBegin := tag.end + rel

	// A missing name resolves as null, which is falsy; inverted
	// sections therefore render on absent names.
	value, _ := lookupField(frame, name)

	render := truthy(value)
	if inverted {
		render = !render
	}

	if render {
		interior := span{begin: tag.end, end: closeBegin}
		if err := st.renderRange(interior, value, depth+1); err != nil {
			return 0, err
		}
	}

	return closeBegin + len(closing), nil
}
