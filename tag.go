package tuft

import "strings"

// tagKind identifies what a scanned tag directs the renderer to do.
type tagKind int

const (
	// tagVariable substitutes the named value, HTML-escaped.
	tagVariable tagKind = iota

	// tagRaw ("&") substitutes the named value without escaping.
	tagRaw

	// tagSection ("#") opens a conditional/iterated range.
	tagSection

	// tagInvertedSection ("^") opens a range rendered on falsy.
	tagInvertedSection

	// tagEndSection ("/") closes a section range.
	tagEndSection

	// tagComment ("!") reproduces the tag text verbatim.
	tagComment
)

// tagSymbols are the type symbols recognized inside a tag, in the
// same order as the kinds they map to.
const tagSymbols = "&#^/!"

var kindBySymbol = map[byte]tagKind{
	'&': tagRaw,
	'#': tagSection,
	'^': tagInvertedSection,
	'/': tagEndSection,
	'!': tagComment,
}

// insideTag returns the tag interior between the configured
// delimiters. For a triple-mustache tag the inner braces remain
// part of the interior; name extraction strips them.
func insideTag(t string, tag span, opts Options) string {
	return t[tag.begin+len(opts.DelimOpen) : tag.end-len(opts.DelimClose)]
}

// tagKindOf classifies a tag by the first type symbol found in its
// interior. An interior with no symbol is a plain variable.
func tagKindOf(t string, tag span, opts Options) tagKind {
	inside := insideTag(t, tag, opts)

	for i := 0; i < len(inside); i++ {
		if strings.IndexByte(tagSymbols, inside[i]) >= 0 {
			return kindBySymbol[inside[i]]
		}
	}

	return tagVariable
}

// tagName extracts the variable or section name: the tag interior
// with every brace and type symbol removed. Whitespace is kept, so
// "{{ x }}" names " x ", not "x".
func tagName(t string, tag span, opts Options) string {
	inside := insideTag(t, tag, opts)

	var b strings.Builder
	b.Grow(len(inside))

	for i := 0; i < len(inside); i++ {
		c := inside[i]
		if c == '{' || c == '}' ||
			strings.IndexByte(tagSymbols, c) >= 0 {
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

// shouldEscape reports whether the tag's substituted value must
// pass through HTML escaping. The raw triple form is recognized
// purely textually ("{{{"…"}}}"), independent of the configured
// delimiters; under custom delimiters only the "&" form suppresses
// escaping.
func shouldEscape(t string, tag span, opts Options) bool {
	if tagKindOf(t, tag, opts) == tagRaw {
		return false
	}

	if tag.end-tag.begin >= 6 {
		text := t[tag.begin:tag.end]
		if strings.HasPrefix(text, tripleOpen) &&
			strings.HasSuffix(text, tripleClose) {
			return false
		}
	}

	return true
}
