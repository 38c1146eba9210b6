package tuft

import "strings"

// A span is a half-open [begin, end) byte range within the
// template string. The template itself is immutable; every
// component works in index pairs rather than shared cursors.
type span struct {
	begin int
	end   int
}

// findNextTag locates the first complete tag inside rng: the first
// occurrence of the open delimiter followed by a matching close
// delimiter. When the delimiters are the defaults and the open
// delimiter starts a literal "{{{", the required close becomes
// "}}}" so that raw triple-mustache tags scan as one tag.
//
// The returned span covers the full delimiter-inclusive tag text.
// If no open delimiter remains, or an open has no matching close,
// the scan reports not found with a degenerate span at rng.end.
func findNextTag(t string, rng span, opts Options) (span, bool) {
	rel := strings.Index(t[rng.begin:rng.end], opts.DelimOpen)
	if rel < 0 {
		return span{begin: rng.end, end: rng.end}, false
	}

	open := rng.begin + rel

	closeDelim := opts.DelimClose
	if opts.DelimOpen == defaultOpen &&
		opts.DelimClose == defaultClose &&
		strings.HasPrefix(t[open:rng.end], tripleOpen) {
		closeDelim = tripleClose
	}

	afterOpen := open + len(opts.DelimOpen)

	rel = strings.Index(t[afterOpen:rng.end], closeDelim)
	if rel < 0 {
		return span{begin: rng.end, end: rng.end}, false
	}

	end := afterOpen + rel + len(closeDelim)

	return span{begin: open, end: end}, true
}
