package tuft

import (
	"fmt"
	"strings"
)

const (
	defaultOpen  = "{{"
	defaultClose = "}}"

	tripleOpen  = "{{{"
	tripleClose = "}}}"
)

// DefaultMaxDepth bounds section nesting when Options.MaxDepth is
// left at zero.
const DefaultMaxDepth = 64

// Options configures a single render call. The zero value selects
// the default delimiters and nesting limit.
type Options struct {
	// DelimOpen is the opening delimiter. Default is "{{".
	DelimOpen string

	// DelimClose is the closing delimiter. Default is "}}".
	DelimClose string

	// MaxDepth caps section nesting. Templates nested deeper fail
	// with ErrMaxDepth. Zero or negative selects DefaultMaxDepth.
	MaxDepth int
}

// withDefaults returns the options with unset fields resolved.
func (o Options) withDefaults() Options {
	if o.DelimOpen == "" {
		o.DelimOpen = defaultOpen
	}

	if o.DelimClose == "" {
		o.DelimClose = defaultClose
	}

	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}

	return o
}

// Render substitutes context into template using the default
// delimiters. The context value is only read, never mutated, so it
// may safely be shared across concurrent calls.
func Render(template string, context interface{}) (string, error) {
	return RenderWithOptions(template, context, Options{})
}

// RenderWithOptions renders template against context with explicit
// options. It returns the complete output string, or an error with
// no output when the template contains an unterminated section, an
// unrecognized tag, or nesting beyond the configured depth.
func RenderWithOptions(
	template string,
	context interface{},
	opts Options,
) (string, error) {
	const errCtx = "rendering template"

	if template == "" {
		return "", nil
	}

	var out strings.Builder

	// Tag names are removed during substitution, so the template
	// length is a close estimate of the output length.
	out.Grow(len(template))

	st := renderState{
		template: template,
		opts:     opts.withDefaults(),
		out:      &out,
	}

	err := st.renderRange(
		span{begin: 0, end: len(template)}, context, 0,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return out.String(), nil
}
