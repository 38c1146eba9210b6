package tuft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func wholeRange(t string) span {
	return span{begin: 0, end: len(t)}
}

func TestFindNextTag_locates_first_tag(t *testing.T) {
	t.Parallel()

	tpl := "ab {{x}} cd {{y}}"

	tag, found := findNextTag(
		tpl, wholeRange(tpl), Options{}.withDefaults(),
	)

	assert.True(t, found)
	assert.Equal(t, "{{x}}", tpl[tag.begin:tag.end])
}

func TestFindNextTag_resumes_past_previous_tag(t *testing.T) {
	t.Parallel()

	tpl := "ab {{x}} cd {{y}}"
	opts := Options{}.withDefaults()

	first, found := findNextTag(tpl, wholeRange(tpl), opts)
	assert.True(t, found)

	second, found := findNextTag(
		tpl,
		span{begin: first.end, end: len(tpl)},
		opts,
	)

	assert.True(t, found)
	assert.Equal(t, "{{y}}", tpl[second.begin:second.end])
}

func TestFindNextTag_no_open_delimiter(t *testing.T) {
	t.Parallel()

	tpl := "no tags here"

	tag, found := findNextTag(
		tpl, wholeRange(tpl), Options{}.withDefaults(),
	)

	assert.False(t, found)
	assert.Equal(t, len(tpl), tag.begin)
	assert.Equal(t, len(tpl), tag.end)
}

func TestFindNextTag_open_without_close(t *testing.T) {
	t.Parallel()

	tpl := "ab {{x cd"

	_, found := findNextTag(
		tpl, wholeRange(tpl), Options{}.withDefaults(),
	)

	assert.False(t, found)
}

func TestFindNextTag_triple_requires_triple_close(t *testing.T) {
	t.Parallel()

	tpl := "{{{x}}}rest"

	tag, found := findNextTag(
		tpl, wholeRange(tpl), Options{}.withDefaults(),
	)

	assert.True(t, found)
	assert.Equal(t, "{{{x}}}", tpl[tag.begin:tag.end])
}

func TestFindNextTag_triple_without_triple_close(t *testing.T) {
	t.Parallel()

	// "{{{x}}" never closes with "}}}".
	tpl := "{{{x}}"

	_, found := findNextTag(
		tpl, wholeRange(tpl), Options{}.withDefaults(),
	)

	assert.False(t, found)
}

func TestFindNextTag_custom_delimiters(t *testing.T) {
	t.Parallel()

	tpl := "a <%x%> b"
	opts := Options{
		DelimOpen:  "<%",
		DelimClose: "%>",
	}.withDefaults()

	tag, found := findNextTag(tpl, wholeRange(tpl), opts)

	assert.True(t, found)
	assert.Equal(t, "<%x%>", tpl[tag.begin:tag.end])
}

func TestFindNextTag_custom_delimiters_no_triple_rule(t *testing.T) {
	t.Parallel()

	// Under custom delimiters a "{{{" run is literal text and the
	// scan keys on the configured pair only.
	tpl := "{{{a}}}<%x%>"
	opts := Options{
		DelimOpen:  "<%",
		DelimClose: "%>",
	}.withDefaults()

	tag, found := findNextTag(tpl, wholeRange(tpl), opts)

	assert.True(t, found)
	assert.Equal(t, "<%x%>", tpl[tag.begin:tag.end])
}

func TestFindNextTag_respects_range_end(t *testing.T) {
	t.Parallel()

	tpl := "ab {{x}}"

	// The range stops before the tag's close delimiter.
	_, found := findNextTag(
		tpl,
		span{begin: 0, end: 6},
		Options{}.withDefaults(),
	)

	assert.False(t, found)
}
