package tuft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "plain", want: "plain"},
		{in: "&", want: "&amp;"},
		{in: "<i>", want: "&lt;i&gt;"},
		{in: `"q"`, want: "&quot;q&quot;"},
		{in: "it's", want: "it&#39;s"},
		{in: "a/b", want: "a&#x2F;b"},
		{
			in:   `<a href="/x">&'</a>`,
			want: "&lt;a href=&quot;&#x2F;x&quot;&gt;&amp;&#39;&lt;&#x2F;a&gt;",
		},
	}

	for _, tc := range cases {
		assert.Equal(
			t, tc.want, escapeHTML(tc.in), "input %q", tc.in,
		)
	}
}
