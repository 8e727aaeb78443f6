package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "trims surrounding whitespace",
			raw:  "   what should I do   ",
			want: "what should I do",
		},
		{
			name: "collapses internal runs",
			raw:  "road \t accident \n  claim",
			want: "road accident claim",
		},
		{
			name: "escapes html",
			raw:  `<script>alert("x")</script>`,
			want: "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;",
		},
		{
			name: "escapes bare ampersand",
			raw:  "theft & assault",
			want: "theft &amp; assault",
		},
		{
			name: "empty input",
			raw:  "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.raw))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"plain question",
		"  spaced   out  ",
		`<b>bold & "quoted"</b>`,
		"already &amp; escaped &lt;tag&gt;",
		"mixed & &amp; entities",
	}

	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "Clean must be a fixpoint for %q", in)
	}
}
