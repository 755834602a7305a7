package engine

import "testing"

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "keyword becomes string literal",
			in:   `(boss :height 10)`,
			want: `(boss "__kw_height" 10)`,
		},
		{
			name: "hyphenated keyword keeps its hyphen",
			in:   `(head-recess :head-dia 5.4)`,
			want: `(head_recess "__kw_head-dia" 5.4)`,
		},
		{
			name: "assignment operator untouched",
			in:   `(def x := 5)`,
			want: `(def x := 5)`,
		},
		{
			name: "hyphenated call becomes underscore",
			in:   `(clearance-hole :diameter 3)`,
			want: `(clearance_hole "__kw_diameter" 3)`,
		},
		{
			name: "minus operator preserved",
			in:   `(- 10 3)`,
			want: `(- 10 3)`,
		},
		{
			name: "subtraction with spaces preserved",
			in:   `(def x (- a b))`,
			want: `(def x (- a b))`,
		},
		{
			name: "string contents untouched",
			in:   `(part "my-part :height" s)`,
			want: `(part "my-part :height" s)`,
		},
		{
			name: "semicolon comment becomes slashes",
			in:   ";; a comment\n(boss :width 10)",
			want: "// a comment\n(boss \"__kw_width\" 10)",
		},
		{
			name: "empty source",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.in); got != tt.want {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
