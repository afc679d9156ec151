package html

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "hello world", "hello world"},
		{"tags separate words", "<p>first</p><p>second</p>", "first second"},
		{"entities decoded", "Tom &amp; Jerry&#8217;s &quot;show&quot;", "Tom & Jerry’s \"show\""},
		{"script and style dropped", "<style>p{}</style>text<script>alert(1)</script> more", "text more"},
		{"whitespace collapsed", "  a\n\n\tb   c ", "a b c"},
		{"url kept intact", `<a href="x">https://example.com/a</a>. next`, "https://example.com/a . next"},
		{"self closing", "line<br/>break", "line break"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.input); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  x \r\n y\t"); got != "x y" {
		t.Errorf("CollapseWhitespace = %q, want %q", got, "x y")
	}
}
