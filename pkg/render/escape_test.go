package render

import "testing"

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"ampersand", "a & b", "a &amp; b"},
		{"quotes", `"x" 'y'`, "&quot;x&quot; &#39;y&#39;"},
		{"unicode untouched", "héllo → wörld", "héllo → wörld"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeText(tt.in); got != tt.want {
				t.Errorf("escapeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"quote", `a"b`, "a&quot;b"},
		{"newline", "a\nb", "a&#10;b"},
		{"carriage return", "a\rb", "a&#13;b"},
		{"tab", "a\tb", "a&#9;b"},
		{"mixed", "<a>\n", "&lt;a&gt;&#10;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeAttr(tt.in); got != tt.want {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
