package postgen

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Bolesť chrbta!", "bolest-chrbta"},
		{"Ďalší článok o kolene", "dalsi-clanok-o-kolene"},
		{"  --Hello,   World--  ", "hello-world"},
		{"Cvičenie 3x týždenne", "cvicenie-3x-tyzdenne"},
		{"ÁÉÍÓÚ", "aeiou"},
		{"", FallbackSlug},
		{"!!!", FallbackSlug},
		{"日本語", FallbackSlug},
	}
	for _, tt := range tests {
		got := Slugify(tt.input)
		if got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSlugifyOutputShape(t *testing.T) {
	inputs := []string{
		"Bolesť chrbta!", "a  b", "--x--", "Žltá ( ru-ža ) 2024", "tab\there", "x___y", "Ö.Ü.Ä",
	}
	for _, in := range inputs {
		got := Slugify(in)
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("Slugify(%q) = %q has edge separator", in, got)
		}
		if strings.Contains(got, "--") {
			t.Errorf("Slugify(%q) = %q has doubled separator", in, got)
		}
		for _, r := range got {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
				t.Errorf("Slugify(%q) = %q contains %q", in, got, r)
			}
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2024-03-07", "7. 3. 2024"},
		{"2024-12-31", "31. 12. 2024"},
		{"2024-01-05", "5. 1. 2024"},
		{"2024-03", ""},
		{"2024--07", ""},
		{"2024-00-07", ""},
		{"abcd-03-07", ""},
		{"", ""},
		{"2024-03-07-extra", "7. 3. 2024"},
	}
	for _, tt := range tests {
		got := FormatDate(tt.input)
		if got != tt.expected {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestExcerptShortTextCollapsesWhitespace(t *testing.T) {
	got := Excerpt("  Prvý   odsek.\n\n Druhý\todsek. ", 0)
	want := "Prvý odsek. Druhý odsek."
	if got != want {
		t.Errorf("Excerpt = %q, want %q", got, want)
	}
}

func TestExcerptTruncates(t *testing.T) {
	text := strings.Repeat("slovo ", 60)
	got := Excerpt(text, 0)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis, got %q", got)
	}
	if n := utf8.RuneCountInString(strings.TrimSuffix(got, "…")); n > DefaultExcerptLength {
		t.Errorf("excerpt body has %d runes, want at most %d", n, DefaultExcerptLength)
	}
}

func TestExcerptStripsTrailingPunctuation(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"abcd, efgh", 5, "abcd…"},
		{"abcd. efgh", 5, "abcd…"},
		{"abc;: efgh", 5, "abc…"},
		{"abcde fgh", 5, "abcde…"},
		{"čšťžý", 5, "čšťžý"},
		{"čšťžýá", 5, "čšťžý…"},
	}
	for _, tt := range tests {
		got := Excerpt(tt.input, tt.max)
		if got != tt.expected {
			t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
		}
	}
}

func TestExcerptEmpty(t *testing.T) {
	if got := Excerpt(" \n\t ", 10); got != "" {
		t.Errorf("Excerpt(blank) = %q, want empty", got)
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`<a href="x">`, "&lt;a href=&quot;x&quot;&gt;"},
		{"Tom & Jerry", "Tom &amp; Jerry"},
		{"&amp;", "&amp;amp;"},
		{"", ""},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		got := EscapeAttr(tt.input)
		if got != tt.expected {
			t.Errorf("EscapeAttr(%q) = %q, want %q", tt.input, got, tt.expected)
		}
		if strings.ContainsAny(got, `<>"`) {
			t.Errorf("EscapeAttr(%q) = %q still contains markup characters", tt.input, got)
		}
	}
}

func TestRenderContent(t *testing.T) {
	raw := "Prvý odsek.\n\nDruhý odsek s viac riadkami.\nĎalší riadok."
	got := RenderContent(raw)
	want := "        <p>Prvý odsek.</p>\n        <p>Druhý odsek s viac riadkami.<br>Ďalší riadok.</p>"
	if got != want {
		t.Errorf("RenderContent:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderContentCRLFAndBlankBlocks(t *testing.T) {
	raw := "\r\n\r\nJeden\r\ndva\r\n \r\n\t\r\n\r\nTri\r\n"
	got := RenderContent(raw)
	want := "        <p>Jeden<br>dva</p>\n        <p>Tri</p>"
	if got != want {
		t.Errorf("RenderContent:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderContentEscapesText(t *testing.T) {
	got := RenderContent("<script>alert(1)</script> & more")
	if strings.Contains(got, "<script>") {
		t.Errorf("content markup was not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") || !strings.Contains(got, "&amp; more") {
		t.Errorf("unexpected escaping: %q", got)
	}
}
