package postgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// FallbackSlug is used when a title is empty or has no usable characters.
	FallbackSlug = "clanok"

	// DefaultExcerptLength is the rune limit applied by Excerpt when none is given.
	DefaultExcerptLength = 180

	ellipsis = "…"
)

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"<", "&lt;",
		">", "&gt;",
	)
	reBlankLine = regexp.MustCompile(`\n\s*\n`)
)

// Slugify converts a title to a filesystem-safe slug. Accented letters are
// folded to their base form, everything outside [a-z0-9] collapses into a
// single hyphen, and hyphens are trimmed from both ends.
func Slugify(title string) string {
	if title == "" {
		return FallbackSlug
	}
	// Transformers carry state, so each call builds its own chain.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(fold, title)
	if err != nil {
		folded = title
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	gap := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}
	if b.Len() == 0 {
		return FallbackSlug
	}
	return b.String()
}

// FormatDate renders a YYYY-MM-DD date as "D. M. YYYY". It returns an empty
// string when any of the three components is missing, zero or not a number.
func FormatDate(iso string) string {
	parts := strings.Split(strings.TrimSpace(iso), "-")
	if len(parts) < 3 {
		return ""
	}
	var ymd [3]int
	for i := range ymd {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n == 0 {
			return ""
		}
		ymd[i] = n
	}
	return fmt.Sprintf("%d. %d. %d", ymd[2], ymd[1], ymd[0])
}

// Excerpt collapses whitespace in text and shortens it to maxLen runes,
// ending truncated output with an ellipsis. maxLen <= 0 selects
// DefaultExcerptLength.
func Excerpt(text string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultExcerptLength
	}
	cleaned := strings.Join(strings.Fields(text), " ")
	r := []rune(cleaned)
	if len(r) <= maxLen {
		return cleaned
	}
	cut := strings.TrimRight(string(r[:maxLen]), ",.;:")
	return cut + ellipsis
}

// EscapeAttr escapes s for use inside a double-quoted HTML attribute or as
// element text. Ampersands are replaced first so entities are not doubled.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// RenderContent turns free-form text into paragraph markup. Blank lines
// separate paragraphs and single newlines inside a paragraph become <br>.
func RenderContent(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	blocks := reBlankLine.Split(strings.TrimSpace(raw), -1)
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		inner := strings.TrimSpace(block)
		if inner == "" {
			continue
		}
		inner = strings.ReplaceAll(EscapeAttr(inner), "\n", "<br>")
		out = append(out, "        <p>"+inner+"</p>")
	}
	return strings.Join(out, "\n")
}
