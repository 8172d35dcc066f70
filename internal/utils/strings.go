package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitList splits comma/semicolon/newline separated input into trimmed,
// non-empty parts, keeping order and dropping duplicates.
func SplitList(raw string) []string {
	out := []string{}
	seen := map[string]bool{}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// NormalizeTag folds accents and spacing so "  HIMÁCHAL   pradesh" and
// "Himachal Pradesh" compare equal, and title-cases the result.
func NormalizeTag(tag string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, tag)
	if err != nil {
		folded = tag
	}
	folded = NormalizeSpace(folded)
	if folded == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ToLower(folded))
}

// NormalizeTags applies NormalizeTag and drops empties and duplicates.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]bool{}
	for _, tag := range tags {
		n := NormalizeTag(tag)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
