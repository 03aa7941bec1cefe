// Package highlight marks success-class phrases in outcome text.
package highlight

import "strings"

// Pattern reports the length of its match at the start of s, or 0.
type Pattern interface {
	Match(s string) int
}

// Literal matches its text, ignoring ASCII case.
type Literal string

func (l Literal) Match(s string) int {
	if hasPrefixFold(s, string(l)) {
		return len(l)
	}
	return 0
}

// Numbered matches its prefix, ignoring ASCII case, followed by one or more
// ASCII digits.
type Numbered string

func (n Numbered) Match(s string) int {
	if !hasPrefixFold(s, string(n)) {
		return 0
	}
	i := len(n)
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == len(n) {
		return 0
	}
	return i
}

// DefaultPatterns are tried in order at each position. The first one that
// matches wins.
var DefaultPatterns = []Pattern{
	Literal("Success"),
	Literal("Victory"),
	Numbered("Result "),
	Literal("Partial Success"),
}

// Segment is a run of outcome text.
type Segment struct {
	Text     string `json:"text"`
	Emphasis bool   `json:"emphasis,omitempty"`
}

// Markup is outcome text split into plain and emphasised runs.
type Markup []Segment

// Highlight marks DefaultPatterns in text.
func Highlight(text string) Markup {
	return HighlightWith(text, DefaultPatterns)
}

// HighlightWith scans text left to right and marks every non-overlapping
// match of patterns. Matched text keeps its original casing.
func HighlightWith(text string, patterns []Pattern) Markup {
	var out Markup
	plain := 0
	for i := 0; i < len(text); {
		n := 0
		for _, p := range patterns {
			if n = p.Match(text[i:]); n > 0 {
				break
			}
		}
		if n == 0 {
			i++
			continue
		}
		if plain < i {
			out = append(out, Segment{Text: text[plain:i]})
		}
		out = append(out, Segment{Text: text[i : i+n], Emphasis: true})
		i += n
		plain = i
	}
	if plain < len(text) {
		out = append(out, Segment{Text: text[plain:]})
	}
	return out
}

// String returns the text without emphasis.
func (m Markup) String() string {
	return m.Render(nil)
}

// Render joins the segments, passing emphasised runs through emph. A nil
// emph leaves them as they are.
func (m Markup) Render(emph func(string) string) string {
	var b strings.Builder
	for _, seg := range m {
		if seg.Emphasis && emph != nil {
			b.WriteString(emph(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// HTML wraps emphasised runs in a success span. Nothing else is escaped.
func (m Markup) HTML() string {
	return m.Render(func(s string) string {
		return `<span class="success">` + s + `</span>`
	})
}

// Emphasised lists the matched phrases in order.
func (m Markup) Emphasised() []string {
	var out []string
	for _, seg := range m {
		if seg.Emphasis {
			out = append(out, seg.Text)
		}
	}
	return out
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lower(s[i]) != lower(prefix[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
