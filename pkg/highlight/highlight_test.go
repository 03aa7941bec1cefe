package highlight

import (
	"reflect"
	"strings"
	"testing"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
		html string
	}{
		{
			name: "result and success",
			in:   "Result 42 and success",
			want: []string{"Result 42", "success"},
			html: `<span class="success">Result 42</span> and <span class="success">success</span>`,
		},
		{
			name: "partial success is one phrase",
			in:   "A Partial Success today",
			want: []string{"Partial Success"},
			html: `A <span class="success">Partial Success</span> today`,
		},
		{
			name: "casing preserved",
			in:   "VICTORY! then vIcToRy",
			want: []string{"VICTORY", "vIcToRy"},
			html: `<span class="success">VICTORY</span>! then <span class="success">vIcToRy</span>`,
		},
		{
			name: "result needs digits",
			in:   "Result pending, Result 7b",
			want: []string{"Result 7"},
			html: `Result pending, <span class="success">Result 7</span>b`,
		},
		{
			name: "inside a word",
			in:   "Unsuccessful",
			want: []string{"success"},
			html: `Un<span class="success">success</span>ful`,
		},
		{
			name: "nothing to mark",
			in:   "Lost <b>all</b> my gold",
			want: nil,
			html: "Lost <b>all</b> my gold",
		},
		{
			name: "empty",
			in:   "",
			want: nil,
			html: "",
		},
		{
			name: "adjacent matches",
			in:   "SuccessVictory",
			want: []string{"Success", "Victory"},
			html: `<span class="success">Success</span><span class="success">Victory</span>`,
		},
		{
			name: "non-ascii neighbours",
			in:   "¡Éxito! Success ✨",
			want: []string{"Success"},
			html: `¡Éxito! <span class="success">Success</span> ✨`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Highlight(tt.in)
			if got := m.Emphasised(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Emphasised() = %q, want %q", got, tt.want)
			}
			if got := m.HTML(); got != tt.html {
				t.Errorf("HTML() = %q, want %q", got, tt.html)
			}
			if got := m.String(); got != tt.in {
				t.Errorf("String() = %q, want original %q", got, tt.in)
			}
		})
	}
}

func TestRenderUsesEmphasisFunc(t *testing.T) {
	m := Highlight("Victory at dawn")
	got := m.Render(strings.ToUpper)
	if got != "VICTORY at dawn" {
		t.Fatalf("Render = %q", got)
	}
}

func TestHighlightWithCustomPatterns(t *testing.T) {
	m := HighlightWith("level 12 reached", []Pattern{Numbered("level ")})
	if got := m.Emphasised(); len(got) != 1 || got[0] != "level 12" {
		t.Fatalf("Emphasised() = %q", got)
	}
}
