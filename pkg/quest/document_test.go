package quest

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const sampleJSON = `{
  "character": {"name": "Ayla", "class": "Wizard",
    "stats": {"hp": 42, "max_hp": 50, "spell_points": 7}},
  "quest_progress": {
    "current_date": "2026-01-05",
    "completed_days": [
      {"date": "2026-01-05", "event": "Slept early", "outcome": "Success"},
      {"date": "2026/02/01", "event": "Ran 5k", "outcome": "Result 3"}
    ],
    "active_modifiers": {"well_rested": 2, "coffee_buff": 1.5, "aura": 3}
  }
}`

const sampleYAML = `
character:
  name: Ayla
  class: Wizard
  stats: {hp: 42, max_hp: 50, spell_points: 7}
quest_progress:
  current_date: "2026-01-05"
  completed_days:
    - {date: "2026-01-05", event: Slept early, outcome: Success}
  active_modifiers:
    zeta: 1
    alpha: 2
`

func TestDecodeJSON(t *testing.T) {
	doc, err := Decode([]byte(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Character.Name != "Ayla" || doc.Character.Stats.MaxHP != 50 {
		t.Fatalf("unexpected character: %+v", doc.Character)
	}
	if got := len(doc.QuestProgress.CompletedDays); got != 2 {
		t.Fatalf("expected 2 completed days, got %d", got)
	}
	keys := make([]string, 0, len(doc.QuestProgress.ActiveModifiers))
	for _, m := range doc.QuestProgress.ActiveModifiers {
		keys = append(keys, m.Key)
	}
	if got := strings.Join(keys, ","); got != "well_rested,coffee_buff,aura" {
		t.Fatalf("modifier order not preserved: %s", got)
	}
	if v, ok := doc.QuestProgress.ActiveModifiers.Get("coffee_buff"); !ok || v != 1.5 {
		t.Fatalf("coffee_buff = %v, %v", v, ok)
	}
}

func TestDecodeYAMLKeepsModifierOrder(t *testing.T) {
	doc, err := Decode([]byte(sampleYAML), FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	mods := doc.QuestProgress.ActiveModifiers
	if len(mods) != 2 || mods[0].Key != "zeta" || mods[1].Key != "alpha" {
		t.Fatalf("unexpected modifiers: %+v", mods)
	}
}

func TestDecodeWithoutModifiers(t *testing.T) {
	raw := `{"character":{"name":"A","class":"B","stats":{"hp":1,"max_hp":2,"spell_points":0}},
"quest_progress":{"current_date":"2026-03-01","completed_days":[]}}`
	doc, err := Decode([]byte(raw), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(doc.QuestProgress.ActiveModifiers) != 0 {
		t.Fatalf("expected no modifiers, got %+v", doc.QuestProgress.ActiveModifiers)
	}
}

func TestDecodeRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{name: "not json", raw: `{`, field: ""},
		{name: "no character", raw: `{"quest_progress":{"current_date":"2026-01-01","completed_days":[]}}`, field: "character"},
		{name: "no stats", raw: `{"character":{"name":"A"},"quest_progress":{"current_date":"2026-01-01","completed_days":[]}}`, field: "character.stats"},
		{name: "no progress", raw: `{"character":{"stats":{}}}`, field: "quest_progress"},
		{name: "no current date", raw: `{"character":{"stats":{}},"quest_progress":{"completed_days":[]}}`, field: "quest_progress.current_date"},
		{name: "no completed days", raw: `{"character":{"stats":{}},"quest_progress":{"current_date":"2026-01-01"}}`, field: "quest_progress.completed_days"},
		{name: "modifiers not an object", raw: `{"character":{"stats":{}},"quest_progress":{"current_date":"2026-01-01","completed_days":[],"active_modifiers":[1]}}`, field: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw), FormatJSON)
			if !errors.Is(err, ErrInvalidDocument) {
				t.Fatalf("expected ErrInvalidDocument, got %v", err)
			}
			if tt.field != "" && !strings.HasSuffix(err.Error(), "missing "+tt.field) {
				t.Errorf("expected missing %s, got %v", tt.field, err)
			}
		})
	}
}

func TestModifiersMarshalJSONKeepsOrder(t *testing.T) {
	mods := Modifiers{{Key: "b", Value: 1}, {Key: "a", Value: 2.5}}
	b, err := json.Marshal(mods)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"b":1,"a":2.5}` {
		t.Fatalf("unexpected JSON: %s", b)
	}
}

func TestDuplicateModifierKeepsLastValue(t *testing.T) {
	var mods Modifiers
	if err := json.Unmarshal([]byte(`{"a":1,"b":2,"a":3}`), &mods); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(mods) != 2 || mods[0].Key != "a" || mods[0].Value != 3 {
		t.Fatalf("unexpected modifiers: %+v", mods)
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"quest-data.json":                   FormatJSON,
		"~/quests/log.yaml":                 FormatYAML,
		"log.YML":                           FormatYAML,
		"https://example.com/q.yaml?t=1":    FormatYAML,
		"https://example.com/q.json?t=.yml": FormatJSON,
		"application/x-yaml":                FormatYAML,
		"application/json":                  FormatJSON,
		"":                                  FormatJSON,
	}
	for hint, want := range tests {
		if got := FormatFor(hint); got != want {
			t.Errorf("FormatFor(%q) = %s, want %s", hint, got, want)
		}
	}
}
