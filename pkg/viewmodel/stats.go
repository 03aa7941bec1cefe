package viewmodel

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"

	"tableflip.dev/questlog/pkg/quest"
)

// Stats holds the display fields of the stats cards.
type Stats struct {
	Name        string  `json:"name"`
	Class       string  `json:"class"`
	HP          float64 `json:"hp"`
	MaxHP       float64 `json:"max_hp"`
	SpellPoints float64 `json:"spell_points"`

	// HPPercent is 100*hp/max_hp as computed, without clamping. It may be
	// NaN or infinite when max_hp is 0.
	HPPercent float64 `json:"-"`

	DayCount  int             `json:"day_count"`
	Modifiers []ModifierLabel `json:"modifiers"`
}

// ModifierLabel is a display label for an active modifier.
type ModifierLabel struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Bonus renders the value with a leading plus, e.g. "+2" or "+1.5".
func (m ModifierLabel) Bonus() string {
	return "+" + FormatNumber(m.Value)
}

// Badge is the modifier as shown under the spell points card.
func (m ModifierLabel) Badge() string {
	return "✨ " + m.Label + ": " + m.Bonus()
}

// RenderStats derives the stats cards. It never fails: a degenerate max_hp
// yields a non-finite HPPercent.
func RenderStats(character *quest.Character, progress *quest.QuestProgress) Stats {
	var s Stats
	if character != nil {
		s.Name = character.Name
		s.Class = character.Class
		if character.Stats != nil {
			s.HP = character.Stats.HP
			s.MaxHP = character.Stats.MaxHP
			s.SpellPoints = character.Stats.SpellPoints
		}
	}
	s.HPPercent = 100 * s.HP / s.MaxHP
	if progress != nil {
		s.DayCount = len(progress.CompletedDays)
		s.Modifiers = make([]ModifierLabel, 0, len(progress.ActiveModifiers))
		for _, m := range progress.ActiveModifiers {
			s.Modifiers = append(s.Modifiers, ModifierLabel{
				Key:   m.Key,
				Label: TitleCase(strings.ReplaceAll(m.Key, "_", " ")),
				Value: m.Value,
			})
		}
	}
	return s
}

// MarshalJSON writes hp_percent as null when it is not finite, since JSON
// has no NaN or Inf.
func (s Stats) MarshalJSON() ([]byte, error) {
	type plain Stats
	out := struct {
		plain
		HPPercent *float64 `json:"hp_percent"`
	}{plain: plain(s)}
	if !math.IsNaN(s.HPPercent) && !math.IsInf(s.HPPercent, 0) {
		p := s.HPPercent
		out.HPPercent = &p
	}
	return json.Marshal(out)
}

// BarPercent clamps HPPercent to [0, 100] for drawing. NaN draws as 0.
func (s Stats) BarPercent() float64 {
	switch p := s.HPPercent; {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

// EventsCompleted is the number of logged events.
func (s Stats) EventsCompleted() int {
	return s.DayCount
}

// TitleCase upper-cases the first letter of every whitespace-delimited word
// and leaves all other characters alone.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	atStart := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			atStart = true
			b.WriteRune(r)
		case atStart:
			atStart = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatNumber prints a document number the shortest way, so 2 is "2" and
// 1.5 is "1.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
