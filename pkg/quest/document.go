// Package quest defines the quest log document: a character sheet plus the
// ordered list of completed days.
package quest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the document codec.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor guesses the codec from a file name, URL or content type.
func FormatFor(hint string) Format {
	h := strings.ToLower(strings.TrimSpace(hint))
	if strings.Contains(h, "yaml") && strings.Contains(h, "/") && !strings.Contains(h, ".") {
		// content type, e.g. application/x-yaml
		return FormatYAML
	}
	if i := strings.IndexAny(h, "?#"); i >= 0 {
		h = h[:i]
	}
	if strings.HasSuffix(h, ".yaml") || strings.HasSuffix(h, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// Document is a decoded quest log. It is treated as immutable once loaded;
// a new load replaces it wholesale.
type Document struct {
	Character     *Character     `json:"character" yaml:"character"`
	QuestProgress *QuestProgress `json:"quest_progress" yaml:"quest_progress"`
}

// Character is the player character sheet.
type Character struct {
	Name  string `json:"name" yaml:"name"`
	Class string `json:"class" yaml:"class"`
	Stats *Stats `json:"stats" yaml:"stats"`
}

// Stats holds the numeric character stats. HP is expected to stay within
// [0, MaxHP] but that is not enforced here.
type Stats struct {
	HP          float64 `json:"hp" yaml:"hp"`
	MaxHP       float64 `json:"max_hp" yaml:"max_hp"`
	SpellPoints float64 `json:"spell_points" yaml:"spell_points"`
}

// QuestProgress is the dated part of the log.
type QuestProgress struct {
	CurrentDate     string         `json:"current_date" yaml:"current_date"`
	CompletedDays   []CompletedDay `json:"completed_days" yaml:"completed_days"`
	ActiveModifiers Modifiers      `json:"active_modifiers,omitempty" yaml:"active_modifiers,omitempty"`
}

// CompletedDay is one logged event. Date is YYYY-MM-DD or YYYY/MM/DD.
type CompletedDay struct {
	Date    string `json:"date" yaml:"date"`
	Event   string `json:"event" yaml:"event"`
	Outcome string `json:"outcome" yaml:"outcome"`
}

// Decode parses data with the given codec and validates the result.
func Decode(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, doc)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate reports the first missing required field.
func (d *Document) Validate() error {
	switch {
	case d == nil:
		return fmt.Errorf("%w: empty document", ErrInvalidDocument)
	case d.Character == nil:
		return missing("character")
	case d.Character.Stats == nil:
		return missing("character.stats")
	case d.QuestProgress == nil:
		return missing("quest_progress")
	case strings.TrimSpace(d.QuestProgress.CurrentDate) == "":
		return missing("quest_progress.current_date")
	case d.QuestProgress.CompletedDays == nil:
		return missing("quest_progress.completed_days")
	}
	return nil
}

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrInvalidDocument, field)
}
