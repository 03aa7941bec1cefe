package quest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Modifier is a named numeric bonus.
type Modifier struct {
	Key   string
	Value float64
}

// Modifiers keeps active modifiers in document order. Both codecs decode an
// object into it without losing key order.
type Modifiers []Modifier

// Get returns the value for key.
func (m Modifiers) Get(key string) (float64, bool) {
	for _, mod := range m {
		if mod.Key == key {
			return mod.Value, true
		}
	}
	return 0, false
}

// UnmarshalJSON walks the object token stream so key order survives.
func (m *Modifiers) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("active_modifiers: expected an object")
	}
	out := Modifiers{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("active_modifiers: unexpected token %v", tok)
		}
		var value float64
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("active_modifiers.%s: %w", key, err)
		}
		out = set(out, key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

// MarshalJSON writes the modifiers back as an object in the same order.
func (m Modifiers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mod := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(mod.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(mod.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML reads a mapping node pair by pair.
func (m *Modifiers) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*m = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("active_modifiers: expected a mapping, line %d", value.Line)
	}
	out := Modifiers{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		var v float64
		if err := value.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("active_modifiers.%s: %w", key, err)
		}
		out = set(out, key, v)
	}
	*m = out
	return nil
}

// set keeps the first position of a duplicated key and the last value.
func set(m Modifiers, key string, value float64) Modifiers {
	for i := range m {
		if m[i].Key == key {
			m[i].Value = value
			return m
		}
	}
	return append(m, Modifier{Key: key, Value: value})
}
