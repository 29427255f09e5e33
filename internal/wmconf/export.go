package wmconf

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nigeltao/grpwm/internal/keys"
)

type exportedKey struct {
	Chord string `yaml:"chord"`
	Desc  string `yaml:"desc,omitempty"`
}

type exported struct {
	Config `yaml:",inline"`
	Keys   []exportedKey `yaml:"keys"`
}

// Export writes c as YAML. Key bindings are written as their canonical
// chords and descriptions, since actions are code.
func Export(c *Config) ([]byte, error) {
	t, err := keys.NewTable(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	e := exported{Config: *c, Keys: make([]exportedKey, t.Len())}
	for i := range e.Keys {
		b, chord := t.Binding(i)
		e.Keys[i] = exportedKey{Chord: chord.String(), Desc: b.Desc}
	}

	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(e); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return buf.Bytes(), nil
}
