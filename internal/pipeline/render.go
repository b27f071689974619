package pipeline

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mkorsak/provenir/internal/model"
	"github.com/mkorsak/provenir/internal/store"
)

// Entry is one rendered (field, fact) pair
type Entry struct {
	Field     string      `json:"field" yaml:"field"`
	Value     interface{} `json:"value" yaml:"value"`
	Certainty string      `json:"certainty,omitempty" yaml:"certainty,omitempty"`
	Origin    string      `json:"origin,omitempty" yaml:"origin,omitempty"`
}

// Entries converts a finalized store into rendered entries in
// insertion order.
func Entries(st *store.Store) []Entry {
	facts := st.Facts()
	entries := make([]Entry, 0, len(facts))
	for _, fact := range facts {
		entry := Entry{
			Field:  fact.Field(),
			Value:  renderValue(fact.Datum),
			Origin: fact.Origin.String(),
		}
		if fact.Certainty != model.CertaintyUnknown {
			entry.Certainty = fact.Certainty.String()
		}
		entries = append(entries, entry)
	}
	return entries
}

func renderValue(d model.Datum) interface{} {
	switch v := d.(type) {
	case model.Keywords:
		return []string(v)
	case model.Screenshots:
		return []string(v)
	case model.Author:
		return []model.Person(v)
	case model.Maintainer:
		return model.Person(v)
	default:
		return d.String()
	}
}

// RenderYAML writes the store as a YAML document
func RenderYAML(w io.Writer, st *store.Store) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Entries(st)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// RenderJSON writes the store as a JSON document
func RenderJSON(w io.Writer, st *store.Store) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Entries(st)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
