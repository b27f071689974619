package store

import (
	"sort"

	"github.com/mkorsak/provenir/internal/model"
)

// Store holds the current best fact for each metadata field. One store
// belongs to one extraction run; it is not safe for concurrent use.
type Store struct {
	facts []model.Fact
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// FromFacts creates a store pre-populated with the given facts,
// applying the insert-or-upgrade contract in order.
func FromFacts(facts []model.Fact) *Store {
	s := New()
	for _, f := range facts {
		s.InsertOrUpgrade(f)
	}
	return s
}

// Len returns the number of fields currently present
func (s *Store) Len() int {
	return len(s.facts)
}

// Get returns the current best fact for a field
func (s *Store) Get(field string) (model.Fact, bool) {
	for _, f := range s.facts {
		if f.Field() == field {
			return f, true
		}
	}
	return model.Fact{}, false
}

// Has reports whether a field currently holds a fact
func (s *Store) Has(field string) bool {
	_, ok := s.Get(field)
	return ok
}

// InsertOrUpgrade stores the fact only if its certainty is strictly
// greater than the current fact for the same field (an absent field
// counts as the floor). Equal-certainty facts are discarded so that
// repeated application is idempotent. Reports whether the store changed.
func (s *Store) InsertOrUpgrade(fact model.Fact) bool {
	for i, cur := range s.facts {
		if cur.Field() == fact.Field() {
			if fact.Certainty > cur.Certainty {
				s.facts[i] = fact
				return true
			}
			return false
		}
	}
	s.facts = append(s.facts, fact)
	return true
}

// Update feeds each fact through InsertOrUpgrade and returns the ones
// that actually changed the store.
func (s *Store) Update(facts []model.Fact) []model.Fact {
	var changed []model.Fact
	for _, f := range facts {
		if s.InsertOrUpgrade(f) {
			changed = append(changed, f)
		}
	}
	return changed
}

// Remove deletes the current fact for a field, reporting whether one
// was present. Used by rules that promote a legacy field into a
// canonical one and retire the alias.
func (s *Store) Remove(field string) bool {
	for i, f := range s.facts {
		if f.Field() == field {
			s.facts = append(s.facts[:i], s.facts[i+1:]...)
			return true
		}
	}
	return false
}

// Facts returns a snapshot of all facts in insertion order
func (s *Store) Facts() []model.Fact {
	out := make([]model.Fact, len(s.facts))
	copy(out, s.facts)
	return out
}

// Sort orders the facts by field name. Only used for stable output;
// the engine itself does not depend on ordering.
func (s *Store) Sort() {
	sort.SliceStable(s.facts, func(i, j int) bool {
		return s.facts[i].Field() < s.facts[j].Field()
	})
}

// Convenience getters for commonly consulted fields.

func (s *Store) stringField(field string) string {
	f, ok := s.Get(field)
	if !ok {
		return ""
	}
	v, _ := model.DatumValue(f.Datum)
	return v
}

// Name returns the current Name value, or ""
func (s *Store) Name() string { return s.stringField("Name") }

// Homepage returns the current Homepage value, or ""
func (s *Store) Homepage() string { return s.stringField("Homepage") }

// Repository returns the current Repository value, or ""
func (s *Store) Repository() string { return s.stringField("Repository") }

// RepositoryBrowse returns the current Repository-Browse value, or ""
func (s *Store) RepositoryBrowse() string { return s.stringField("Repository-Browse") }
