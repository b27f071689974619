package store

import (
	"testing"

	"github.com/mkorsak/provenir/internal/model"
)

func fact(d model.Datum, c model.Certainty) model.Fact {
	return model.Fact{Datum: d, Certainty: c, Origin: model.PathOrigin("test")}
}

func TestStore_InsertOrUpgrade_NewField(t *testing.T) {
	s := New()
	if !s.InsertOrUpgrade(fact(model.Name("foo"), model.CertaintyPossible)) {
		t.Error("inserting into an empty store should report a change")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStore_InsertOrUpgrade_StrictlyGreaterReplaces(t *testing.T) {
	s := New()
	s.InsertOrUpgrade(fact(model.Name("old"), model.CertaintyPossible))

	if !s.InsertOrUpgrade(fact(model.Name("new"), model.CertaintyCertain)) {
		t.Error("higher certainty should replace")
	}
	got, _ := s.Get("Name")
	if got.Datum.String() != "new" || got.Certainty != model.CertaintyCertain {
		t.Errorf("Get(Name) = %v", got)
	}
}

func TestStore_InsertOrUpgrade_EqualDiscarded(t *testing.T) {
	s := New()
	s.InsertOrUpgrade(fact(model.Name("first"), model.CertaintyLikely))

	if s.InsertOrUpgrade(fact(model.Name("second"), model.CertaintyLikely)) {
		t.Error("equal certainty should not replace")
	}
	got, _ := s.Get("Name")
	if got.Datum.String() != "first" {
		t.Errorf("Get(Name) = %q, want the original value", got.Datum)
	}
}

func TestStore_InsertOrUpgrade_LowerDiscarded(t *testing.T) {
	s := New()
	s.InsertOrUpgrade(fact(model.Name("strong"), model.CertaintyCertain))

	if s.InsertOrUpgrade(fact(model.Name("weak"), model.CertaintyPossible)) {
		t.Error("lower certainty should not replace")
	}
	got, _ := s.Get("Name")
	if got.Datum.String() != "strong" {
		t.Errorf("Get(Name) = %q", got.Datum)
	}
}

func TestStore_InsertOrUpgrade_UnknownBelowExplicit(t *testing.T) {
	s := New()
	s.InsertOrUpgrade(model.Fact{Datum: model.Name("anon")})

	// Any explicit level beats a fact with no recorded certainty
	if !s.InsertOrUpgrade(fact(model.Name("possible"), model.CertaintyPossible)) {
		t.Error("possible should replace an unknown-certainty fact")
	}

	// And an unknown-certainty fact never displaces an explicit one
	if s.InsertOrUpgrade(model.Fact{Datum: model.Name("anon2")}) {
		t.Error("unknown certainty should not replace possible")
	}
}

func TestStore_Update_ReturnsChangedOnly(t *testing.T) {
	s := New()
	s.InsertOrUpgrade(fact(model.Name("foo"), model.CertaintyCertain))

	changed := s.Update([]model.Fact{
		fact(model.Name("bar"), model.CertaintyPossible),   // loses
		fact(model.Homepage("https://example.com"), model.CertaintyLikely), // new
	})
	if len(changed) != 1 || changed[0].Field() != "Homepage" {
		t.Errorf("Update changed = %v", changed)
	}
}

func TestStore_Remove(t *testing.T) {
	s := New()
	s.InsertOrUpgrade(fact(model.BugsDatabase("https://bugs.example.com"), model.CertaintyLikely))

	if !s.Remove("Bugs-Database") {
		t.Error("Remove should report a present field")
	}
	if s.Has("Bugs-Database") {
		t.Error("field still present after Remove")
	}
	if s.Remove("Bugs-Database") {
		t.Error("Remove of an absent field should report false")
	}
}

func TestStore_Facts_InsertionOrder(t *testing.T) {
	s := New()
	s.InsertOrUpgrade(fact(model.Name("foo"), model.CertaintyCertain))
	s.InsertOrUpgrade(fact(model.Homepage("https://example.com"), model.CertaintyLikely))
	s.InsertOrUpgrade(fact(model.Repository("https://github.com/foo/bar"), model.CertaintyLikely))

	// Upgrading Name must not move it from its original slot
	s.InsertOrUpgrade(fact(model.Homepage("https://example.org"), model.CertaintyCertain))

	want := []string{"Name", "Homepage", "Repository"}
	facts := s.Facts()
	if len(facts) != len(want) {
		t.Fatalf("Facts() returned %d facts, want %d", len(facts), len(want))
	}
	for i, f := range facts {
		if f.Field() != want[i] {
			t.Errorf("facts[%d].Field() = %q, want %q", i, f.Field(), want[i])
		}
	}
}

func TestStore_Facts_SnapshotIsolated(t *testing.T) {
	s := New()
	s.InsertOrUpgrade(fact(model.Name("foo"), model.CertaintyCertain))

	snap := s.Facts()
	snap[0] = fact(model.Name("mutated"), model.CertaintyCertain)

	got, _ := s.Get("Name")
	if got.Datum.String() != "foo" {
		t.Error("mutating the snapshot leaked into the store")
	}
}

func TestStore_ConvenienceGetters(t *testing.T) {
	s := FromFacts([]model.Fact{
		fact(model.Name("bar"), model.CertaintyCertain),
		fact(model.Repository("https://github.com/foo/bar"), model.CertaintyLikely),
	})
	if s.Name() != "bar" {
		t.Errorf("Name() = %q", s.Name())
	}
	if s.Repository() != "https://github.com/foo/bar" {
		t.Errorf("Repository() = %q", s.Repository())
	}
	if s.Homepage() != "" {
		t.Errorf("Homepage() = %q, want empty", s.Homepage())
	}
}
