package model

import "testing"

func TestDatum_FieldNames(t *testing.T) {
	cases := []struct {
		d    Datum
		want string
	}{
		{Name("x"), "Name"},
		{Homepage("x"), "Homepage"},
		{Repository("x"), "Repository"},
		{RepositoryBrowse("x"), "Repository-Browse"},
		{BugDatabase("x"), "Bug-Database"},
		{BugSubmit("x"), "Bug-Submit"},
		{SecurityMD("x"), "Security-MD"},
		{SecurityContact("x"), "Security-Contact"},
		{CargoCrate("x"), "Cargo-Crate"},
		{GoImportPath("x"), "Go-Import-Path"},
		{BugsDatabase("x"), "Bugs-Database"},
		{Keywords{"a"}, "Keywords"},
		{Maintainer{Name: "a"}, "Maintainer"},
		{Author{{Name: "a"}}, "Author"},
	}
	for _, tc := range cases {
		if got := tc.d.Field(); got != tc.want {
			t.Errorf("Field() = %q, want %q", got, tc.want)
		}
	}
}

func TestDatumValue(t *testing.T) {
	v, ok := DatumValue(Repository("https://github.com/foo/bar"))
	if !ok || v != "https://github.com/foo/bar" {
		t.Errorf("DatumValue(Repository) = %q, %v", v, ok)
	}

	// List and person variants are not string-valued
	if _, ok := DatumValue(Keywords{"a", "b"}); ok {
		t.Error("DatumValue(Keywords) reported string-valued")
	}
	if _, ok := DatumValue(Maintainer{Name: "a"}); ok {
		t.Error("DatumValue(Maintainer) reported string-valued")
	}
}

func TestFact_String(t *testing.T) {
	f := Fact{Datum: Name("bar"), Certainty: CertaintyLikely, Origin: DerivedOrigin("Repository")}
	if got := f.String(); got != "Name: bar (likely)" {
		t.Errorf("Fact.String() = %q", got)
	}
}
