package model

import "testing"

func TestPerson_String(t *testing.T) {
	cases := []struct {
		p    Person
		want string
	}{
		{Person{Name: "Jane Doe", Email: "jane@example.com"}, "Jane Doe <jane@example.com>"},
		{Person{Name: "Jane Doe"}, "Jane Doe"},
		{Person{Email: "jane@example.com"}, "<jane@example.com>"},
		{Person{Name: "Jane Doe", Email: "jane@example.com", URL: "https://example.com"}, "Jane Doe <jane@example.com> (https://example.com)"},
		{Person{}, ""},
	}
	for _, tc := range cases {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("Person.String() = %q, want %q", got, tc.want)
		}
	}
}

func TestParsePerson(t *testing.T) {
	cases := []struct {
		in   string
		want Person
	}{
		{"Jane Doe <jane@example.com>", Person{Name: "Jane Doe", Email: "jane@example.com"}},
		{"Jane Doe", Person{Name: "Jane Doe"}},
		{"jane@example.com", Person{Email: "jane@example.com"}},
		{"Jane Doe <jane@example.com> (https://example.com)", Person{Name: "Jane Doe", Email: "jane@example.com", URL: "https://example.com"}},
		{"jane at example.com", Person{Email: "jane@example.com"}},
		{"jane[AT]example.com", Person{Email: "jane@example.com"}},
	}
	for _, tc := range cases {
		if got := ParsePerson(tc.in); got != tc.want {
			t.Errorf("ParsePerson(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParsePerson_RoundTrip(t *testing.T) {
	p := Person{Name: "Jane Doe", Email: "jane@example.com", URL: "https://example.com"}
	if got := ParsePerson(p.String()); got != p {
		t.Errorf("round trip = %+v, want %+v", got, p)
	}
}
