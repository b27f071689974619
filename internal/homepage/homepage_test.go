package homepage

import (
	"net/url"
	"testing"

	"github.com/mkorsak/provenir/internal/model"
)

func base(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse("https://example.com/")
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestGuessFromPage_RepositoryLink(t *testing.T) {
	body := []byte(`<html><body>
		<a href="https://github.com/foo/bar">Source code</a>
		<a href="/about">About</a>
	</body></html>`)

	facts := GuessFromPage(body, base(t))
	if len(facts) != 1 {
		t.Fatalf("got %d facts, want 1", len(facts))
	}
	f := facts[0]
	if f.Field() != "Repository" {
		t.Errorf("Field() = %q, want Repository", f.Field())
	}
	if f.Datum.String() != "https://github.com/foo/bar" {
		t.Errorf("value = %q", f.Datum)
	}
	if f.Certainty != model.CertaintyPossible {
		t.Errorf("certainty = %v, want possible", f.Certainty)
	}
	if f.Origin.Kind != model.OriginURL {
		t.Errorf("origin kind = %v, want url", f.Origin.Kind)
	}
}

func TestGuessFromPage_BugTrackerLink(t *testing.T) {
	body := []byte(`<html><body>
		<a href="https://github.com/foo/bar/issues">Bug tracker</a>
	</body></html>`)

	facts := GuessFromPage(body, base(t))
	if len(facts) != 1 {
		t.Fatalf("got %d facts, want 1", len(facts))
	}
	if facts[0].Field() != "Bug-Database" {
		t.Errorf("Field() = %q, want Bug-Database", facts[0].Field())
	}
}

func TestGuessFromPage_AriaLabelBeatsText(t *testing.T) {
	body := []byte(`<html><body>
		<a href="https://github.com/foo/bar" aria-label="GitHub"><svg></svg></a>
	</body></html>`)

	facts := GuessFromPage(body, base(t))
	if len(facts) != 1 {
		t.Fatalf("got %d facts, want 1", len(facts))
	}
	if facts[0].Field() != "Repository" {
		t.Errorf("Field() = %q, want Repository", facts[0].Field())
	}
}

func TestGuessFromPage_RelativeHrefResolved(t *testing.T) {
	body := []byte(`<html><body>
		<a href="/code/repo">Repository</a>
	</body></html>`)

	facts := GuessFromPage(body, base(t))
	if len(facts) != 1 {
		t.Fatalf("got %d facts, want 1", len(facts))
	}
	if got := facts[0].Datum.String(); got != "https://example.com/code/repo" {
		t.Errorf("value = %q, relative href not resolved against base", got)
	}
}

func TestGuessFromPage_IgnoresUnlabeledLinks(t *testing.T) {
	body := []byte(`<html><body>
		<a href="https://github.com/foo/bar">Check out our project page</a>
		<a>no href</a>
		<p>plain text</p>
	</body></html>`)

	if facts := GuessFromPage(body, base(t)); len(facts) != 0 {
		t.Errorf("got %d facts from unlabeled links, want 0", len(facts))
	}
}

func TestGuessFromPage_EmptyBody(t *testing.T) {
	if facts := GuessFromPage(nil, base(t)); len(facts) != 0 {
		t.Errorf("got %d facts from empty body", len(facts))
	}
}
