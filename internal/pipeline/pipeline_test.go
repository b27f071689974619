package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkorsak/provenir/internal/cache"
	"github.com/mkorsak/provenir/internal/model"
	"github.com/mkorsak/provenir/internal/store"
)

func TestNewResponseCache(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	if c := newResponseCache(cfg); c != nil {
		t.Errorf("disabled cache config produced %T", c)
	}

	cfg = model.DefaultConfig()
	if _, ok := newResponseCache(cfg).(*cache.MemoryCache); !ok {
		t.Error("default config should cache in memory only")
	}

	cfg.Cache.Dir = t.TempDir()
	if _, ok := newResponseCache(cfg).(*cache.LayeredCache); !ok {
		t.Error("configured cache dir should add the disk layer")
	}
}

func TestPipeline_Guess_EndToEnd(t *testing.T) {
	t.Setenv("UPSTREAM_BRANCH_URL", "")

	dir := t.TempDir()
	manifest := `{
		"name": "leftpad",
		"description": "pads strings on the left",
		"repository": "https://github.com/foo/leftpad"
	}`
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	p := NewPipeline(model.DefaultConfig())
	st, err := p.Guess(context.Background(), dir)
	if err != nil {
		t.Fatalf("Guess: %v", err)
	}

	check := func(field, want string) {
		t.Helper()
		f, ok := st.Get(field)
		if !ok {
			t.Errorf("field %s not present", field)
			return
		}
		if f.Datum.String() != want {
			t.Errorf("%s = %q, want %q", field, f.Datum, want)
		}
	}

	// Declared facts survive at full certainty
	check("Name", "leftpad")
	check("Repository", "https://github.com/foo/leftpad")
	if f, _ := st.Get("Name"); f.Certainty != model.CertaintyCertain {
		t.Errorf("Name certainty = %v, want certain", f.Certainty)
	}

	// Derived facts appear with correct values
	check("Repository-Browse", "https://github.com/foo/leftpad")
	check("Bug-Database", "https://github.com/foo/leftpad/issues")
	check("Bug-Submit", "https://github.com/foo/leftpad/issues/new")
}

func TestPipeline_Guess_EmptyDir(t *testing.T) {
	t.Setenv("UPSTREAM_BRANCH_URL", "")

	p := NewPipeline(model.DefaultConfig())
	st, err := p.Guess(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Guess on empty dir: %v", err)
	}
	if st.Len() != 0 {
		t.Errorf("empty project produced %d facts: %v", st.Len(), st.Facts())
	}
}

func renderStore(t *testing.T) *store.Store {
	t.Helper()
	return store.FromFacts([]model.Fact{
		{Datum: model.Name("leftpad"), Certainty: model.CertaintyCertain, Origin: model.PathOrigin("package.json")},
		{Datum: model.Keywords{"strings", "padding"}, Certainty: model.CertaintyCertain, Origin: model.PathOrigin("package.json")},
		{Datum: model.Maintainer{Name: "Jane Doe", Email: "jane@example.com"}, Certainty: model.CertaintyLikely},
	})
}

func TestEntries(t *testing.T) {
	entries := Entries(renderStore(t))
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	if entries[0].Field != "Name" || entries[0].Value != "leftpad" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[0].Certainty != "certain" {
		t.Errorf("certainty = %q", entries[0].Certainty)
	}
	if entries[0].Origin != "package.json" {
		t.Errorf("origin = %q", entries[0].Origin)
	}

	// Lists render structured, not stringified
	kw, ok := entries[1].Value.([]string)
	if !ok || len(kw) != 2 {
		t.Errorf("Keywords value = %#v", entries[1].Value)
	}
	if _, ok := entries[2].Value.(model.Person); !ok {
		t.Errorf("Maintainer value = %#v", entries[2].Value)
	}
}

func TestEntries_OmitsUnknownCertainty(t *testing.T) {
	st := store.FromFacts([]model.Fact{
		{Datum: model.Name("x")},
	})
	entries := Entries(st)
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].Certainty != "" {
		t.Errorf("Certainty = %q, want empty for unrecorded certainty", entries[0].Certainty)
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderJSON(&buf, renderStore(t)); err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var decoded []Entry
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 3 || decoded[0].Field != "Name" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderYAML(&buf, renderStore(t)); err != nil {
		t.Fatalf("RenderYAML: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"field: Name", "value: leftpad", "certainty: certain", "jane@example.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}
