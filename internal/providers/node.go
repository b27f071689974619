package providers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkorsak/provenir/internal/model"
)

type packageJSON struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Homepage    string          `json:"homepage"`
	License     string          `json:"license"`
	Keywords    []string        `json:"keywords"`
	Author      json.RawMessage `json:"author"`
	Repository  json.RawMessage `json:"repository"`
	Bugs        json.RawMessage `json:"bugs"`
}

// GuessFromPackageJSON reads npm package metadata. Fields declared in
// the manifest are Certain; they came straight from the maintainer.
func GuessFromPackageJSON(dir string, trusted bool) ([]model.Fact, error) {
	path := filepath.Join(dir, "package.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read package.json: %w", err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(raw, &pkg); err != nil {
		return nil, fmt.Errorf("parse package.json: %w", err)
	}

	origin := model.PathOrigin(path)
	var facts []model.Fact
	add := func(d model.Datum) {
		facts = append(facts, model.Fact{Datum: d, Certainty: model.CertaintyCertain, Origin: origin})
	}

	if pkg.Name != "" {
		add(model.Name(pkg.Name))
	}
	if pkg.Version != "" {
		add(model.Version(pkg.Version))
	}
	if pkg.Description != "" {
		add(model.Summary(pkg.Description))
	}
	if pkg.Homepage != "" {
		add(model.Homepage(pkg.Homepage))
	}
	if pkg.License != "" {
		add(model.License(pkg.License))
	}
	if len(pkg.Keywords) > 0 {
		add(model.Keywords(pkg.Keywords))
	}
	if repo := stringOrURLField(pkg.Repository, "url"); repo != "" {
		add(model.Repository(repo))
	}
	if bugs := stringOrURLField(pkg.Bugs, "url"); bugs != "" {
		add(model.BugDatabase(bugs))
	}
	if person := personField(pkg.Author); person != (model.Person{}) {
		add(model.Author{person})
	}

	return facts, nil
}

// stringOrURLField handles npm's "string or object" convention, e.g.
// "repository": "https://..." vs {"type": "git", "url": "https://..."}
func stringOrURLField(raw json.RawMessage, key string) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj map[string]string
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj[key]
	}
	return ""
}

func personField(raw json.RawMessage) model.Person {
	if len(raw) == 0 {
		return model.Person{}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return model.ParsePerson(s)
	}
	var obj struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		URL   string `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return model.Person{Name: obj.Name, Email: obj.Email, URL: obj.URL}
	}
	return model.Person{}
}
