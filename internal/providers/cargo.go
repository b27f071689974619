package providers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/mkorsak/provenir/internal/model"
)

type cargoManifest struct {
	Package struct {
		Name        string   `toml:"name"`
		Version     string   `toml:"version"`
		Description string   `toml:"description"`
		Homepage    string   `toml:"homepage"`
		Repository  string   `toml:"repository"`
		License     string   `toml:"license"`
		Keywords    []string `toml:"keywords"`
		Authors     []string `toml:"authors"`
	} `toml:"package"`
}

// GuessFromCargoToml reads Rust crate metadata from Cargo.toml
func GuessFromCargoToml(dir string, trusted bool) ([]model.Fact, error) {
	path := filepath.Join(dir, "Cargo.toml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read Cargo.toml: %w", err)
	}

	var manifest cargoManifest
	if err := toml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("parse Cargo.toml: %w", err)
	}

	pkg := manifest.Package
	origin := model.PathOrigin(path)
	var facts []model.Fact
	add := func(d model.Datum) {
		facts = append(facts, model.Fact{Datum: d, Certainty: model.CertaintyCertain, Origin: origin})
	}

	if pkg.Name != "" {
		add(model.Name(pkg.Name))
		add(model.CargoCrate(pkg.Name))
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
	if pkg.Repository != "" {
		add(model.Repository(pkg.Repository))
	}
	if pkg.License != "" {
		add(model.License(pkg.License))
	}
	if len(pkg.Keywords) > 0 {
		add(model.Keywords(pkg.Keywords))
	}
	if len(pkg.Authors) > 0 {
		authors := make(model.Author, 0, len(pkg.Authors))
		for _, a := range pkg.Authors {
			authors = append(authors, model.ParsePerson(a))
		}
		add(authors)
	}

	return facts, nil
}
