package providers

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mkorsak/provenir/internal/model"
)

type hpackManifest struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Synopsis    string `yaml:"synopsis"`
	Description string `yaml:"description"`
	Homepage    string `yaml:"homepage"`
	BugReports  string `yaml:"bug-reports"`
	License     string `yaml:"license"`
	Author      string `yaml:"author"`
	Maintainer  string `yaml:"maintainer"`
	GitHub      string `yaml:"github"`
}

// GuessFromPackageYaml reads Haskell hpack metadata from package.yaml
func GuessFromPackageYaml(dir string, trusted bool) ([]model.Fact, error) {
	path := filepath.Join(dir, "package.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read package.yaml: %w", err)
	}

	var manifest hpackManifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("parse package.yaml: %w", err)
	}

	origin := model.PathOrigin(path)
	var facts []model.Fact
	add := func(d model.Datum) {
		facts = append(facts, model.Fact{Datum: d, Certainty: model.CertaintyCertain, Origin: origin})
	}

	if manifest.Name != "" {
		add(model.Name(manifest.Name))
	}
	if manifest.Version != "" {
		add(model.Version(manifest.Version))
	}
	if manifest.Synopsis != "" {
		add(model.Summary(manifest.Synopsis))
	}
	if manifest.Description != "" {
		add(model.Description(manifest.Description))
	}
	if manifest.Homepage != "" {
		add(model.Homepage(manifest.Homepage))
	}
	if manifest.BugReports != "" {
		add(model.BugDatabase(manifest.BugReports))
	}
	if manifest.License != "" {
		add(model.License(manifest.License))
	}
	if manifest.Author != "" {
		add(model.Author{model.ParsePerson(manifest.Author)})
	}
	if manifest.Maintainer != "" {
		add(model.Maintainer(model.ParsePerson(manifest.Maintainer)))
	}
	if manifest.GitHub != "" {
		add(model.Repository("https://github.com/" + manifest.GitHub))
	}

	return facts, nil
}

type travisConfig struct {
	GoImportPath string `yaml:"go_import_path"`
}

// GuessFromTravisYml reads the go_import_path hint from .travis.yml
func GuessFromTravisYml(dir string, trusted bool) ([]model.Fact, error) {
	path := filepath.Join(dir, ".travis.yml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read .travis.yml: %w", err)
	}

	var cfg travisConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse .travis.yml: %w", err)
	}

	if cfg.GoImportPath == "" {
		return nil, nil
	}
	return []model.Fact{{
		Datum:     model.GoImportPath(cfg.GoImportPath),
		Certainty: model.CertaintyCertain,
		Origin:    model.PathOrigin(path),
	}}, nil
}
