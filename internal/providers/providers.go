// Package providers implements the per-source collaborators that
// populate a store with initial facts. Each provider inspects one kind
// of source (a manifest, a VCS config, the environment) and returns
// zero or more provenance-tagged facts. Provider failures are local:
// a bad source never aborts the run.
package providers

import (
	"github.com/mkorsak/provenir/internal/model"
)

// Provider guesses facts from one kind of source in a project
// directory. trusted indicates the package contents may be treated as
// authoritative for identity fields.
type Provider struct {
	Name  string
	Guess func(dir string, trusted bool) ([]model.Fact, error)
}

// All returns the providers in evaluation order
func All() []Provider {
	return []Provider{
		{Name: "package.json", Guess: GuessFromPackageJSON},
		{Name: "Cargo.toml", Guess: GuessFromCargoToml},
		{Name: "package.yaml", Guess: GuessFromPackageYaml},
		{Name: ".travis.yml", Guess: GuessFromTravisYml},
		{Name: "SECURITY.md", Guess: GuessFromSecurityMD},
		{Name: ".git/config", Guess: GuessFromGitConfig},
		{Name: "README", Guess: GuessFromReadme},
		{Name: "environment", Guess: GuessFromEnvironment},
	}
}
