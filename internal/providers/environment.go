package providers

import (
	"os"

	"github.com/mkorsak/provenir/internal/model"
)

// GuessFromEnvironment picks up operator-supplied overrides. An
// explicit environment setting is as authoritative as it gets.
func GuessFromEnvironment(dir string, trusted bool) ([]model.Fact, error) {
	var facts []model.Fact
	if url := os.Getenv("UPSTREAM_BRANCH_URL"); url != "" {
		facts = append(facts, model.Fact{
			Datum:     model.Repository(url),
			Certainty: model.CertaintyCertain,
			Origin:    model.Origin{Kind: model.OriginOther, Value: "environment"},
		})
	}
	return facts, nil
}
