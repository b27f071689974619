package providers

import (
	"os"
	"path/filepath"

	"github.com/mkorsak/provenir/internal/model"
)

// securityMDCandidates are the places projects keep security policies
var securityMDCandidates = []string{
	"SECURITY.md",
	".github/SECURITY.md",
	"docs/SECURITY.md",
}

// GuessFromSecurityMD records the in-tree path of a security policy
// file if one exists. The Security-Contact extrapolation rule later
// turns this into a browseable URL.
func GuessFromSecurityMD(dir string, trusted bool) ([]model.Fact, error) {
	for _, candidate := range securityMDCandidates {
		path := filepath.Join(dir, candidate)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return []model.Fact{{
				Datum:     model.SecurityMD(candidate),
				Certainty: model.CertaintyCertain,
				Origin:    model.PathOrigin(path),
			}}, nil
		}
	}
	return nil, nil
}
