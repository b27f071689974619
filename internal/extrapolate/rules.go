package extrapolate

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkorsak/provenir/internal/model"
	"github.com/mkorsak/provenir/internal/store"
	"github.com/mkorsak/provenir/internal/vcs"
)

// HomepageConsultant is the network collaborator behind the
// Homepage => {Bug-Database, Repository} rule.
type HomepageConsultant interface {
	Consult(ctx context.Context, url string) ([]model.Fact, error)
}

// DefaultRules returns the fixed, ordered rule table. The order is
// load-bearing: when two rules could produce the same field at the
// same certainty in one pass, the first one in table order wins and
// later rules observe the updated store. consultant may be nil, in
// which case homepage consultation is disabled.
func DefaultRules(consultant HomepageConsultant) []Rule {
	return []Rule{
		{
			FromFields: []string{"Homepage"},
			ToFields:   []string{"Repository"},
			Derive:     repositoryFromHomepage,
		},
		{
			FromFields: []string{"Repository-Browse"},
			ToFields:   []string{"Homepage"},
			Derive:     homepageFromRepositoryBrowse,
		},
		{
			FromFields: []string{"Bugs-Database"},
			ToFields:   []string{"Bug-Database"},
			Derive:     promoteBugsDatabase,
		},
		{
			FromFields: []string{"Bug-Database"},
			ToFields:   []string{"Repository"},
			Derive:     repositoryFromBugDatabase,
		},
		{
			FromFields: []string{"Repository"},
			ToFields:   []string{"Repository-Browse"},
			Derive:     repositoryBrowseFromRepository,
		},
		{
			FromFields: []string{"Repository-Browse"},
			ToFields:   []string{"Repository"},
			Derive:     repositoryFromRepositoryBrowse,
		},
		{
			FromFields: []string{"Repository"},
			ToFields:   []string{"Bug-Database"},
			Derive:     bugDatabaseFromRepository,
		},
		{
			FromFields: []string{"Bug-Database"},
			ToFields:   []string{"Bug-Submit"},
			Derive:     bugSubmitFromBugDatabase,
		},
		{
			FromFields: []string{"Bug-Submit"},
			ToFields:   []string{"Bug-Database"},
			Derive:     bugDatabaseFromBugSubmit,
		},
		{
			FromFields: []string{"Download"},
			ToFields:   []string{"Repository"},
			Derive:     repositoryFromDownload,
		},
		{
			FromFields: []string{"Repository"},
			ToFields:   []string{"Name"},
			Derive:     nameFromRepository,
		},
		{
			FromFields: []string{"Repository", "Security-MD"},
			ToFields:   []string{"Security-Contact"},
			Derive:     securityContactFromSecurityMD,
		},
		{
			FromFields: []string{"Maintainer"},
			ToFields:   []string{"Contact"},
			Derive:     contactFromMaintainer,
		},
		{
			FromFields: []string{"Homepage"},
			ToFields:   []string{"Bug-Database", "Repository"},
			Derive:     consultHomepage(consultant),
		},
	}
}

// capCertainty bounds a derived fact's certainty by cap. A source with
// no explicit certainty yields the cap itself rather than the unknown
// floor, so a derived guess is never more anonymous than the rule that
// made it.
func capCertainty(src, cap model.Certainty) model.Certainty {
	if src == model.CertaintyUnknown {
		return cap
	}
	return model.MinCertainty(src, cap)
}

// sourceURL reads a field's value as a URL
func sourceURL(st *store.Store, field string) (model.Fact, string, error) {
	fact, ok := st.Get(field)
	if !ok {
		return model.Fact{}, "", fmt.Errorf("field %s not present", field)
	}
	value, ok := model.DatumValue(fact.Datum)
	if !ok {
		return model.Fact{}, "", fmt.Errorf("field %s is not string-valued", field)
	}
	return fact, value, nil
}

func repositoryFromHomepage(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
	homepage, value, err := sourceURL(st, "Homepage")
	if err != nil {
		return nil, err
	}
	u, err := vcs.ParseURL(value)
	if err != nil {
		return nil, fmt.Errorf("homepage %q: %w", value, err)
	}
	repo := vcs.GuessRepoFromURL(u, netAccess)
	if repo == "" {
		return nil, nil
	}
	return []model.Fact{{
		Datum:     model.Repository(repo),
		Certainty: capCertainty(homepage.Certainty, model.CertaintyLikely),
		Origin:    homepage.Origin,
	}}, nil
}

func homepageFromRepositoryBrowse(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
	browse, value, err := sourceURL(st, "Repository-Browse")
	if err != nil {
		return nil, err
	}
	u, err := vcs.ParseURL(value)
	if err != nil {
		return nil, fmt.Errorf("repository browse %q: %w", value, err)
	}
	// Only hosting profiles where a browse page plausibly doubles as
	// the project homepage.
	if !vcs.RepositoryBrowseCanBeHomepage(u, netAccess) {
		return nil, nil
	}
	return []model.Fact{{
		Datum:     model.Homepage(value),
		Certainty: capCertainty(browse.Certainty, model.CertaintyPossible),
		Origin:    browse.Origin,
	}}, nil
}

// promoteBugsDatabase renames the legacy Bugs-Database field into
// Bug-Database and retires the alias.
func promoteBugsDatabase(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
	legacy, value, err := sourceURL(st, "Bugs-Database")
	if err != nil {
		return nil, err
	}
	st.Remove("Bugs-Database")
	return []model.Fact{{
		Datum:     model.BugDatabase(value),
		Certainty: legacy.Certainty,
		Origin:    legacy.Origin,
	}}, nil
}

func repositoryFromBugDatabase(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
	bugDB, value, err := sourceURL(st, "Bug-Database")
	if err != nil {
		return nil, err
	}
	u, err := vcs.ParseURL(value)
	if err != nil {
		return nil, fmt.Errorf("bug database %q: %w", value, err)
	}
	repo := vcs.GuessRepoFromURL(u, netAccess)
	if repo == "" {
		return nil, nil
	}
	return []model.Fact{{
		Datum:     model.Repository(repo),
		Certainty: capCertainty(bugDB.Certainty, model.CertaintyLikely),
		Origin:    bugDB.Origin,
	}}, nil
}

func repositoryBrowseFromRepository(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
	repo, value, err := sourceURL(st, "Repository")
	if err != nil {
		return nil, err
	}
	u, err := vcs.ParseURL(value)
	if err != nil {
		return nil, fmt.Errorf("repository %q: %w", value, err)
	}
	browse := vcs.BrowseURLFromRepoURL(u, "", netAccess)
	if browse == nil {
		return nil, nil
	}
	return []model.Fact{{
		Datum:     model.RepositoryBrowse(browse.String()),
		Certainty: repo.Certainty,
		Origin:    repo.Origin,
	}}, nil
}

func repositoryFromRepositoryBrowse(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
	browse, value, err := sourceURL(st, "Repository-Browse")
	if err != nil {
		return nil, err
	}
	u, err := vcs.ParseURL(value)
	if err != nil {
		return nil, fmt.Errorf("repository browse %q: %w", value, err)
	}
	repo := vcs.GuessRepoFromURL(u, netAccess)
	if repo == "" {
		return nil, nil
	}
	return []model.Fact{{
		Datum:     model.Repository(repo),
		Certainty: browse.Certainty,
		Origin:    browse.Origin,
	}}, nil
}

func bugDatabaseFromRepository(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
	repo, value, err := sourceURL(st, "Repository")
	if err != nil {
		return nil, err
	}
	u, err := vcs.ParseURL(value)
	if err != nil {
		return nil, fmt.Errorf("repository %q: %w", value, err)
	}
	bugDB := vcs.BugDatabaseURLFromRepoURL(u, netAccess)
	if bugDB == nil {
		return nil, nil
	}
	return []model.Fact{{
		Datum:     model.BugDatabase(bugDB.String()),
		Certainty: capCertainty(repo.Certainty, model.CertaintyLikely),
		Origin:    repo.Origin,
	}}, nil
}

func bugSubmitFromBugDatabase(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
	bugDB, value, err := sourceURL(st, "Bug-Database")
	if err != nil {
		return nil, err
	}
	u, err := vcs.ParseURL(value)
	if err != nil {
		return nil, fmt.Errorf("bug database %q: %w", value, err)
	}
	submit := vcs.BugSubmitURLFromBugDatabaseURL(u, netAccess)
	if submit == nil {
		return nil, nil
	}
	return []model.Fact{{
		Datum:     model.BugSubmit(submit.String()),
		Certainty: bugDB.Certainty,
		Origin:    bugDB.Origin,
	}}, nil
}

func bugDatabaseFromBugSubmit(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
	submit, value, err := sourceURL(st, "Bug-Submit")
	if err != nil {
		return nil, err
	}
	u, err := vcs.ParseURL(value)
	if err != nil {
		return nil, fmt.Errorf("bug submit %q: %w", value, err)
	}
	bugDB := vcs.BugDatabaseURLFromBugSubmitURL(u, netAccess)
	if bugDB == nil {
		return nil, nil
	}
	return []model.Fact{{
		Datum:     model.BugDatabase(bugDB.String()),
		Certainty: submit.Certainty,
		Origin:    submit.Origin,
	}}, nil
}

func repositoryFromDownload(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
	download, value, err := sourceURL(st, "Download")
	if err != nil {
		return nil, err
	}
	u, err := vcs.ParseURL(value)
	if err != nil {
		return nil, fmt.Errorf("download %q: %w", value, err)
	}
	repo := vcs.GuessRepoFromURL(u, netAccess)
	if repo == "" {
		return nil, nil
	}
	return []model.Fact{{
		Datum:     model.Repository(repo),
		Certainty: capCertainty(download.Certainty, model.CertaintyLikely),
		Origin:    download.Origin,
	}}, nil
}

// nameFromRepository takes the last path segment of the repository
// URL, with a trailing ".git" stripped.
func nameFromRepository(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
	repo, value, err := sourceURL(st, "Repository")
	if err != nil {
		return nil, err
	}
	u, err := vcs.ParseURL(value)
	if err != nil {
		return nil, fmt.Errorf("repository %q: %w", value, err)
	}
	guessed := vcs.GuessRepoFromURL(u, netAccess)
	if guessed == "" {
		return nil, nil
	}
	parsed, err := vcs.ParseURL(guessed)
	if err != nil {
		return nil, fmt.Errorf("guessed repository %q: %w", guessed, err)
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	name := strings.TrimSuffix(segments[len(segments)-1], ".git")
	if name == "" {
		return nil, nil
	}
	return []model.Fact{{
		Datum:     model.Name(name),
		Certainty: capCertainty(repo.Certainty, model.CertaintyLikely),
		Origin:    repo.Origin,
	}}, nil
}

func securityContactFromSecurityMD(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
	repo, repoValue, err := sourceURL(st, "Repository")
	if err != nil {
		return nil, err
	}
	securityMD, mdValue, err := sourceURL(st, "Security-MD")
	if err != nil {
		return nil, err
	}
	u, err := vcs.ParseURL(repoValue)
	if err != nil {
		return nil, fmt.Errorf("repository %q: %w", repoValue, err)
	}
	securityURL := vcs.BrowseURLFromRepoURL(u, mdValue, netAccess)
	if securityURL == nil {
		return nil, nil
	}
	return []model.Fact{{
		Datum:     model.SecurityContact(securityURL.String()),
		Certainty: model.MinCertainty(repo.Certainty, securityMD.Certainty),
		Origin:    repo.Origin,
	}}, nil
}

func contactFromMaintainer(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
	maintainer, ok := st.Get("Maintainer")
	if !ok {
		return nil, fmt.Errorf("field Maintainer not present")
	}
	return []model.Fact{{
		Datum:     model.Contact(maintainer.Datum.String()),
		Certainty: maintainer.Certainty,
		Origin:    maintainer.Origin,
	}}, nil
}

// consultHomepage fetches the homepage and adopts whatever repository
// or bug tracker links it advertises, capped by the homepage fact's
// own certainty. Runs only with network access.
func consultHomepage(consultant HomepageConsultant) func(context.Context, *store.Store, bool) ([]model.Fact, error) {
	return func(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error) {
		if !netAccess || consultant == nil {
			return nil, nil
		}
		homepage, value, err := sourceURL(st, "Homepage")
		if err != nil {
			return nil, err
		}
		guessed, err := consultant.Consult(ctx, value)
		if err != nil {
			return nil, fmt.Errorf("consult homepage %q: %w", value, err)
		}
		facts := make([]model.Fact, 0, len(guessed))
		for _, fact := range guessed {
			fact.Certainty = model.MinCertainty(homepage.Certainty, fact.Certainty)
			facts = append(facts, fact)
		}
		return facts, nil
	}
}
