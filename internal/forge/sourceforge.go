package forge

import "net/url"

// SourceForge is the forge profile for sourceforge.net
type SourceForge struct{}

func (SourceForge) Name() string { return "SourceForge" }

// Project pages on sourceforge.net are landing pages, not source trees
func (SourceForge) RepositoryBrowseCanBeHomepage() bool { return false }

func (SourceForge) BugDatabaseURLFromBugSubmitURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	// /p/<project>/bugs/new -> /p/<project>/bugs
	if len(segments) != 4 || segments[0] != "p" || segments[2] != "bugs" || segments[3] != "new" {
		return nil
	}
	return withPathSegments(u, segments[:3])
}

func (SourceForge) BugSubmitURLFromBugDatabaseURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	if len(segments) != 3 || segments[0] != "p" || segments[2] != "bugs" {
		return nil
	}
	return withPathSegments(u, append(segments[:3:3], "new"))
}

func (SourceForge) BugDatabaseURLFromRepoURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	if len(segments) < 2 || segments[0] != "p" {
		return nil
	}
	return withPathSegments(u, []string{"p", segments[1], "bugs"})
}

func (SourceForge) RepoURLFromBrowseURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	// /p/<project>/<mount>/... is browseable; git URLs live under the
	// same mount point
	if len(segments) < 3 || segments[0] != "p" {
		return nil
	}
	out := withPathSegments(u, segments[:3])
	out.Scheme = "https"
	return out
}

func (SourceForge) BrowseURLFromRepoURL(u *url.URL, subpath string) *url.URL {
	segments := pathSegments(u)
	if len(segments) < 3 || segments[0] != "p" {
		return nil
	}
	out := append(segments[:3:3], "ci", "default", "tree")
	if subpath != "" {
		out = append(out, subpath)
	}
	return withPathSegments(u, out)
}
