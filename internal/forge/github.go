package forge

import (
	"net/url"
	"strings"
)

// GitHub is the forge profile for github.com
type GitHub struct{}

func (GitHub) Name() string { return "GitHub" }

func (GitHub) RepositoryBrowseCanBeHomepage() bool { return true }

func (GitHub) BugDatabaseURLFromBugSubmitURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	if len(segments) != 3 && len(segments) != 4 {
		return nil
	}
	if segments[2] != "issues" {
		return nil
	}
	out := withPathSegments(u, segments[:3])
	out.Scheme = "https"
	return out
}

func (GitHub) BugSubmitURLFromBugDatabaseURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	if len(segments) != 3 || segments[2] != "issues" {
		return nil
	}
	out := withPathSegments(u, append(segments[:3:3], "new"))
	out.Scheme = "https"
	return out
}

func (GitHub) BugDatabaseURLFromRepoURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	if len(segments) < 2 {
		return nil
	}
	owner := segments[0]
	repo := strings.TrimSuffix(segments[1], ".git")
	out := withPathSegments(u, []string{owner, repo, "issues"})
	out.Scheme = "https"
	return out
}

func (GitHub) RepoURLFromBrowseURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	if len(segments) < 2 {
		return nil
	}
	owner := segments[0]
	repo := strings.TrimSuffix(segments[1], ".git")
	out := withPathSegments(u, []string{owner, repo})
	out.Scheme = "https"
	return out
}

func (GitHub) BrowseURLFromRepoURL(u *url.URL, subpath string) *url.URL {
	segments := pathSegments(u)
	if len(segments) < 2 {
		return nil
	}
	owner := segments[0]
	repo := strings.TrimSuffix(segments[1], ".git")
	out := []string{owner, repo}
	if subpath != "" {
		out = append(out, "blob", "HEAD")
		out = append(out, strings.Split(strings.Trim(subpath, "/"), "/")...)
	}
	browse := withPathSegments(u, out)
	browse.Scheme = "https"
	return browse
}
