package forge

import (
	"net/url"
	"strings"
)

// GitLab is the forge profile for gitlab.com and self-hosted instances
type GitLab struct{}

func (GitLab) Name() string { return "GitLab" }

func (GitLab) RepositoryBrowseCanBeHomepage() bool { return true }

func (GitLab) BugDatabaseURLFromBugSubmitURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	if len(segments) < 2 {
		return nil
	}
	if segments[len(segments)-1] == "new" {
		segments = segments[:len(segments)-1]
	}
	if segments[len(segments)-1] != "issues" {
		return nil
	}
	return withPathSegments(u, segments)
}

func (GitLab) BugSubmitURLFromBugDatabaseURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	if len(segments) < 2 || segments[len(segments)-1] != "issues" {
		return nil
	}
	return withPathSegments(u, append(segments[:len(segments):len(segments)], "new"))
}

func (GitLab) BugDatabaseURLFromRepoURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	if len(segments) < 2 {
		return nil
	}
	last := strings.TrimSuffix(segments[len(segments)-1], ".git")
	out := append(segments[:len(segments)-1:len(segments)-1], last, "issues")
	return withPathSegments(u, out)
}

func (GitLab) RepoURLFromBrowseURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	if len(segments) < 2 {
		return nil
	}
	// Strip trailing /-/... views and issue/merge request suffixes
	for i, seg := range segments {
		if seg == "-" || seg == "issues" || seg == "merge_requests" {
			segments = segments[:i]
			break
		}
	}
	if len(segments) < 2 {
		return nil
	}
	last := strings.TrimSuffix(segments[len(segments)-1], ".git")
	out := withPathSegments(u, append(segments[:len(segments)-1:len(segments)-1], last))
	out.Scheme = "https"
	return out
}

func (GitLab) BrowseURLFromRepoURL(u *url.URL, subpath string) *url.URL {
	segments := pathSegments(u)
	if len(segments) < 2 {
		return nil
	}
	last := strings.TrimSuffix(segments[len(segments)-1], ".git")
	out := append(segments[:len(segments)-1:len(segments)-1], last)
	if subpath != "" {
		out = append(out, "-", "blob", "HEAD")
		out = append(out, strings.Split(strings.Trim(subpath, "/"), "/")...)
	}
	browse := withPathSegments(u, out)
	browse.Scheme = "https"
	return browse
}
