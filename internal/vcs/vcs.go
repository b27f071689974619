// Package vcs derives version-control and bug-tracker URLs from one
// another. All functions are pure URL transforms; the only network use
// is forge detection for unknown GitLab hosts, and only when allowed.
package vcs

import (
	"errors"
	"net/url"
	"strings"

	"github.com/mkorsak/provenir/internal/forge"
)

// ErrNotAURL is returned when a field value cannot be treated as a URL
var ErrNotAURL = errors.New("not a well-formed URL")

// PlausibleURL reports whether the string could be a URL at all
func PlausibleURL(s string) bool {
	return strings.Contains(s, ":")
}

// DropVCSInScheme strips vcs+transport scheme prefixes like git+https
func DropVCSInScheme(s string) string {
	switch {
	case strings.HasPrefix(s, "git+http:"), strings.HasPrefix(s, "git+https:"):
		return s[len("git+"):]
	case strings.HasPrefix(s, "hg+http:"), strings.HasPrefix(s, "hg+https:"):
		return s[len("hg+"):]
	case strings.HasPrefix(s, "bzr+lp:"), strings.HasPrefix(s, "bzr+http:"):
		if _, rest, ok := strings.Cut(s, "+"); ok {
			return rest
		}
	}
	return s
}

// ParseURL parses a field value as a URL, normalizing vcs+transport
// prefixes first. Fails with ErrNotAURL for values that are not URLs.
func ParseURL(s string) (*url.URL, error) {
	s = DropVCSInScheme(strings.TrimSpace(s))
	if !PlausibleURL(s) {
		return nil, ErrNotAURL
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrNotAURL
	}
	return u, nil
}

// GuessRepoFromURL guesses a cloneable repository URL from an
// arbitrary project URL (homepage, browse page, bug tracker, download
// location). Returns "" when no guess can be made.
func GuessRepoFromURL(u *url.URL, netAccess bool) string {
	if f := forge.Find(u, netAccess); f != nil {
		if repo := f.RepoURLFromBrowseURL(u); repo != nil {
			return repo.String()
		}
		return ""
	}
	// Dedicated git hosts usually serve the clone URL directly
	host := u.Hostname()
	if strings.HasPrefix(host, "git.") && u.Path != "" && u.Path != "/" {
		return u.String()
	}
	if strings.HasSuffix(u.Path, ".git") {
		return u.String()
	}
	return ""
}

// BrowseURLFromRepoURL derives a web browse URL from a repository URL,
// optionally pointing at subpath within the tree. Returns nil when the
// host is not a recognized forge.
func BrowseURLFromRepoURL(u *url.URL, subpath string, netAccess bool) *url.URL {
	f := forge.Find(u, netAccess)
	if f == nil {
		return nil
	}
	return f.BrowseURLFromRepoURL(u, subpath)
}

// BugDatabaseURLFromRepoURL derives a bug tracker URL from a
// repository URL
func BugDatabaseURLFromRepoURL(u *url.URL, netAccess bool) *url.URL {
	f := forge.Find(u, netAccess)
	if f == nil {
		return nil
	}
	return f.BugDatabaseURLFromRepoURL(u)
}

// BugSubmitURLFromBugDatabaseURL derives the new-bug submission URL
// from a bug tracker URL
func BugSubmitURLFromBugDatabaseURL(u *url.URL, netAccess bool) *url.URL {
	f := forge.Find(u, netAccess)
	if f == nil {
		return nil
	}
	return f.BugSubmitURLFromBugDatabaseURL(u)
}

// BugDatabaseURLFromBugSubmitURL derives the bug tracker URL from a
// new-bug submission URL
func BugDatabaseURLFromBugSubmitURL(u *url.URL, netAccess bool) *url.URL {
	f := forge.Find(u, netAccess)
	if f == nil {
		return nil
	}
	return f.BugDatabaseURLFromBugSubmitURL(u)
}

// RepositoryBrowseCanBeHomepage reports whether a browse URL on the
// URL's hosting site is plausibly used as a project homepage
func RepositoryBrowseCanBeHomepage(u *url.URL, netAccess bool) bool {
	f := forge.Find(u, netAccess)
	return f != nil && f.RepositoryBrowseCanBeHomepage()
}
