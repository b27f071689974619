package forge

import (
	"net/url"
	"testing"
)

func mustParse(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return u
}

func checkURL(t *testing.T, got *url.URL, want string) {
	t.Helper()
	if want == "" {
		if got != nil {
			t.Errorf("got %q, want nil", got)
		}
		return
	}
	if got == nil {
		t.Fatalf("got nil, want %q", want)
	}
	if got.String() != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFind(t *testing.T) {
	cases := []struct {
		url  string
		want string // forge name, "" for none
	}{
		{"https://github.com/foo/bar", "GitHub"},
		{"https://gitlab.com/foo/bar", "GitLab"},
		{"https://salsa.debian.org/foo/bar", "GitLab"},
		{"https://gitlab.gnome.org/GNOME/glib", "GitLab"},
		{"https://gitlab.example.org/foo/bar", "GitLab"},
		{"https://sourceforge.net/p/proj/code", "SourceForge"},
		{"https://launchpad.net/proj", "Launchpad"},
		{"https://bugs.launchpad.net/proj", "Launchpad"},
		{"https://example.com/foo/bar", ""},
	}
	for _, tc := range cases {
		f := Find(mustParse(t, tc.url), false)
		if tc.want == "" {
			if f != nil {
				t.Errorf("Find(%q) = %s, want nil", tc.url, f.Name())
			}
			continue
		}
		if f == nil {
			t.Errorf("Find(%q) = nil, want %s", tc.url, tc.want)
			continue
		}
		if f.Name() != tc.want {
			t.Errorf("Find(%q) = %s, want %s", tc.url, f.Name(), tc.want)
		}
	}
}

func TestIsGitLabSite_Offline(t *testing.T) {
	cases := []struct {
		host string
		want bool
	}{
		{"gitlab.com", true},
		{"salsa.debian.org", true},
		{"gitlab.example.org", true},
		{"example.com", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsGitLabSite(tc.host, false); got != tc.want {
			t.Errorf("IsGitLabSite(%q, false) = %v, want %v", tc.host, got, tc.want)
		}
	}
}

func TestGitHub_Transforms(t *testing.T) {
	gh := GitHub{}

	checkURL(t, gh.BugDatabaseURLFromRepoURL(mustParse(t, "https://github.com/foo/bar.git")),
		"https://github.com/foo/bar/issues")
	checkURL(t, gh.BugSubmitURLFromBugDatabaseURL(mustParse(t, "https://github.com/foo/bar/issues")),
		"https://github.com/foo/bar/issues/new")
	checkURL(t, gh.BugDatabaseURLFromBugSubmitURL(mustParse(t, "https://github.com/foo/bar/issues/new")),
		"https://github.com/foo/bar/issues")
	checkURL(t, gh.RepoURLFromBrowseURL(mustParse(t, "https://github.com/foo/bar.git")),
		"https://github.com/foo/bar")
	checkURL(t, gh.BrowseURLFromRepoURL(mustParse(t, "https://github.com/foo/bar.git"), ""),
		"https://github.com/foo/bar")
	checkURL(t, gh.BrowseURLFromRepoURL(mustParse(t, "https://github.com/foo/bar"), "SECURITY.md"),
		"https://github.com/foo/bar/blob/HEAD/SECURITY.md")

	// Shapes that do not match must yield nil
	checkURL(t, gh.BugSubmitURLFromBugDatabaseURL(mustParse(t, "https://github.com/foo/bar")), "")
	checkURL(t, gh.BugDatabaseURLFromRepoURL(mustParse(t, "https://github.com/foo")), "")
}

func TestGitLab_Transforms(t *testing.T) {
	gl := GitLab{}

	checkURL(t, gl.BugDatabaseURLFromRepoURL(mustParse(t, "https://gitlab.com/foo/bar.git")),
		"https://gitlab.com/foo/bar/issues")
	checkURL(t, gl.BugSubmitURLFromBugDatabaseURL(mustParse(t, "https://gitlab.com/foo/bar/issues")),
		"https://gitlab.com/foo/bar/issues/new")
	checkURL(t, gl.BugDatabaseURLFromBugSubmitURL(mustParse(t, "https://gitlab.com/foo/bar/issues/new")),
		"https://gitlab.com/foo/bar/issues")
	checkURL(t, gl.RepoURLFromBrowseURL(mustParse(t, "https://gitlab.com/foo/bar/-/tree/main")),
		"https://gitlab.com/foo/bar")
	checkURL(t, gl.BrowseURLFromRepoURL(mustParse(t, "https://gitlab.com/foo/bar.git"), "SECURITY.md"),
		"https://gitlab.com/foo/bar/-/blob/HEAD/SECURITY.md")

	// Subgroups keep their full path
	checkURL(t, gl.BugDatabaseURLFromRepoURL(mustParse(t, "https://salsa.debian.org/team/sub/pkg.git")),
		"https://salsa.debian.org/team/sub/pkg/issues")
}

func TestSourceForge_Transforms(t *testing.T) {
	sf := SourceForge{}

	checkURL(t, sf.BugDatabaseURLFromRepoURL(mustParse(t, "https://sourceforge.net/p/proj/git")),
		"https://sourceforge.net/p/proj/bugs")
	checkURL(t, sf.BugSubmitURLFromBugDatabaseURL(mustParse(t, "https://sourceforge.net/p/proj/bugs")),
		"https://sourceforge.net/p/proj/bugs/new")
	checkURL(t, sf.BugDatabaseURLFromBugSubmitURL(mustParse(t, "https://sourceforge.net/p/proj/bugs/new")),
		"https://sourceforge.net/p/proj/bugs")
	checkURL(t, sf.RepoURLFromBrowseURL(mustParse(t, "https://sourceforge.net/p/proj/git/ci/master/tree")),
		"https://sourceforge.net/p/proj/git")

	// A bare project landing page is not a repository
	checkURL(t, sf.RepoURLFromBrowseURL(mustParse(t, "https://sourceforge.net/projects/proj")), "")
}

func TestLaunchpad_Transforms(t *testing.T) {
	lp := Launchpad{}

	checkURL(t, lp.BugDatabaseURLFromRepoURL(mustParse(t, "https://code.launchpad.net/proj")),
		"https://bugs.launchpad.net/proj")
	checkURL(t, lp.BugSubmitURLFromBugDatabaseURL(mustParse(t, "https://bugs.launchpad.net/proj")),
		"https://bugs.launchpad.net/proj/+filebug")
	checkURL(t, lp.BugDatabaseURLFromBugSubmitURL(mustParse(t, "https://bugs.launchpad.net/proj/+filebug")),
		"https://bugs.launchpad.net/proj")
	checkURL(t, lp.RepoURLFromBrowseURL(mustParse(t, "https://launchpad.net/proj")),
		"https://code.launchpad.net/proj")
}
