package cvf

import "testing"

func TestResolveProfileURLDerived(t *testing.T) {
	cases := []struct {
		network  string
		username string
		want     string
	}{
		{"github", "octocat", "https://github.com/octocat"},
		{"GitHub", "octocat", "https://github.com/octocat"},
		{" LinkedIn ", "jane", "https://www.linkedin.com/in/jane"},
		{"youtube", "jane", "https://www.youtube.com/@jane"},
		{"Google Scholar", "abc123", "https://scholar.google.com/citations?user=abc123"},
		{"stackoverflow", "123/jane", "https://stackoverflow.com/users/123/jane"},
		{"bluesky", "jane.dev", "https://bsky.app/profile/jane.dev"},
	}
	for _, tc := range cases {
		got, ok := ResolveProfileURL(tc.network, tc.username, "")
		if !ok {
			t.Fatalf("expected %q/%q to resolve", tc.network, tc.username)
		}
		if got != tc.want {
			t.Fatalf("ResolveProfileURL(%q, %q) = %q, want %q", tc.network, tc.username, got, tc.want)
		}
	}
}

func TestResolveProfileURLExplicitWins(t *testing.T) {
	got, ok := ResolveProfileURL("github", "octocat", "https://example.com/me")
	if !ok || got != "https://example.com/me" {
		t.Fatalf("expected explicit URL to win, got %q (%v)", got, ok)
	}
}

func TestResolveProfileURLUnknownNetwork(t *testing.T) {
	if url, ok := ResolveProfileURL("myspace", "jane", ""); ok {
		t.Fatalf("expected no URL for unknown network, got %q", url)
	}
	if url, ok := ResolveProfileURL("github", "", ""); ok {
		t.Fatalf("expected no URL without a username, got %q", url)
	}
}
