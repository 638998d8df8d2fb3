package cvf

import "strings"

// profileURLTemplates maps a lowercase network name to a profile URL
// template; {username} is replaced with the account name.
var profileURLTemplates = map[string]string{
	"github":         "https://github.com/{username}",
	"gitlab":         "https://gitlab.com/{username}",
	"bitbucket":      "https://bitbucket.org/{username}",
	"linkedin":       "https://www.linkedin.com/in/{username}",
	"twitter":        "https://twitter.com/{username}",
	"x":              "https://x.com/{username}",
	"youtube":        "https://www.youtube.com/@{username}",
	"google scholar": "https://scholar.google.com/citations?user={username}",
	"orcid":          "https://orcid.org/{username}",
	"stack overflow": "https://stackoverflow.com/users/{username}",
	"stackoverflow":  "https://stackoverflow.com/users/{username}",
	"medium":         "https://medium.com/@{username}",
	"dev.to":         "https://dev.to/{username}",
	"dribbble":       "https://dribbble.com/{username}",
	"behance":        "https://www.behance.net/{username}",
	"instagram":      "https://www.instagram.com/{username}",
	"facebook":       "https://www.facebook.com/{username}",
	"twitch":         "https://www.twitch.tv/{username}",
	"bluesky":        "https://bsky.app/profile/{username}",
	"kaggle":         "https://www.kaggle.com/{username}",
}

// ResolveProfileURL returns the canonical URL for a profile. An
// explicit URL always wins; otherwise the URL is derived from the
// network name (case-insensitive, surrounding whitespace ignored) and
// username. The second return is false when no URL can be produced;
// an unrecognized network is not an error.
func ResolveProfileURL(network, username, explicitURL string) (string, bool) {
	if explicitURL != "" {
		return explicitURL, true
	}
	if username == "" {
		return "", false
	}
	key := strings.ToLower(strings.TrimSpace(network))
	tmpl, ok := profileURLTemplates[key]
	if !ok {
		return "", false
	}
	return strings.ReplaceAll(tmpl, "{username}", username), true
}
