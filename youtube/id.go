package youtube

import (
	"net/url"
	"strings"
)

// ParseID returns the video identifier from a watch URL, a short link or a
// shorts URL. Anything else is returned trimmed, as an identifier.
func ParseID(input string) string {
	input = strings.TrimSpace(input)

	u, err := url.Parse(input)
	if err != nil || u.Host == "" {
		return input
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch {
	case host == "youtu.be":
		return strings.Trim(u.Path, "/")
	case strings.HasPrefix(u.Path, "/shorts/"):
		return strings.Trim(strings.TrimPrefix(u.Path, "/shorts/"), "/")
	case u.Query().Has("v"):
		return u.Query().Get("v")
	default:
		return input
	}
}
