package logos

import (
	"strings"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
)

// CDN serves team logos from a static asset host, keyed by the normalized
// team name. It satisfies the board's logo capability.
type CDN struct {
	baseURL string
}

// NewCDN returns nil when no base URL is configured, which disables logos
// entirely on the consuming side.
func NewCDN(baseURL string) *CDN {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil
	}
	return &CDN{baseURL: baseURL}
}

func (c *CDN) LogoURL(sport game.Sport, teamName string) (string, bool) {
	slug := Slug(sport, teamName)
	if slug == "" {
		return "", false
	}
	return c.baseURL + "/" + string(sport) + "/" + slug + ".png", true
}

// Slug turns a team name into its asset path segment.
func Slug(sport game.Sport, teamName string) string {
	normalized := game.NormalizeTeamName(sport, teamName)
	if normalized == "" {
		return ""
	}
	return strings.ReplaceAll(normalized, " ", "-")
}
