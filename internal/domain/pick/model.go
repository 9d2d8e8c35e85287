package pick

import (
	"fmt"
	"strings"
	"time"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
)

// Market is the odds market a pick is made against.
type Market string

const (
	MarketSpreads Market = "spreads"
	MarketTotals  Market = "totals"
	MarketH2H     Market = "h2h"
)

func ParseMarket(value string) (Market, error) {
	switch Market(strings.ToLower(strings.TrimSpace(value))) {
	case MarketSpreads:
		return MarketSpreads, nil
	case MarketTotals:
		return MarketTotals, nil
	case MarketH2H:
		return MarketH2H, nil
	default:
		return "", fmt.Errorf("unknown market %q: valid values are %s, %s, %s", value, MarketSpreads, MarketTotals, MarketH2H)
	}
}

// Pick is one user's selection against a resolved schedule game. Writes are
// replace-on-conflict: at most one row exists per user and game, or per user,
// group and game when the pick is made inside a group.
type Pick struct {
	ID        string
	UserID    string
	GroupID   *string
	GameID    string
	Sport     game.Sport
	Week      int
	Market    Market
	Side      *string
	Line      *float64
	Price     *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Grouped reports whether the pick belongs to a group and therefore conflicts
// on (user, group, game) instead of (user, game).
func (p Pick) Grouped() bool {
	return p.GroupID != nil && strings.TrimSpace(*p.GroupID) != ""
}

func (p Pick) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("pick user id is required")
	}
	if p.GameID == "" {
		return fmt.Errorf("pick game id is required")
	}
	if _, err := game.ParseSport(string(p.Sport)); err != nil {
		return err
	}
	if p.Week < 1 {
		return fmt.Errorf("pick week must be >= 1")
	}
	if _, err := ParseMarket(string(p.Market)); err != nil {
		return err
	}

	return nil
}
