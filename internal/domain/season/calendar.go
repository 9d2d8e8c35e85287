package season

import (
	"fmt"
	"time"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
)

// WeekLength is fixed: every scheduling window spans exactly seven days.
const WeekLength = 7 * 24 * time.Hour

// WeekWindow is one 7-day UTC bucket of a season. Start is inclusive, End
// exclusive.
type WeekWindow struct {
	Week  int
	Start time.Time
	End   time.Time
}

func (w WeekWindow) Contains(at time.Time) bool {
	return !at.Before(w.Start) && at.Before(w.End)
}

// Calendar maps instants to week numbers for one sport's season. Windows are
// generated once and never mutated, so a Calendar is safe to share between
// goroutines.
type Calendar struct {
	sport   game.Sport
	windows []WeekWindow
}

// NewCalendar builds the weekly windows for a season opening at openUTC.
// Week i (1-indexed) spans [openUTC+(i-1)*7d, openUTC+i*7d).
func NewCalendar(sport game.Sport, openUTC time.Time, weeks int) (Calendar, error) {
	if _, err := game.ParseSport(string(sport)); err != nil {
		return Calendar{}, err
	}
	if openUTC.IsZero() {
		return Calendar{}, fmt.Errorf("season open instant is required")
	}
	if weeks < 1 {
		return Calendar{}, fmt.Errorf("season week count must be >= 1, got %d", weeks)
	}

	open := openUTC.UTC()
	windows := make([]WeekWindow, 0, weeks)
	for i := 0; i < weeks; i++ {
		windows = append(windows, WeekWindow{
			Week:  i + 1,
			Start: open.Add(time.Duration(i) * WeekLength),
			End:   open.Add(time.Duration(i+1) * WeekLength),
		})
	}

	return Calendar{sport: sport, windows: windows}, nil
}

func (c Calendar) Sport() game.Sport {
	return c.sport
}

func (c Calendar) Weeks() int {
	return len(c.windows)
}

// Windows returns a copy of the season's windows in week order.
func (c Calendar) Windows() []WeekWindow {
	return append([]WeekWindow(nil), c.windows...)
}

// Window returns the window for a week number, if it exists.
func (c Calendar) Window(week int) (WeekWindow, bool) {
	if week < 1 || week > len(c.windows) {
		return WeekWindow{}, false
	}
	return c.windows[week-1], true
}

// WeekAt returns the week whose window contains the instant. It is total:
// instants before the season clamp to week 1 and instants at or after the
// last window's end clamp to the final week, so callers always get a usable
// week number even for out-of-season timestamps.
func (c Calendar) WeekAt(at time.Time) int {
	if len(c.windows) == 0 {
		return 1
	}

	at = at.UTC()
	if at.Before(c.windows[0].Start) {
		return 1
	}
	last := c.windows[len(c.windows)-1]
	if !at.Before(last.End) {
		return last.Week
	}

	elapsed := at.Sub(c.windows[0].Start)
	return int(elapsed/WeekLength) + 1
}

// Set holds the calendars for all configured sports.
type Set struct {
	bySport map[game.Sport]Calendar
}

func NewSet(calendars ...Calendar) Set {
	bySport := make(map[game.Sport]Calendar, len(calendars))
	for _, c := range calendars {
		bySport[c.sport] = c
	}
	return Set{bySport: bySport}
}

func (s Set) For(sport game.Sport) (Calendar, bool) {
	c, ok := s.bySport[sport]
	return c, ok
}
