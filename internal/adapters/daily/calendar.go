// Package daily derives the per-day keys boards are seeded from.
package daily

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/randomtoy/setdaily/internal/domain"
)

// DayLayout is the format of day keys.
const DayLayout = "2006-01-02"

// DefaultTimezone is where the daily board rolls over.
const DefaultTimezone = "Australia/Sydney"

// Calendar derives day keys in a fixed timezone so every player sees the same
// board on the same calendar day.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar loads the IANA timezone tz. A nil now uses time.Now.
func NewCalendar(tz string, now func() time.Time) (*Calendar, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	if now == nil {
		now = time.Now
	}
	return &Calendar{loc: loc, now: now}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

func (c *Calendar) Today() string {
	return c.now().In(c.loc).Format(DayLayout)
}

func (c *Calendar) Normalize(day string) (string, error) {
	t, err := time.ParseInLocation(DayLayout, day, c.loc)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidDay, day)
	}
	return t.Format(DayLayout), nil
}
