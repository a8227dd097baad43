// Package stamp produces the human readable modification stamps stored next to blog,
// feature and contact documents and sent with payment sessions.
package stamp

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	timeLayout = "3:04 pm"
	dateLayout = "Jan 2, 2006"
)

type Stamp struct {
	Time string
	Date string
}

type Stamper struct {
	loc *time.Location
	now func() time.Time
}

type Option func(*Stamper)

// WithClock replaces time.Now as the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(s *Stamper) {
		s.now = now
	}
}

func New(tz string, opts ...Option) (*Stamper, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	s := &Stamper{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Stamper) Now() Stamp {
	return s.Format(s.now())
}

func (s *Stamper) Format(t time.Time) Stamp {
	local := t.In(s.loc)
	return Stamp{
		Time: local.Format(timeLayout),
		Date: local.Format(dateLayout),
	}
}
