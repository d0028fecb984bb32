package storefront

import (
	"fmt"
	"strings"
	"time"
)

// Config configures the storefront module.
type Config struct {
	Timezone    string        `env:"STORE_TIMEZONE" envDefault:"America/Bogota"`
	WeekStart   string        `env:"CALENDAR_WEEK_START" envDefault:"monday"`
	MailTimeout time.Duration `env:"STORE_MAIL_TIMEOUT" envDefault:"15s"`
}

func (c Config) location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "domingo": time.Sunday,
	"monday": time.Monday, "lunes": time.Monday,
	"saturday": time.Saturday, "sabado": time.Saturday, "sábado": time.Saturday,
}

func (c Config) weekStart() (time.Weekday, error) {
	if c.WeekStart == "" {
		return time.Monday, nil
	}
	d, ok := weekdays[strings.ToLower(strings.TrimSpace(c.WeekStart))]
	if !ok {
		return 0, fmt.Errorf("%w: week start %q", ErrInvalidConfig, c.WeekStart)
	}
	return d, nil
}
