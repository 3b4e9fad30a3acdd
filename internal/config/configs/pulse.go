package configs

import (
	"strings"
	"time"
)

// Pulse configures the weekly highlight cycle. Weekday names the cycle
// boundary; an unknown value falls back to Sunday.
type Pulse struct {
	Weekday string `env:"WEEKDAY" envDefault:"Sunday"`
}

// Target resolves the configured weekday.
func (c Pulse) Target() time.Weekday {
	switch strings.ToLower(c.Weekday) {
	case "monday":
		return time.Monday
	case "tuesday":
		return time.Tuesday
	case "wednesday":
		return time.Wednesday
	case "thursday":
		return time.Thursday
	case "friday":
		return time.Friday
	case "saturday":
		return time.Saturday
	default:
		return time.Sunday
	}
}
