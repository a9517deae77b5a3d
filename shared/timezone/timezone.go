package timezone

import (
	"errors"
	"hotel/config"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location

	// DateLayouts lists the calendar date formats accepted from the console.
	DateLayouts = []string{"2006-01-02", "1/2/2006", "1-2-2006", "1,2,2006"}

	ErrInvalidDate = errors.New("invalid date, use YYYY-MM-DD or M/D/YYYY")
)

// Init loads the configured application timezone, falling back to UTC.
func Init(cfg *config.Config) {
	name := cfg.App.Timezone
	if name == "" {
		log.Debug().Msg("No timezone configured, using UTC as default")

		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Debug().
		Str("timezone", name).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// ParseDate accepts any of DateLayouts.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range DateLayouts {
		if t, err := Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}
