package timezone

import (
	"sync"
	"sync/atomic"
	"time"

	"hotel/config"

	"github.com/jinzhu/now"
	"github.com/rs/zerolog/log"
)

const hoursPerDay = 24

var (
	property   atomic.Pointer[time.Location]
	fromConfig = sync.OnceValue(func() *time.Location {
		return load(config.Get().App.Timezone)
	})
)

// Use sets the property timezone by IANA name. Binaries call it once the
// config and logger are ready; until then the first lookup reads
// APP_TIMEZONE. An unknown name falls back to UTC.
func Use(name string) {
	property.Store(load(name))
}

func load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("APP_TIMEZONE is empty, stay dates use UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("unknown APP_TIMEZONE, stay dates use UTC")

		return time.UTC
	}

	log.Debug().Str("timezone", loc.String()).Msg("property timezone loaded")

	return loc
}

// GetLocation is the property's location.
func GetLocation() *time.Location {
	if loc := property.Load(); loc != nil {
		return loc
	}

	return fromConfig()
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads value as wall clock time at the property.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Today is midnight of the current calendar day at the property.
func Today() time.Time {
	return StartOfDay(time.Now())
}

func StartOfDay(t time.Time) time.Time {
	return now.With(ToAppTime(t)).BeginningOfDay()
}

// DaysBetween counts calendar days from start to end at the property. A stay
// spanning a DST change still counts whole nights.
func DaysBetween(start, end time.Time) int {
	return int(civil(end).Sub(civil(start)).Hours() / hoursPerDay)
}

// civil drops the zone so day arithmetic is not skewed by offset changes.
func civil(t time.Time) time.Time {
	day := StartOfDay(t)

	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
