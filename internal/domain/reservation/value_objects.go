package reservation

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("start time must be HH:MM")

const timeOfDayLayout = "15:04"

// TimeOfDay is a wall-clock minute with no date. A reservation for 18:30
// matches every day at 18:30.
type TimeOfDay struct {
	hour   int
	minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}, nil
}

// TimeOfDayAt truncates t to minute resolution in t's own location.
func TimeOfDayAt(t time.Time) TimeOfDay {
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.hour == other.hour && t.minute == other.minute
}
