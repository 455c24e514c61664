package coaching

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// TimeOfDay buckets the hour a greeting is made in.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// TimeOfDayAt returns the bucket of t's local hour: 5-11 morning, 12-16 afternoon, 17-20 evening, else night.
func TimeOfDayAt(t time.Time) TimeOfDay {
	switch h := t.Hour(); {
	case h >= 5 && h < 12: //nolint:mnd // hours
		return Morning
	case h >= 12 && h < 17: //nolint:mnd // hours
		return Afternoon
	case h >= 17 && h < 21: //nolint:mnd // hours
		return Evening
	default:
		return Night
	}
}

// greetings are format strings taking the user's name.
//
//nolint:gochecknoglobals // fixed table.
var greetings = map[TimeOfDay][]string{
	Morning: {
		"Good morning, %s! 🌅 Fresh day, fresh energy.",
		"Rise and grind, %s! ☀️ Morning workouts hit different.",
		"Hey %s! Early bird energy today, love to see it.",
		"Morning, %s! Your body is primed for performance right now.",
	},
	Afternoon: {
		"Good afternoon, %s! 💪 Time to power through.",
		"Hey %s, afternoon session? Smart choice, your strength peaks around now.",
		"What's good, %s! Let's make this afternoon count.",
	},
	Evening: {
		"Good evening, %s! 🌆 Let's close the day strong.",
		"Evening, %s. Perfect time to de-stress and train.",
		"Hey %s! Evening session, your muscles are warm and ready.",
	},
	Night: {
		"Late night session, %s? 🌙 Respect the dedication.",
		"Hey %s, burning the midnight oil? Let's keep it focused and efficient.",
		"Night mode, %s. Quick recovery-focused work tonight.",
	},
}

// Greeting picks one of the greetings for the time of day of now. rng makes the choice reproducible.
func Greeting(name string, now time.Time, rng *rand.Rand) (string, TimeOfDay) {
	tod := TimeOfDayAt(now)
	options := greetings[tod]
	return fmt.Sprintf(options[rng.IntN(len(options))], name), tod
}
