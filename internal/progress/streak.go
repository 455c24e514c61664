package progress

import (
	"time"

	"github.com/myrjola/repcoach/internal/workout"
)

func dateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func trainingDates(history []workout.Log, loc *time.Location) map[time.Time]bool {
	dates := make(map[time.Time]bool, len(history))
	for _, l := range history {
		dates[dateOf(l.Date, loc)] = true
	}
	return dates
}

// CurrentStreak counts consecutive calendar days with a workout, in now's location. The streak may end today
// or yesterday; a day without training before that breaks it.
func CurrentStreak(history []workout.Log, now time.Time) int {
	dates := trainingDates(history, now.Location())
	day := dateOf(now, now.Location())
	if !dates[day] {
		day = day.AddDate(0, 0, -1)
	}
	var streak int
	for dates[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// MissedSessions counts the scheduled training days among the days calendar days before today that have no
// logged workout.
func MissedSessions(schedule workout.WeeklySchedule, history []workout.Log, days int, now time.Time) int {
	dates := trainingDates(history, now.Location())
	today := dateOf(now, now.Location())
	var missed int
	for i := 1; i <= days; i++ {
		day := today.AddDate(0, 0, -i)
		planned := schedule[workout.DayOf(day)]
		if planned.IsRestDay || len(planned.Sessions) == 0 {
			continue
		}
		if !dates[day] {
			missed++
		}
	}
	return missed
}
