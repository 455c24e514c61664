package workout

import (
	"fmt"
	"math"
	"time"
)

// Consistency weighting.
const (
	neutralMood      = 3.0
	maxMood          = 5
	minMood          = 1
	attendanceWeight = 0.7
	engagementWeight = 0.3
	weeksPerMonth    = 4
)

// ConsistencyScore blends attendance over the last 30 days with the average post-workout mood, weighting
// attendance 70/30. It is 0 when no training days are planned.
func ConsistencyScore(history []Log, daysPerWeek int, now time.Time) int {
	planned := daysPerWeek * weeksPerMonth
	if planned <= 0 {
		return 0
	}
	from := now.Add(-consistencyWindow)
	var count int
	for _, l := range history {
		if l.Date.After(from) && !l.Date.After(now) {
			count++
		}
	}
	adherence := math.Min(100, float64(count)/float64(planned)*100) //nolint:mnd // percent
	engagement := AverageMood(history, now) / maxMood * 100         //nolint:mnd // percent
	score := roundInt(adherence*attendanceWeight + engagement*engagementWeight)
	return max(0, min(100, score)) //nolint:mnd // percent
}

// AverageMood is the mean post-workout mood over the last 30 days rounded to one decimal, or a neutral 3
// without recent workouts. Moods outside 1-5 are clamped.
func AverageMood(history []Log, now time.Time) float64 {
	from := now.Add(-consistencyWindow)
	var total, n int
	for _, l := range history {
		if !inWindow(l, from, now) {
			continue
		}
		total += max(minMood, min(maxMood, l.MoodAfter))
		n++
	}
	if n == 0 {
		return neutralMood
	}
	return math.Round(float64(total)/float64(n)*10) / 10 //nolint:mnd // one decimal
}

// WeekAdherence is the attendance of one week.
type WeekAdherence struct {
	Week       string `json:"week"`
	Planned    int    `json:"planned"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
}

// WeeklyAdherence reports attendance for each of the last weeks seven day periods ending at now, oldest first.
// Each period is half-open so a workout on a boundary counts once, in the later week.
func WeeklyAdherence(history []Log, daysPerWeek, weeks int, now time.Time) []WeekAdherence {
	series := make([]WeekAdherence, 0, max(0, weeks))
	for i := weeks - 1; i >= 0; i-- {
		start := now.Add(-time.Duration(i+1) * oneWeek)
		end := now.Add(-time.Duration(i) * oneWeek)
		var completed int
		for _, l := range history {
			if !l.Date.Before(start) && l.Date.Before(end) {
				completed++
			}
		}
		var pct int
		if daysPerWeek > 0 {
			pct = roundInt(float64(completed) / float64(daysPerWeek) * 100) //nolint:mnd // percent
		}
		series = append(series, WeekAdherence{
			Week:       fmt.Sprintf("Week %d", weeks-i),
			Planned:    max(0, daysPerWeek),
			Completed:  completed,
			Percentage: pct,
		})
	}
	return series
}
