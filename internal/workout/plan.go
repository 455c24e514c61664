package workout

import (
	"slices"
	"strings"
	"time"
)

// PlanDay summarises one day of the week for an overview.
type PlanDay struct {
	Day          Day      `json:"day"`
	Short        string   `json:"short"`
	Label        string   `json:"label"`
	Muscles      []string `json:"muscles"`
	IsToday      bool     `json:"isToday"`
	IsRest       bool     `json:"isRest"`
	SessionCount int      `json:"sessionCount"`
}

// WeeklyPlan lists Monday to Sunday with the session labels of each day joined by " + ".
func WeeklyPlan(s WeeklySchedule, now time.Time) []PlanDay {
	today := DayOf(now)
	plan := make([]PlanDay, 0, len(Week()))
	for _, d := range Week() {
		ds := s[d]
		isRest := ds.IsRestDay || len(ds.Sessions) == 0
		pd := PlanDay{
			Day:          d,
			Short:        d.Short(),
			Label:        "Rest",
			Muscles:      []string{},
			IsToday:      d == today,
			IsRest:       isRest,
			SessionCount: 0,
		}
		if !isRest {
			labels := make([]string, 0, len(ds.Sessions))
			for _, session := range ds.Sessions {
				label := session.Label
				if label == "" {
					label = SessionLabel(session.MuscleGroups)
				}
				labels = append(labels, label)
				for _, m := range session.MuscleGroups {
					if !slices.Contains(pd.Muscles, m) {
						pd.Muscles = append(pd.Muscles, m)
					}
				}
			}
			pd.Label = strings.Join(labels, " + ")
			pd.SessionCount = len(ds.Sessions)
		}
		plan = append(plan, pd)
	}
	return plan
}
