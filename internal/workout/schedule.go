package workout

import (
	"slices"
	"strings"
)

// maxSessionsPerDay caps two-a-days at three sessions.
const maxSessionsPerDay = 3

// The edit functions below return a new DaySchedule and never modify their argument. Each result satisfies
// IsRestDay == (len(Sessions) == 0).

// EmptySchedule is a week of rest days.
func EmptySchedule() WeeklySchedule {
	s := make(WeeklySchedule, len(Week()))
	for _, d := range Week() {
		s[d] = DaySchedule{IsRestDay: true, Sessions: []Session{}}
	}
	return s
}

// CountTrainingDays counts the days with at least one session.
func CountTrainingDays(s WeeklySchedule) int {
	var n int
	for _, d := range Week() {
		if ds, ok := s[d]; ok && !ds.IsRestDay && len(ds.Sessions) > 0 {
			n++
		}
	}
	return n
}

// SessionLabel names a session after its muscles, e.g. "Chest & Back".
func SessionLabel(muscles []string) string {
	if len(muscles) == 0 {
		return "Rest"
	}
	names := make([]string, 0, len(muscles))
	for _, m := range muscles {
		switch m {
		case "quadriceps":
			names = append(names, "Quads")
		case "full_body":
			names = append(names, "Full Body")
		default:
			names = append(names, capitalize(m))
		}
	}
	return strings.Join(names, " & ")
}

func cloneSessions(sessions []Session) []Session {
	out := make([]Session, len(sessions))
	for i, s := range sessions {
		s.MuscleGroups = slices.Clone(s.MuscleGroups)
		if s.MuscleGroups == nil {
			s.MuscleGroups = []string{}
		}
		out[i] = s
	}
	return out
}

func withSessions(sessions []Session) DaySchedule {
	if len(sessions) == 0 {
		return DaySchedule{IsRestDay: true, Sessions: []Session{}}
	}
	return DaySchedule{IsRestDay: false, Sessions: sessions}
}

func emptySession(slot TimeSlot) Session {
	return Session{TimeSlot: slot, MuscleGroups: []string{}, Label: ""}
}

// ToggleRestDay turns a training day into a rest day, or a rest day into a day with one empty morning session.
func ToggleRestDay(ds DaySchedule) DaySchedule {
	if ds.IsRestDay || len(ds.Sessions) == 0 {
		return withSessions([]Session{emptySession(SlotMorning)})
	}
	return withSessions(nil)
}

// AddSession appends an empty session in the next free time slot. Days that already have three sessions are
// returned unchanged.
func AddSession(ds DaySchedule) DaySchedule {
	sessions := cloneSessions(ds.Sessions)
	if len(sessions) >= maxSessionsPerDay {
		return withSessions(sessions)
	}
	slot := SlotMorning
	switch len(sessions) {
	case 1:
		slot = SlotAfternoon
	case 2: //nolint:mnd // third session
		slot = SlotEvening
	}
	return withSessions(append(sessions, emptySession(slot)))
}

// RemoveSession drops the session at index. Removing the last session makes the day a rest day.
func RemoveSession(ds DaySchedule, index int) DaySchedule {
	sessions := cloneSessions(ds.Sessions)
	if index < 0 || index >= len(sessions) {
		return withSessions(sessions)
	}
	return withSessions(slices.Delete(sessions, index, index+1))
}

// ToggleMuscle adds muscle to the session at index, or removes it when already present, and relabels the
// session. A day without sessions gets a morning session first. When the only session loses its last muscle
// the day becomes a rest day.
func ToggleMuscle(ds DaySchedule, index int, muscle string) DaySchedule {
	sessions := cloneSessions(ds.Sessions)
	if len(sessions) == 0 {
		sessions = []Session{emptySession(SlotMorning)}
		index = 0
	}
	if index < 0 || index >= len(sessions) {
		return withSessions(sessions)
	}

	s := sessions[index]
	if i := slices.Index(s.MuscleGroups, muscle); i >= 0 {
		s.MuscleGroups = slices.Delete(s.MuscleGroups, i, i+1)
	} else {
		s.MuscleGroups = append(s.MuscleGroups, muscle)
	}
	s.Label = SessionLabel(s.MuscleGroups)
	if len(s.MuscleGroups) == 0 {
		s.Label = ""
		if len(sessions) == 1 {
			return withSessions(nil)
		}
	}
	sessions[index] = s
	return withSessions(sessions)
}

// SetTimeSlot moves the session at index to slot.
func SetTimeSlot(ds DaySchedule, index int, slot TimeSlot) DaySchedule {
	sessions := cloneSessions(ds.Sessions)
	if index >= 0 && index < len(sessions) {
		sessions[index].TimeSlot = slot
	}
	return withSessions(sessions)
}

// SetLabel renames the session at index. An empty label restores the label derived from its muscles.
func SetLabel(ds DaySchedule, index int, label string) DaySchedule {
	sessions := cloneSessions(ds.Sessions)
	if index >= 0 && index < len(sessions) {
		if label == "" {
			label = SessionLabel(sessions[index].MuscleGroups)
		}
		sessions[index].Label = label
	}
	return withSessions(sessions)
}

// Normalize repairs a day whose rest flag disagrees with its sessions. A rest flag drops the sessions, the
// same way generation ignores them.
func (ds DaySchedule) Normalize() DaySchedule {
	if ds.IsRestDay {
		return withSessions(nil)
	}
	return withSessions(cloneSessions(ds.Sessions))
}

// Normalize returns a copy with all seven days present and every day normalised.
func (s WeeklySchedule) Normalize() WeeklySchedule {
	out := EmptySchedule()
	for _, d := range Week() {
		if ds, ok := s[d]; ok {
			out[d] = ds.Normalize()
		}
	}
	return out
}
