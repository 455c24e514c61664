// Package coaching holds the user's coaching identity and the time-of-day greetings that open a session.
package coaching

// Archetype is the behavioural pattern a user shows over time.
type Archetype string

const (
	ArchetypeUnknown     Archetype = "unknown"
	ArchetypeDisciplined Archetype = "disciplined"
	ArchetypeStruggler   Archetype = "struggler"
	ArchetypeAnalytical  Archetype = "analytical"
	ArchetypeCompetitive Archetype = "competitive"
)

// CoachStyle is the tone the coach takes.
type CoachStyle string

const (
	StyleSupportive  CoachStyle = "supportive"
	StylePerformance CoachStyle = "performance"
	StyleDetailed    CoachStyle = "detailed"
	StyleChallenge   CoachStyle = "challenge"
)

// MotivationTrigger is what keeps the user coming back.
type MotivationTrigger string

const (
	TriggerConsistency MotivationTrigger = "consistency"
	TriggerAchievement MotivationTrigger = "achievement"
	TriggerData        MotivationTrigger = "data"
	TriggerCompetition MotivationTrigger = "competition"
)

// ResponsePreference is how long coaching messages should be.
type ResponsePreference string

const (
	ResponseShort    ResponsePreference = "short"
	ResponseMedium   ResponsePreference = "medium"
	ResponseDetailed ResponsePreference = "detailed"
)

// Identity is the closed set of coaching traits stored with a profile.
type Identity struct {
	Archetype          Archetype          `json:"archetype"`
	CoachStyle         CoachStyle         `json:"coachStyle"`
	MotivationTrigger  MotivationTrigger  `json:"motivationTrigger"`
	ResponsePreference ResponsePreference `json:"responsePreference"`
}

// DefaultIdentity is assigned to new users until enough behaviour has been observed.
func DefaultIdentity() Identity {
	return Identity{
		Archetype:          ArchetypeUnknown,
		CoachStyle:         StyleSupportive,
		MotivationTrigger:  TriggerConsistency,
		ResponsePreference: ResponseMedium,
	}
}

// Normalize replaces every unrecognised trait with its default so values read from storage or clients stay
// inside the closed sets.
func (id Identity) Normalize() Identity {
	def := DefaultIdentity()
	switch id.Archetype {
	case ArchetypeUnknown, ArchetypeDisciplined, ArchetypeStruggler, ArchetypeAnalytical, ArchetypeCompetitive:
	default:
		id.Archetype = def.Archetype
	}
	switch id.CoachStyle {
	case StyleSupportive, StylePerformance, StyleDetailed, StyleChallenge:
	default:
		id.CoachStyle = def.CoachStyle
	}
	switch id.MotivationTrigger {
	case TriggerConsistency, TriggerAchievement, TriggerData, TriggerCompetition:
	default:
		id.MotivationTrigger = def.MotivationTrigger
	}
	switch id.ResponsePreference {
	case ResponseShort, ResponseMedium, ResponseDetailed:
	default:
		id.ResponsePreference = def.ResponsePreference
	}
	return id
}

// Signals are the behavioural measurements identity detection looks at.
type Signals struct {
	// ConsistencyScore is the 0-100 adherence score.
	ConsistencyScore int
	// Streak is the number of consecutive training days.
	Streak int
	// RecentSkips counts planned sessions missed recently.
	RecentSkips int
	// ExplanationRequests counts how often the user asked why something was prescribed.
	ExplanationRequests int
	// Current is the identity detected so far.
	Current Identity
}

// Detection thresholds.
const (
	analyticalRequests     = 3
	disciplinedConsistency = 85
	disciplinedStreak      = 14
	competitiveStreak      = 7
	competitiveConsistency = 70
	strugglerConsistency   = 40
	strugglerSkips         = 3
)

// DetectIdentity classifies the user from s. The first matching rule wins; when none match the current
// identity is kept.
func DetectIdentity(s Signals) Identity {
	switch {
	case s.ExplanationRequests >= analyticalRequests:
		return Identity{
			Archetype:          ArchetypeAnalytical,
			CoachStyle:         StyleDetailed,
			MotivationTrigger:  TriggerData,
			ResponsePreference: ResponseDetailed,
		}
	case s.ConsistencyScore > disciplinedConsistency && s.Streak >= disciplinedStreak:
		return Identity{
			Archetype:          ArchetypeDisciplined,
			CoachStyle:         StylePerformance,
			MotivationTrigger:  TriggerAchievement,
			ResponsePreference: ResponseShort,
		}
	case s.Streak >= competitiveStreak && s.ConsistencyScore > competitiveConsistency:
		return Identity{
			Archetype:          ArchetypeCompetitive,
			CoachStyle:         StyleChallenge,
			MotivationTrigger:  TriggerCompetition,
			ResponsePreference: ResponseMedium,
		}
	case s.ConsistencyScore < strugglerConsistency || s.RecentSkips > strugglerSkips:
		return Identity{
			Archetype:          ArchetypeStruggler,
			CoachStyle:         StyleSupportive,
			MotivationTrigger:  TriggerConsistency,
			ResponsePreference: ResponseMedium,
		}
	default:
		return s.Current.Normalize()
	}
}
