package coaching_test

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/repcoach/internal/coaching"
)

func TestDetectIdentity(t *testing.T) {
	competitive := coaching.Identity{
		Archetype:          coaching.ArchetypeCompetitive,
		CoachStyle:         coaching.StyleChallenge,
		MotivationTrigger:  coaching.TriggerCompetition,
		ResponsePreference: coaching.ResponseMedium,
	}
	tests := []struct {
		name    string
		signals coaching.Signals
		want    coaching.Archetype
	}{
		{
			name:    "explanation requests win over everything",
			signals: coaching.Signals{ExplanationRequests: 3, ConsistencyScore: 95, Streak: 30},
			want:    coaching.ArchetypeAnalytical,
		},
		{
			name:    "long streak with high consistency",
			signals: coaching.Signals{ConsistencyScore: 86, Streak: 14},
			want:    coaching.ArchetypeDisciplined,
		},
		{
			name:    "consistency of exactly 85 is not disciplined",
			signals: coaching.Signals{ConsistencyScore: 85, Streak: 20},
			want:    coaching.ArchetypeCompetitive,
		},
		{
			name:    "week streak",
			signals: coaching.Signals{ConsistencyScore: 71, Streak: 7},
			want:    coaching.ArchetypeCompetitive,
		},
		{
			name:    "low consistency",
			signals: coaching.Signals{ConsistencyScore: 39},
			want:    coaching.ArchetypeStruggler,
		},
		{
			name:    "many skips",
			signals: coaching.Signals{ConsistencyScore: 60, RecentSkips: 4},
			want:    coaching.ArchetypeStruggler,
		},
		{
			name:    "keeps current identity",
			signals: coaching.Signals{ConsistencyScore: 60, Current: competitive},
			want:    coaching.ArchetypeCompetitive,
		},
		{
			name:    "unrecognised current identity falls back to default",
			signals: coaching.Signals{ConsistencyScore: 60, Current: coaching.Identity{Archetype: "guru"}},
			want:    coaching.ArchetypeUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coaching.DetectIdentity(tt.signals); got.Archetype != tt.want {
				t.Errorf("DetectIdentity() archetype = %s, want %s", got.Archetype, tt.want)
			}
		})
	}
}

func TestIdentity_Normalize(t *testing.T) {
	got := coaching.Identity{
		Archetype:          coaching.ArchetypeAnalytical,
		CoachStyle:         "shouty",
		MotivationTrigger:  "",
		ResponsePreference: coaching.ResponseShort,
	}.Normalize()
	want := coaching.Identity{
		Archetype:          coaching.ArchetypeAnalytical,
		CoachStyle:         coaching.StyleSupportive,
		MotivationTrigger:  coaching.TriggerConsistency,
		ResponsePreference: coaching.ResponseShort,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestTimeOfDayAt(t *testing.T) {
	tests := []struct {
		hour int
		want coaching.TimeOfDay
	}{
		{4, coaching.Night},
		{5, coaching.Morning},
		{11, coaching.Morning},
		{12, coaching.Afternoon},
		{16, coaching.Afternoon},
		{17, coaching.Evening},
		{20, coaching.Evening},
		{21, coaching.Night},
		{0, coaching.Night},
	}
	for _, tt := range tests {
		at := time.Date(2025, 3, 10, tt.hour, 30, 0, 0, time.UTC)
		if got := coaching.TimeOfDayAt(at); got != tt.want {
			t.Errorf("TimeOfDayAt(%02d:30) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestGreeting(t *testing.T) {
	morning := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)

	first, tod := coaching.Greeting("Ada", morning, rand.New(rand.NewPCG(1, 2)))
	if tod != coaching.Morning {
		t.Errorf("time of day = %s, want morning", tod)
	}
	if !strings.Contains(first, "Ada") {
		t.Errorf("greeting %q does not address the user", first)
	}
	again, _ := coaching.Greeting("Ada", morning, rand.New(rand.NewPCG(1, 2)))
	if again != first {
		t.Errorf("same seed gave %q and %q", first, again)
	}

	seen := map[string]bool{}
	rng := rand.New(rand.NewPCG(7, 7))
	for range 200 {
		g, _ := coaching.Greeting("Ada", morning, rng)
		seen[g] = true
	}
	if len(seen) != 4 {
		t.Errorf("saw %d distinct morning greetings, want 4", len(seen))
	}
}
