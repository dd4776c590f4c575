package matching

import (
	"strings"

	"github.com/skillup-ia/skillup-api/internal/domain"
)

// Skill matches weigh heavier than the area and city bonuses: two desired
// skills in common always outrank a profile that only shares the area.
const (
	skillWeight = 2.0
	areaBonus   = 1.5
	cityBonus   = 0.5
)

// Score computes the match score of a profile against the desired skills and
// optional area/city constraints. It returns the score and the desired skills
// the profile possesses, in query order and with the query's casing. Empty
// area/city mean "no constraint". The profile is never mutated.
func Score(p *domain.Profile, wantSkills []string, wantArea, wantCity string) (float64, []string) {
	have := make(map[string]struct{}, len(p.TechSkills))
	for _, s := range p.TechSkills {
		have[strings.ToLower(s)] = struct{}{}
	}

	matched := make([]string, 0, len(wantSkills))
	for _, w := range wantSkills {
		if _, ok := have[strings.ToLower(w)]; ok {
			matched = append(matched, w)
		}
	}

	score := float64(len(matched)) * skillWeight

	// Exact (case-insensitive) equality, not substring matching. A profile
	// without an area or location never matches a non-empty constraint.
	if wantArea != "" && p.Area != "" && strings.EqualFold(p.Area, wantArea) {
		score += areaBonus
	}
	if wantCity != "" && p.Location != "" && strings.EqualFold(p.Location, wantCity) {
		score += cityBonus
	}

	return score, matched
}
