package matching

import "strings"

// Extract scans free text for known technical skills, soft-skill cues and
// area keywords. Matching is plain substring containment over the lower-cased
// text, not word-boundary tokenization, so "Java" also fires inside
// "JavaScript"; callers depend on that behavior.
func Extract(text string) (techSkills, softSkills []string, area string) {
	t := strings.ToLower(text)

	techSkills = []string{}
	for _, skill := range KnownSkills {
		if strings.Contains(t, strings.ToLower(skill)) {
			techSkills = append(techSkills, skill)
		}
	}

	// First area with the strictly highest cue count wins; zero hits
	// everywhere leaves area empty.
	maxHits := 0
	for _, rule := range AreaRules {
		hits := 0
		for _, cue := range rule.Cues {
			if strings.Contains(t, cue) {
				hits++
			}
		}
		if hits > maxHits {
			maxHits = hits
			area = rule.Area
		}
	}

	softSkills = []string{}
	for _, cue := range SoftSkillCues {
		if strings.Contains(t, cue.Cue) {
			softSkills = append(softSkills, cue.Label)
		}
	}

	return techSkills, softSkills, area
}
