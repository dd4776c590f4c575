// Package matching implements the deterministic profile scoring and
// free-text tag extraction rules used by the AI endpoints.
package matching

// KnownSkills is the canonical technical-skill vocabulary. Extraction
// preserves this order and returns the canonical casing.
var KnownSkills = []string{
	"React", "Next.js", "TailwindCSS", "JavaScript", "TypeScript", "Node.js", "Express",
	"Python", "FastAPI", "Django", "SQL", "PostgreSQL", "MySQL", "MongoDB",
	"Power BI", "Figma", "Design System", "Acessibilidade", "AWS", "Docker", "CI/CD",
}

// AreaRule maps an area label to the lowercase substring cues that vote for it.
type AreaRule struct {
	Area string
	Cues []string
}

// AreaRules is ordered: classification keeps the first area with the highest
// cue count, so a later area must exceed (not just equal) the running maximum.
var AreaRules = []AreaRule{
	{Area: "Desenvolvimento", Cues: []string{"front", "back", "full", "api", "node", "react", "typescript", "javascript", "python", "java", ".net"}},
	{Area: "Dados", Cues: []string{"bi", "dashboard", "power bi", "sql", "etl", "pipelines", "modelagem", "análise", "big data"}},
	{Area: "Design", Cues: []string{"ux", "ui", "figma", "wireframe", "prototip", "acessibilidad", "design system"}},
	{Area: "Infraestrutura", Cues: []string{"devops", "aws", "docker", "k8s", "jenkins", "infra", "iac"}},
	{Area: "Sistemas", Cues: []string{"erp", "protheus", "totvs", "gestão", "integr"}},
}

// SoftSkillCue maps a lowercase substring cue to a canonical soft-skill label.
// Cues are stems so inflected forms still match ("liderança", "liderar").
type SoftSkillCue struct {
	Cue   string
	Label string
}

var SoftSkillCues = []SoftSkillCue{
	{Cue: "comunica", Label: "Comunicação"},
	{Cue: "lider", Label: "Liderança"},
	{Cue: "colabora", Label: "Colaboração"},
	{Cue: "resili", Label: "Resiliência"},
	{Cue: "criativ", Label: "Criatividade"},
}
