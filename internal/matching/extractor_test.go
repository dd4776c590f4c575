package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillup-ia/skillup-api/internal/matching"
)

func TestExtract(t *testing.T) {
	t.Run("detects skills, soft skills and area", func(t *testing.T) {
		tech, soft, area := matching.Extract("Tenho experiência com React e liderança de equipe, atuo na área de back-end")

		assert.Contains(t, tech, "React")
		assert.Contains(t, soft, "Liderança")
		assert.Equal(t, "Desenvolvimento", area)
	})

	t.Run("empty text yields empty results", func(t *testing.T) {
		tech, soft, area := matching.Extract("")

		assert.Empty(t, tech)
		assert.Empty(t, soft)
		assert.Empty(t, area)
	})

	t.Run("substring matching fires inside longer words", func(t *testing.T) {
		// "PostgreSQL" contains "SQL": both vocabulary entries are reported.
		tech, _, _ := matching.Extract("Banco de dados PostgreSQL em produção")

		assert.Contains(t, tech, "SQL")
		assert.Contains(t, tech, "PostgreSQL")
	})

	t.Run("skills come back in vocabulary order with canonical casing", func(t *testing.T) {
		tech, _, _ := matching.Extract("domino docker, aws e react no dia a dia")

		assert.Equal(t, []string{"React", "AWS", "Docker"}, tech)
	})

	t.Run("every detected skill belongs to the vocabulary", func(t *testing.T) {
		tech, _, _ := matching.Extract("react node.js golang sql figma kubernetes power bi")

		known := make(map[string]bool, len(matching.KnownSkills))
		for _, s := range matching.KnownSkills {
			known[s] = true
		}
		for _, s := range tech {
			assert.True(t, known[s], "unexpected skill %q", s)
		}
	})

	t.Run("area ties keep the first area seen", func(t *testing.T) {
		// one cue each for Desenvolvimento ("api") and Dados ("etl")
		_, _, area := matching.Extract("api + etl")
		assert.Equal(t, "Desenvolvimento", area)
	})

	t.Run("a later area wins only with strictly more cues", func(t *testing.T) {
		_, _, area := matching.Extract("api, dashboard e etl com modelagem")
		assert.Equal(t, "Dados", area)
	})

	t.Run("soft skills follow the cue table order", func(t *testing.T) {
		_, soft, _ := matching.Extract("criatividade, comunicação e resiliência")

		assert.Equal(t, []string{"Comunicação", "Resiliência", "Criatividade"}, soft)
	})

	t.Run("extraction is idempotent", func(t *testing.T) {
		text := "Dev full stack com React, Node.js e liderança"

		tech1, soft1, area1 := matching.Extract(text)
		tech2, soft2, area2 := matching.Extract(text)

		assert.Equal(t, tech1, tech2)
		assert.Equal(t, soft1, soft2)
		assert.Equal(t, area1, area2)
	})
}
