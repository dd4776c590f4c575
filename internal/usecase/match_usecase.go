package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/skillup-ia/skillup-api/internal/domain"
	"github.com/skillup-ia/skillup-api/internal/matching"
	"github.com/skillup-ia/skillup-api/pkg/apperror"
)

const defaultSuggestLimit = 6

const summaryPrompt = `Você é um assistente de carreiras. Dado o perfil JSON abaixo, gere:
- "headline": um título curto e marcante (máx. 60 caracteres)
- "resumo": de 1 a 2 frases com impacto, em PT-BR
- "skillsSugeridas": até 5 habilidades técnicas adicionais que façam sentido

Responda somente em JSON válido.

Perfil:
%s`

type matchUsecase struct {
	profileRepo domain.ProfileRepository
	generator   domain.SummaryGenerator
}

// NewMatchUsecase builds the AI usecase. A nil generator disables /ai/summary
// (callers get 503) without affecting suggest/extract.
func NewMatchUsecase(profileRepo domain.ProfileRepository, generator domain.SummaryGenerator) domain.MatchUsecase {
	return &matchUsecase{
		profileRepo: profileRepo,
		generator:   generator,
	}
}

func (u *matchUsecase) Suggest(ctx context.Context, skillsParam, area, city string, k int) (*domain.SuggestResult, error) {
	wanted := parseSkills(skillsParam)
	if len(wanted) == 0 {
		return nil, apperror.BadRequest("Param skills é obrigatório (ex: React,Node.js)")
	}
	if k < 1 {
		k = defaultSuggestLimit
	}

	profiles, err := u.profileRepo.ReadAll(ctx)
	if err != nil {
		return nil, apperror.Internal("Erro ao sugerir perfis", err)
	}

	type scoredProfile struct {
		profile *domain.Profile
		score   float64
		matched []string
	}

	ranked := make([]scoredProfile, 0, len(profiles))
	for i := range profiles {
		score, matched := matching.Score(&profiles[i], wanted, area, city)
		if score <= 0 {
			continue
		}
		ranked = append(ranked, scoredProfile{profile: &profiles[i], score: score, matched: matched})
	}

	// Stable sort so equal scores keep their collection order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}

	items := make([]domain.RankedResult, 0, len(ranked))
	for _, sp := range ranked {
		items = append(items, domain.RankedResult{
			ID:         sp.profile.ID,
			Name:       sp.profile.Name,
			Photo:      sp.profile.Photo,
			Role:       sp.profile.Role,
			Location:   sp.profile.Location,
			Area:       sp.profile.Area,
			TechSkills: sp.profile.TechSkills,
			Score:      sp.score,
			Reason:     buildReason(sp.matched, area, city),
		})
	}

	return &domain.SuggestResult{Total: len(items), Items: items}, nil
}

func (u *matchUsecase) Extract(text string) *domain.Extraction {
	tech, soft, area := matching.Extract(text)

	seen := make(map[string]struct{}, len(tech)+len(soft))
	tags := make([]string, 0, len(tech)+len(soft))
	for _, tag := range append(append([]string{}, tech...), soft...) {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	extraction := &domain.Extraction{
		TechSkills: tech,
		SoftSkills: soft,
		Tags:       tags,
	}
	if area != "" {
		extraction.Area = &area
	}
	return extraction
}

func (u *matchUsecase) Summarize(ctx context.Context, profile json.RawMessage) (json.RawMessage, error) {
	if u.generator == nil {
		return nil, apperror.ServiceUnavailable("IA offline: defina GEMINI_API_KEY no backend/.env")
	}

	if len(profile) == 0 {
		profile = json.RawMessage("{}")
	}
	prettyJSON, err := indentJSON(profile)
	if err != nil {
		return nil, apperror.BadRequest("Perfil inválido")
	}

	raw, err := u.generator.GenerateContent(ctx, fmt.Sprintf(summaryPrompt, prettyJSON))
	if err != nil {
		return nil, apperror.Internal("Falha na IA", err)
	}

	summary, err := extractJSONObject(raw)
	if err != nil {
		return nil, apperror.Internal("Falha na IA", err)
	}
	return summary, nil
}

func parseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}

// buildReason lists the matched skills plus a badge per supplied constraint.
// The badges appear whenever the query carried the constraint, even when the
// bonus did not fire; the frontend renders the string as-is.
func buildReason(matched []string, area, city string) string {
	reason := "Match em: " + strings.Join(matched, ", ")
	if area != "" {
		reason += " • área"
	}
	if city != "" {
		reason += " • cidade"
	}
	return reason
}

func indentJSON(raw json.RawMessage) (string, error) {
	var buf strings.Builder
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// extractJSONObject pulls the first {...} block out of the model output,
// tolerating prose or markdown fences around it.
func extractJSONObject(raw string) (json.RawMessage, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in model output")
	}
	candidate := raw[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return nil, fmt.Errorf("model output is not valid JSON")
	}
	return json.RawMessage(candidate), nil
}
