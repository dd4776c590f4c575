package domain

import (
	"context"
	"encoding/json"
)

// RankedResult is a scored profile projection returned by /ai/suggest.
// Reason is a human-readable explanation of why the profile matched.
type RankedResult struct {
	ID         int64    `json:"id"`
	Name       string   `json:"nome"`
	Photo      string   `json:"foto"`
	Role       string   `json:"cargo"`
	Location   string   `json:"localizacao"`
	Area       string   `json:"area"`
	TechSkills []string `json:"habilidadesTecnicas"`
	Score      float64  `json:"score"`
	Reason     string   `json:"motivo"`
}

// SuggestResult holds the ranked profiles after filtering and truncation
type SuggestResult struct {
	Total int            `json:"total"`
	Items []RankedResult `json:"items"`
}

// Extraction is the structured tag set detected in free text.
// Area is null on the wire when no area keyword was found.
type Extraction struct {
	TechSkills []string `json:"habilidadesTecnicas"`
	SoftSkills []string `json:"softSkills"`
	Area       *string  `json:"area"`
	Tags       []string `json:"tags"`
}

// SummaryGenerator is an external LLM collaborator that turns a prompt into
// raw model output. A nil generator means no credential was configured.
type SummaryGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type MatchUsecase interface {
	// Suggest ranks all stored profiles against a comma-separated skills
	// query with optional area/city constraints, returning at most k items.
	Suggest(ctx context.Context, skillsParam, area, city string, k int) (*SuggestResult, error)
	// Extract classifies free text into technical skills, soft skills and
	// a best-guess area. Total over any input, never fails.
	Extract(text string) *Extraction
	// Summarize asks the LLM collaborator for a headline/summary/skill
	// suggestion JSON object for the given profile.
	Summarize(ctx context.Context, profile json.RawMessage) (json.RawMessage, error)
}
