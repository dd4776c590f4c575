package domain

import (
	"context"
	"time"
)

// Recommendation is a short text endorsement sent to a profile
type Recommendation struct {
	ID        int64     `json:"id"`
	ToID      int64     `json:"toId"`
	Message   string    `json:"message"`
	From      string    `json:"from"`
	CreatedAt time.Time `json:"createdAt"`
}

type RecommendationRepository interface {
	ReadAll(ctx context.Context) ([]Recommendation, error)
	Append(ctx context.Context, rec *Recommendation) error
}

type RecommendationUsecase interface {
	SendRecommendation(ctx context.Context, rec *Recommendation) error
	ListRecommendations(ctx context.Context, toID int64) ([]Recommendation, error)
}
