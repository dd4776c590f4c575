package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/skillup-ia/skillup-api/internal/domain"
	"github.com/skillup-ia/skillup-api/pkg/apperror"
)

type recommendationUsecase struct {
	recommendationRepo domain.RecommendationRepository
}

func NewRecommendationUsecase(recommendationRepo domain.RecommendationRepository) domain.RecommendationUsecase {
	return &recommendationUsecase{recommendationRepo: recommendationRepo}
}

func (u *recommendationUsecase) SendRecommendation(ctx context.Context, rec *domain.Recommendation) error {
	if rec.ToID == 0 || strings.TrimSpace(rec.Message) == "" {
		return apperror.BadRequest("toId e message são obrigatórios")
	}
	if rec.From == "" {
		rec.From = "anon"
	}

	rec.ID = time.Now().UnixMilli()
	rec.CreatedAt = time.Now()

	if err := u.recommendationRepo.Append(ctx, rec); err != nil {
		return apperror.Internal("Erro ao enviar recomendação", err)
	}
	return nil
}

// ListRecommendations returns every recommendation, or only those addressed
// to toID when it is non-zero.
func (u *recommendationUsecase) ListRecommendations(ctx context.Context, toID int64) ([]domain.Recommendation, error) {
	all, err := u.recommendationRepo.ReadAll(ctx)
	if err != nil {
		return nil, apperror.Internal("Erro ao listar recomendações", err)
	}
	if toID == 0 {
		return all, nil
	}

	filtered := make([]domain.Recommendation, 0, len(all))
	for _, rec := range all {
		if rec.ToID == toID {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}
