package jsonfile

import (
	"context"
	"sync"

	"github.com/skillup-ia/skillup-api/internal/domain"
)

type recommendationRepository struct {
	store *store
	mu    sync.Mutex
}

func NewRecommendationRepository(dataDir string) domain.RecommendationRepository {
	return &recommendationRepository{store: newStore(dataDir, "recommendations.json")}
}

func (r *recommendationRepository) ReadAll(_ context.Context) ([]domain.Recommendation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs := []domain.Recommendation{}
	if err := r.store.load(&recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recommendationRepository) Append(_ context.Context, rec *domain.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs := []domain.Recommendation{}
	if err := r.store.load(&recs); err != nil {
		return err
	}
	recs = append(recs, *rec)
	return r.store.save(recs)
}
