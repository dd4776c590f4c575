package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/skillup-ia/skillup-api/internal/domain"
	"github.com/skillup-ia/skillup-api/internal/usecase"
	"github.com/skillup-ia/skillup-api/pkg/apperror"
)

type MockRecommendationRepo struct {
	mock.Mock
}

func (m *MockRecommendationRepo) ReadAll(ctx context.Context) ([]domain.Recommendation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepo) Append(ctx context.Context, rec *domain.Recommendation) error {
	return m.Called(ctx, rec).Error(0)
}

func TestSendRecommendation(t *testing.T) {
	t.Run("requires toId and message", func(t *testing.T) {
		uc := usecase.NewRecommendationUsecase(new(MockRecommendationRepo))

		err := uc.SendRecommendation(context.Background(), &domain.Recommendation{ToID: 1})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "toId e message são obrigatórios", appErr.Message)
	})

	t.Run("anonymous sender defaults to anon", func(t *testing.T) {
		mockRepo := new(MockRecommendationRepo)
		mockRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.Recommendation")).Return(nil)
		uc := usecase.NewRecommendationUsecase(mockRepo)

		rec := &domain.Recommendation{ToID: 1, Message: "Mandou bem!"}
		err := uc.SendRecommendation(context.Background(), rec)

		assert.NoError(t, err)
		assert.Equal(t, "anon", rec.From)
		assert.NotZero(t, rec.ID)
		assert.False(t, rec.CreatedAt.IsZero())
	})
}

func TestListRecommendations(t *testing.T) {
	recs := []domain.Recommendation{
		{ID: 1, ToID: 1, Message: "a"},
		{ID: 2, ToID: 2, Message: "b"},
		{ID: 3, ToID: 1, Message: "c"},
	}

	t.Run("filters by recipient when toId is given", func(t *testing.T) {
		mockRepo := new(MockRecommendationRepo)
		mockRepo.On("ReadAll", mock.Anything).Return(recs, nil)
		uc := usecase.NewRecommendationUsecase(mockRepo)

		got, err := uc.ListRecommendations(context.Background(), 1)

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		for _, rec := range got {
			assert.Equal(t, int64(1), rec.ToID)
		}
	})

	t.Run("zero toId returns everything", func(t *testing.T) {
		mockRepo := new(MockRecommendationRepo)
		mockRepo.On("ReadAll", mock.Anything).Return(recs, nil)
		uc := usecase.NewRecommendationUsecase(mockRepo)

		got, err := uc.ListRecommendations(context.Background(), 0)

		assert.NoError(t, err)
		assert.Len(t, got, 3)
	})
}
