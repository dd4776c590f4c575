package usecase_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillup-ia/skillup-api/internal/domain"
	"github.com/skillup-ia/skillup-api/internal/usecase"
	"github.com/skillup-ia/skillup-api/pkg/apperror"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Append(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

const testSecret = "test-secret"

func TestRegister(t *testing.T) {
	t.Run("normalizes the username and hashes the password", func(t *testing.T) {
		var stored *domain.User
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsername", mock.Anything, "ana").Return(nil, domain.ErrNotFound)
		mockRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.User)
			stored.ID = 1
		}).Return(nil)
		uc := usecase.NewAuthUsecase(mockRepo, testSecret)

		user, err := uc.Register(context.Background(), "  Ana ", "s3cret")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "ana", user.Username)
		assert.NotEqual(t, "s3cret", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
	})

	t.Run("missing credentials are a bad request", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), testSecret)

		_, err := uc.Register(context.Background(), "   ", "pw")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsername", mock.Anything, "ana").Return(&domain.User{ID: 1, Username: "ana"}, nil)
		uc := usecase.NewAuthUsecase(mockRepo, testSecret)

		_, err := uc.Register(context.Background(), "ana", "pw")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
		mockRepo.AssertNotCalled(t, "Append")
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	ana := &domain.User{ID: 1, Username: "ana", Password: string(hash)}

	t.Run("issues a verifiable token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsername", mock.Anything, "ana").Return(ana, nil)
		uc := usecase.NewAuthUsecase(mockRepo, testSecret)

		signed, err := uc.Login(context.Background(), "Ana", "s3cret")
		assert.NoError(t, err)

		token, err := jwt.Parse(signed, func(t *jwt.Token) (any, error) {
			return []byte(testSecret), nil
		})
		assert.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "ana", claims["username"])
		assert.NotNil(t, claims["exp"])
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsername", mock.Anything, "ana").Return(ana, nil)
		uc := usecase.NewAuthUsecase(mockRepo, testSecret)

		_, err := uc.Login(context.Background(), "ana", "wrong")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("unknown user is unauthorized, not a 404", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)
		uc := usecase.NewAuthUsecase(mockRepo, testSecret)

		_, err := uc.Login(context.Background(), "ghost", "pw")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
	})
}
