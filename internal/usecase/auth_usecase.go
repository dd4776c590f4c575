package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillup-ia/skillup-api/internal/domain"
	"github.com/skillup-ia/skillup-api/pkg/apperror"
)

const tokenTTL = time.Hour

type authUsecase struct {
	userRepo  domain.UserRepository
	secretKey string
}

func NewAuthUsecase(userRepo domain.UserRepository, secretKey string) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		secretKey: secretKey,
	}
}

func (u *authUsecase) Register(ctx context.Context, username, password string) (*domain.PublicUser, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, apperror.BadRequest("Username e password são obrigatórios")
	}

	_, err := u.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, apperror.Conflict("Usuário já existe")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal("Erro interno no servidor", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal("Erro interno no servidor", err)
	}

	user := &domain.User{
		Username:  username,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	if err := u.userRepo.Append(ctx, user); err != nil {
		return nil, apperror.Internal("Erro interno no servidor", err)
	}

	return &domain.PublicUser{ID: user.ID, Username: user.Username}, nil
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.Unauthorized("Credenciais inválidas")
		}
		return "", apperror.Internal("Erro interno no servidor", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", apperror.Unauthorized("Credenciais inválidas")
	}

	if u.secretKey == "" {
		return "", apperror.Internal("Erro interno no servidor", errors.New("SECRET_KEY not configured"))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(u.secretKey))
	if err != nil {
		return "", apperror.Internal("Erro interno no servidor", err)
	}
	return signed, nil
}
