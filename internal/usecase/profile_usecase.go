package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/skillup-ia/skillup-api/internal/domain"
	"github.com/skillup-ia/skillup-api/pkg/apperror"
)

const (
	defaultPageSize = 60
	defaultPhotoURL = "https://i.pravatar.cc/150"
	defaultArea     = "Desenvolvimento"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		validate:    validate,
	}
}

func (u *profileUsecase) ListProfiles(ctx context.Context, page, pageSize int) (*domain.ProfileList, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	all, err := u.profileRepo.ReadAll(ctx)
	if err != nil {
		return nil, apperror.Internal("Erro ao listar perfis", err)
	}

	total := len(all)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return &domain.ProfileList{
		Items:      all[start:end],
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (u *profileUsecase) GetProfile(ctx context.Context, id int64) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Perfil não encontrado")
		}
		return nil, apperror.Internal("Erro ao buscar perfil", err)
	}
	return profile, nil
}

func (u *profileUsecase) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	// Business validation: explicit required fields first for a clear message
	if strings.TrimSpace(profile.Name) == "" {
		return apperror.BadRequest("Campo obrigatório: nome")
	}
	if strings.TrimSpace(profile.Role) == "" {
		return apperror.BadRequest("Campo obrigatório: cargo")
	}
	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}

	applyProfileDefaults(profile)
	profile.CreatedAt = time.Now()

	if err := u.profileRepo.Append(ctx, profile); err != nil {
		return apperror.Internal("Erro ao criar perfil", err)
	}
	return nil
}

func applyProfileDefaults(p *domain.Profile) {
	if p.Photo == "" {
		p.Photo = defaultPhotoURL
	}
	if p.Area == "" {
		p.Area = defaultArea
	}
	if p.TechSkills == nil {
		p.TechSkills = []string{}
	}
	if p.SoftSkills == nil {
		p.SoftSkills = []string{}
	}
	if p.InterestAreas == nil {
		p.InterestAreas = []string{}
	}
	if p.Experiences == nil {
		p.Experiences = []json.RawMessage{}
	}
	if p.Education == nil {
		p.Education = []json.RawMessage{}
	}
	if p.Projects == nil {
		p.Projects = []json.RawMessage{}
	}
	if p.Certifications == nil {
		p.Certifications = []json.RawMessage{}
	}
	if p.Languages == nil {
		p.Languages = []json.RawMessage{}
	}
}
