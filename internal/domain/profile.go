package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Profile is a talent card. JSON field names follow the wire contract of the
// frontend (Portuguese). The experience/education/project/certification and
// language records are opaque to the backend and passed through unexamined.
type Profile struct {
	ID             int64             `json:"id"`
	Name           string            `json:"nome" validate:"required,valid_name,no_emoji"`
	Photo          string            `json:"foto"`
	Role           string            `json:"cargo" validate:"required"`
	Summary        string            `json:"resumo"`
	Location       string            `json:"localizacao"`
	Area           string            `json:"area"`
	TechSkills     []string          `json:"habilidadesTecnicas"`
	SoftSkills     []string          `json:"softSkills"`
	Experiences    []json.RawMessage `json:"experiencias"`
	Education      []json.RawMessage `json:"formacao"`
	Projects       []json.RawMessage `json:"projetos"`
	Certifications []json.RawMessage `json:"certificacoes"`
	Languages      []json.RawMessage `json:"idiomas"`
	InterestAreas  []string          `json:"areasInteresse"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// ProfileList is the paginated listing shape
type ProfileList struct {
	Items      []Profile `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
}

type ProfileRepository interface {
	// ReadAll returns a full point-in-time snapshot of the collection.
	ReadAll(ctx context.Context) ([]Profile, error)
	GetByID(ctx context.Context, id int64) (*Profile, error)
	// Append assigns the next free id and persists the profile.
	Append(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	ListProfiles(ctx context.Context, page, pageSize int) (*ProfileList, error)
	GetProfile(ctx context.Context, id int64) (*Profile, error)
	CreateProfile(ctx context.Context, profile *Profile) error
}
