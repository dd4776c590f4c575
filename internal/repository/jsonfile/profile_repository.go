package jsonfile

import (
	"context"
	"sync"

	"github.com/skillup-ia/skillup-api/internal/domain"
)

type profileRepository struct {
	store *store
	mu    sync.Mutex
}

func NewProfileRepository(dataDir string) domain.ProfileRepository {
	return &profileRepository{store: newStore(dataDir, "profiles.json")}
}

func (r *profileRepository) ReadAll(_ context.Context) ([]domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles := []domain.Profile{}
	if err := r.store.load(&profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	profiles, err := r.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *profileRepository) Append(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles := []domain.Profile{}
	if err := r.store.load(&profiles); err != nil {
		return err
	}

	var maxID int64
	for i := range profiles {
		if profiles[i].ID > maxID {
			maxID = profiles[i].ID
		}
	}
	profile.ID = maxID + 1

	profiles = append(profiles, *profile)
	return r.store.save(profiles)
}
