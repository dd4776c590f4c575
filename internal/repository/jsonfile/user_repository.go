package jsonfile

import (
	"context"
	"sync"

	"github.com/skillup-ia/skillup-api/internal/domain"
)

type userRepository struct {
	store *store
	mu    sync.Mutex
}

func NewUserRepository(dataDir string) domain.UserRepository {
	return &userRepository{store: newStore(dataDir, "users.json")}
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := []domain.User{}
	if err := r.store.load(&users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepository) Append(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := []domain.User{}
	if err := r.store.load(&users); err != nil {
		return err
	}

	var maxID int64
	for i := range users {
		if users[i].ID > maxID {
			maxID = users[i].ID
		}
	}
	user.ID = maxID + 1

	users = append(users, *user)
	return r.store.save(users)
}
