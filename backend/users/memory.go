package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"edumarket/backend/engine"
	"edumarket/backend/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]models.User
	byEml map[string]string // email -> id
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:  map[string]models.User{},
		byEml: map[string]string{},
	}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEml[user.Email]; exists {
		return fmt.Errorf("%w: email already registered", engine.ErrValidation)
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.byID[user.ID] = *user
	r.byEml[user.Email] = user.ID
	return nil
}

func (r *MemoryRepository) ByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %q", engine.ErrNotFound, id)
	}
	return &user, nil
}

func (r *MemoryRepository) ByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEml[email]
	if !ok {
		return nil, fmt.Errorf("%w: email %q", engine.ErrNotFound, email)
	}
	user := r.byID[id]
	return &user, nil
}

func (r *MemoryRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.byID[user.ID]
	if !ok {
		return fmt.Errorf("%w: user %q", engine.ErrNotFound, user.ID)
	}
	if old.Email != user.Email {
		delete(r.byEml, old.Email)
		r.byEml[user.Email] = user.ID
	}
	r.byID[user.ID] = *user
	return nil
}
