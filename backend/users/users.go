// Package users provides account storage behind a small repository
// interface so handlers can run against Postgres or an in-memory fake.
package users

import (
	"context"

	"edumarket/backend/models"
)

// Repository returns engine.ErrNotFound for unknown ids/emails.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	ByID(ctx context.Context, id string) (*models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}
