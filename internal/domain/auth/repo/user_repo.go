package repo

import (
	"context"

	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/model"
	"github.com/google/uuid"
)

type UserRepo interface {
	// CreateUser persists a new account. Role assignment happens inside the
	// same transaction: the first account ever created claims the admin
	// sentinel row and gets RoleAdmin, everyone after it RoleUser.
	CreateUser(ctx context.Context, u model.User) (model.User, error)

	GetUserByEmail(ctx context.Context, email string) (model.User, error)

	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error)

	UpdateUser(ctx context.Context, u model.User) error

	// ReplacePassword swaps the password hash and clears the reset token
	// fields as one atomic unit.
	ReplacePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	CountUsers(ctx context.Context) (int64, error)
}
