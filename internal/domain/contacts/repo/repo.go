package repo

import (
	"context"

	"github.com/Miraines/ContactNest/contacts-service/internal/domain/contacts/model"
	"github.com/google/uuid"
)

type ContactRepo interface {
	CreateContact(ctx context.Context, c model.Contact) (model.Contact, error)

	// GetContact resolves a contact owned by userID; another tenant's
	// contact is indistinguishable from a missing one.
	GetContact(ctx context.Context, userID, id uuid.UUID) (model.Contact, error)

	ListContacts(ctx context.Context, userID uuid.UUID) ([]model.Contact, error)

	UpdateContact(ctx context.Context, c model.Contact) error

	DeleteContact(ctx context.Context, userID, id uuid.UUID) error

	CreateAddress(ctx context.Context, a model.Address) (model.Address, error)

	GetAddress(ctx context.Context, contactID, id uuid.UUID) (model.Address, error)

	ListAddresses(ctx context.Context, contactID uuid.UUID) ([]model.Address, error)

	UpdateAddress(ctx context.Context, a model.Address) error

	DeleteAddress(ctx context.Context, contactID, id uuid.UUID) error
}

type CategoryRepo interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
}
