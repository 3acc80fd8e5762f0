package service

import (
	"context"

	"github.com/Miraines/ContactNest/contacts-service/internal/adapters/transport/http/dto"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/contacts/model"
	"github.com/google/uuid"
)

// Service is the tenant-scoped contacts API. Every operation takes the
// owning user's id first; cross-tenant access surfaces as not-found.
type Service interface {
	CreateContact(ctx context.Context, userID uuid.UUID, in dto.CreateContactDTO) (model.Contact, error)

	GetContact(ctx context.Context, userID, contactID uuid.UUID) (model.Contact, error)

	ListContacts(ctx context.Context, userID uuid.UUID) ([]model.Contact, error)

	UpdateContact(ctx context.Context, userID, contactID uuid.UUID, in dto.UpdateContactDTO) (model.Contact, error)

	DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error

	CreateAddress(ctx context.Context, userID, contactID uuid.UUID, in dto.AddressDTO) (model.Address, error)

	GetAddress(ctx context.Context, userID, contactID, addressID uuid.UUID) (model.Address, error)

	ListAddresses(ctx context.Context, userID, contactID uuid.UUID) ([]model.Address, error)

	UpdateAddress(ctx context.Context, userID, contactID, addressID uuid.UUID, in dto.AddressDTO) (model.Address, error)

	DeleteAddress(ctx context.Context, userID, contactID, addressID uuid.UUID) error

	ListCategories(ctx context.Context) ([]model.Category, error)
}
