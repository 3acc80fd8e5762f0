package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Miraines/ContactNest/contacts-service/internal/adapters/transport/http/dto"
	customErrors "github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/errors"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/contacts/model"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/contacts/repo"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type contactService struct {
	contacts   repo.ContactRepo
	categories repo.CategoryRepo
	v          *validator.Validate
}

func New(cr repo.ContactRepo, catr repo.CategoryRepo, v *validator.Validate) Service {
	return &contactService{contacts: cr, categories: catr, v: v}
}

func (s *contactService) CreateContact(ctx context.Context, userID uuid.UUID, in dto.CreateContactDTO) (model.Contact, error) {
	if err := s.validate(in); err != nil {
		return model.Contact{}, err
	}

	contact := model.Contact{
		ID:        uuid.New(),
		UserID:    userID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
	}

	created, err := s.contacts.CreateContact(ctx, contact)
	if err != nil {
		return model.Contact{}, customErrors.WrapInternal(err, "CreateContact")
	}
	return created, nil
}

func (s *contactService) GetContact(ctx context.Context, userID, contactID uuid.UUID) (model.Contact, error) {
	contact, err := s.contacts.GetContact(ctx, userID, contactID)
	switch {
	case customErrors.IsNotFound(err):
		return model.Contact{}, customErrors.ErrNotFound
	case err != nil:
		return model.Contact{}, customErrors.WrapInternal(err, "GetContact")
	}
	return contact, nil
}

func (s *contactService) ListContacts(ctx context.Context, userID uuid.UUID) ([]model.Contact, error) {
	list, err := s.contacts.ListContacts(ctx, userID)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "ListContacts")
	}
	return list, nil
}

func (s *contactService) UpdateContact(ctx context.Context, userID, contactID uuid.UUID, in dto.UpdateContactDTO) (model.Contact, error) {
	if err := s.validate(in); err != nil {
		return model.Contact{}, err
	}

	contact, err := s.GetContact(ctx, userID, contactID)
	if err != nil {
		return model.Contact{}, err
	}

	contact.FirstName = in.FirstName
	contact.LastName = in.LastName
	contact.Email = in.Email
	contact.Phone = in.Phone

	if err := s.contacts.UpdateContact(ctx, contact); err != nil {
		return model.Contact{}, customErrors.WrapInternal(err, "UpdateContact")
	}
	return contact, nil
}

func (s *contactService) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	err := s.contacts.DeleteContact(ctx, userID, contactID)
	switch {
	case customErrors.IsNotFound(err):
		return customErrors.ErrNotFound
	case err != nil:
		return customErrors.WrapInternal(err, "DeleteContact")
	}
	return nil
}

func (s *contactService) CreateAddress(ctx context.Context, userID, contactID uuid.UUID, in dto.AddressDTO) (model.Address, error) {
	if err := s.validate(in); err != nil {
		return model.Address{}, err
	}

	// Ownership check: the contact must belong to the caller.
	if _, err := s.GetContact(ctx, userID, contactID); err != nil {
		return model.Address{}, err
	}

	address := model.Address{
		ID:         uuid.New(),
		ContactID:  contactID,
		Street:     in.Street,
		City:       in.City,
		Province:   in.Province,
		Country:    in.Country,
		PostalCode: in.PostalCode,
	}

	created, err := s.contacts.CreateAddress(ctx, address)
	if err != nil {
		return model.Address{}, customErrors.WrapInternal(err, "CreateAddress")
	}
	return created, nil
}

func (s *contactService) GetAddress(ctx context.Context, userID, contactID, addressID uuid.UUID) (model.Address, error) {
	if _, err := s.GetContact(ctx, userID, contactID); err != nil {
		return model.Address{}, err
	}

	address, err := s.contacts.GetAddress(ctx, contactID, addressID)
	switch {
	case customErrors.IsNotFound(err):
		return model.Address{}, customErrors.ErrNotFound
	case err != nil:
		return model.Address{}, customErrors.WrapInternal(err, "GetAddress")
	}
	return address, nil
}

func (s *contactService) ListAddresses(ctx context.Context, userID, contactID uuid.UUID) ([]model.Address, error) {
	if _, err := s.GetContact(ctx, userID, contactID); err != nil {
		return nil, err
	}

	list, err := s.contacts.ListAddresses(ctx, contactID)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "ListAddresses")
	}
	return list, nil
}

func (s *contactService) UpdateAddress(ctx context.Context, userID, contactID, addressID uuid.UUID, in dto.AddressDTO) (model.Address, error) {
	if err := s.validate(in); err != nil {
		return model.Address{}, err
	}

	address, err := s.GetAddress(ctx, userID, contactID, addressID)
	if err != nil {
		return model.Address{}, err
	}

	address.Street = in.Street
	address.City = in.City
	address.Province = in.Province
	address.Country = in.Country
	address.PostalCode = in.PostalCode

	if err := s.contacts.UpdateAddress(ctx, address); err != nil {
		return model.Address{}, customErrors.WrapInternal(err, "UpdateAddress")
	}
	return address, nil
}

func (s *contactService) DeleteAddress(ctx context.Context, userID, contactID, addressID uuid.UUID) error {
	if _, err := s.GetContact(ctx, userID, contactID); err != nil {
		return err
	}

	err := s.contacts.DeleteAddress(ctx, contactID, addressID)
	switch {
	case customErrors.IsNotFound(err):
		return customErrors.ErrNotFound
	case err != nil:
		return customErrors.WrapInternal(err, "DeleteAddress")
	}
	return nil
}

func (s *contactService) ListCategories(ctx context.Context) ([]model.Category, error) {
	list, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "ListCategories")
	}
	return list, nil
}

func (s *contactService) validate(in any) error {
	err := s.v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]customErrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, customErrors.FieldError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed on the %q rule", fe.Tag()),
			})
		}
		return customErrors.NewValidation(fields)
	}
	return customErrors.NewInvalidArgument(err.Error())
}
