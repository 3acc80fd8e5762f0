package postgres

import (
	"context"
	"errors"

	customErrors "github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/errors"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/contacts/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

func (p *ContactRepo) CreateContact(ctx context.Context, c model.Contact) (model.Contact, error) {
	if err := p.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Contact{}, customErrors.WrapInternal(err, "CreateContact")
	}
	return c, nil
}

func (p *ContactRepo) GetContact(ctx context.Context, userID, id uuid.UUID) (model.Contact, error) {
	var c model.Contact
	res := p.db.WithContext(ctx).
		Preload("Addresses").
		Where("id = ? AND user_id = ?", id, userID).
		First(&c)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Contact{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Contact{}, customErrors.WrapInternal(err, "GetContact")
	}
	return c, nil
}

func (p *ContactRepo) ListContacts(ctx context.Context, userID uuid.UUID) ([]model.Contact, error) {
	var list []model.Contact
	res := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&list)
	if err := res.Error; err != nil {
		return nil, customErrors.WrapInternal(err, "ListContacts")
	}
	return list, nil
}

func (p *ContactRepo) UpdateContact(ctx context.Context, c model.Contact) error {
	if err := p.db.WithContext(ctx).Omit("Addresses").Save(&c).Error; err != nil {
		return customErrors.WrapInternal(err, "UpdateContact")
	}
	return nil
}

func (p *ContactRepo) DeleteContact(ctx context.Context, userID, id uuid.UUID) error {
	res := p.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Contact{})
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "DeleteContact")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}
	return nil
}

func (p *ContactRepo) CreateAddress(ctx context.Context, a model.Address) (model.Address, error) {
	if err := p.db.WithContext(ctx).Create(&a).Error; err != nil {
		return model.Address{}, customErrors.WrapInternal(err, "CreateAddress")
	}
	return a, nil
}

func (p *ContactRepo) GetAddress(ctx context.Context, contactID, id uuid.UUID) (model.Address, error) {
	var a model.Address
	res := p.db.WithContext(ctx).
		Where("id = ? AND contact_id = ?", id, contactID).
		First(&a)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Address{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Address{}, customErrors.WrapInternal(err, "GetAddress")
	}
	return a, nil
}

func (p *ContactRepo) ListAddresses(ctx context.Context, contactID uuid.UUID) ([]model.Address, error) {
	var list []model.Address
	res := p.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("created_at").
		Find(&list)
	if err := res.Error; err != nil {
		return nil, customErrors.WrapInternal(err, "ListAddresses")
	}
	return list, nil
}

func (p *ContactRepo) UpdateAddress(ctx context.Context, a model.Address) error {
	if err := p.db.WithContext(ctx).Save(&a).Error; err != nil {
		return customErrors.WrapInternal(err, "UpdateAddress")
	}
	return nil
}

func (p *ContactRepo) DeleteAddress(ctx context.Context, contactID, id uuid.UUID) error {
	res := p.db.WithContext(ctx).
		Where("id = ? AND contact_id = ?", id, contactID).
		Delete(&model.Address{})
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "DeleteAddress")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}
	return nil
}
