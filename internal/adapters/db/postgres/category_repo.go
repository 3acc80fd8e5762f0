package postgres

import (
	"context"

	customErrors "github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/errors"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/contacts/model"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (p *CategoryRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	if err := p.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, customErrors.WrapInternal(err, "ListCategories")
	}
	return list, nil
}
