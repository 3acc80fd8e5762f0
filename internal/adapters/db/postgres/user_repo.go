package postgres

import (
	"context"
	"errors"
	"strings"

	customErrors "github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/errors"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/model"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// adminSeed is a single-row sentinel table. Whoever inserts the row first,
// wins the admin role; the primary key makes the race impossible to lose
// twice even under concurrent registrations.
type adminSeed struct {
	ID int `gorm:"primaryKey"`
}

func (adminSeed) TableName() string { return "admin_seed" }

func (p *UserRepo) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`INSERT INTO admin_seed (id) VALUES (1) ON CONFLICT (id) DO NOTHING`)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 1 {
			user.Role = model.RoleAdmin
		} else {
			user.Role = model.RoleUser
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if field, dup := duplicateField(err); dup {
			return model.User{}, customErrors.NewDuplicateField(field)
		}
		return model.User{}, customErrors.WrapInternal(err, "CreateUser")
	}
	return user, nil
}

func (p *UserRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	res := p.db.WithContext(ctx).Where("email = ?", email).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, customErrors.WrapInternal(err, "GetUserByEmail")
	}
	return u, nil
}

func (p *UserRepo) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	res := p.db.WithContext(ctx).Where("username = ?", username).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, customErrors.WrapInternal(err, "GetUserByUsername")
	}
	return u, nil
}

func (p *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	var u model.User
	res := p.db.WithContext(ctx).Where("id = ?", id).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, customErrors.WrapInternal(err, "GetUserByID")
	}
	return u, nil
}

func (p *UserRepo) UpdateUser(ctx context.Context, user model.User) error {
	res := p.db.WithContext(ctx).Save(&user)
	if err := res.Error; err != nil {
		if field, dup := duplicateField(err); dup {
			return customErrors.NewDuplicateField(field)
		}
		return customErrors.WrapInternal(err, "UpdateUser")
	}
	return nil
}

// ReplacePassword swaps the password hash and clears the reset and refresh
// token fields as one transaction; a crash mid-way leaves the old password
// fully intact.
func (p *UserRepo) ReplacePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
			"password_hash":             passwordHash,
			"password_reset_token_hash": "",
			"password_reset_expires_at": nil,
			"refresh_token_hash":        "",
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return customErrors.ErrNotFound
		}
		return nil
	})
}

func (p *UserRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := p.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error; err != nil {
		return 0, customErrors.WrapInternal(err, "CountUsers")
	}
	return n, nil
}

// duplicateField maps a postgres unique violation to the conflicting field
// name so registration can report which of email/username collided.
func duplicateField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return "", false
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return "email", true
	case strings.Contains(pgErr.ConstraintName, "username"):
		return "username", true
	default:
		return "record", true
	}
}
