package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the credential-store record. Secrets are never stored raw:
// PasswordHash, RefreshTokenHash and PasswordResetTokenHash are argon2id
// digests. EmailVerificationToken is the single exception: it is single-use
// and short-lived, so it is compared byte-for-byte.
type User struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email                  string    `gorm:"size:100;uniqueIndex"`
	Username               string    `gorm:"size:100;uniqueIndex"`
	PasswordHash           string    `gorm:"size:255"`
	Role                   Role      `gorm:"size:10;default:USER"`
	IsVerified             bool      `gorm:"default:false"`
	VerifiedAt             *time.Time
	EmailVerificationToken string `gorm:"size:255"`
	PasswordResetTokenHash string `gorm:"size:255"`
	PasswordResetExpiresAt *time.Time
	RefreshTokenHash       string `gorm:"size:255"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string { return "users" }

// Principal is the identity the access guard attaches to the request
// context after validating the access token.
type Principal struct {
	UserID   uuid.UUID
	TokenJTI string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	UserID       uuid.UUID
}
