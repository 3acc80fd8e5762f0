package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact belongs to exactly one user; every query is scoped by UserID so
// tenants can never see each other's records.
type Contact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	FirstName string    `gorm:"size:100"`
	LastName  string    `gorm:"size:100"`
	Email     string    `gorm:"size:100"`
	Phone     string    `gorm:"size:20"`
	Addresses []Address `gorm:"foreignKey:ContactID"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Contact) TableName() string { return "contacts" }

type Address struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContactID  uuid.UUID `gorm:"type:uuid;index"`
	Street     string    `gorm:"size:255"`
	City       string    `gorm:"size:100"`
	Province   string    `gorm:"size:100"`
	Country    string    `gorm:"size:100"`
	PostalCode string    `gorm:"size:10"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Address) TableName() string { return "addresses" }

type Category struct {
	ID       string  `gorm:"size:100;primaryKey"`
	Name     string  `gorm:"size:255"`
	ParentID *string `gorm:"size:100"`
}

func (Category) TableName() string { return "categories" }
