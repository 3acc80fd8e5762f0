package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/errors"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/model"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &adminSeed{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newUser(email, username string) model.User {
	return model.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: "h",
		CreatedAt:    time.Now(),
	}
}

func TestUserRepo_FirstCreateClaimsAdmin(t *testing.T) {
	repo := NewUserRepo(setupDB(t))
	ctx := context.Background()

	first, err := repo.CreateUser(ctx, newUser("a@e.com", "usera"))
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	if first.Role != model.RoleAdmin {
		t.Fatalf("first account role = %s, want ADMIN", first.Role)
	}

	second, err := repo.CreateUser(ctx, newUser("b@e.com", "userb"))
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.Role != model.RoleUser {
		t.Fatalf("second account role = %s, want USER", second.Role)
	}

	n, err := repo.CountUsers(ctx)
	if err != nil || n != 2 {
		t.Fatalf("count = %d, %v", n, err)
	}
}

func TestUserRepo_Lookups(t *testing.T) {
	repo := NewUserRepo(setupDB(t))
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, newUser("e@e.com", "lookup"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetUserByEmail(ctx, "e@e.com")
	if err != nil || got.ID != user.ID {
		t.Fatalf("get by email: %v", err)
	}
	got, err = repo.GetUserByUsername(ctx, "lookup")
	if err != nil || got.ID != user.ID {
		t.Fatalf("get by username: %v", err)
	}
	got, err = repo.GetUserByID(ctx, user.ID)
	if err != nil || got.Email != user.Email {
		t.Fatalf("get by id: %v", err)
	}

	if _, err := repo.GetUserByEmail(ctx, "nobody@e.com"); !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := repo.GetUserByID(ctx, uuid.New()); !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUserRepo_UpdateUser(t *testing.T) {
	repo := NewUserRepo(setupDB(t))
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, newUser("u@e.com", "update"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now()
	user.IsVerified = true
	user.VerifiedAt = &now
	user.RefreshTokenHash = "rh"
	if err := repo.UpdateUser(ctx, user); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.IsVerified || got.RefreshTokenHash != "rh" {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestUserRepo_ReplacePassword(t *testing.T) {
	repo := NewUserRepo(setupDB(t))
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, newUser("r@e.com", "replace"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	exp := time.Now().Add(time.Hour)
	user.PasswordResetTokenHash = "reset"
	user.PasswordResetExpiresAt = &exp
	user.RefreshTokenHash = "refresh"
	if err := repo.UpdateUser(ctx, user); err != nil {
		t.Fatalf("update: %v", err)
	}

	if err := repo.ReplacePassword(ctx, user.ID, "new-hash"); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PasswordHash != "new-hash" {
		t.Fatalf("password hash = %q", got.PasswordHash)
	}
	if got.PasswordResetTokenHash != "" || got.PasswordResetExpiresAt != nil || got.RefreshTokenHash != "" {
		t.Fatalf("reset and refresh fields not cleared: %+v", got)
	}

	if err := repo.ReplacePassword(ctx, uuid.New(), "x"); !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
