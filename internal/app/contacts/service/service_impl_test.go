package service_test

import (
	"context"
	"testing"

	"github.com/Miraines/ContactNest/contacts-service/internal/adapters/db/postgres"
	"github.com/Miraines/ContactNest/contacts-service/internal/adapters/transport/http/dto"
	contactsvc "github.com/Miraines/ContactNest/contacts-service/internal/app/contacts/service"
	authErrors "github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/errors"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/contacts/model"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSvc(t *testing.T) (contactsvc.Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Contact{}, &model.Address{}, &model.Category{}))

	svc := contactsvc.New(
		postgres.NewContactRepo(db),
		postgres.NewCategoryRepo(db),
		validator.New(),
	)
	return svc, db
}

func TestContactService_CRUD(t *testing.T) {
	svc, _ := newSvc(t)
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.CreateContact(ctx, owner, dto.CreateContactDTO{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, owner, created.UserID)

	got, err := svc.GetContact(ctx, owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", got.FirstName)

	updated, err := svc.UpdateContact(ctx, owner, created.ID, dto.UpdateContactDTO{
		FirstName: "Ada", LastName: "King", Phone: "+31612345678",
	})
	require.NoError(t, err)
	require.Equal(t, "King", updated.LastName)

	list, err := svc.ListContacts(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeleteContact(ctx, owner, created.ID))
	_, err = svc.GetContact(ctx, owner, created.ID)
	require.True(t, authErrors.IsNotFound(err))
}

func TestContactService_ValidationErrors(t *testing.T) {
	svc, _ := newSvc(t)
	ctx := context.Background()

	_, err := svc.CreateContact(ctx, uuid.New(), dto.CreateContactDTO{})
	require.True(t, authErrors.IsInvalidArgument(err))

	_, err = svc.CreateContact(ctx, uuid.New(), dto.CreateContactDTO{
		FirstName: "Ada", Email: "not-an-email",
	})
	require.True(t, authErrors.IsInvalidArgument(err))
}

func TestContactService_CrossTenantHidden(t *testing.T) {
	svc, _ := newSvc(t)
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()

	created, err := svc.CreateContact(ctx, owner, dto.CreateContactDTO{FirstName: "Ada"})
	require.NoError(t, err)

	_, err = svc.GetContact(ctx, stranger, created.ID)
	require.True(t, authErrors.IsNotFound(err))

	_, err = svc.UpdateContact(ctx, stranger, created.ID, dto.UpdateContactDTO{FirstName: "Eve"})
	require.True(t, authErrors.IsNotFound(err))

	err = svc.DeleteContact(ctx, stranger, created.ID)
	require.True(t, authErrors.IsNotFound(err))

	// Address writes go through the same ownership gate.
	_, err = svc.CreateAddress(ctx, stranger, created.ID, dto.AddressDTO{Country: "NL"})
	require.True(t, authErrors.IsNotFound(err))
}

func TestContactService_Addresses(t *testing.T) {
	svc, _ := newSvc(t)
	ctx := context.Background()
	owner := uuid.New()

	contact, err := svc.CreateContact(ctx, owner, dto.CreateContactDTO{FirstName: "Ada"})
	require.NoError(t, err)

	addr, err := svc.CreateAddress(ctx, owner, contact.ID, dto.AddressDTO{
		Country: "NL", City: "Delft", Street: "Mekelweg 4",
	})
	require.NoError(t, err)
	require.Equal(t, contact.ID, addr.ContactID)

	_, err = svc.CreateAddress(ctx, owner, contact.ID, dto.AddressDTO{})
	require.True(t, authErrors.IsInvalidArgument(err))

	updated, err := svc.UpdateAddress(ctx, owner, contact.ID, addr.ID, dto.AddressDTO{
		Country: "NL", City: "Leiden",
	})
	require.NoError(t, err)
	require.Equal(t, "Leiden", updated.City)

	list, err := svc.ListAddresses(ctx, owner, contact.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.DeleteAddress(ctx, owner, contact.ID, addr.ID))
	_, err = svc.GetAddress(ctx, owner, contact.ID, addr.ID)
	require.True(t, authErrors.IsNotFound(err))
}

func TestContactService_ListCategories(t *testing.T) {
	svc, db := newSvc(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Category{ID: "family", Name: "Family"}).Error)

	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "family", list[0].ID)
}
