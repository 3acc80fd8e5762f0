package http

import (
	"net/http"
	"time"

	"github.com/Miraines/ContactNest/contacts-service/internal/adapters/transport/http/dto"
	"github.com/Miraines/ContactNest/contacts-service/internal/adapters/transport/http/middleware"
	contactsvc "github.com/Miraines/ContactNest/contacts-service/internal/app/contacts/service"
	"github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/model"
	contactmodel "github.com/Miraines/ContactNest/contacts-service/internal/domain/contacts/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContactHandler struct {
	svc contactsvc.Service
}

func NewContactHandler(svc contactsvc.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type addressResponse struct {
	ID         uuid.UUID `json:"id"`
	Street     string    `json:"street,omitempty"`
	City       string    `json:"city,omitempty"`
	Province   string    `json:"province,omitempty"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postalCode,omitempty"`
}

type contactResponse struct {
	ID        uuid.UUID         `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName,omitempty"`
	Email     string            `json:"email,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Addresses []addressResponse `json:"addresses,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

func newAddressResponse(a contactmodel.Address) addressResponse {
	return addressResponse{
		ID: a.ID, Street: a.Street, City: a.City,
		Province: a.Province, Country: a.Country, PostalCode: a.PostalCode,
	}
}

func newContactResponse(c contactmodel.Contact) contactResponse {
	resp := contactResponse{
		ID: c.ID, FirstName: c.FirstName, LastName: c.LastName,
		Email: c.Email, Phone: c.Phone, CreatedAt: c.CreatedAt,
	}
	for _, a := range c.Addresses {
		resp.Addresses = append(resp.Addresses, newAddressResponse(a))
	}
	return resp
}

func principalOrAbort(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return principal, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func (h *ContactHandler) Create(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var body dto.CreateContactDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.svc.CreateContact(c.Request.Context(), principal.UserID, body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "success create contact",
		"data":    newContactResponse(contact),
	})
}

func (h *ContactHandler) Get(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	contactID, ok := pathID(c, "contactId")
	if !ok {
		return
	}

	contact, err := h.svc.GetContact(c.Request.Context(), principal.UserID, contactID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success get contact",
		"data":    newContactResponse(contact),
	})
}

func (h *ContactHandler) List(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	contacts, err := h.svc.ListContacts(c.Request.Context(), principal.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	data := make([]contactResponse, 0, len(contacts))
	for _, contact := range contacts {
		data = append(data, newContactResponse(contact))
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success list contacts",
		"data":    data,
	})
}

func (h *ContactHandler) Update(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	contactID, ok := pathID(c, "contactId")
	if !ok {
		return
	}
	var body dto.UpdateContactDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.svc.UpdateContact(c.Request.Context(), principal.UserID, contactID, body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success update contact",
		"data":    newContactResponse(contact),
	})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	contactID, ok := pathID(c, "contactId")
	if !ok {
		return
	}

	if err := h.svc.DeleteContact(c.Request.Context(), principal.UserID, contactID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContactHandler) CreateAddress(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	contactID, ok := pathID(c, "contactId")
	if !ok {
		return
	}
	var body dto.AddressDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address, err := h.svc.CreateAddress(c.Request.Context(), principal.UserID, contactID, body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "success create address",
		"data":    newAddressResponse(address),
	})
}

func (h *ContactHandler) GetAddress(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	contactID, ok := pathID(c, "contactId")
	if !ok {
		return
	}
	addressID, ok := pathID(c, "addressId")
	if !ok {
		return
	}

	address, err := h.svc.GetAddress(c.Request.Context(), principal.UserID, contactID, addressID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success get address",
		"data":    newAddressResponse(address),
	})
}

func (h *ContactHandler) ListAddresses(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	contactID, ok := pathID(c, "contactId")
	if !ok {
		return
	}

	addresses, err := h.svc.ListAddresses(c.Request.Context(), principal.UserID, contactID)
	if err != nil {
		writeError(c, err)
		return
	}
	data := make([]addressResponse, 0, len(addresses))
	for _, a := range addresses {
		data = append(data, newAddressResponse(a))
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success list addresses",
		"data":    data,
	})
}

func (h *ContactHandler) UpdateAddress(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	contactID, ok := pathID(c, "contactId")
	if !ok {
		return
	}
	addressID, ok := pathID(c, "addressId")
	if !ok {
		return
	}
	var body dto.AddressDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	address, err := h.svc.UpdateAddress(c.Request.Context(), principal.UserID, contactID, addressID, body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success update address",
		"data":    newAddressResponse(address),
	})
}

func (h *ContactHandler) DeleteAddress(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	contactID, ok := pathID(c, "contactId")
	if !ok {
		return
	}
	addressID, ok := pathID(c, "addressId")
	if !ok {
		return
	}

	if err := h.svc.DeleteAddress(c.Request.Context(), principal.UserID, contactID, addressID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContactHandler) ListCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "success list categories",
		"data":    categories,
	})
}
