package handler

import (
	"net/http"
	"strings"

	"crm/internal/format"
	"crm/internal/model"
	"crm/internal/repository"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	repo repository.ContactRepositoryInterface
}

func NewContactHandler(repo repository.ContactRepositoryInterface) *ContactHandler {
	return &ContactHandler{repo: repo}
}

type CreateContactRequest struct {
	Name     string              `json:"name" binding:"required"`
	Email    string              `json:"email" binding:"omitempty,email"`
	Phone    string              `json:"phone"`
	Company  string              `json:"company"`
	Position string              `json:"position"`
	Status   model.ContactStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ContactResponse struct {
	model.Contact
	StatusLabel          string `json:"status_label"`
	FormattedLastContact string `json:"formatted_last_contact"`
}

func newContactResponse(ct model.Contact) ContactResponse {
	return ContactResponse{
		Contact:              ct,
		StatusLabel:          ct.Status.Label(),
		FormattedLastContact: format.Date(ct.LastContact),
	}
}

// List godoc
// @Summary      Contacts
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Name or company contains"
// @Success      200 {array} ContactResponse
// @Router       /contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.repo.List(c.Request.Context(), strings.TrimSpace(c.Query("search")))
	if err != nil {
		serverError(c, err, "Failed to retrieve contacts")
		return
	}
	resp := make([]ContactResponse, len(contacts))
	for i, ct := range contacts {
		resp[i] = newContactResponse(ct)
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateContactRequest true "Contact"
// @Success      201 {object} ContactResponse
// @Failure      400 {object} map[string]string
// @Router       /contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Status == "" {
		req.Status = model.ContactActive
	}

	contact := &model.Contact{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Position: req.Position,
		Status:   req.Status,
	}
	if err := h.repo.Create(c.Request.Context(), contact); err != nil {
		serverError(c, err, "Failed to create contact")
		return
	}
	c.JSON(http.StatusCreated, newContactResponse(*contact))
}
