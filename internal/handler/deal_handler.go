package handler

import (
	"errors"
	"net/http"
	"time"

	"crm/internal/format"
	"crm/internal/model"
	"crm/internal/repository"

	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	repo repository.DealRepositoryInterface
}

func NewDealHandler(repo repository.DealRepositoryInterface) *DealHandler {
	return &DealHandler{repo: repo}
}

type CreateDealRequest struct {
	Title              string      `json:"title" binding:"required"`
	Company            string      `json:"company" binding:"required"`
	Value              float64     `json:"value" binding:"min=0"`
	Stage              model.Stage `json:"stage" binding:"omitempty,stage"`
	Probability        int         `json:"probability" binding:"min=0,max=100"`
	Contact            string      `json:"contact"`
	Email              string      `json:"email" binding:"omitempty,email"`
	Phone              string      `json:"phone"`
	ExpectedCloseDate  *time.Time  `json:"expected_close_date"`
	ResponsibleName    string      `json:"responsible_name"`
	Industry           string      `json:"industry"`
	FirstContactDate   *time.Time  `json:"first_contact_date"`
	FollowUpDate       *time.Time  `json:"follow_up_date"`
	ContactResponsible string      `json:"contact_responsible"`
	CompanyResponsible string      `json:"company_responsible"`
	ContextInfo        string      `json:"context_info"`
	InteractionHistory string      `json:"interaction_history"`
}

// UpdateDealRequest carries the fields to change; absent fields stay as they are.
type UpdateDealRequest struct {
	Title              *string      `json:"title" binding:"omitempty,min=1"`
	Company            *string      `json:"company" binding:"omitempty,min=1"`
	Value              *float64     `json:"value" binding:"omitempty,min=0"`
	Stage              *model.Stage `json:"stage" binding:"omitempty,stage"`
	Probability        *int         `json:"probability" binding:"omitempty,min=0,max=100"`
	Contact            *string      `json:"contact"`
	Email              *string      `json:"email" binding:"omitempty,email"`
	Phone              *string      `json:"phone"`
	ExpectedCloseDate  *time.Time   `json:"expected_close_date"`
	LastActivity       *string      `json:"last_activity"`
	ResponsibleName    *string      `json:"responsible_name"`
	Industry           *string      `json:"industry"`
	FirstContactDate   *time.Time   `json:"first_contact_date"`
	FollowUpDate       *time.Time   `json:"follow_up_date"`
	ContactResponsible *string      `json:"contact_responsible"`
	CompanyResponsible *string      `json:"company_responsible"`
	ContextInfo        *string      `json:"context_info"`
	InteractionHistory *string      `json:"interaction_history"`
}

func (r UpdateDealRequest) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	set := func(column string, present bool, value interface{}) {
		if present {
			fields[column] = value
		}
	}
	set("title", r.Title != nil, deref(r.Title))
	set("company", r.Company != nil, deref(r.Company))
	set("value", r.Value != nil, deref(r.Value))
	set("stage", r.Stage != nil, deref(r.Stage))
	set("probability", r.Probability != nil, deref(r.Probability))
	set("contact", r.Contact != nil, deref(r.Contact))
	set("email", r.Email != nil, deref(r.Email))
	set("phone", r.Phone != nil, deref(r.Phone))
	set("expected_close_date", r.ExpectedCloseDate != nil, r.ExpectedCloseDate)
	set("last_activity", r.LastActivity != nil, deref(r.LastActivity))
	set("responsible_name", r.ResponsibleName != nil, deref(r.ResponsibleName))
	set("industry", r.Industry != nil, deref(r.Industry))
	set("first_contact_date", r.FirstContactDate != nil, r.FirstContactDate)
	set("follow_up_date", r.FollowUpDate != nil, r.FollowUpDate)
	set("contact_responsible", r.ContactResponsible != nil, deref(r.ContactResponsible))
	set("company_responsible", r.CompanyResponsible != nil, deref(r.CompanyResponsible))
	set("context_info", r.ContextInfo != nil, deref(r.ContextInfo))
	set("interaction_history", r.InteractionHistory != nil, deref(r.InteractionHistory))
	return fields
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// DealResponse is a deal with its display values.
type DealResponse struct {
	model.Deal
	FormattedValue string `json:"formatted_value"`
	StageLabel     string `json:"stage_label"`
}

func newDealResponse(d model.Deal) DealResponse {
	return DealResponse{Deal: d, FormattedValue: format.BRL(d.Value), StageLabel: d.Stage.Label()}
}

// List godoc
// @Summary      Deals in canonical order
// @Tags         deals
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} DealResponse
// @Router       /deals [get]
func (h *DealHandler) List(c *gin.Context) {
	deals, err := h.repo.List(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to retrieve deals")
		return
	}
	resp := make([]DealResponse, len(deals))
	for i, d := range deals {
		resp[i] = newDealResponse(d)
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Create a deal
// @Description  New deals join the end of the canonical sequence, in the lead stage unless another is given.
// @Tags         deals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateDealRequest true "Deal"
// @Success      201 {object} DealResponse
// @Failure      400 {object} map[string]string
// @Router       /deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Stage == "" {
		req.Stage = model.StageLead
	}

	deal := &model.Deal{
		Title:              req.Title,
		Company:            req.Company,
		Value:              req.Value,
		Stage:              req.Stage,
		Probability:        req.Probability,
		Contact:            req.Contact,
		Email:              req.Email,
		Phone:              req.Phone,
		ExpectedCloseDate:  req.ExpectedCloseDate,
		ResponsibleName:    req.ResponsibleName,
		Industry:           req.Industry,
		FirstContactDate:   req.FirstContactDate,
		FollowUpDate:       req.FollowUpDate,
		ContactResponsible: req.ContactResponsible,
		CompanyResponsible: req.CompanyResponsible,
		ContextInfo:        req.ContextInfo,
		InteractionHistory: req.InteractionHistory,
	}
	if err := h.repo.Create(c.Request.Context(), deal); err != nil {
		serverError(c, err, "Failed to create deal")
		return
	}
	c.JSON(http.StatusCreated, newDealResponse(*deal))
}

// GetByID godoc
// @Summary      Get a deal
// @Tags         deals
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Deal ID"
// @Success      200 {object} DealResponse
// @Failure      404 {object} map[string]string
// @Router       /deals/{id} [get]
func (h *DealHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deal, err := h.repo.GetByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrDealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	if err != nil {
		serverError(c, err, "Failed to retrieve deal")
		return
	}
	c.JSON(http.StatusOK, newDealResponse(*deal))
}

// Update godoc
// @Summary      Update deal fields
// @Tags         deals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Deal ID"
// @Param        request body UpdateDealRequest true "Changed fields"
// @Success      200 {object} DealResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /deals/{id} [patch]
func (h *DealHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	fields := req.fields()
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	deal, err := h.repo.Update(c.Request.Context(), id, fields)
	if errors.Is(err, repository.ErrDealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	if err != nil {
		serverError(c, err, "Failed to update deal")
		return
	}
	c.JSON(http.StatusOK, newDealResponse(*deal))
}
