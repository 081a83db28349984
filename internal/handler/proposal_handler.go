package handler

import (
	"errors"
	"net/http"
	"time"

	"crm/internal/format"
	"crm/internal/model"
	"crm/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProposalHandler struct {
	proposals repository.ProposalRepositoryInterface
	deals     repository.DealRepositoryInterface
}

func NewProposalHandler(proposals repository.ProposalRepositoryInterface, deals repository.DealRepositoryInterface) *ProposalHandler {
	return &ProposalHandler{proposals: proposals, deals: deals}
}

type CreateProposalRequest struct {
	Title      string     `json:"title" binding:"required"`
	DealID     uuid.UUID  `json:"deal_id" binding:"required"`
	Value      float64    `json:"value" binding:"min=0"`
	ValidUntil *time.Time `json:"valid_until"`
}

type UpdateProposalRequest struct {
	Title      *string               `json:"title" binding:"omitempty,min=1"`
	Value      *float64              `json:"value" binding:"omitempty,min=0"`
	Status     *model.ProposalStatus `json:"status"`
	ValidUntil *time.Time            `json:"valid_until"`
}

type ProposalResponse struct {
	ID                  uuid.UUID            `json:"id"`
	Title               string               `json:"title"`
	DealID              uuid.UUID            `json:"deal_id"`
	DealTitle           string               `json:"deal_title"`
	Company             string               `json:"company"`
	Value               float64              `json:"value"`
	FormattedValue      string               `json:"formatted_value"`
	Status              model.ProposalStatus `json:"status"`
	Display             model.DisplayMeta    `json:"display"`
	ValidUntil          *time.Time           `json:"valid_until,omitempty"`
	FormattedValidUntil string               `json:"formatted_valid_until"`
	CreatedAt           time.Time            `json:"created_at"`
}

func newProposalResponse(p model.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:                  p.ID,
		Title:               p.Title,
		DealID:              p.DealID,
		DealTitle:           p.Deal.Title,
		Company:             p.Deal.Company,
		Value:               p.Value,
		FormattedValue:      format.BRL(p.Value),
		Status:              p.Status,
		Display:             p.Status.Meta(),
		ValidUntil:          p.ValidUntil,
		FormattedValidUntil: format.Date(p.ValidUntil),
		CreatedAt:           p.CreatedAt,
	}
}

// List godoc
// @Summary      Proposals
// @Tags         proposals
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} ProposalResponse
// @Router       /proposals [get]
func (h *ProposalHandler) List(c *gin.Context) {
	proposals, err := h.proposals.List(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to retrieve proposals")
		return
	}
	resp := make([]ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		if !p.Status.Valid() {
			continue
		}
		resp = append(resp, newProposalResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Draft a proposal for a deal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateProposalRequest true "Proposal"
// @Success      201 {object} ProposalResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /proposals [post]
func (h *ProposalHandler) Create(c *gin.Context) {
	var req CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()
	deal, err := h.deals.GetByID(ctx, req.DealID)
	if errors.Is(err, repository.ErrDealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	if err != nil {
		serverError(c, err, "Failed to retrieve deal")
		return
	}

	proposal := &model.Proposal{
		Title:      req.Title,
		DealID:     deal.ID,
		Value:      req.Value,
		Status:     model.ProposalDraft,
		ValidUntil: req.ValidUntil,
	}
	if err := h.proposals.Create(ctx, proposal); err != nil {
		serverError(c, err, "Failed to create proposal")
		return
	}
	proposal.Deal = *deal
	c.JSON(http.StatusCreated, newProposalResponse(*proposal))
}

// Update godoc
// @Summary      Update a proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Proposal ID"
// @Param        request body UpdateProposalRequest true "Changed fields"
// @Success      200 {object} ProposalResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /proposals/{id} [patch]
func (h *ProposalHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Value != nil {
		fields["value"] = *req.Value
	}
	if req.ValidUntil != nil {
		fields["valid_until"] = *req.ValidUntil
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown proposal status"})
			return
		}
		fields["status"] = *req.Status
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	proposal, err := h.proposals.Update(c.Request.Context(), id, fields)
	if errors.Is(err, repository.ErrProposalNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
		return
	}
	if err != nil {
		serverError(c, err, "Failed to update proposal")
		return
	}
	c.JSON(http.StatusOK, newProposalResponse(*proposal))
}
