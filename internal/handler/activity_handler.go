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

type ActivityHandler struct {
	repo repository.ActivityRepositoryInterface
}

func NewActivityHandler(repo repository.ActivityRepositoryInterface) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

// CreateActivityRequest relates the activity to a deal or a contact, never both.
type CreateActivityRequest struct {
	Type        model.ActivityType `json:"type" binding:"required"`
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	Date        time.Time          `json:"date" binding:"required"`
	DealID      *uuid.UUID         `json:"deal_id" binding:"excluded_with=ContactID"`
	ContactID   *uuid.UUID         `json:"contact_id"`
}

type UpdateActivityRequest struct {
	Title       *string               `json:"title" binding:"omitempty,min=1"`
	Description *string               `json:"description"`
	Date        *time.Time            `json:"date"`
	Status      *model.ActivityStatus `json:"status"`
}

type ActivityResponse struct {
	ID            uuid.UUID            `json:"id"`
	Type          model.ActivityType   `json:"type"`
	Display       model.DisplayMeta    `json:"display"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Date          time.Time            `json:"date"`
	FormattedDate string               `json:"formatted_date"`
	Status        model.ActivityStatus `json:"status"`
	RelatedTo     *model.RelatedTo     `json:"related_to,omitempty"`
}

// ActivityListResponse splits activities into the pending and completed lists.
type ActivityListResponse struct {
	Pending   []ActivityResponse `json:"pending"`
	Completed []ActivityResponse `json:"completed"`
}

func newActivityResponse(a model.Activity) ActivityResponse {
	return ActivityResponse{
		ID:            a.ID,
		Type:          a.Type,
		Display:       a.Type.Meta(),
		Title:         a.Title,
		Description:   a.Description,
		Date:          a.Date,
		FormattedDate: format.DateTime(a.Date),
		Status:        a.Status,
		RelatedTo:     a.Related(),
	}
}

// List godoc
// @Summary      Activities grouped by status
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ActivityListResponse
// @Router       /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.repo.List(c.Request.Context())
	if err != nil {
		serverError(c, err, "Failed to retrieve activities")
		return
	}

	resp := ActivityListResponse{Pending: []ActivityResponse{}, Completed: []ActivityResponse{}}
	for _, a := range activities {
		if !a.Type.Valid() {
			continue
		}
		if a.Status == model.ActivityCompleted {
			resp.Completed = append(resp.Completed, newActivityResponse(a))
		} else {
			resp.Pending = append(resp.Pending, newActivityResponse(a))
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Schedule an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateActivityRequest true "Activity"
// @Success      201 {object} ActivityResponse
// @Failure      400 {object} map[string]string
// @Router       /activities [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !req.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown activity type"})
		return
	}

	activity := &model.Activity{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Status:      model.ActivityPending,
		DealID:      req.DealID,
		ContactID:   req.ContactID,
	}
	if err := h.repo.Create(c.Request.Context(), activity); err != nil {
		serverError(c, err, "Failed to create activity")
		return
	}
	c.JSON(http.StatusCreated, newActivityResponse(*activity))
}

// Update godoc
// @Summary      Update an activity
// @Description  Setting status to completed moves the activity to the completed list.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Activity ID"
// @Param        request body UpdateActivityRequest true "Changed fields"
// @Success      200 {object} ActivityResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /activities/{id} [patch]
func (h *ActivityHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown activity status"})
			return
		}
		fields["status"] = *req.Status
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	activity, err := h.repo.Update(c.Request.Context(), id, fields)
	if errors.Is(err, repository.ErrActivityNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}
	if err != nil {
		serverError(c, err, "Failed to update activity")
		return
	}
	c.JSON(http.StatusOK, newActivityResponse(*activity))
}
