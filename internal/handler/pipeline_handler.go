package handler

import (
	"context"
	"errors"
	"net/http"

	"crm/internal/format"
	"crm/internal/model"
	"crm/internal/pipeline"
	"crm/internal/repository"
	"crm/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// PipelineHandler serves each user's board. Deals are shared by the whole
// team; the view state (mode, search, sort, open detail) is per user.
type PipelineHandler struct {
	deals    repository.DealRepositoryInterface
	sessions session.Store
}

func NewPipelineHandler(deals repository.DealRepositoryInterface, sessions session.Store) *PipelineHandler {
	return &PipelineHandler{deals: deals, sessions: sessions}
}

type SearchRequest struct {
	Term string `json:"term"`
}

type SortRequest struct {
	Field pipeline.SortField `json:"field" binding:"required"`
}

type DragDestination struct {
	Stage model.Stage `json:"stage" binding:"required,stage"`
	Index int         `json:"index" binding:"min=0"`
}

// DragRequest is a finished drag gesture. A missing destination means the
// drag was cancelled.
type DragRequest struct {
	SourceIndex int              `json:"source_index" binding:"min=0"`
	Destination *DragDestination `json:"destination"`
}

type StageResponse struct {
	ID    model.Stage `json:"id"`
	Label string      `json:"label"`
}

type BoardResponse struct {
	View           pipeline.ViewMode      `json:"view"`
	Search         string                 `json:"search"`
	SortField      pipeline.SortField     `json:"sort_field"`
	SortDirection  pipeline.SortDirection `json:"sort_direction"`
	Count          int                    `json:"count"`
	FormattedTotal string                 `json:"formatted_total"`
	Columns        []pipeline.ColumnView  `json:"columns,omitempty"`
	Rows           []pipeline.Card        `json:"rows,omitempty"`
	Detail         *pipeline.DetailView   `json:"detail,omitempty"`
}

// loadBoard builds the caller's board over the current deal sequence. The
// returned slot receives the replacement sequence of an effective drop.
func (h *PipelineHandler) loadBoard(ctx context.Context, userID uuid.UUID) (*pipeline.Board, *[]model.Deal, error) {
	deals, err := h.deals.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	replaced := new([]model.Deal)
	board := pipeline.NewBoard(deals, func(next []model.Deal) {
		*replaced = next
	})

	state, err := h.sessions.Load(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if err := board.Restore(state); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("discarding invalid board state")
	}
	return board, replaced, nil
}

func (h *PipelineHandler) saveState(c *gin.Context, userID uuid.UUID, board *pipeline.Board) bool {
	if err := h.sessions.Save(c.Request.Context(), userID, board.State()); err != nil {
		serverError(c, err, "Failed to save board state")
		return false
	}
	return true
}

func newBoardResponse(board *pipeline.Board) BoardResponse {
	state := board.State()
	visible := board.Visible()

	var total float64
	for _, d := range visible {
		total += d.Value
	}

	resp := BoardResponse{
		View:           state.View,
		Search:         state.Search,
		SortField:      state.SortField,
		SortDirection:  state.SortDirection,
		Count:          len(visible),
		FormattedTotal: format.BRL(total),
	}
	if state.View == pipeline.ViewKanban {
		resp.Columns = pipeline.NewColumnViews(pipeline.Group(visible))
	} else {
		resp.Rows = pipeline.NewCards(visible)
	}
	if d, ok := board.Detail(); ok {
		detail := pipeline.NewDetailView(d)
		resp.Detail = &detail
	}
	return resp
}

// withBoard loads the caller's board, runs fn and, when fn succeeds, saves
// the view state and answers with the rendered board.
func (h *PipelineHandler) withBoard(c *gin.Context, fn func(board *pipeline.Board) bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	board, _, err := h.loadBoard(c.Request.Context(), userID)
	if err != nil {
		serverError(c, err, "Failed to load pipeline")
		return
	}
	if !fn(board) {
		return
	}
	if !h.saveState(c, userID, board) {
		return
	}
	c.JSON(http.StatusOK, newBoardResponse(board))
}

// Get godoc
// @Summary      Current board
// @Description  Columns in kanban view, rows in list view; values formatted in BRL.
// @Tags         pipeline
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} BoardResponse
// @Router       /pipeline [get]
func (h *PipelineHandler) Get(c *gin.Context) {
	h.withBoard(c, func(*pipeline.Board) bool { return true })
}

// Stages godoc
// @Summary      Pipeline stages in column order
// @Tags         pipeline
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} StageResponse
// @Router       /pipeline/stages [get]
func (h *PipelineHandler) Stages(c *gin.Context) {
	stages := model.Stages()
	resp := make([]StageResponse, len(stages))
	for i, s := range stages {
		resp[i] = StageResponse{ID: s, Label: s.Label()}
	}
	c.JSON(http.StatusOK, resp)
}

// Search godoc
// @Summary      Set the search term
// @Tags         pipeline
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SearchRequest true "Search term"
// @Success      200 {object} BoardResponse
// @Router       /pipeline/search [put]
func (h *PipelineHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	h.withBoard(c, func(board *pipeline.Board) bool {
		board.SetSearch(req.Term)
		return true
	})
}

// Sort godoc
// @Summary      Toggle sorting by a field
// @Description  Selecting the active field flips the direction; another field sorts ascending.
// @Tags         pipeline
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SortRequest true "Sort field"
// @Success      200 {object} BoardResponse
// @Failure      400 {object} map[string]string
// @Router       /pipeline/sort [post]
func (h *PipelineHandler) Sort(c *gin.Context) {
	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	h.withBoard(c, func(board *pipeline.Board) bool {
		if err := board.ToggleSort(req.Field); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sort field"})
			return false
		}
		return true
	})
}

// ToggleView godoc
// @Summary      Switch between kanban and list views
// @Tags         pipeline
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} BoardResponse
// @Router       /pipeline/view [post]
func (h *PipelineHandler) ToggleView(c *gin.Context) {
	h.withBoard(c, func(board *pipeline.Board) bool {
		board.ToggleView()
		return true
	})
}

// Drag godoc
// @Summary      Apply a finished drag
// @Description  Moves the deal at source_index of the canonical sequence to the destination stage and index. Omit destination for a cancelled drag.
// @Tags         pipeline
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body DragRequest true "Drag outcome"
// @Success      200 {object} BoardResponse
// @Failure      400 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /pipeline/drag [post]
func (h *PipelineHandler) Drag(c *gin.Context) {
	var req DragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid drag"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	board, replaced, err := h.loadBoard(ctx, userID)
	if err != nil {
		serverError(c, err, "Failed to load pipeline")
		return
	}
	if board.View() != pipeline.ViewKanban {
		c.JSON(http.StatusConflict, gin.H{"error": "Deals can only be dragged in kanban view"})
		return
	}

	ev := pipeline.DragEvent{SourceIndex: req.SourceIndex}
	if req.Destination != nil {
		ev.Destination = &pipeline.Destination{Stage: req.Destination.Stage, Index: req.Destination.Index}
	}
	if err := board.Drop(ev); err != nil {
		if errors.Is(err, pipeline.ErrInvalidDrag) || errors.Is(err, pipeline.ErrUnknownStage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		serverError(c, err, "Failed to apply drag")
		return
	}

	if *replaced != nil {
		if err := h.deals.ReplaceOrder(ctx, *replaced); err != nil {
			if errors.Is(err, repository.ErrDealNotFound) {
				c.JSON(http.StatusConflict, gin.H{"error": "Pipeline changed, reload and retry"})
				return
			}
			serverError(c, err, "Failed to save pipeline")
			return
		}
		log.WithFields(log.Fields{
			"user_id": userID,
			"deal_id": (*replaced)[ev.Destination.Index].ID,
			"stage":   ev.Destination.Stage,
		}).Info("deal moved")
	}

	c.JSON(http.StatusOK, newBoardResponse(board))
}

// OpenDetail godoc
// @Summary      Open the read-only detail of a deal
// @Tags         pipeline
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Deal ID"
// @Success      200 {object} pipeline.DetailView
// @Failure      404 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /pipeline/deals/{id} [get]
func (h *PipelineHandler) OpenDetail(c *gin.Context) {
	dealID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	board, _, err := h.loadBoard(c.Request.Context(), userID)
	if err != nil {
		serverError(c, err, "Failed to load pipeline")
		return
	}

	deal, err := board.OpenDetail(dealID)
	switch {
	case errors.Is(err, pipeline.ErrDetailOpen):
		c.JSON(http.StatusConflict, gin.H{"error": "Another deal detail is already open"})
		return
	case errors.Is(err, pipeline.ErrDealNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	case err != nil:
		serverError(c, err, "Failed to open deal")
		return
	}

	if !h.saveState(c, userID, board) {
		return
	}
	c.JSON(http.StatusOK, pipeline.NewDetailView(deal))
}

// CloseDetail godoc
// @Summary      Close the deal detail
// @Tags         pipeline
// @Security     BearerAuth
// @Success      204
// @Router       /pipeline/detail [delete]
func (h *PipelineHandler) CloseDetail(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	board, _, err := h.loadBoard(c.Request.Context(), userID)
	if err != nil {
		serverError(c, err, "Failed to load pipeline")
		return
	}
	board.CloseDetail()
	if !h.saveState(c, userID, board) {
		return
	}
	c.Status(http.StatusNoContent)
}
