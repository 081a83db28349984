package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"crm/internal/handler"
	"crm/internal/model"
	"crm/internal/pipeline"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pipelineFixture() []model.Deal {
	return []model.Deal{
		{ID: uuid.New(), Title: "Alpha", Company: "Acme", Value: 1000, Stage: model.StageLead},
		{ID: uuid.New(), Title: "Beta", Company: "Bcorp", Value: 2500.5, Stage: model.StageProposal},
		{ID: uuid.New(), Title: "Gamma", Company: "Globex", Value: 300, Stage: model.StageClosed},
	}
}

func setupPipelineRouter(deals []model.Deal) (*gin.Engine, *MockDealRepository) {
	gin.SetMode(gin.TestMode)
	handler.RegisterValidators()

	repo := new(MockDealRepository)
	repo.On("List", mock.Anything).Return(deals, nil)

	h := handler.NewPipelineHandler(repo, newMemStore())
	r := gin.New()
	g := r.Group("/pipeline", authenticatedAs(uuid.New()))
	g.GET("", h.Get)
	g.GET("/stages", h.Stages)
	g.PUT("/search", h.Search)
	g.POST("/sort", h.Sort)
	g.POST("/view", h.ToggleView)
	g.POST("/drag", h.Drag)
	g.GET("/deals/:id", h.OpenDetail)
	g.DELETE("/detail", h.CloseDetail)
	return r, repo
}

func decodeBoard(t *testing.T, body []byte) handler.BoardResponse {
	t.Helper()
	var board handler.BoardResponse
	require.NoError(t, json.Unmarshal(body, &board))
	return board
}

func columnCount(board handler.BoardResponse, stage model.Stage) int {
	for _, col := range board.Columns {
		if col.Stage == string(stage) {
			return col.Count
		}
	}
	return -1
}

func TestPipeline_GetDefaultBoard(t *testing.T) {
	router, _ := setupPipelineRouter(pipelineFixture())

	resp := postJSON(t, router, http.MethodGet, "/pipeline", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	board := decodeBoard(t, resp.Body.Bytes())
	assert.Equal(t, pipeline.ViewKanban, board.View)
	assert.Equal(t, pipeline.SortTitle, board.SortField)
	assert.Equal(t, pipeline.Ascending, board.SortDirection)
	assert.Equal(t, 3, board.Count)
	assert.Equal(t, "R$\u00a03.800,50", board.FormattedTotal)
	require.Len(t, board.Columns, 6)
	assert.Equal(t, "Baú de Leads", board.Columns[0].Label)
	assert.Equal(t, 1, columnCount(board, model.StageLead))
	assert.Equal(t, 0, columnCount(board, model.StageNegotiation))
	assert.Empty(t, board.Rows)
	assert.Nil(t, board.Detail)
}

func TestPipeline_Stages(t *testing.T) {
	router, _ := setupPipelineRouter(nil)

	resp := postJSON(t, router, http.MethodGet, "/pipeline/stages", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var stages []handler.StageResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stages))
	require.Len(t, stages, 6)
	assert.Equal(t, model.StageTreasure, stages[0].ID)
	assert.Equal(t, "Fechado", stages[5].Label)
}

func TestPipeline_DragPersistsWholeSequence(t *testing.T) {
	deals := pipelineFixture()
	router, repo := setupPipelineRouter(deals)

	repo.On("ReplaceOrder", mock.Anything, mock.MatchedBy(func(next []model.Deal) bool {
		return len(next) == 3 &&
			next[0].ID == deals[1].ID &&
			next[1].ID == deals[2].ID &&
			next[2].ID == deals[0].ID &&
			next[2].Stage == model.StageNegotiation
	})).Return(nil).Once()

	resp := postJSON(t, router, http.MethodPost, "/pipeline/drag", handler.DragRequest{
		SourceIndex: 0,
		Destination: &handler.DragDestination{Stage: model.StageNegotiation, Index: 2},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	board := decodeBoard(t, resp.Body.Bytes())
	assert.Equal(t, 0, columnCount(board, model.StageLead))
	assert.Equal(t, 1, columnCount(board, model.StageNegotiation))
	assert.Equal(t, model.StageLead, deals[0].Stage)

	repo.AssertExpectations(t)
}

func TestPipeline_CancelledDragChangesNothing(t *testing.T) {
	router, repo := setupPipelineRouter(pipelineFixture())

	resp := postJSON(t, router, http.MethodPost, "/pipeline/drag", handler.DragRequest{SourceIndex: 0})
	require.Equal(t, http.StatusOK, resp.Code)

	board := decodeBoard(t, resp.Body.Bytes())
	assert.Equal(t, 1, columnCount(board, model.StageLead))
	repo.AssertNotCalled(t, "ReplaceOrder", mock.Anything, mock.Anything)
}

func TestPipeline_RejectedDrags(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{
			name: "unknown stage",
			body: map[string]interface{}{
				"source_index": 0,
				"destination":  map[string]interface{}{"stage": "won", "index": 0},
			},
		},
		{
			name: "source out of range",
			body: handler.DragRequest{
				SourceIndex: 5,
				Destination: &handler.DragDestination{Stage: model.StageLead, Index: 0},
			},
		},
		{
			name: "destination out of range",
			body: handler.DragRequest{
				SourceIndex: 0,
				Destination: &handler.DragDestination{Stage: model.StageLead, Index: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := setupPipelineRouter(pipelineFixture())

			resp := postJSON(t, router, http.MethodPost, "/pipeline/drag", tt.body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			repo.AssertNotCalled(t, "ReplaceOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestPipeline_ListViewHasNoDrag(t *testing.T) {
	router, repo := setupPipelineRouter(pipelineFixture())

	resp := postJSON(t, router, http.MethodPost, "/pipeline/view", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	board := decodeBoard(t, resp.Body.Bytes())
	assert.Equal(t, pipeline.ViewList, board.View)
	assert.Len(t, board.Rows, 3)
	assert.Empty(t, board.Columns)

	resp = postJSON(t, router, http.MethodPost, "/pipeline/drag", handler.DragRequest{
		SourceIndex: 0,
		Destination: &handler.DragDestination{Stage: model.StageClosed, Index: 0},
	})
	assert.Equal(t, http.StatusConflict, resp.Code)
	repo.AssertNotCalled(t, "ReplaceOrder", mock.Anything, mock.Anything)
}

func TestPipeline_SortToggles(t *testing.T) {
	router, _ := setupPipelineRouter(pipelineFixture())

	resp := postJSON(t, router, http.MethodPost, "/pipeline/sort", handler.SortRequest{Field: pipeline.SortValue})
	require.Equal(t, http.StatusOK, resp.Code)
	board := decodeBoard(t, resp.Body.Bytes())
	assert.Equal(t, pipeline.SortValue, board.SortField)
	assert.Equal(t, pipeline.Ascending, board.SortDirection)

	resp = postJSON(t, router, http.MethodPost, "/pipeline/view", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = postJSON(t, router, http.MethodPost, "/pipeline/sort", handler.SortRequest{Field: pipeline.SortValue})
	require.Equal(t, http.StatusOK, resp.Code)
	board = decodeBoard(t, resp.Body.Bytes())
	assert.Equal(t, pipeline.Descending, board.SortDirection)
	require.Len(t, board.Rows, 3)
	assert.Equal(t, []string{"Beta", "Alpha", "Gamma"}, []string{board.Rows[0].Title, board.Rows[1].Title, board.Rows[2].Title})

	resp = postJSON(t, router, http.MethodPost, "/pipeline/sort", handler.SortRequest{Field: "probability"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestPipeline_Search(t *testing.T) {
	router, _ := setupPipelineRouter(pipelineFixture())

	resp := postJSON(t, router, http.MethodPut, "/pipeline/search", handler.SearchRequest{Term: "GLOB"})
	require.Equal(t, http.StatusOK, resp.Code)
	board := decodeBoard(t, resp.Body.Bytes())
	assert.Equal(t, "GLOB", board.Search)
	assert.Equal(t, 1, board.Count)
	assert.Equal(t, 1, columnCount(board, model.StageClosed))

	resp = postJSON(t, router, http.MethodGet, "/pipeline", nil)
	board = decodeBoard(t, resp.Body.Bytes())
	assert.Equal(t, 1, board.Count)
}

func TestPipeline_DetailLifecycle(t *testing.T) {
	deals := pipelineFixture()
	router, _ := setupPipelineRouter(deals)

	resp := postJSON(t, router, http.MethodGet, "/pipeline/deals/"+deals[1].ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var detail pipeline.DetailView
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &detail))
	assert.Equal(t, "Beta", detail.Title)
	assert.Equal(t, "Proposta", detail.Stage)
	assert.Equal(t, "R$\u00a02.500,50", detail.Value)

	resp = postJSON(t, router, http.MethodGet, "/pipeline/deals/"+deals[0].ID.String(), nil)
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = postJSON(t, router, http.MethodGet, "/pipeline", nil)
	board := decodeBoard(t, resp.Body.Bytes())
	require.NotNil(t, board.Detail)
	assert.Equal(t, deals[1].ID.String(), board.Detail.ID)

	resp = postJSON(t, router, http.MethodDelete, "/pipeline/detail", nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = postJSON(t, router, http.MethodGet, "/pipeline", nil)
	board = decodeBoard(t, resp.Body.Bytes())
	assert.Nil(t, board.Detail)
}

func TestPipeline_DetailUnknownDeal(t *testing.T) {
	router, _ := setupPipelineRouter(pipelineFixture())

	resp := postJSON(t, router, http.MethodGet, "/pipeline/deals/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = postJSON(t, router, http.MethodGet, "/pipeline/deals/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
