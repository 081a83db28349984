package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"crm/internal/handler"
	"crm/internal/model"
	"crm/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupProposalRouter() (*gin.Engine, *MockProposalRepository, *MockDealRepository) {
	gin.SetMode(gin.TestMode)
	proposalRepo := new(MockProposalRepository)
	dealRepo := new(MockDealRepository)
	h := handler.NewProposalHandler(proposalRepo, dealRepo)

	r := gin.New()
	r.GET("/proposals", h.List)
	r.POST("/proposals", h.Create)
	r.PATCH("/proposals/:id", h.Update)
	return r, proposalRepo, dealRepo
}

func TestProposals_CreateRequiresExistingDeal(t *testing.T) {
	router, proposalRepo, dealRepo := setupProposalRouter()
	dealID := uuid.New()
	dealRepo.On("GetByID", mock.Anything, dealID).Return(nil, repository.ErrDealNotFound)

	resp := postJSON(t, router, http.MethodPost, "/proposals", handler.CreateProposalRequest{
		Title:  "Proposta ERP",
		DealID: dealID,
		Value:  5000,
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	proposalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProposals_CreateStartsAsDraft(t *testing.T) {
	router, proposalRepo, dealRepo := setupProposalRouter()
	deal := &model.Deal{ID: uuid.New(), Title: "Projeto ERP", Company: "Acme"}
	dealRepo.On("GetByID", mock.Anything, deal.ID).Return(deal, nil)
	proposalRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Proposal) bool {
		return p.Status == model.ProposalDraft && p.DealID == deal.ID
	})).Return(nil)

	resp := postJSON(t, router, http.MethodPost, "/proposals", handler.CreateProposalRequest{
		Title:  "Proposta ERP",
		DealID: deal.ID,
		Value:  5000,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var body handler.ProposalResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Rascunho", body.Display.Label)
	assert.Equal(t, "Acme", body.Company)
	assert.Equal(t, "R$\u00a05.000,00", body.FormattedValue)
}

func TestProposals_UpdateRejectsUnknownStatus(t *testing.T) {
	router, proposalRepo, _ := setupProposalRouter()

	resp := postJSON(t, router, http.MethodPatch, "/proposals/"+uuid.NewString(), map[string]interface{}{"status": "archived"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Unknown proposal status", errorMessage(t, resp))
	proposalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
