package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"crm/internal/handler"
	"crm/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupContactRouter() (*gin.Engine, *MockContactRepository) {
	gin.SetMode(gin.TestMode)
	repo := new(MockContactRepository)
	h := handler.NewContactHandler(repo)

	r := gin.New()
	r.GET("/contacts", h.List)
	r.POST("/contacts", h.Create)
	return r, repo
}

func TestContacts_ListPassesTrimmedSearch(t *testing.T) {
	router, repo := setupContactRouter()
	repo.On("List", mock.Anything, "tech").Return([]model.Contact{
		{ID: uuid.New(), Name: "Carlos", Company: "Tech Solutions", Status: model.ContactActive},
	}, nil)

	resp := postJSON(t, router, http.MethodGet, "/contacts?search=%20tech%20", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var body []handler.ContactResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Ativo", body[0].StatusLabel)
	repo.AssertExpectations(t)
}

func TestContacts_CreateDefaultsToActive(t *testing.T) {
	router, repo := setupContactRouter()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Contact) bool {
		return c.Status == model.ContactActive
	})).Return(nil)

	resp := postJSON(t, router, http.MethodPost, "/contacts", handler.CreateContactRequest{Name: "Ana", Company: "Acme"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	repo.AssertExpectations(t)
}
