package handler_test

import (
	"context"
	"sync"

	"crm/internal/middleware"
	"crm/internal/model"
	"crm/internal/pipeline"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

type MockDealRepository struct {
	mock.Mock
}

func (m *MockDealRepository) List(ctx context.Context) ([]model.Deal, error) {
	args := m.Called(ctx)
	deals := args.Get(0)
	if deals == nil {
		return nil, args.Error(1)
	}
	return deals.([]model.Deal), args.Error(1)
}

func (m *MockDealRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Deal, error) {
	args := m.Called(ctx, id)
	deal := args.Get(0)
	if deal == nil {
		return nil, args.Error(1)
	}
	return deal.(*model.Deal), args.Error(1)
}

func (m *MockDealRepository) Create(ctx context.Context, deal *model.Deal) error {
	args := m.Called(ctx, deal)
	return args.Error(0)
}

func (m *MockDealRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Deal, error) {
	args := m.Called(ctx, id, fields)
	deal := args.Get(0)
	if deal == nil {
		return nil, args.Error(1)
	}
	return deal.(*model.Deal), args.Error(1)
}

func (m *MockDealRepository) ReplaceOrder(ctx context.Context, deals []model.Deal) error {
	args := m.Called(ctx, deals)
	return args.Error(0)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) List(ctx context.Context) ([]model.Activity, error) {
	args := m.Called(ctx)
	activities := args.Get(0)
	if activities == nil {
		return nil, args.Error(1)
	}
	return activities.([]model.Activity), args.Error(1)
}

func (m *MockActivityRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	args := m.Called(ctx, id)
	activity := args.Get(0)
	if activity == nil {
		return nil, args.Error(1)
	}
	return activity.(*model.Activity), args.Error(1)
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Activity, error) {
	args := m.Called(ctx, id, fields)
	activity := args.Get(0)
	if activity == nil {
		return nil, args.Error(1)
	}
	return activity.(*model.Activity), args.Error(1)
}

// memStore keeps board states in memory.
type memStore struct {
	mu     sync.Mutex
	states map[uuid.UUID]pipeline.State
}

func newMemStore() *memStore {
	return &memStore{states: map[uuid.UUID]pipeline.State{}}
}

func (s *memStore) Load(_ context.Context, userID uuid.UUID) (pipeline.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[userID]
	if !ok {
		return pipeline.DefaultState(), nil
	}
	return state, nil
}

func (s *memStore) Save(_ context.Context, userID uuid.UUID, state pipeline.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
	return nil
}

// authenticatedAs stands in for the JWT middleware.
func authenticatedAs(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) List(ctx context.Context, search string) ([]model.Contact, error) {
	args := m.Called(ctx, search)
	contacts := args.Get(0)
	if contacts == nil {
		return nil, args.Error(1)
	}
	return contacts.([]model.Contact), args.Error(1)
}

func (m *MockContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	args := m.Called(ctx, id)
	contact := args.Get(0)
	if contact == nil {
		return nil, args.Error(1)
	}
	return contact.(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Contact, error) {
	args := m.Called(ctx, id, fields)
	contact := args.Get(0)
	if contact == nil {
		return nil, args.Error(1)
	}
	return contact.(*model.Contact), args.Error(1)
}

type MockProposalRepository struct {
	mock.Mock
}

func (m *MockProposalRepository) List(ctx context.Context) ([]model.Proposal, error) {
	args := m.Called(ctx)
	proposals := args.Get(0)
	if proposals == nil {
		return nil, args.Error(1)
	}
	return proposals.([]model.Proposal), args.Error(1)
}

func (m *MockProposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Proposal, error) {
	args := m.Called(ctx, id)
	proposal := args.Get(0)
	if proposal == nil {
		return nil, args.Error(1)
	}
	return proposal.(*model.Proposal), args.Error(1)
}

func (m *MockProposalRepository) Create(ctx context.Context, proposal *model.Proposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *MockProposalRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Proposal, error) {
	args := m.Called(ctx, id, fields)
	proposal := args.Get(0)
	if proposal == nil {
		return nil, args.Error(1)
	}
	return proposal.(*model.Proposal), args.Error(1)
}
