package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/entity_audit_app/internal/apperrors"
	"github.com/SscSPs/entity_audit_app/internal/core/domain"
	portssvc "github.com/SscSPs/entity_audit_app/internal/core/ports/services"
	"github.com/SscSPs/entity_audit_app/internal/dto"
	"github.com/SscSPs/entity_audit_app/internal/handlers"
	"github.com/SscSPs/entity_audit_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type UserHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockUserService
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockUserService)

	suite.router = gin.New()
	cfg := &config.Config{IsProduction: true} // skips swagger wiring
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{User: suite.mockService})
}

func (suite *UserHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *UserHandlerTestSuite) TestCreateUser_Success() {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	created := &domain.User{
		UserID:      uuid.NewString(),
		Name:        "Rashidi Zin",
		Username:    "rashidi.zin",
		AuditFields: domain.AuditFields{CreatedAt: now, ModifiedAt: now},
	}
	suite.mockService.On("CreateUser", mock.Anything, dto.CreateUserRequest{Name: "Rashidi Zin", Username: "rashidi.zin"}).Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/users", gin.H{"name": "Rashidi Zin", "username": "rashidi.zin"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.UserID, resp.UserID)
	suite.True(resp.CreatedAt.Equal(resp.ModifiedAt))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestCreateUser_MissingFields() {
	w := suite.performRequest(http.MethodPost, "/api/v1/users", gin.H{"name": "Rashidi Zin"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestCreateUser_DuplicateUsername() {
	suite.mockService.On("CreateUser", mock.Anything, mock.AnythingOfType("dto.CreateUserRequest")).Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/users", gin.H{"name": "Rashidi Zin", "username": "rashidi.zin"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestGetUser_Success() {
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Name: "Rashidi Zin", Username: "rashidi.zin"}
	suite.mockService.On("GetUserByID", mock.Anything, userID).Return(user, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/users/"+userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(userID, resp.UserID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestGetUser_NotFound() {
	userID := uuid.NewString()
	suite.mockService.On("GetUserByID", mock.Anything, userID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/users/"+userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestListUsers_Success() {
	users := []domain.User{
		{UserID: uuid.NewString(), Name: "A", Username: "a"},
		{UserID: uuid.NewString(), Name: "B", Username: "b"},
	}
	suite.mockService.On("ListUsers", mock.Anything, 20, 0).Return(users, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/users", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListUsersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Users, 2)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestUpdateUser_Success() {
	userID := uuid.NewString()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	updated := &domain.User{
		UserID:      userID,
		Name:        "Rashidi Zin",
		Username:    "rashidi",
		AuditFields: domain.AuditFields{CreatedAt: created, ModifiedAt: created.Add(time.Minute)},
	}
	suite.mockService.On("UpdateUser", mock.Anything, userID, mock.AnythingOfType("dto.UpdateUserRequest")).Return(updated, nil).Once()

	w := suite.performRequest(http.MethodPut, "/api/v1/users/"+userID, gin.H{"username": "rashidi"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("rashidi", resp.Username)
	suite.True(resp.ModifiedAt.After(resp.CreatedAt))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestUpdateUser_ValidationError() {
	userID := uuid.NewString()
	suite.mockService.On("UpdateUser", mock.Anything, userID, mock.AnythingOfType("dto.UpdateUserRequest")).Return(nil, apperrors.ErrValidation).Once()

	w := suite.performRequest(http.MethodPut, "/api/v1/users/"+userID, gin.H{"username": ""})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestUpdateUser_NotFound() {
	userID := uuid.NewString()
	suite.mockService.On("UpdateUser", mock.Anything, userID, mock.AnythingOfType("dto.UpdateUserRequest")).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodPut, "/api/v1/users/"+userID, gin.H{"name": "New Name"})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestHealth() {
	w := suite.performRequest(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Run Suite ---
func TestUserHandler(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
