package assets

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	custom_error "github.com/Somansh-Bodapati/Asset-Manager/pkg/errors"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) GetAsset(id int) (*models.Asset, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockService) GetAssetList() ([]models.Asset, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Asset), args.Error(1)
}

func (m *MockService) CreateAsset(req models.AssetRequest) (*CreateAssetResult, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CreateAssetResult), args.Error(1)
}

func (m *MockService) UpdateAsset(id int, req models.UpdateAssetRequest) (*models.Asset, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestCreateAssetHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	assigneeID := 5

	tests := []struct {
		name           string
		payload        models.AssetRequest
		setupMock      func(m *MockService)
		expectedStatus int
	}{
		{
			name: "created without assignee",
			payload: models.AssetRequest{
				Name:          "ThinkPad X1",
				Type:          "laptop",
				Serial:        "PF3HXYZ1",
				PurchaseDate:  "2025-01-20",
				PurchasePrice: "1899.99",
			},
			setupMock: func(m *MockService) {
				m.On("CreateAsset", mock.Anything).Return(&CreateAssetResult{
					Asset: &models.Asset{ID: 1, Name: "ThinkPad X1", Status: "available"},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "created with assignee",
			payload: models.AssetRequest{
				Name:          "ThinkPad X1",
				Type:          "laptop",
				Serial:        "PF3HXYZ2",
				PurchaseDate:  "2025-01-20",
				PurchasePrice: "1899.99",
				AssigneeID:    &assigneeID,
			},
			setupMock: func(m *MockService) {
				m.On("CreateAsset", mock.Anything).Return(&CreateAssetResult{
					Asset:      &models.Asset{ID: 2, Name: "ThinkPad X1", Status: "assigned"},
					Assignment: &models.Assignment{ID: 10, AssetID: 2, EmployeeID: 5},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "validation error",
			payload: models.AssetRequest{Name: "ThinkPad X1"},
			setupMock: func(m *MockService) {
				m.On("CreateAsset", mock.Anything).Return(nil, custom_error.NewValidationError("Please fill in all required fields"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown assignee",
			payload: models.AssetRequest{
				Name:          "ThinkPad X1",
				Type:          "laptop",
				Serial:        "PF3HXYZ3",
				PurchaseDate:  "2025-01-20",
				PurchasePrice: "1899.99",
				AssigneeID:    &assigneeID,
			},
			setupMock: func(m *MockService) {
				m.On("CreateAsset", mock.Anything).Return(nil, ErrEmployeeNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "partial write",
			payload: models.AssetRequest{
				Name:          "ThinkPad X1",
				Type:          "laptop",
				Serial:        "PF3HXYZ4",
				PurchaseDate:  "2025-01-20",
				PurchasePrice: "1899.99",
				AssigneeID:    &assigneeID,
			},
			setupMock: func(m *MockService) {
				m.On("CreateAsset", mock.Anything).Return(nil, custom_error.NewPartialWriteError("assignment write failed, asset creation rolled back", errors.New("db error")))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "constraint conflict",
			payload: models.AssetRequest{
				Name:          "ThinkPad X1",
				Type:          "laptop",
				Serial:        "PF3HXYZ5",
				PurchaseDate:  "2025-01-20",
				PurchasePrice: "1899.99",
			},
			setupMock: func(m *MockService) {
				m.On("CreateAsset", mock.Anything).Return(nil, custom_error.WrapDBError("Asset insert rejected by constraint", "23505"))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)
			handler := NewAssetsHandler(mockService)
			c, w := setupTestContext()

			body, _ := json.Marshal(tt.payload)
			c.Request = httptest.NewRequest("POST", "/assets", bytes.NewBuffer(body))

			handler.CreateAsset(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestGetAssetHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		assetID        string
		setupMock      func(m *MockService)
		expectedStatus int
	}{
		{
			name:    "found",
			assetID: "1",
			setupMock: func(m *MockService) {
				m.On("GetAsset", 1).Return(&models.Asset{ID: 1, Name: "ThinkPad X1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "not found",
			assetID: "999",
			setupMock: func(m *MockService) {
				m.On("GetAsset", 999).Return(nil, ErrAssetNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			assetID:        "abc",
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)
			handler := NewAssetsHandler(mockService)
			c, w := setupTestContext()

			c.Request = httptest.NewRequest("GET", "/assets/"+tt.assetID, nil)
			c.Params = []gin.Param{{Key: "id", Value: tt.assetID}}

			handler.GetAsset(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestUpdateAssetHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	payload := models.UpdateAssetRequest{
		Name:          "ThinkPad X1",
		Type:          "laptop",
		Serial:        "PF3HXYZ1",
		Status:        "retired",
		PurchaseDate:  "2025-01-20",
		PurchasePrice: 1899.99,
	}

	tests := []struct {
		name           string
		assetID        string
		setupMock      func(m *MockService)
		expectedStatus int
	}{
		{
			name:    "updated",
			assetID: "1",
			setupMock: func(m *MockService) {
				m.On("UpdateAsset", 1, mock.Anything).Return(&models.Asset{ID: 1, Status: "retired"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "not found",
			assetID: "999",
			setupMock: func(m *MockService) {
				m.On("UpdateAsset", 999, mock.Anything).Return(nil, ErrAssetNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)
			handler := NewAssetsHandler(mockService)
			c, w := setupTestContext()

			body, _ := json.Marshal(payload)
			c.Request = httptest.NewRequest("PUT", "/assets/"+tt.assetID, bytes.NewBuffer(body))
			c.Params = []gin.Param{{Key: "id", Value: tt.assetID}}

			handler.UpdateAsset(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
