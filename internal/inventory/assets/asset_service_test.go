package assets

import (
	"errors"
	"testing"
	"time"

	"github.com/Somansh-Bodapati/Asset-Manager/internal/repository"
	custom_error "github.com/Somansh-Bodapati/Asset-Manager/pkg/errors"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/metadata"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAssetsRepository struct {
	mock.Mock
}

func (m *MockAssetsRepository) GetAsset(id int) (*models.Asset, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetsRepository) GetAssetList() ([]models.Asset, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Asset), args.Error(1)
}

func (m *MockAssetsRepository) InsertAsset(tx *goqu.TxDatabase, asset models.Asset) (int, error) {
	args := m.Called(tx, asset)
	return args.Int(0), args.Error(1)
}

func (m *MockAssetsRepository) UpdateAsset(id int, asset models.Asset) error {
	args := m.Called(id, asset)
	return args.Error(0)
}

func (m *MockAssetsRepository) UpdateAssetStatus(tx *goqu.TxDatabase, assetID int, status metadata.Status) error {
	args := m.Called(tx, assetID, status)
	return args.Error(0)
}

type MockAssignmentWriter struct {
	mock.Mock
}

func (m *MockAssignmentWriter) InsertAssignment(tx *goqu.TxDatabase, assetID int, employeeID int, assignedDate time.Time, notes string) (int, error) {
	args := m.Called(tx, assetID, employeeID, assignedDate, notes)
	return args.Int(0), args.Error(1)
}

type MockEmployeeDirectory struct {
	mock.Mock
}

func (m *MockEmployeeDirectory) EmployeeExists(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func newTestService(assetsRepo *MockAssetsRepository, assignments *MockAssignmentWriter, employees *MockEmployeeDirectory) *AssetService {
	service := NewAssetService(assetsRepo, assignments, employees, &repository.Repository{}, zap.NewNop())
	service.runTx = func(_ *goqu.Database, fn func(tx *goqu.TxDatabase) error) error {
		return fn(nil)
	}
	return service
}

func validCreateRequest() models.AssetRequest {
	return models.AssetRequest{
		Name:          "MacBook Pro 16",
		Type:          "laptop",
		Serial:        "C02XG2JJH7JY",
		PurchaseDate:  "2025-03-14",
		PurchasePrice: "2499.00",
	}
}

func TestCreateAssetValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *models.AssetRequest)
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(req *models.AssetRequest) { req.Name = "" },
			message: "Please fill in all required fields",
		},
		{
			name:    "missing serial",
			mutate:  func(req *models.AssetRequest) { req.Serial = "" },
			message: "Please fill in all required fields",
		},
		{
			name:    "missing price",
			mutate:  func(req *models.AssetRequest) { req.PurchasePrice = "" },
			message: "Please fill in all required fields",
		},
		{
			name:    "price is not a number",
			mutate:  func(req *models.AssetRequest) { req.PurchasePrice = "a lot" },
			message: "Purchase price must be a number",
		},
		{
			name:    "negative price",
			mutate:  func(req *models.AssetRequest) { req.PurchasePrice = "-10" },
			message: "Purchase price cannot be negative",
		},
		{
			name:    "malformed purchase date",
			mutate:  func(req *models.AssetRequest) { req.PurchaseDate = "14-03-2025" },
			message: "Purchase date must use the YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAssetsRepository)
			mockAssignments := new(MockAssignmentWriter)
			mockEmployees := new(MockEmployeeDirectory)
			service := newTestService(mockRepo, mockAssignments, mockEmployees)

			req := validCreateRequest()
			tt.mutate(&req)

			result, err := service.CreateAsset(req)

			assert.Nil(t, result)
			var validationErr *custom_error.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, err.Error())

			mockRepo.AssertNotCalled(t, "InsertAsset", mock.Anything, mock.Anything)
			mockAssignments.AssertNotCalled(t, "InsertAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateAssetWithoutAssignee(t *testing.T) {
	mockRepo := new(MockAssetsRepository)
	mockAssignments := new(MockAssignmentWriter)
	mockEmployees := new(MockEmployeeDirectory)
	service := newTestService(mockRepo, mockAssignments, mockEmployees)

	mockRepo.On("InsertAsset", mock.Anything, mock.MatchedBy(func(asset models.Asset) bool {
		return asset.Status == "available"
	})).Return(1, nil)

	result, err := service.CreateAsset(validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Asset.ID)
	assert.Equal(t, "available", result.Asset.Status)
	assert.Nil(t, result.Assignment)
	mockAssignments.AssertNotCalled(t, "InsertAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockEmployees.AssertNotCalled(t, "EmployeeExists", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestCreateAssetWithAssignee(t *testing.T) {
	mockRepo := new(MockAssetsRepository)
	mockAssignments := new(MockAssignmentWriter)
	mockEmployees := new(MockEmployeeDirectory)
	service := newTestService(mockRepo, mockAssignments, mockEmployees)

	mockEmployees.On("EmployeeExists", 42).Return(true, nil)
	mockRepo.On("InsertAsset", mock.Anything, mock.MatchedBy(func(asset models.Asset) bool {
		return asset.Status == "assigned"
	})).Return(7, nil)
	mockAssignments.On("InsertAssignment", mock.Anything, 7, 42, mock.Anything, mock.Anything).Return(3, nil).Once()

	req := validCreateRequest()
	assigneeID := 42
	req.AssigneeID = &assigneeID

	result, err := service.CreateAsset(req)

	assert.NoError(t, err)
	assert.Equal(t, "assigned", result.Asset.Status)
	assert.Equal(t, 3, result.Assignment.ID)
	assert.Equal(t, 7, result.Assignment.AssetID)
	assert.Equal(t, 42, result.Assignment.EmployeeID)
	assert.Nil(t, result.Assignment.ReturnDate)
	mockAssignments.AssertNumberOfCalls(t, "InsertAssignment", 1)
	mockRepo.AssertExpectations(t)
	mockAssignments.AssertExpectations(t)
	mockEmployees.AssertExpectations(t)
}

func TestCreateAssetAssignmentInsertFailure(t *testing.T) {
	mockRepo := new(MockAssetsRepository)
	mockAssignments := new(MockAssignmentWriter)
	mockEmployees := new(MockEmployeeDirectory)
	service := newTestService(mockRepo, mockAssignments, mockEmployees)

	insertErr := errors.New("insert failed")
	mockEmployees.On("EmployeeExists", 42).Return(true, nil)
	mockRepo.On("InsertAsset", mock.Anything, mock.Anything).Return(7, nil)
	mockAssignments.On("InsertAssignment", mock.Anything, 7, 42, mock.Anything, mock.Anything).Return(0, insertErr)

	req := validCreateRequest()
	assigneeID := 42
	req.AssigneeID = &assigneeID

	result, err := service.CreateAsset(req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, insertErr)
}

func TestCreateAssetRejectsUnknownType(t *testing.T) {
	service := newTestService(new(MockAssetsRepository), new(MockAssignmentWriter), new(MockEmployeeDirectory))

	req := validCreateRequest()
	req.Type = "submarine"

	result, err := service.CreateAsset(req)

	assert.Nil(t, result)
	var validationErr *custom_error.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateAssetUnknownAssignee(t *testing.T) {
	mockRepo := new(MockAssetsRepository)
	mockAssignments := new(MockAssignmentWriter)
	mockEmployees := new(MockEmployeeDirectory)
	service := newTestService(mockRepo, mockAssignments, mockEmployees)

	mockEmployees.On("EmployeeExists", 42).Return(false, nil)

	req := validCreateRequest()
	assigneeID := 42
	req.AssigneeID = &assigneeID

	result, err := service.CreateAsset(req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	mockRepo.AssertNotCalled(t, "InsertAsset", mock.Anything, mock.Anything)
	mockEmployees.AssertExpectations(t)
}

func TestUpdateAssetWritesStatusAsSubmitted(t *testing.T) {
	mockRepo := new(MockAssetsRepository)
	mockAssignments := new(MockAssignmentWriter)
	mockEmployees := new(MockEmployeeDirectory)
	service := newTestService(mockRepo, mockAssignments, mockEmployees)

	req := models.UpdateAssetRequest{
		Name:          "MacBook Pro 16",
		Type:          "laptop",
		Serial:        "C02XG2JJH7JY",
		Status:        "retired",
		PurchaseDate:  "2025-03-14",
		PurchasePrice: 2499.00,
	}

	mockRepo.On("UpdateAsset", 7, mock.MatchedBy(func(asset models.Asset) bool {
		return asset.Status == "retired"
	})).Return(nil)
	mockRepo.On("GetAsset", 7).Return(&models.Asset{ID: 7, Status: "retired"}, nil)

	asset, err := service.UpdateAsset(7, req)

	assert.NoError(t, err)
	assert.Equal(t, "retired", asset.Status)
	// The edit path never consults the assignments store
	mockAssignments.AssertNotCalled(t, "InsertAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUpdateAssetRejectsUnknownStatus(t *testing.T) {
	service := newTestService(new(MockAssetsRepository), new(MockAssignmentWriter), new(MockEmployeeDirectory))

	req := models.UpdateAssetRequest{
		Name:          "MacBook Pro 16",
		Type:          "laptop",
		Serial:        "C02XG2JJH7JY",
		Status:        "lost",
		PurchaseDate:  "2025-03-14",
		PurchasePrice: 2499.00,
	}

	asset, err := service.UpdateAsset(7, req)

	assert.Nil(t, asset)
	var validationErr *custom_error.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestUpdateAssetNotFound(t *testing.T) {
	mockRepo := new(MockAssetsRepository)
	service := newTestService(mockRepo, new(MockAssignmentWriter), new(MockEmployeeDirectory))

	req := models.UpdateAssetRequest{
		Name:          "MacBook Pro 16",
		Type:          "laptop",
		Serial:        "C02XG2JJH7JY",
		Status:        "available",
		PurchaseDate:  "2025-03-14",
		PurchasePrice: 2499.00,
	}

	mockRepo.On("UpdateAsset", 999, mock.Anything).Return(ErrAssetNotFound)

	asset, err := service.UpdateAsset(999, req)

	assert.Nil(t, asset)
	assert.ErrorIs(t, err, ErrAssetNotFound)
	mockRepo.AssertExpectations(t)
}

func TestGetAssetPassesThroughRepositoryError(t *testing.T) {
	mockRepo := new(MockAssetsRepository)
	service := newTestService(mockRepo, new(MockAssignmentWriter), new(MockEmployeeDirectory))

	mockRepo.On("GetAsset", 1).Return(nil, errors.New("db error"))

	asset, err := service.GetAsset(1)

	assert.Nil(t, asset)
	assert.Error(t, err)
}
