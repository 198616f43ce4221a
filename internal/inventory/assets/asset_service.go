package assets

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Somansh-Bodapati/Asset-Manager/internal/repository"
	custom_error "github.com/Somansh-Bodapati/Asset-Manager/pkg/errors"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/metadata"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"go.uber.org/zap"
)

const (
	missingFieldsMessage  = "Please fill in all required fields"
	initialAssignmentNote = "Assigned at asset creation"
	purchaseDateFormat    = "2006-01-02"
)

var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeDirectory answers whether an employee record exists. Implemented by
// the employees repository.
type EmployeeDirectory interface {
	EmployeeExists(id int) (bool, error)
}

// AssignmentWriter opens an assignment inside the caller's transaction.
// Implemented by the assignments repository.
type AssignmentWriter interface {
	InsertAssignment(tx *goqu.TxDatabase, assetID int, employeeID int, assignedDate time.Time, notes string) (int, error)
}

type CreateAssetResult struct {
	Asset      *models.Asset      `json:"asset"`
	Assignment *models.Assignment `json:"assignment,omitempty"`
}

type Service interface {
	GetAsset(id int) (*models.Asset, error)
	GetAssetList() ([]models.Asset, error)
	CreateAsset(req models.AssetRequest) (*CreateAssetResult, error)
	UpdateAsset(id int, req models.UpdateAssetRequest) (*models.Asset, error)
}

type AssetService struct {
	assetsRepo  AssetsRepository
	assignments AssignmentWriter
	employees   EmployeeDirectory
	repo        *repository.Repository
	runTx       func(db *goqu.Database, fn func(tx *goqu.TxDatabase) error) error
	log         *zap.Logger
}

func NewAssetService(assetsRepo AssetsRepository, assignments AssignmentWriter, employees EmployeeDirectory, repo *repository.Repository, log *zap.Logger) *AssetService {
	return &AssetService{
		assetsRepo:  assetsRepo,
		assignments: assignments,
		employees:   employees,
		repo:        repo,
		runTx:       repository.WithTransaction,
		log:         log,
	}
}

func (s *AssetService) GetAsset(id int) (*models.Asset, error) {
	return s.assetsRepo.GetAsset(id)
}

func (s *AssetService) GetAssetList() ([]models.Asset, error) {
	return s.assetsRepo.GetAssetList()
}

// CreateAsset derives the asset status from the presence of an assignee and,
// when one is given, writes the asset and its opening assignment in a single
// transaction.
func (s *AssetService) CreateAsset(req models.AssetRequest) (*CreateAssetResult, error) {
	if req.Name == "" || req.Type == "" || req.Serial == "" || req.PurchaseDate == "" || req.PurchasePrice == "" {
		return nil, custom_error.NewValidationError(missingFieldsMessage)
	}

	price, err := strconv.ParseFloat(req.PurchasePrice, 64)
	if err != nil {
		return nil, custom_error.NewValidationError("Purchase price must be a number")
	}
	if price < 0 {
		return nil, custom_error.NewValidationError("Purchase price cannot be negative")
	}

	assetType, err := metadata.NewAssetType(req.Type)
	if err != nil {
		return nil, custom_error.NewValidationError(err.Error())
	}

	purchaseDate, err := time.Parse(purchaseDateFormat, req.PurchaseDate)
	if err != nil {
		return nil, custom_error.NewValidationError("Purchase date must use the YYYY-MM-DD format")
	}

	status := metadata.StatusAvailable
	if req.AssigneeID != nil {
		exists, err := s.employees.EmployeeExists(*req.AssigneeID)
		if err != nil {
			return nil, fmt.Errorf("failed to verify assignee: %w", err)
		}
		if !exists {
			return nil, ErrEmployeeNotFound
		}
		status = metadata.StatusAssigned
	}

	asset := models.Asset{
		Name:          req.Name,
		Type:          assetType.String(),
		Serial:        req.Serial,
		Status:        status.String(),
		PurchaseDate:  purchaseDate,
		PurchasePrice: price,
	}

	var assignment *models.Assignment

	// Both writes commit or roll back together.
	err = s.runTx(s.repo.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		assetID, err := s.assetsRepo.InsertAsset(tx, asset)
		if err != nil {
			return err
		}
		asset.ID = assetID

		if req.AssigneeID == nil {
			return nil
		}

		assignedDate := time.Now().UTC()
		assignmentID, err := s.assignments.InsertAssignment(tx, assetID, *req.AssigneeID, assignedDate, initialAssignmentNote)
		if err != nil {
			return fmt.Errorf("failed to insert opening assignment: %w", err)
		}

		assignment = &models.Assignment{
			ID:           assignmentID,
			AssetID:      assetID,
			EmployeeID:   *req.AssigneeID,
			AssignedDate: assignedDate,
			Notes:        initialAssignmentNote,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("asset created",
		zap.Int("asset_id", asset.ID),
		zap.String("serial_number", asset.Serial),
		zap.String("status", asset.Status),
	)

	return &CreateAssetResult{Asset: &asset, Assignment: assignment}, nil
}

// UpdateAsset replaces every field of an existing asset. Status is written as
// submitted and is not reconciled against open assignments.
func (s *AssetService) UpdateAsset(id int, req models.UpdateAssetRequest) (*models.Asset, error) {
	if req.Name == "" || req.Serial == "" || req.PurchaseDate == "" {
		return nil, custom_error.NewValidationError(missingFieldsMessage)
	}

	assetType, err := metadata.NewAssetType(req.Type)
	if err != nil {
		return nil, custom_error.NewValidationError(err.Error())
	}

	status, err := metadata.NewStatus(req.Status)
	if err != nil {
		return nil, custom_error.NewValidationError(err.Error())
	}

	purchaseDate, err := time.Parse(purchaseDateFormat, req.PurchaseDate)
	if err != nil {
		return nil, custom_error.NewValidationError("Purchase date must use the YYYY-MM-DD format")
	}

	if req.PurchasePrice < 0 {
		return nil, custom_error.NewValidationError("Purchase price cannot be negative")
	}

	asset := models.Asset{
		Name:          req.Name,
		Type:          assetType.String(),
		Serial:        req.Serial,
		Status:        status.String(),
		PurchaseDate:  purchaseDate,
		PurchasePrice: req.PurchasePrice,
	}

	if err := s.assetsRepo.UpdateAsset(id, asset); err != nil {
		return nil, err
	}

	s.log.Info("asset updated", zap.Int("asset_id", id), zap.String("status", asset.Status))

	return s.assetsRepo.GetAsset(id)
}
