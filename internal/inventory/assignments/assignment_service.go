package assignments

import (
	"errors"
	"fmt"
	"time"

	"github.com/Somansh-Bodapati/Asset-Manager/internal/inventory/assets"
	"github.com/Somansh-Bodapati/Asset-Manager/internal/repository"
	custom_error "github.com/Somansh-Bodapati/Asset-Manager/pkg/errors"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/metadata"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"go.uber.org/zap"
)

var (
	ErrAssetNotFound        = errors.New("asset not found")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrAssetAlreadyAssigned = errors.New("asset already has an open assignment")
	ErrAssignmentClosed     = errors.New("assignment is already closed")
)

// AssetDirectory is the slice of the assets repository the assignment rules
// need: looking an asset up and moving its status inside a transaction.
type AssetDirectory interface {
	GetAsset(id int) (*models.Asset, error)
	UpdateAssetStatus(tx *goqu.TxDatabase, assetID int, status metadata.Status) error
}

type EmployeeDirectory interface {
	EmployeeExists(id int) (bool, error)
}

type Service interface {
	GetAssignments() ([]models.Assignment, error)
	GetActiveAssignmentsForEmployee(employeeID int) ([]models.Assignment, error)
	CreateAssignment(req models.AssignmentRequest) (*models.Assignment, error)
	ReturnAssignment(id int) (*models.Assignment, error)
}

type AssignmentService struct {
	assignmentRepo AssignmentRepository
	assets         AssetDirectory
	employees      EmployeeDirectory
	repo           *repository.Repository
	runTx          func(db *goqu.Database, fn func(tx *goqu.TxDatabase) error) error
	log            *zap.Logger
}

func NewAssignmentService(assignmentRepo AssignmentRepository, assets AssetDirectory, employees EmployeeDirectory, repo *repository.Repository, log *zap.Logger) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		assets:         assets,
		employees:      employees,
		repo:           repo,
		runTx:          repository.WithTransaction,
		log:            log,
	}
}

// ActiveAssignmentsFor filters an already-loaded collection down to the open
// assignments held by one employee. Pure, no store access.
func ActiveAssignmentsFor(employeeID int, assignments []models.Assignment) []models.Assignment {
	active := make([]models.Assignment, 0)
	for _, assignment := range assignments {
		if assignment.EmployeeID == employeeID && assignment.IsOpen() {
			active = append(active, assignment)
		}
	}
	return active
}

func (s *AssignmentService) GetAssignments() ([]models.Assignment, error) {
	return s.assignmentRepo.GetAssignments()
}

func (s *AssignmentService) GetActiveAssignmentsForEmployee(employeeID int) ([]models.Assignment, error) {
	exists, err := s.employees.EmployeeExists(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	assignments, err := s.assignmentRepo.GetAssignments()
	if err != nil {
		return nil, err
	}

	return ActiveAssignmentsFor(employeeID, assignments), nil
}

// CreateAssignment opens an assignment against an existing asset and moves
// the asset status to assigned in the same transaction. An asset may hold at
// most one open assignment.
func (s *AssignmentService) CreateAssignment(req models.AssignmentRequest) (*models.Assignment, error) {
	if req.AssetID == 0 || req.EmployeeID == 0 {
		return nil, custom_error.NewValidationError("Please fill in all required fields")
	}

	if _, err := s.assets.GetAsset(req.AssetID); err != nil {
		if errors.Is(err, assets.ErrAssetNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to verify asset: %w", err)
	}

	exists, err := s.employees.EmployeeExists(req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	assignedDate := time.Now().UTC()
	var assignmentID int

	err = s.runTx(s.repo.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		open, err := s.assignmentRepo.HasOpenAssignment(tx, req.AssetID)
		if err != nil {
			return err
		}
		if open {
			return ErrAssetAlreadyAssigned
		}

		assignmentID, err = s.assignmentRepo.InsertAssignment(tx, req.AssetID, req.EmployeeID, assignedDate, req.Notes)
		if err != nil {
			return err
		}

		return s.assets.UpdateAssetStatus(tx, req.AssetID, metadata.StatusAssigned)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("assignment created",
		zap.Int("assignment_id", assignmentID),
		zap.Int("asset_id", req.AssetID),
		zap.Int("employee_id", req.EmployeeID),
	)

	return &models.Assignment{
		ID:           assignmentID,
		AssetID:      req.AssetID,
		EmployeeID:   req.EmployeeID,
		AssignedDate: assignedDate,
		Notes:        req.Notes,
	}, nil
}

// ReturnAssignment closes an open assignment and moves the asset back to
// available, both in one transaction.
func (s *AssignmentService) ReturnAssignment(id int) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetAssignment(id)
	if err != nil {
		return nil, err
	}
	if !assignment.IsOpen() {
		return nil, ErrAssignmentClosed
	}

	returnDate := time.Now().UTC()

	err = s.runTx(s.repo.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if err := s.assignmentRepo.CloseAssignment(tx, id, returnDate); err != nil {
			return err
		}
		return s.assets.UpdateAssetStatus(tx, assignment.AssetID, metadata.StatusAvailable)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("assignment returned",
		zap.Int("assignment_id", id),
		zap.Int("asset_id", assignment.AssetID),
	)

	assignment.ReturnDate = &returnDate
	return assignment, nil
}
