package assignments

import (
	"errors"
	"fmt"
	"time"

	"github.com/Somansh-Bodapati/Asset-Manager/internal/repository"
	custom_error "github.com/Somansh-Bodapati/Asset-Manager/pkg/errors"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

var ErrAssignmentNotFound = errors.New("assignment not found")

type AssignmentRepository interface {
	GetAssignment(id int) (*models.Assignment, error)
	GetAssignments() ([]models.Assignment, error)
	InsertAssignment(tx *goqu.TxDatabase, assetID int, employeeID int, assignedDate time.Time, notes string) (int, error)
	HasOpenAssignment(tx *goqu.TxDatabase, assetID int) (bool, error)
	CloseAssignment(tx *goqu.TxDatabase, assignmentID int, returnDate time.Time) error
}

type assignmentRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) AssignmentRepository {
	return &assignmentRepository{repository: r}
}

func (r *assignmentRepository) GetAssignment(id int) (*models.Assignment, error) {
	query := r.getAssignmentQuery().Where(goqu.Ex{"aa.id": id})

	var flatAssignment models.FlatAssignmentRecord
	found, err := query.Executor().ScanStruct(&flatAssignment)
	if err != nil {
		return nil, fmt.Errorf("unable to select assignment from database: %w", err)
	}
	if !found {
		return nil, ErrAssignmentNotFound
	}

	assignment := flatAssignment.TransformToAssignment()
	return &assignment, nil
}

func (r *assignmentRepository) GetAssignments() ([]models.Assignment, error) {
	query := r.getAssignmentQuery().Order(goqu.I("aa.assigned_date").Desc())

	var flatAssignments []models.FlatAssignmentRecord
	if err := query.Executor().ScanStructs(&flatAssignments); err != nil {
		return nil, fmt.Errorf("unable to select assignments from database: %w", err)
	}

	assignments := make([]models.Assignment, 0, len(flatAssignments))
	for _, flatAssignment := range flatAssignments {
		assignments = append(assignments, flatAssignment.TransformToAssignment())
	}

	return assignments, nil
}

func (r *assignmentRepository) InsertAssignment(tx *goqu.TxDatabase, assetID int, employeeID int, assignedDate time.Time, notes string) (int, error) {
	if tx == nil {
		return 0, fmt.Errorf("transaction is required for InsertAssignment")
	}

	record := goqu.Record{
		"asset_id":      assetID,
		"employee_id":   employeeID,
		"assigned_date": assignedDate,
		"notes":         notes,
	}

	var assignmentID int
	query := tx.Insert("asset_assignments").Rows(record).Returning("id")
	if _, err := query.Executor().ScanVal(&assignmentID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, custom_error.WrapDBError("Assignment insert rejected by constraint", string(pqErr.Code))
		}
		return 0, fmt.Errorf("failed to insert assignment record: %w", err)
	}

	return assignmentID, nil
}

func (r *assignmentRepository) HasOpenAssignment(tx *goqu.TxDatabase, assetID int) (bool, error) {
	condition := goqu.Ex{
		"asset_id":    assetID,
		"return_date": nil,
	}

	var query *goqu.SelectDataset
	if tx != nil {
		query = tx.Select("id").From("asset_assignments")
	} else {
		query = r.repository.GoquDBWrapper.Select("id").From("asset_assignments")
	}

	var id int
	found, err := query.Where(condition).Executor().ScanVal(&id)
	if err != nil {
		return false, fmt.Errorf("failed to check for open assignment: %w", err)
	}

	return found, nil
}

func (r *assignmentRepository) CloseAssignment(tx *goqu.TxDatabase, assignmentID int, returnDate time.Time) error {
	if tx == nil {
		return fmt.Errorf("transaction is required for CloseAssignment")
	}

	result, err := tx.Update("asset_assignments").
		Set(goqu.Record{"return_date": returnDate}).
		Where(goqu.Ex{"id": assignmentID, "return_date": nil}).
		Executor().
		Exec()

	if err != nil {
		return fmt.Errorf("failed to close assignment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

func (r *assignmentRepository) getAssignmentQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		goqu.I("aa.id").As("assignment_id"),
		goqu.I("aa.asset_id").As("asset_id"),
		goqu.I("aa.employee_id").As("employee_id"),
		goqu.I("aa.assigned_date").As("assigned_date"),
		goqu.I("aa.return_date").As("return_date"),
		goqu.I("aa.notes").As("notes"),
		goqu.I("a.name").As("asset_name"),
		goqu.I("a.type").As("asset_type"),
		goqu.I("a.serial_number").As("asset_serial"),
		goqu.I("a.status").As("asset_status"),
		goqu.I("a.purchase_date").As("asset_purchase_date"),
		goqu.I("a.purchase_price").As("asset_purchase_price"),
		goqu.I("e.name").As("employee_name"),
		goqu.I("e.email").As("employee_email"),
		goqu.I("e.department").As("employee_department"),
	).
		From(goqu.T("asset_assignments").As("aa")).
		LeftJoin(
			goqu.T("assets").As("a"),
			goqu.On(goqu.Ex{"aa.asset_id": goqu.I("a.id")}),
		).
		LeftJoin(
			goqu.T("employees").As("e"),
			goqu.On(goqu.Ex{"aa.employee_id": goqu.I("e.id")}),
		)
}
