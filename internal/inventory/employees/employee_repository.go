package employees

import (
	"errors"
	"fmt"

	"github.com/Somansh-Bodapati/Asset-Manager/internal/repository"
	custom_error "github.com/Somansh-Bodapati/Asset-Manager/pkg/errors"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type EmployeeRepository interface {
	GetEmployee(id int) (*models.Employee, error)
	GetEmployees() ([]models.Employee, error)
	PersistEmployee(employee models.Employee) (int, error)
	UpdateEmployee(id int, employee models.Employee) error
	EmployeeExists(id int) (bool, error)
}

type employeeRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) EmployeeRepository {
	return &employeeRepository{repository: r}
}

func (r *employeeRepository) GetEmployee(id int) (*models.Employee, error) {
	var employee models.Employee
	query := r.repository.GoquDBWrapper.
		Select("id", "name", "email", "department").
		From("employees").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&employee)
	if err != nil {
		return nil, fmt.Errorf("unable to select employee from database: %w", err)
	}
	if !found {
		return nil, ErrEmployeeNotFound
	}

	return &employee, nil
}

func (r *employeeRepository) GetEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	query := r.repository.GoquDBWrapper.
		Select("id", "name", "email", "department").
		From("employees").
		Order(goqu.I("name").Asc())

	if err := query.Executor().ScanStructs(&employees); err != nil {
		return nil, fmt.Errorf("unable to select employees from database: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) PersistEmployee(employee models.Employee) (int, error) {
	record := goqu.Record{
		"name":       employee.Name,
		"email":      employee.Email,
		"department": employee.Department,
	}

	var employeeID int
	query := r.repository.GoquDBWrapper.Insert("employees").Rows(record).Returning("id")
	if _, err := query.Executor().ScanVal(&employeeID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, custom_error.WrapDBError("Employee insert rejected by constraint", string(pqErr.Code))
		}
		return 0, fmt.Errorf("failed to insert employee record: %w", err)
	}

	return employeeID, nil
}

func (r *employeeRepository) UpdateEmployee(id int, employee models.Employee) error {
	record := goqu.Record{
		"name":       employee.Name,
		"email":      employee.Email,
		"department": employee.Department,
	}

	result, err := r.repository.GoquDBWrapper.
		Update("employees").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return custom_error.WrapDBError("Employee update rejected by constraint", string(pqErr.Code))
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) EmployeeExists(id int) (bool, error) {
	var found int
	query := r.repository.GoquDBWrapper.
		Select("id").
		From("employees").
		Where(goqu.Ex{"id": id})

	exists, err := query.Executor().ScanVal(&found)
	if err != nil {
		return false, fmt.Errorf("failed to check for employee: %w", err)
	}

	return exists, nil
}
