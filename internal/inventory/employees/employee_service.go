package employees

import (
	custom_error "github.com/Somansh-Bodapati/Asset-Manager/pkg/errors"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/metadata"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/models"

	"go.uber.org/zap"
)

const missingFieldsMessage = "Please fill in all required fields"

type Service interface {
	GetEmployee(id int) (*models.Employee, error)
	GetEmployees() ([]models.Employee, error)
	CreateEmployee(req models.EmployeeRequest) (*models.Employee, error)
	UpdateEmployee(id int, req models.EmployeeRequest) (*models.Employee, error)
}

type EmployeeService struct {
	employeeRepo EmployeeRepository
	log          *zap.Logger
}

func NewEmployeeService(employeeRepo EmployeeRepository, log *zap.Logger) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, log: log}
}

func (s *EmployeeService) GetEmployee(id int) (*models.Employee, error) {
	return s.employeeRepo.GetEmployee(id)
}

func (s *EmployeeService) GetEmployees() ([]models.Employee, error) {
	return s.employeeRepo.GetEmployees()
}

func (s *EmployeeService) CreateEmployee(req models.EmployeeRequest) (*models.Employee, error) {
	employee, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	employeeID, err := s.employeeRepo.PersistEmployee(*employee)
	if err != nil {
		return nil, err
	}
	employee.ID = employeeID

	s.log.Info("employee created",
		zap.Int("employee_id", employeeID),
		zap.String("department", employee.Department),
	)

	return employee, nil
}

func (s *EmployeeService) UpdateEmployee(id int, req models.EmployeeRequest) (*models.Employee, error) {
	employee, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	if err := s.employeeRepo.UpdateEmployee(id, *employee); err != nil {
		return nil, err
	}

	s.log.Info("employee updated", zap.Int("employee_id", id))

	return s.employeeRepo.GetEmployee(id)
}

func (s *EmployeeService) validate(req models.EmployeeRequest) (*models.Employee, error) {
	if req.Name == "" || req.Email == "" || req.Department == "" {
		return nil, custom_error.NewValidationError(missingFieldsMessage)
	}

	department, err := metadata.NewDepartment(req.Department)
	if err != nil {
		return nil, custom_error.NewValidationError(err.Error())
	}

	return &models.Employee{
		Name:       req.Name,
		Email:      req.Email,
		Department: department.String(),
	}, nil
}
