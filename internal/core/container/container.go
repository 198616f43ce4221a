package container

import (
	"database/sql"

	"github.com/Somansh-Bodapati/Asset-Manager/internal/inventory/assets"
	"github.com/Somansh-Bodapati/Asset-Manager/internal/inventory/assignments"
	"github.com/Somansh-Bodapati/Asset-Manager/internal/inventory/employees"
	"github.com/Somansh-Bodapati/Asset-Manager/internal/repository"

	"go.uber.org/zap"
)

type Container struct {
	Repository        *repository.Repository
	AssetHandler      *assets.AssetsHandler
	EmployeeHandler   *employees.EmployeesHandler
	AssignmentHandler *assignments.AssignmentsHandler
}

func NewAppContainer(db *sql.DB, log *zap.Logger) *Container {
	repo := repository.NewRepository(db)

	assetRepo := assets.NewRepository(repo)
	employeeRepo := employees.NewRepository(repo)
	assignmentRepo := assignments.NewRepository(repo)

	assetService := assets.NewAssetService(assetRepo, assignmentRepo, employeeRepo, repo, log)
	employeeService := employees.NewEmployeeService(employeeRepo, log)
	assignmentService := assignments.NewAssignmentService(assignmentRepo, assetRepo, employeeRepo, repo, log)

	return &Container{
		Repository:        repo,
		AssetHandler:      assets.NewAssetsHandler(assetService),
		EmployeeHandler:   employees.NewEmployeesHandler(employeeService),
		AssignmentHandler: assignments.NewAssignmentsHandler(assignmentService),
	}
}
