package employees

import (
	"errors"
	"net/http"
	"strconv"

	custom_error "github.com/Somansh-Bodapati/Asset-Manager/pkg/errors"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/models"

	"github.com/gin-gonic/gin"
)

type EmployeesHandler struct {
	service Service
}

func NewEmployeesHandler(service Service) *EmployeesHandler {
	return &EmployeesHandler{service: service}
}

func (h *EmployeesHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/employees", h.GetEmployees)
	router.GET("/employees/:id", h.GetEmployee)
	router.POST("/employees", h.CreateEmployee)
	router.PUT("/employees/:id", h.UpdateEmployee)
}

func (h *EmployeesHandler) GetEmployees(c *gin.Context) {
	employees, err := h.service.GetEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get employees", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (h *EmployeesHandler) GetEmployee(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	employee, err := h.service.GetEmployee(employeeID)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find employee"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get employee", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeesHandler) CreateEmployee(c *gin.Context) {
	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	employee, err := h.service.CreateEmployee(req)
	if err != nil {
		h.abortOnWriteError(c, err, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeesHandler) UpdateEmployee(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	var req models.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	employee, err := h.service.UpdateEmployee(employeeID, req)
	if err != nil {
		h.abortOnWriteError(c, err, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeesHandler) abortOnWriteError(c *gin.Context, err error, fallback string) {
	switch e := err.(type) {
	case *custom_error.ValidationError:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": e.Error()})
	case *custom_error.UniqueViolationError:
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Employee conflicts with an existing record", "details": e.Error()})
	case *custom_error.ForeignKeyViolationError:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Employee references a missing record", "details": e.Error()})
	default:
		if errors.Is(err, ErrEmployeeNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Unable to find employee"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
