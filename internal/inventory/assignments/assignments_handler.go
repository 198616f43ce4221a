package assignments

import (
	"errors"
	"net/http"
	"strconv"

	custom_error "github.com/Somansh-Bodapati/Asset-Manager/pkg/errors"
	"github.com/Somansh-Bodapati/Asset-Manager/pkg/models"

	"github.com/gin-gonic/gin"
)

type AssignmentsHandler struct {
	service Service
}

func NewAssignmentsHandler(service Service) *AssignmentsHandler {
	return &AssignmentsHandler{service: service}
}

func (h *AssignmentsHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/assignments", h.GetAssignments)
	router.POST("/assignments", h.CreateAssignment)
	router.POST("/assignments/:id/return", h.ReturnAssignment)
	router.GET("/employees/:id/assignments/active", h.GetActiveAssignments)
}

func (h *AssignmentsHandler) GetAssignments(c *gin.Context) {
	assignments, err := h.service.GetAssignments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

func (h *AssignmentsHandler) GetActiveAssignments(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	assignments, err := h.service.GetActiveAssignmentsForEmployee(employeeID)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find employee"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get active assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

func (h *AssignmentsHandler) CreateAssignment(c *gin.Context) {
	var req models.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	assignment, err := h.service.CreateAssignment(req)
	if err != nil {
		h.abortOnWriteError(c, err, "Failed to create assignment")
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

func (h *AssignmentsHandler) ReturnAssignment(c *gin.Context) {
	assignmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	assignment, err := h.service.ReturnAssignment(assignmentID)
	if err != nil {
		h.abortOnWriteError(c, err, "Failed to return assignment")
		return
	}

	c.JSON(http.StatusOK, assignment)
}

func (h *AssignmentsHandler) abortOnWriteError(c *gin.Context, err error, fallback string) {
	switch e := err.(type) {
	case *custom_error.ValidationError:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": e.Error()})
	case *custom_error.ForeignKeyViolationError:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Assignment references a missing record", "details": e.Error()})
	case *custom_error.UniqueViolationError:
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Assignment conflicts with an existing record", "details": e.Error()})
	default:
		switch {
		case errors.Is(err, ErrAssetNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Unable to find asset"})
		case errors.Is(err, ErrEmployeeNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Unable to find employee"})
		case errors.Is(err, ErrAssignmentNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Unable to find assignment"})
		case errors.Is(err, ErrAssetAlreadyAssigned):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Asset already has an open assignment"})
		case errors.Is(err, ErrAssignmentClosed):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Assignment is already closed"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
		}
	}
}
