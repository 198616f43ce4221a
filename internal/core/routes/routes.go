package routes

import (
	"github.com/Somansh-Bodapati/Asset-Manager/internal/core/container"
	"github.com/Somansh-Bodapati/Asset-Manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, container *container.Container) {
	container.AssetHandler.RegisterRoutes(router)
	container.EmployeeHandler.RegisterRoutes(router)
	container.AssignmentHandler.RegisterRoutes(router)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckHandler())
}
