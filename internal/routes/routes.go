package routes

import (
	"devjobs_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route of the application.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("/")
	{
		appHandlers.VacancyHandler.RegisterRoutes(root)
		appHandlers.AuthHandler.RegisterRoutes(root)
		appHandlers.UserHandler.RegisterRoutes(root)

		// One-shot notices queued by the preceding request.
		root.GET("/mensajes", appHandlers.Base.Messages)
	}
}
