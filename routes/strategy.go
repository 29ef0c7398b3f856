package routes

import (
	"lifecompass/controllers"

	"github.com/gin-gonic/gin"
)

// SetupStrategyRoutes registers the public generation endpoint.
func SetupStrategyRoutes(router *gin.Engine) {
	router.POST("/api/strategy", controllers.GenerateStrategy)
}

// SetupSavedStrategyRoutes registers the authenticated persistence routes.
func SetupSavedStrategyRoutes(auth *gin.RouterGroup) {
	strategies := auth.Group("/api/strategies")
	{
		strategies.POST("", controllers.SaveStrategy)
		strategies.GET("", controllers.ListStrategies)
		strategies.GET("/:id", controllers.GetStrategy)
		strategies.POST("/draft", controllers.CreateDraft)
		strategies.PUT("/:id/text", controllers.SaveText)
	}
}
