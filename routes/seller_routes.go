package routes

import (
	"github.com/Arjun-316/FurniMart/controllers"
	"github.com/Arjun-316/FurniMart/middleware"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
)

// initSellerRoutes initializes the seller panel routes
func initSellerRoutes(router *gin.RouterGroup, cache *utils.TTLCache, guard *utils.InFlightGuard) {
	seller := router.Group("/seller")
	seller.Use(middleware.SellerAuthMiddleware())
	{
		// Orders
		seller.GET("/orders", controllers.ListSellerOrders)
		seller.PUT("/orders/:id/status", controllers.UpdateOrderStatus(cache))

		// Returns
		seller.GET("/returns", controllers.ListSellerReturns)
		seller.POST("/returns/:id/approve", controllers.ReviewReturn(guard))
		seller.GET("/returns/export", controllers.ExportReturnsReport)
	}
}
