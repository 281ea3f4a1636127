package routes

import (
	"github.com/Arjun-316/FurniMart/controllers"
	"github.com/Arjun-316/FurniMart/middleware"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes the storefront customer routes
func initUserRoutes(router *gin.RouterGroup, cache *utils.TTLCache, guard *utils.InFlightGuard) {
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		// Orders
		protected.GET("/orders", controllers.ListOrders)
		protected.GET("/orders/:id", controllers.GetOrderDetails(cache))
		protected.POST("/orders/:id/cancel", controllers.CancelOrder(guard, cache))
		protected.GET("/orders/:id/invoice", controllers.DownloadInvoice)

		// Payment
		protected.POST("/payment/initiate", controllers.InitiatePayment(cache))
		protected.POST("/payment/complete", controllers.CompletePayment(guard, cache))

		// Returns
		protected.POST("/returns", controllers.RequestReturn(guard))
		protected.GET("/returns", controllers.ListUserReturns)
	}
}
