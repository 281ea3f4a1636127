package routes

import (
	"github.com/Arjun-316/FurniMart/controllers"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes.
// The order read cache and the in-flight guard are built by the caller
// and threaded through to the handlers that need them.
func SetupRouter(cache *utils.TTLCache, guard *utils.InFlightGuard) *gin.Engine {
	router := gin.Default()

	api := router.Group("/v1")
	{
		api.POST("/login", controllers.LoginUser)
		api.POST("/seller/login", controllers.LoginSeller)

		initUserRoutes(api, cache, guard)
		initSellerRoutes(api, cache, guard)
	}

	return router
}
