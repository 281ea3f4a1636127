package controllers

import (
	"fmt"
	"strconv"

	"github.com/Arjun-316/FurniMart/config"
	"github.com/Arjun-316/FurniMart/models"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
)

func orderCacheKey(orderID uint) string {
	return fmt.Sprintf("order:%d", orderID)
}

// GetOrderDetails returns one order with its derived lifecycle steps.
// The order record is served from the injected read cache when fresh;
// steps are always re-derived from the record, never cached themselves.
func GetOrderDetails(cache *utils.TTLCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.LogInfo("GetOrderDetails called")
		userVal, exists := c.Get("user")
		if !exists {
			utils.LogError("User not found in context")
			utils.Unauthorized(c, "Unauthorized")
			return
		}
		user := userVal.(models.User)

		orderID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.LogError("Invalid order ID format: %v", err)
			utils.BadRequest(c, "Invalid order ID", nil)
			return
		}

		var order models.Order
		if cached, ok := cache.Get(orderCacheKey(uint(orderID))); ok {
			order = cached.(models.Order)
			utils.LogDebug("Serving order ID: %d from cache", orderID)
		} else {
			if err := config.DB.Preload("OrderItems").Preload("Address").Preload("StatusHistory").
				Where("id = ?", orderID).First(&order).Error; err != nil {
				utils.LogError("Order not found - Order ID: %d: %v", orderID, err)
				utils.NotFound(c, "Order not found")
				return
			}
			cache.Set(orderCacheKey(order.ID), order)
		}

		if order.UserID != user.ID {
			utils.LogError("Unauthorized order access - Order ID: %d, User ID: %d", orderID, user.ID)
			utils.NotFound(c, "Order not found")
			return
		}

		utils.Success(c, "Order retrieved successfully", gin.H{
			"order": orderDetail(&order),
		})
	}
}
