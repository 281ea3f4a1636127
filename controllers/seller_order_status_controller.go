package controllers

import (
	"strconv"
	"time"

	"github.com/Arjun-316/FurniMart/config"
	"github.com/Arjun-316/FurniMart/models"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
)

// UpdateOrderStatus advances an order through the fulfilment sequence on
// behalf of the seller. Only moves allowed by the transition table are
// accepted; the response carries the re-derived lifecycle steps.
func UpdateOrderStatus(cache *utils.TTLCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.LogInfo("UpdateOrderStatus called")
		sellerVal, exists := c.Get("seller")
		if !exists {
			utils.LogError("Seller not found in context")
			utils.Unauthorized(c, "Unauthorized")
			return
		}
		seller := sellerVal.(models.Seller)

		orderID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.LogError("Invalid order ID format: %v", err)
			utils.BadRequest(c, "Invalid order ID", nil)
			return
		}

		var req struct {
			Status string `json:"status" binding:"required"`
			Notes  string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.LogError("Missing status for order ID: %d: %v", orderID, err)
			utils.BadRequest(c, "status is required", nil)
			return
		}

		newStatus, ok := utils.CanonicalOrderStatus(req.Status)
		if !ok {
			utils.LogError("Unknown status %q for order ID: %d", req.Status, orderID)
			utils.BadRequest(c, "Unknown order status", nil)
			return
		}
		if newStatus == models.OrderStatusCancelled {
			utils.LogError("Seller attempted cancellation via status update - Order ID: %d", orderID)
			utils.BadRequest(c, "Orders cannot be cancelled through status updates", nil)
			return
		}

		var order models.Order
		if err := config.DB.Where("id = ? AND seller_id = ?", orderID, seller.ID).First(&order).Error; err != nil {
			utils.LogError("Order not found - Order ID: %d, Seller ID: %d: %v", orderID, seller.ID, err)
			utils.NotFound(c, "Order not found")
			return
		}

		if !models.CanTransition(order.Status, newStatus) {
			utils.LogError("Illegal transition %s -> %s for order ID: %d", order.Status, newStatus, orderID)
			utils.BadRequest(c, "Order cannot move from "+order.Status+" to "+newStatus, nil)
			return
		}

		// Confirming a COD order accepts it with collection pending; prepaid
		// orders are confirmed by payment completion instead.
		if newStatus == models.OrderStatusConfirmed && !order.IsCOD() && order.PaymentStatus != models.PaymentStatusPaid {
			utils.LogError("Prepaid order ID: %d cannot be confirmed before payment", orderID)
			utils.BadRequest(c, "Prepaid orders are confirmed when payment completes", nil)
			return
		}

		tx := config.DB.Begin()
		if tx.Error != nil {
			utils.LogError("Failed to begin transaction for order ID: %d: %v", orderID, tx.Error)
			utils.InternalServerError(c, "Failed to begin transaction", nil)
			return
		}

		updates := map[string]interface{}{
			"status":     newStatus,
			"updated_at": time.Now(),
		}
		// COD collection clears on delivery.
		if newStatus == models.OrderStatusDelivered && order.IsCOD() {
			updates["payment_status"] = models.PaymentStatusPaid
		}
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			utils.LogError("Failed to update order status - Order ID: %d: %v", orderID, err)
			tx.Rollback()
			utils.InternalServerError(c, "Failed to update order status", nil)
			return
		}

		history := models.OrderStatusHistory{
			OrderID: order.ID,
			Status:  newStatus,
			Notes:   req.Notes,
			Actor:   "seller",
		}
		if err := tx.Create(&history).Error; err != nil {
			utils.LogError("Failed to record status history - Order ID: %d: %v", orderID, err)
			tx.Rollback()
			utils.InternalServerError(c, "Failed to record status history", nil)
			return
		}

		if err := tx.Commit().Error; err != nil {
			utils.LogError("Failed to commit transaction - Order ID: %d: %v", orderID, err)
			utils.InternalServerError(c, "Failed to update order status", nil)
			return
		}
		utils.LogInfo("Order ID: %d moved to %s by seller %d", orderID, newStatus, seller.ID)

		cache.Invalidate(orderCacheKey(order.ID))

		order.Status = newStatus
		if newStatus == models.OrderStatusDelivered && order.IsCOD() {
			order.PaymentStatus = models.PaymentStatusPaid
		}

		utils.Success(c, "Order status updated successfully", gin.H{
			"order": gin.H{
				"id":             order.ID,
				"status":         order.Status,
				"payment_status": order.PaymentStatus,
				"steps":          utils.DeriveSteps(&order),
			},
		})
	}
}
