package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Arjun-316/FurniMart/config"
	"github.com/Arjun-316/FurniMart/models"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
)

// CancelOrder cancels an order that is still pending. A stale cancel
// against an order the seller has already confirmed (or that is otherwise
// past pending) is rejected with an error rather than silently ignored.
func CancelOrder(guard *utils.InFlightGuard, cache *utils.TTLCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.LogInfo("CancelOrder called")
		userVal, exists := c.Get("user")
		if !exists {
			utils.LogError("User not found in context")
			utils.Unauthorized(c, "Unauthorized")
			return
		}
		user := userVal.(models.User)
		utils.LogInfo("Processing order cancellation for user ID: %d", user.ID)

		orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			utils.LogError("Invalid order ID format: %v", err)
			utils.BadRequest(c, "Invalid order ID", nil)
			return
		}

		var req struct {
			Reason string `json:"reason" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.LogError("Missing cancellation reason for order ID: %d: %v", orderID, err)
			utils.BadRequest(c, "Reason is required", nil)
			return
		}

		if !guard.Begin("cancel", uint(orderID)) {
			utils.LogError("Cancellation already in flight for order ID: %d", orderID)
			utils.Conflict(c, "A cancellation for this order is already being processed", nil)
			return
		}
		defer guard.End("cancel", uint(orderID))

		var order models.Order
		if err := config.DB.Preload("OrderItems").Where("id = ? AND user_id = ?", orderID, user.ID).First(&order).Error; err != nil {
			utils.LogError("Order not found - Order ID: %d, User ID: %d: %v", orderID, user.ID, err)
			utils.NotFound(c, "Order not found")
			return
		}

		if order.Status == models.OrderStatusCancelled {
			utils.LogError("Order already cancelled - Order ID: %d", orderID)
			utils.BadRequest(c, "Order already cancelled", nil)
			return
		}

		if order.Status != models.OrderStatusPending {
			utils.LogError("Order cannot be cancelled - Order ID: %d, Status: %s", orderID, order.Status)
			utils.BadRequest(c, "Order can only be cancelled while it is pending", nil)
			return
		}

		tx := config.DB.Begin()
		if tx.Error != nil {
			utils.LogError("Failed to begin transaction for order ID: %d: %v", orderID, tx.Error)
			utils.InternalServerError(c, "Failed to begin transaction", nil)
			return
		}
		utils.LogDebug("Started transaction for order cancellation - Order ID: %d", orderID)

		order.Status = models.OrderStatusCancelled
		order.CancellationReason = req.Reason
		order.UpdatedAt = time.Now()

		// Prepaid and already paid: the amount goes back to the wallet.
		refundDue := order.PaymentStatus == models.PaymentStatusPaid && !order.IsCOD()
		if refundDue {
			order.RefundStatus = "pending"
			order.RefundAmount = order.FinalTotal
		}

		if err := tx.Save(&order).Error; err != nil {
			utils.LogError("Failed to update order status - Order ID: %d: %v", orderID, err)
			tx.Rollback()
			utils.InternalServerError(c, "Failed to update order", nil)
			return
		}

		history := models.OrderStatusHistory{
			OrderID: order.ID,
			Status:  models.OrderStatusCancelled,
			Notes:   req.Reason,
			Actor:   "customer",
		}
		if err := tx.Create(&history).Error; err != nil {
			utils.LogError("Failed to record status history - Order ID: %d: %v", orderID, err)
			tx.Rollback()
			utils.InternalServerError(c, "Failed to record status history", nil)
			return
		}

		var transaction *models.WalletTransaction
		if refundDue {
			utils.LogDebug("Processing refund for prepaid order - Order ID: %d, Method: %s", orderID, order.PaymentMethod)
			wallet, err := utils.GetOrCreateWallet(tx, user.ID)
			if err != nil {
				utils.LogError("Failed to get wallet for user ID: %d, order ID: %d: %v", user.ID, orderID, err)
				tx.Rollback()
				utils.InternalServerError(c, "Failed to get wallet", nil)
				return
			}

			orderIDUint := uint(orderID)
			reference := fmt.Sprintf("REFUND-ORDER-%d", orderID)
			description := fmt.Sprintf("Refund for cancelled order #%d", orderID)

			transaction, err = utils.CreditWallet(tx, wallet.ID, order.FinalTotal, description, &orderIDUint, reference)
			if err != nil {
				utils.LogError("Failed to credit wallet - Order ID: %d: %v", orderID, err)
				tx.Rollback()
				utils.InternalServerError(c, "Failed to process refund", nil)
				return
			}

			now := time.Now()
			order.RefundStatus = "completed"
			order.RefundedAt = &now
			if err := tx.Save(&order).Error; err != nil {
				utils.LogError("Failed to update refund status - Order ID: %d: %v", orderID, err)
				tx.Rollback()
				utils.InternalServerError(c, "Failed to update refund status", nil)
				return
			}
		}

		if err := tx.Commit().Error; err != nil {
			utils.LogError("Failed to commit transaction - Order ID: %d: %v", orderID, err)
			utils.InternalServerError(c, "Failed to commit transaction", nil)
			return
		}
		utils.LogInfo("Successfully cancelled order ID: %d", orderID)

		cache.Invalidate(orderCacheKey(order.ID))

		response := gin.H{
			"order": gin.H{
				"id":     order.ID,
				"status": order.Status,
				"steps":  utils.DeriveSteps(&order),
			},
		}
		if refundDue {
			response["refund"] = gin.H{
				"amount":      fmt.Sprintf("%.2f", order.RefundAmount),
				"status":      order.RefundStatus,
				"refunded_to": "wallet",
				"reference":   transaction.Reference,
			}
			utils.Success(c, "Order cancelled and refunded to wallet", response)
			return
		}

		utils.Success(c, "Order cancelled", response)
	}
}
