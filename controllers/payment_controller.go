package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/Arjun-316/FurniMart/config"
	"github.com/Arjun-316/FurniMart/models"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
)

// enabledInstruments maps a canonical prepaid payment method to the
// gateway checkout instruments it may use.
var enabledInstruments = map[string]gin.H{
	models.PaymentMethodCard:       {"card": true, "netbanking": false, "upi": false},
	models.PaymentMethodNetBanking: {"card": false, "netbanking": true, "upi": false},
	models.PaymentMethodUPI:        {"card": false, "netbanking": false, "upi": true},
}

// amountInPaise converts a rupee amount to the gateway's integer paise.
// Rounding matters: truncating 19.99*100 would drop a paisa.
func amountInPaise(amount float64) int {
	return int(math.Round(amount * 100))
}

// InitiatePayment creates a gateway order for a pending prepaid payment
// and returns the checkout parameters, with instruments restricted to the
// order's payment method.
func InitiatePayment(cache *utils.TTLCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.LogInfo("InitiatePayment called")
		userVal, exists := c.Get("user")
		if !exists {
			utils.LogError("User not found in context")
			utils.Unauthorized(c, "User not found")
			return
		}
		user := userVal.(models.User)

		var req struct {
			OrderID       uint   `json:"order_id" binding:"required"`
			PaymentMethod string `json:"payment_method"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.LogError("Invalid request for user ID: %d: %v", user.ID, err)
			utils.BadRequest(c, "Invalid request. order_id is required", err.Error())
			return
		}

		var order models.Order
		if err := config.DB.Preload("Address").Where("id = ? AND user_id = ?", req.OrderID, user.ID).First(&order).Error; err != nil {
			utils.LogError("Order not found for ID: %d, user ID: %d", req.OrderID, user.ID)
			utils.NotFound(c, "Order not found")
			return
		}

		if order.PaymentStatus == models.PaymentStatusPaid {
			utils.LogError("Payment already completed - Order ID: %d", order.ID)
			utils.BadRequest(c, "Payment for this order has already been completed", nil)
			return
		}

		method := order.PaymentMethod
		if req.PaymentMethod != "" {
			canonical, ok := utils.CanonicalPaymentMethod(req.PaymentMethod)
			if !ok {
				utils.LogError("Unknown payment method %q for order ID: %d", req.PaymentMethod, order.ID)
				utils.BadRequest(c, "Unknown payment method", nil)
				return
			}
			method = canonical
		}

		instruments, ok := enabledInstruments[method]
		if !ok {
			utils.LogError("Payment method %s cannot be completed through the gateway - Order ID: %d", method, order.ID)
			utils.BadRequest(c, "This payment method is not payable online", nil)
			return
		}

		amountPaise := amountInPaise(order.FinalTotal)
		utils.LogInfo("Creating gateway order: %d paise for order ID: %d", amountPaise, order.ID)

		client := razorpay.NewClient(os.Getenv("RAZORPAY_KEY"), os.Getenv("RAZORPAY_SECRET"))
		orderData := map[string]interface{}{
			"amount":          amountPaise,
			"currency":        "INR",
			"receipt":         "order_rcptid_" + strconv.FormatUint(uint64(order.ID), 10),
			"payment_capture": 1,
		}
		rzOrder, err := client.Order.Create(orderData, nil)
		if err != nil {
			appErr := utils.ClassifyRemoteError(err, nil).AppError()
			utils.LogError("Failed to create gateway order for order ID: %d: %v", order.ID, err)
			utils.AppErrorResponse(c, appErr, "Payment initiation failed")
			return
		}

		if err := config.DB.Model(&order).Updates(map[string]interface{}{
			"payment_method":    method,
			"razorpay_order_id": fmt.Sprintf("%v", rzOrder["id"]),
		}).Error; err != nil {
			utils.LogError("Failed to store gateway order id for order ID: %d: %v", order.ID, err)
			utils.InternalServerError(c, "Failed to update order details", nil)
			return
		}
		utils.LogInfo("Gateway order created for order ID: %d", order.ID)

		// The stored payment method feeds the lifecycle steps served by
		// the order detail endpoint, so the cached copy is now stale.
		cache.Invalidate(orderCacheKey(order.ID))

		utils.Success(c, "Payment initiated successfully", gin.H{
			"order": gin.H{
				"id":                order.ID,
				"razorpay_order_id": rzOrder["id"],
				"amount":            fmt.Sprintf("%.2f", order.FinalTotal),
				"payment_method":    method,
			},
			"instruments": instruments,
			"address": gin.H{
				"line1":       order.Address.Line1,
				"line2":       order.Address.Line2,
				"city":        order.Address.City,
				"state":       order.Address.State,
				"country":     order.Address.Country,
				"postal_code": order.Address.PostalCode,
			},
			"key": os.Getenv("RAZORPAY_KEY"),
			"user": gin.H{
				"name":  user.Username,
				"email": user.Email,
			},
		})
	}
}

// CompletePayment verifies the signed gateway receipt and marks the order
// paid. Verification failure leaves the order untouched; the customer has
// to re-initiate. A pending order whose payment clears is confirmed.
func CompletePayment(guard *utils.InFlightGuard, cache *utils.TTLCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.LogInfo("CompletePayment called")
		userVal, exists := c.Get("user")
		if !exists {
			utils.LogError("User not found in context")
			utils.Unauthorized(c, "User not found")
			return
		}
		user := userVal.(models.User)

		var req struct {
			OrderID          uint   `json:"order_id" binding:"required"`
			GatewayOrderID   string `json:"gateway_order_id" binding:"required"`
			GatewayPaymentID string `json:"gateway_payment_id" binding:"required"`
			GatewaySignature string `json:"gateway_signature" binding:"required"`
			PaymentMethod    string `json:"payment_method"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.LogError("Invalid request for user ID: %d: %v", user.ID, err)
			utils.BadRequest(c, "Invalid request", err.Error())
			return
		}

		if !guard.Begin("complete-payment", req.OrderID) {
			utils.LogError("Payment completion already in flight for order ID: %d", req.OrderID)
			utils.Conflict(c, "Payment for this order is already being processed", nil)
			return
		}
		defer guard.End("complete-payment", req.OrderID)

		// Verify signature before touching any state
		keySecret := os.Getenv("RAZORPAY_SECRET")
		data := req.GatewayOrderID + "|" + req.GatewayPaymentID
		h := hmac.New(sha256.New, []byte(keySecret))
		h.Write([]byte(data))
		generatedSignature := hex.EncodeToString(h.Sum(nil))
		if generatedSignature != req.GatewaySignature {
			utils.LogError("Payment verification failed for order ID: %d, user ID: %d", req.OrderID, user.ID)
			utils.BadRequest(c, "Payment verification failed", gin.H{"retry": true})
			return
		}
		utils.LogInfo("Payment signature verified for order ID: %d", req.OrderID)

		var order models.Order
		if err := config.DB.Where("id = ? AND user_id = ?", req.OrderID, user.ID).First(&order).Error; err != nil {
			utils.LogError("Order not found for ID: %d, user ID: %d: %v", req.OrderID, user.ID, err)
			utils.NotFound(c, "Order not found")
			return
		}

		if order.RazorpayOrderID != req.GatewayOrderID {
			utils.LogError("Gateway order ID mismatch for order ID: %d. Expected: %s, Received: %s",
				req.OrderID, order.RazorpayOrderID, req.GatewayOrderID)
			utils.BadRequest(c, "Invalid gateway order ID", nil)
			return
		}

		if order.PaymentStatus == models.PaymentStatusPaid {
			utils.LogError("Payment already recorded for order ID: %d", order.ID)
			utils.BadRequest(c, "Payment for this order has already been completed", nil)
			return
		}

		tx := config.DB.Begin()
		if tx.Error != nil {
			utils.LogError("Failed to start transaction for order ID: %d: %v", order.ID, tx.Error)
			utils.InternalServerError(c, "Failed to start transaction", nil)
			return
		}

		updates := map[string]interface{}{
			"payment_status": models.PaymentStatusPaid,
			"updated_at":     time.Now(),
		}
		// Payment clearing confirms a still-pending order.
		confirmed := false
		if order.Status == models.OrderStatusPending {
			updates["status"] = models.OrderStatusConfirmed
			confirmed = true
		}
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			utils.LogError("Failed to update order ID: %d: %v", order.ID, err)
			tx.Rollback()
			utils.InternalServerError(c, "Failed to update order", nil)
			return
		}

		if confirmed {
			history := models.OrderStatusHistory{
				OrderID: order.ID,
				Status:  models.OrderStatusConfirmed,
				Notes:   fmt.Sprintf("Payment %s captured", req.GatewayPaymentID),
				Actor:   "system",
			}
			if err := tx.Create(&history).Error; err != nil {
				utils.LogError("Failed to record status history - Order ID: %d: %v", order.ID, err)
				tx.Rollback()
				utils.InternalServerError(c, "Failed to record status history", nil)
				return
			}
		}

		if err := tx.Commit().Error; err != nil {
			utils.LogError("Failed to commit transaction for order ID: %d: %v", order.ID, err)
			utils.InternalServerError(c, "Failed to commit transaction", nil)
			return
		}
		utils.LogInfo("Payment completed for order ID: %d", order.ID)

		cache.Invalidate(orderCacheKey(order.ID))

		order.PaymentStatus = models.PaymentStatusPaid
		if confirmed {
			order.Status = models.OrderStatusConfirmed
		}

		utils.Success(c, "Thank you for your payment! Your order is confirmed.", gin.H{
			"order_id":       order.ID,
			"status":         order.Status,
			"payment_status": order.PaymentStatus,
			"final_total":    fmt.Sprintf("%.2f", order.FinalTotal),
			"steps":          utils.DeriveSteps(&order),
		})
	}
}
