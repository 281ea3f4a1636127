package controllers

import (
	"time"

	"github.com/Arjun-316/FurniMart/config"
	"github.com/Arjun-316/FurniMart/models"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
)

// ReturnRequestInput is the customer's return submission payload
type ReturnRequestInput struct {
	OrderID           uint   `json:"order_id" binding:"required"`
	OrderItemID       uint   `json:"order_item" binding:"required"`
	Reason            string `json:"reason"`
	ReasonDescription string `json:"reason_description"`
	PickupDate        string `json:"pickup_date"`
}

// RequestReturn files a return request for a delivered order item. Field
// validation happens before any storage access; an item can carry at most
// one undecided-or-approved request at a time.
func RequestReturn(guard *utils.InFlightGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.LogInfo("RequestReturn called")
		userVal, exists := c.Get("user")
		if !exists {
			utils.LogError("User not found in context")
			utils.Unauthorized(c, "Unauthorized")
			return
		}
		user := userVal.(models.User)
		utils.LogInfo("Processing return request for user ID: %d", user.ID)

		var req ReturnRequestInput
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.LogError("Invalid return request payload: %v", err)
			utils.BadRequest(c, "order_id and order_item are required", nil)
			return
		}

		// Client-detectable validation happens before any repository call
		var fieldErrs utils.FieldValidationErrors
		if reasonErr := utils.ValidateReturnReason(req.Reason); reasonErr != nil {
			fieldErrs = append(fieldErrs, *reasonErr)
		}
		pickupDate, dateErr := utils.ValidatePickupDate(req.PickupDate, time.Now())
		if dateErr != nil {
			fieldErrs = append(fieldErrs, *dateErr)
		}
		if len(fieldErrs) > 0 {
			utils.LogError("Return request validation failed for user ID: %d: %v", user.ID, fieldErrs)
			utils.ValidationFailed(c, "Invalid return request", fieldErrs)
			return
		}

		if !guard.Begin("submit-return", req.OrderItemID) {
			utils.LogError("Return submission already in flight for item ID: %d", req.OrderItemID)
			utils.Conflict(c, "A return request for this item is already being processed", nil)
			return
		}
		defer guard.End("submit-return", req.OrderItemID)

		var order models.Order
		if err := config.DB.Preload("OrderItems").Where("id = ? AND user_id = ?", req.OrderID, user.ID).First(&order).Error; err != nil {
			utils.LogError("Order not found - Order ID: %d, User ID: %d: %v", req.OrderID, user.ID, err)
			utils.NotFound(c, "Order not found")
			return
		}

		if order.Status != models.OrderStatusDelivered {
			utils.LogError("Order not eligible for return - Order ID: %d, Status: %s", order.ID, order.Status)
			utils.BadRequest(c, "Items can only be returned after delivery", nil)
			return
		}

		var item *models.OrderItem
		for i := range order.OrderItems {
			if order.OrderItems[i].ID == req.OrderItemID {
				item = &order.OrderItems[i]
				break
			}
		}
		if item == nil {
			utils.LogError("Order item not found - Order ID: %d, Item ID: %d", order.ID, req.OrderItemID)
			utils.NotFound(c, "Order item not found")
			return
		}

		// A rejected request frees the item for a fresh attempt; a pending
		// or approved one blocks.
		var active int64
		if err := config.DB.Model(&models.ReturnRequest{}).
			Where("order_item_id = ? AND (seller_approval IS NULL OR seller_approval = ?)", item.ID, true).
			Count(&active).Error; err != nil {
			utils.LogError("Failed to check existing returns for item ID: %d: %v", item.ID, err)
			utils.InternalServerError(c, "Failed to check existing return requests", nil)
			return
		}
		if active > 0 {
			utils.LogError("Active return already exists for item ID: %d", item.ID)
			utils.Conflict(c, "A return request is already active for this item", nil)
			return
		}

		returnRequest := models.ReturnRequest{
			OrderID:           order.ID,
			OrderItemID:       item.ID,
			UserID:            user.ID,
			SellerID:          order.SellerID,
			Reason:            req.Reason,
			ReasonDescription: req.ReasonDescription,
			PickupDate:        pickupDate,
			Status:            models.ReturnStatusPending,
			SellerApproval:    nil,
			CustomerName:      user.FirstName + " " + user.LastName,
			CustomerEmail:     user.Email,
			CustomerPhone:     user.Phone,
		}
		if err := config.DB.Create(&returnRequest).Error; err != nil {
			utils.LogError("Failed to create return request - Order ID: %d, Item ID: %d: %v", order.ID, item.ID, err)
			utils.InternalServerError(c, "Failed to submit return request", nil)
			return
		}
		utils.LogInfo("Return request %d created for order ID: %d, item ID: %d", returnRequest.ID, order.ID, item.ID)

		utils.Created(c, "Return request submitted successfully", gin.H{
			"return_request": returnRequestResponse(&returnRequest),
			"note":           "Your return request has been submitted. The seller will review it and process accordingly.",
		})
	}
}
