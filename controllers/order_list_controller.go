package controllers

import (
	"github.com/Arjun-316/FurniMart/config"
	"github.com/Arjun-316/FurniMart/models"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
)

// ListOrders returns the authenticated customer's orders, newest first
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := config.DB.Preload("OrderItems").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}
	utils.LogDebug("Retrieved %d orders for user ID: %d", len(orders), user.ID)

	summaries := make([]OrderSummaryResponse, 0, len(orders))
	for i := range orders {
		summaries = append(summaries, orderSummary(&orders[i]))
	}

	utils.SuccessWithPagination(c, "Orders retrieved successfully", summaries, total, pagination.Page, pagination.Limit)
}

// ListSellerOrders returns orders placed against the authenticated seller
func ListSellerOrders(c *gin.Context) {
	utils.LogInfo("ListSellerOrders called")
	sellerVal, exists := c.Get("seller")
	if !exists {
		utils.LogError("Seller not found in context")
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	seller := sellerVal.(models.Seller)

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{}).Where("seller_id = ?", seller.ID)
	if rawStatus := c.Query("status"); rawStatus != "" {
		status, ok := utils.CanonicalOrderStatus(rawStatus)
		if !ok {
			utils.BadRequest(c, "Unknown order status filter", nil)
			return
		}
		query = query.Where("status = ?", status)
	}
	if rawPayment := c.Query("payment_status"); rawPayment != "" {
		paymentStatus, ok := utils.CanonicalPaymentStatus(rawPayment)
		if !ok {
			utils.BadRequest(c, "Unknown payment status filter", nil)
			return
		}
		query = query.Where("payment_status = ?", paymentStatus)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders for seller ID: %d: %v", seller.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := query.Preload("OrderItems").Preload("User").
		Order("created_at DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for seller ID: %d: %v", seller.ID, err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}
	utils.LogDebug("Retrieved %d orders for seller ID: %d", len(orders), seller.ID)

	summaries := make([]OrderSummaryResponse, 0, len(orders))
	for i := range orders {
		summaries = append(summaries, orderSummary(&orders[i]))
	}

	utils.SuccessWithPagination(c, "Orders retrieved successfully", summaries, total, pagination.Page, pagination.Limit)
}
