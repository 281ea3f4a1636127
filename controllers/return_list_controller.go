package controllers

import (
	"github.com/Arjun-316/FurniMart/config"
	"github.com/Arjun-316/FurniMart/models"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
)

// ListUserReturns returns the authenticated customer's return requests in
// repository order (newest first).
func ListUserReturns(c *gin.Context) {
	utils.LogInfo("ListUserReturns called")
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	var returns []models.ReturnRequest
	if err := config.DB.Preload("OrderItem").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&returns).Error; err != nil {
		utils.LogError("Failed to fetch returns for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch return requests", nil)
		return
	}
	utils.LogDebug("Retrieved %d return requests for user ID: %d", len(returns), user.ID)

	responses := make([]gin.H, 0, len(returns))
	for i := range returns {
		responses = append(responses, returnRequestResponse(&returns[i]))
	}

	utils.Success(c, "Return requests retrieved successfully", gin.H{
		"returns": responses,
	})
}

// ListSellerReturns returns the return requests filed against the
// authenticated seller, undecided first, then newest first.
func ListSellerReturns(c *gin.Context) {
	utils.LogInfo("ListSellerReturns called")
	sellerVal, exists := c.Get("seller")
	if !exists {
		utils.LogError("Seller not found in context")
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	seller := sellerVal.(models.Seller)

	var returns []models.ReturnRequest
	if err := config.DB.Preload("OrderItem").
		Where("seller_id = ?", seller.ID).
		Order("seller_approval IS NULL DESC, created_at DESC").
		Find(&returns).Error; err != nil {
		utils.LogError("Failed to fetch returns for seller ID: %d: %v", seller.ID, err)
		utils.InternalServerError(c, "Failed to fetch return requests", nil)
		return
	}
	utils.LogDebug("Retrieved %d return requests for seller ID: %d", len(returns), seller.ID)

	responses := make([]gin.H, 0, len(returns))
	for i := range returns {
		responses = append(responses, returnRequestResponse(&returns[i]))
	}

	utils.Success(c, "Return requests retrieved successfully", gin.H{
		"returns": responses,
	})
}
