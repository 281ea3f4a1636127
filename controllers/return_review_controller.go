package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Arjun-316/FurniMart/config"
	"github.com/Arjun-316/FurniMart/models"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// sellerReturn loads a return request scoped to the reviewing seller.
func sellerReturn(sellerID, returnID uint) (*models.ReturnRequest, error) {
	var returnRequest models.ReturnRequest
	err := config.DB.Preload("OrderItem").
		Where("id = ? AND seller_id = ?", returnID, sellerID).
		First(&returnRequest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Return request not found", err)
		}
		return nil, utils.WrapError(err, "fetch return request")
	}
	return &returnRequest, nil
}

// applyReturnDecision lands the decision while seller_approval is still
// null. Whoever lands second updates zero rows and gets a conflict, which
// keeps the decision write-once even under a race.
func applyReturnDecision(tx *gorm.DB, returnID uint, updates map[string]interface{}) error {
	result := tx.Model(&models.ReturnRequest{}).
		Where("id = ? AND seller_approval IS NULL", returnID).
		Updates(updates)
	if result.Error != nil {
		return utils.WrapError(result.Error, "update return request")
	}
	if result.RowsAffected == 0 {
		return utils.ConflictError("This return request has already been decided", nil)
	}
	return nil
}

// ReviewReturn applies the seller's single decision to a return request.
// The decision is write-once: it only lands while seller_approval is still
// null, and a second decision on the same request is rejected. Approval
// computes the refund server-side and credits the customer's wallet in
// the same transaction.
func ReviewReturn(guard *utils.InFlightGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.LogInfo("ReviewReturn called")
		sellerVal, exists := c.Get("seller")
		if !exists {
			utils.LogError("Seller not found in context")
			utils.Unauthorized(c, "Unauthorized")
			return
		}
		seller := sellerVal.(models.Seller)

		returnID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.LogError("Invalid return request ID format: %v", err)
			utils.BadRequest(c, "Invalid return request ID", nil)
			return
		}

		var req struct {
			Approval    *bool  `json:"approval" binding:"required"`
			SellerNotes string `json:"seller_notes"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.LogError("Invalid review payload for return ID: %d: %v", returnID, err)
			utils.BadRequest(c, "approval is required", nil)
			return
		}
		if !*req.Approval && req.SellerNotes == "" {
			utils.LogError("Rejection without notes for return ID: %d", returnID)
			utils.BadRequest(c, "seller_notes is required when rejecting a return", nil)
			return
		}

		if !guard.Begin("review-return", uint(returnID)) {
			utils.LogError("Review already in flight for return ID: %d", returnID)
			utils.Conflict(c, "This return request is already being reviewed", nil)
			return
		}
		defer guard.End("review-return", uint(returnID))

		returnRequest, err := sellerReturn(seller.ID, uint(returnID))
		if err != nil {
			utils.LogError("Return request lookup failed - ID: %d, Seller ID: %d: %v", returnID, seller.ID, err)
			if utils.IsNotFoundError(err) {
				utils.NotFound(c, "Return request not found")
				return
			}
			utils.InternalServerError(c, "Failed to fetch return request", nil)
			return
		}

		if returnRequest.IsDecided() {
			utils.LogError("Return request already decided - ID: %d", returnID)
			utils.Conflict(c, "This return request has already been decided", nil)
			return
		}

		tx := config.DB.Begin()
		if tx.Error != nil {
			utils.LogError("Failed to begin transaction for return ID: %d: %v", returnID, tx.Error)
			utils.InternalServerError(c, "Failed to begin transaction", nil)
			return
		}

		now := time.Now()
		updates := map[string]interface{}{
			"seller_approval": *req.Approval,
			"seller_notes":    req.SellerNotes,
			"decided_at":      now,
			"updated_at":      now,
		}

		var refundAmount *float64
		if *req.Approval {
			// Refund is the paid total of the item, never a client value.
			amount := returnRequest.OrderItem.Total - returnRequest.OrderItem.Discount
			refundAmount = &amount
			updates["refund_amount"] = amount
			updates["status"] = models.ReturnStatusApproved
		} else {
			updates["status"] = models.ReturnStatusRejected
		}

		if err := applyReturnDecision(tx, returnRequest.ID, updates); err != nil {
			tx.Rollback()
			if utils.IsConflictError(err) {
				utils.LogError("Concurrent decision detected for return ID: %d", returnID)
				utils.Conflict(c, err.Error(), nil)
				return
			}
			utils.LogError("Failed to update return request - ID: %d: %v", returnID, err)
			utils.InternalServerError(c, "Failed to update return request", nil)
			return
		}

		if *req.Approval {
			wallet, err := utils.GetOrCreateWallet(tx, returnRequest.UserID)
			if err != nil {
				utils.LogError("Failed to get wallet for user ID: %d, return ID: %d: %v", returnRequest.UserID, returnID, err)
				tx.Rollback()
				utils.AppErrorResponse(c, err, "Failed to process refund")
				return
			}

			reference := fmt.Sprintf("REFUND-RETURN-%d", returnRequest.ID)
			description := fmt.Sprintf("Refund for returned item in order #%d", returnRequest.OrderID)
			if _, err := utils.CreditWallet(tx, wallet.ID, *refundAmount, description, &returnRequest.OrderID, reference); err != nil {
				utils.LogError("Failed to credit wallet for return ID: %d: %v", returnID, err)
				tx.Rollback()
				utils.AppErrorResponse(c, err, "Failed to process refund")
				return
			}
			utils.LogDebug("Credited refund %.2f to wallet %d for return ID: %d", *refundAmount, wallet.ID, returnID)
		}

		if err := tx.Commit().Error; err != nil {
			utils.LogError("Failed to commit transaction for return ID: %d: %v", returnID, err)
			utils.InternalServerError(c, "Failed to process review", nil)
			return
		}

		returnRequest.SellerApproval = req.Approval
		returnRequest.SellerNotes = req.SellerNotes
		returnRequest.DecidedAt = &now
		returnRequest.RefundAmount = refundAmount
		if *req.Approval {
			returnRequest.Status = models.ReturnStatusApproved
		} else {
			returnRequest.Status = models.ReturnStatusRejected
		}

		action := "rejected"
		if *req.Approval {
			action = "approved"
		}
		utils.LogInfo("Return request %d %s by seller %d", returnRequest.ID, action, seller.ID)

		utils.Success(c, fmt.Sprintf("Return request %s successfully", action), gin.H{
			"return_request": returnRequestResponse(returnRequest),
		})
	}
}
