package controllers

import (
	"time"

	"github.com/Arjun-316/FurniMart/config"
	"github.com/Arjun-316/FurniMart/models"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
)

// LoginRequest is the credential payload for both login surfaces
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginUser authenticates a customer and issues a bearer token
func LoginUser(c *gin.Context) {
	utils.LogInfo("LoginUser called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Email and password are required", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Login failed - user not found: %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login failed - wrong password for user ID: %d", user.ID)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if user.IsBlocked {
		utils.LogError("Blocked user attempted login: %d", user.ID)
		utils.Forbidden(c, "Account is blocked")
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	config.DB.Model(&user).Update("last_login_at", time.Now())
	utils.LogInfo("User %d logged in successfully", user.ID)

	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
	})
}

// LoginSeller authenticates a seller panel account and issues a bearer token
func LoginSeller(c *gin.Context) {
	utils.LogInfo("LoginSeller called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid seller login request: %v", err)
		utils.BadRequest(c, "Email and password are required", nil)
		return
	}

	var seller models.Seller
	if err := config.DB.Where("email = ?", req.Email).First(&seller).Error; err != nil {
		utils.LogError("Seller login failed - not found: %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(req.Password, seller.Password) {
		utils.LogError("Seller login failed - wrong password for seller ID: %d", seller.ID)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !seller.IsActive {
		utils.LogError("Inactive seller attempted login: %d", seller.ID)
		utils.Forbidden(c, "Seller account is inactive")
		return
	}

	token, err := utils.GenerateSellerToken(&seller)
	if err != nil {
		utils.LogError("Failed to generate token for seller ID: %d: %v", seller.ID, err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	config.DB.Model(&seller).Update("last_login", time.Now())
	utils.LogInfo("Seller %d logged in successfully", seller.ID)

	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"seller": gin.H{
			"id":         seller.ID,
			"store_name": seller.StoreName,
			"email":      seller.Email,
		},
	})
}
