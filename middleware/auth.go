package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Arjun-316/FurniMart/config"
	"github.com/Arjun-316/FurniMart/models"
	"github.com/Arjun-316/FurniMart/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// AuthMiddleware authenticates storefront customers from the bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerToken(c)
		if !ok {
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			utils.LogError("User ID not found in token claims")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}
		utils.LogDebug("Authenticating user ID: %d", uint(userID))

		var user models.User
		if err := config.DB.First(&user, uint(userID)).Error; err != nil {
			utils.LogError("User not found: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		if user.IsBlocked {
			utils.LogError("Blocked user attempted access: %d", user.ID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is blocked"})
			c.Abort()
			return
		}

		c.Set("user", user)
		utils.LogInfo("User %d authenticated successfully", user.ID)
		c.Next()
	}
}

// SellerAuthMiddleware authenticates seller panel accounts from the bearer token.
func SellerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerToken(c)
		if !ok {
			return
		}

		sellerID, ok := claims["seller_id"].(float64)
		if !ok {
			utils.LogError("Seller ID not found in token claims")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}
		utils.LogDebug("Authenticating seller ID: %d", uint(sellerID))

		var seller models.Seller
		if err := config.DB.First(&seller, uint(sellerID)).Error; err != nil {
			utils.LogError("Seller not found: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Seller not found"})
			c.Abort()
			return
		}

		if !seller.IsActive {
			utils.LogError("Inactive seller attempted access: %d", seller.ID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Seller account is inactive"})
			c.Abort()
			return
		}

		c.Set("seller", seller)
		utils.LogInfo("Seller %d authenticated successfully", seller.ID)
		c.Next()
	}
}

// parseBearerToken validates the Authorization header and returns the
// token claims. On failure it writes the response and aborts.
func parseBearerToken(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		utils.LogError("Missing Authorization header")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
		c.Abort()
		return nil, false
	}

	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
	if tokenString == authHeader {
		utils.LogError("Invalid Bearer token format")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
		c.Abort()
		return nil, false
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.LogError("JWT secret not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
		c.Abort()
		return nil, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		utils.LogError("Invalid token: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
		c.Abort()
		return nil, false
	}

	if !token.Valid {
		utils.LogError("Token validation failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
		c.Abort()
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		utils.LogError("Invalid token claims")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return nil, false
	}

	return claims, true
}
