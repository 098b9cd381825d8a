package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Tawan151766/solva-travel-sub001/database"
	"github.com/Tawan151766/solva-travel-sub001/logger"
	"github.com/Tawan151766/solva-travel-sub001/models/user"
	"github.com/Tawan151766/solva-travel-sub001/types"
)

// GetUserInfo returns the authenticated user's profile
func GetUserInfo(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid token data",
			Status:  fiber.StatusUnauthorized,
			Data:    nil,
		})
	}

	uuid, ok := claims["uuid"].(string)
	if !ok || uuid == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "User UUID not found in token",
			Status:  fiber.StatusUnauthorized,
			Data:    nil,
		})
	}

	var userModel user.User
	if err := database.DB.Where("uuid = ?", uuid).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("User not found", err)
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "User not found",
				Status:  fiber.StatusNotFound,
				Data:    nil,
			})
		}
		logger.Error("Error fetching user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Error fetching user",
			Status:  fiber.StatusInternalServerError,
			Data:    nil,
		})
	}

	userInfo := map[string]interface{}{
		"uuid":           userModel.Uuid,
		"username":       userModel.Username,
		"first_name":     userModel.FirstName,
		"last_name":      userModel.LastName,
		"role":           userModel.Role,
		"phone_verified": userModel.PhoneVerified,
		"email_verified": userModel.EmailVerified,
		"avatar":         userModel.Avatar,
		"permissions":    userModel.Permissions,
		"created_at":     userModel.CreatedAt.Format("2006-01-02 15:04:05"),
		"updated_at":     userModel.UpdatedAt.Format("2006-01-02 15:04:05"),
	}

	logger.Success("User fetched successfully")
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "User fetched successfully",
		Status:  fiber.StatusOK,
		Data:    userInfo,
	})
}
