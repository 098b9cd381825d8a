package booking

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Tawan151766/solva-travel-sub001/logger"
	bookingModel "github.com/Tawan151766/solva-travel-sub001/models/booking"
	"github.com/Tawan151766/solva-travel-sub001/models/user"
	"github.com/Tawan151766/solva-travel-sub001/services/policy"
	"github.com/Tawan151766/solva-travel-sub001/types"
	"github.com/Tawan151766/solva-travel-sub001/utils"
)

// currentUser resolves the authenticated user from token claims
func (bc *BookingController) currentUser(c *fiber.Ctx) (*user.User, error) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid user claims")
	}

	userUUID, ok := claims["uuid"].(string)
	if !ok || userUUID == "" {
		return nil, errors.New("user UUID not found in token")
	}

	return utils.GetUserByUUID(userUUID)
}

// findBooking loads the booking addressed by the :id route parameter
func (bc *BookingController) findBooking(c *fiber.Ctx) (*bookingModel.Booking, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, errBadID
	}

	var booking bookingModel.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

var errBadID = errors.New("invalid booking id")

func (bc *BookingController) lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errBadID) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Booking not found",
			Data:    nil,
		})
	}
	logger.Error("Failed to find booking", err)
	return bc.internalError(c)
}

// deniedError maps a policy rejection to 403 with the reason intact
func (bc *BookingController) deniedError(c *fiber.Ctx, err error) error {
	var denied *policy.DeniedError
	if errors.As(err, &denied) {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: denied.Reason,
			Data:    nil,
		})
	}
	logger.Error("Unexpected authorization failure", err)
	return bc.internalError(c)
}

func (bc *BookingController) missingActor(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "Authentication required",
		Data:    nil,
	})
}

func (bc *BookingController) internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Internal server error",
		Data:    nil,
	})
}

// toBookingStatus normalizes the status value a patch may carry, which is a
// string from JSON or an already-typed constant from the cancel path.
func toBookingStatus(raw interface{}) bookingModel.BookingStatus {
	switch v := raw.(type) {
	case bookingModel.BookingStatus:
		return v
	case string:
		return bookingModel.BookingStatus(v)
	default:
		return bookingModel.BookingStatus(fmt.Sprintf("%v", v))
	}
}
