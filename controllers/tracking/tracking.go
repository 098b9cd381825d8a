package tracking

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Tawan151766/solva-travel-sub001/logger"
	"github.com/Tawan151766/solva-travel-sub001/services/tracking"
	"github.com/Tawan151766/solva-travel-sub001/types"
)

// TrackingController serves the public status-lookup endpoint. No
// authentication: tracking numbers are the access token.
type TrackingController struct {
	Resolver *tracking.Resolver
	Logger   *logger.AsyncLogger
}

// NewTrackingController creates a new tracking controller
func NewTrackingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *TrackingController {
	return &TrackingController{
		Resolver: tracking.NewResolver(tracking.NewStore(db)),
		Logger:   asyncLogger,
	}
}

// Track resolves a user-supplied tracking string against both record kinds
func (tc *TrackingController) Track(c *fiber.Ctx) error {
	rawID := c.Params("trackingNumber")

	resolution, err := tc.Resolver.Resolve(rawID)
	if err != nil {
		if errors.Is(err, tracking.ErrNotFound) {
			// A miss is a user-facing condition, not a fault.
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Nothing found for this number, please check it and try again",
				Data:    nil,
			})
		}
		logger.Error("Tracking lookup failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Record found",
		Data:    resolution,
	})
}
