package booking

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Tawan151766/solva-travel-sub001/logger"
	bookingModel "github.com/Tawan151766/solva-travel-sub001/models/booking"
	customtourModel "github.com/Tawan151766/solva-travel-sub001/models/customtour"
	"github.com/Tawan151766/solva-travel-sub001/services"
	"github.com/Tawan151766/solva-travel-sub001/services/lifecycle"
	"github.com/Tawan151766/solva-travel-sub001/services/policy"
	"github.com/Tawan151766/solva-travel-sub001/services/statusevent"
	"github.com/Tawan151766/solva-travel-sub001/types"
	bookingTypes "github.com/Tawan151766/solva-travel-sub001/types/booking"
	"github.com/Tawan151766/solva-travel-sub001/utils"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	DB          *gorm.DB
	Logger      *logger.AsyncLogger
	Permissions *services.PermissionService
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		DB:          db,
		Logger:      asyncLogger,
		Permissions: services.NewPermissionService(),
	}
}

// Store creates a new booking in PENDING status
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: utils.ValidationMessage(err),
			Data:    nil,
		})
	}

	if err := req.ValidateReferences(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}
	bookingType := bookingModel.BookingType(req.BookingType)

	if err := utils.ValidateDateRange(req.StartDate, req.EndDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	userInfo, err := bc.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
			Data:    nil,
		})
	}
	userID := userInfo.ID

	// A custom booking may only be created from a quoted-or-later request
	if bookingType == bookingModel.BookingTypeCustom {
		var tourReq customtourModel.CustomTourRequest
		if err := bc.DB.First(&tourReq, *req.CustomTourRequestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
					Status:  fiber.StatusNotFound,
					Message: "Custom tour request not found",
					Data:    nil,
				})
			}
			logger.Error("Failed to load custom tour request", err)
			return bc.internalError(c)
		}
		if tourReq.EstimatedCost == nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Custom tour request has not been quoted yet",
				Data:    nil,
			})
		}
	}

	var booking bookingModel.Booking

	// Use DB.Transaction for automatic rollback on error
	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		booking = bookingModel.Booking{
			UserID:              userID,
			BookingNumber:       utils.GenerateBookingNumber(),
			BookingType:         bookingType,
			PackageID:           req.PackageID,
			CustomTourRequestID: req.CustomTourRequestID,
			CustomerName:        req.CustomerName,
			CustomerEmail:       req.CustomerEmail,
			CustomerPhone:       req.CustomerPhone,
			StartDate:           req.StartDate,
			EndDate:             req.EndDate,
			NumberOfPeople:      req.NumberOfPeople,
			TotalAmount:         req.TotalAmount,
			SpecialRequirements: req.SpecialRequirements,
			Notes:               req.Notes,
			Status:              bookingModel.BookingStatusPending,
			PaymentStatus:       bookingModel.PaymentStatusPending,
			CreatedBy:           strconv.FormatUint(uint64(userID), 10),
		}

		if err := tx.Create(&booking).Error; err != nil {
			logger.Error("Failed to create booking", err)
			return err
		}

		return statusevent.RecordBookingStatus(tx, booking.ID, booking.Status, booking.CreatedBy)
	})

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save booking",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Booking %s created with ID: %d", booking.BookingNumber, booking.ID))

	var createdBooking bookingModel.Booking
	err = bc.DB.Preload("User").Preload("Package").Preload("CustomTourRequest").First(&createdBooking, booking.ID).Error
	if err != nil {
		logger.Error("Failed to load created booking data", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Booking created but failed to retrieve complete data",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    createdBooking,
	})
}

// Update applies a partial update to a booking through the permission policy
func (bc *BookingController) Update(c *fiber.Ctx) error {
	actor, ok := services.ActorFromContext(c)
	if !ok {
		return bc.missingActor(c)
	}

	booking, err := bc.findBooking(c)
	if err != nil {
		return bc.lookupError(c, err)
	}

	var req bookingTypes.BookingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	patch, err := policy.AuthorizeBookingMutation(actor, booking, req.ToPatch())
	if err != nil {
		return bc.deniedError(c, err)
	}

	return bc.applyPatch(c, booking, patch, actor)
}

// UpdateStatus performs a staff-driven lifecycle transition on a booking
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	actor, ok := services.ActorFromContext(c)
	if !ok {
		return bc.missingActor(c)
	}
	if !bc.Permissions.IsStaffTier(c) {
		return bc.deniedError(c, &policy.DeniedError{Reason: policy.ReasonAccessDenied})
	}

	booking, err := bc.findBooking(c)
	if err != nil {
		return bc.lookupError(c, err)
	}

	var req bookingTypes.BookingStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: utils.ValidationMessage(err),
			Data:    nil,
		})
	}

	patch := map[string]interface{}{"status": req.Status}
	if req.Notes != "" {
		patch["notes"] = req.Notes
	}
	return bc.applyPatch(c, booking, patch, actor)
}

// Cancel cancels a booking. Cancellation is a status transition; the row is
// never deleted.
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	actor, ok := services.ActorFromContext(c)
	if !ok {
		return bc.missingActor(c)
	}

	booking, err := bc.findBooking(c)
	if err != nil {
		return bc.lookupError(c, err)
	}

	if err := policy.AuthorizeBookingCancel(actor, booking); err != nil {
		return bc.deniedError(c, err)
	}

	patch := map[string]interface{}{"status": bookingModel.BookingStatusCancelled}
	return bc.applyPatch(c, booking, patch, actor)
}

// MyBookings lists the authenticated user's bookings
func (bc *BookingController) MyBookings(c *fiber.Ctx) error {
	userInfo, err := bc.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
			Data:    nil,
		})
	}

	var bookings []bookingModel.Booking
	if err := bc.DB.Preload("Package").Preload("CustomTourRequest").
		Where("user_id = ?", userInfo.ID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		logger.Error("Failed to list bookings", err)
		return bc.internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings fetched successfully",
		Data:    bookings,
	})
}

// StaffList lists bookings for staff, with an optional status filter
func (bc *BookingController) StaffList(c *fiber.Ctx) error {
	query := bc.DB.Preload("User").Preload("Package").Preload("CustomTourRequest")

	if status := c.Query("status"); status != "" {
		if !bookingModel.BookingStatus(status).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Unknown booking status filter",
				Data:    nil,
			})
		}
		query = query.Where("status = ?", status)
	}

	var bookings []bookingModel.Booking
	if err := query.Order("created_at DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to list bookings", err)
		return bc.internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings fetched successfully",
		Data:    bookings,
	})
}

// applyPatch runs the policy-filtered patch through the state machine and
// persists it in one transaction, recording a status event when the status
// changes. Partial application is never observable: status, side-effect
// fields and the event row commit together.
func (bc *BookingController) applyPatch(c *fiber.Ctx, booking *bookingModel.Booking, patch map[string]interface{}, actor policy.Actor) error {
	if len(patch) == 0 {
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "Nothing to update",
			Data:    booking,
		})
	}

	var newStatus *bookingModel.BookingStatus
	if rawStatus, ok := patch["status"]; ok {
		status := toBookingStatus(rawStatus)
		if err := lifecycle.CheckBookingTransition(booking.Status, status); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: err.Error(),
				Data:    nil,
			})
		}
		newStatus = &status
		patch["status"] = status
	}

	updatedBy := strconv.FormatUint(uint64(actor.UserID), 10)
	patch["updated_by"] = updatedBy

	err := bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&bookingModel.Booking{}).Where("id = ?", booking.ID).Updates(patch).Error; err != nil {
			return err
		}
		if newStatus != nil {
			return statusevent.RecordBookingStatus(tx, booking.ID, *newStatus, updatedBy)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to update booking", err)
		return bc.internalError(c)
	}

	var updated bookingModel.Booking
	if err := bc.DB.Preload("User").Preload("Package").Preload("CustomTourRequest").First(&updated, booking.ID).Error; err != nil {
		logger.Error("Failed to load updated booking", err)
		return bc.internalError(c)
	}

	logger.Success(fmt.Sprintf("Booking %s updated", updated.BookingNumber))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking updated successfully",
		Data:    updated,
	})
}
