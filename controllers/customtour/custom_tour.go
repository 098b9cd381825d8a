package customtour

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Tawan151766/solva-travel-sub001/logger"
	customtourModel "github.com/Tawan151766/solva-travel-sub001/models/customtour"
	"github.com/Tawan151766/solva-travel-sub001/services"
	"github.com/Tawan151766/solva-travel-sub001/services/lifecycle"
	"github.com/Tawan151766/solva-travel-sub001/services/policy"
	"github.com/Tawan151766/solva-travel-sub001/services/statusevent"
	"github.com/Tawan151766/solva-travel-sub001/types"
	customtourTypes "github.com/Tawan151766/solva-travel-sub001/types/customtour"
	"github.com/Tawan151766/solva-travel-sub001/utils"
)

// CustomTourController handles custom tour request HTTP requests
type CustomTourController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewCustomTourController creates a new custom tour controller
func NewCustomTourController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *CustomTourController {
	return &CustomTourController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Store accepts a custom tour inquiry. Guests may submit without an account;
// authenticated submitters become the owner of the request.
func (ctc *CustomTourController) Store(c *fiber.Ctx) error {
	var req customtourTypes.CustomTourCreateRequest
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

	if err := utils.ValidateDateRange(req.StartDate, req.EndDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	// Optional owner: guest submissions have no user attached
	var userID *uint
	var createdBy string
	if claims, ok := c.Locals("user").(jwt.MapClaims); ok {
		if userUUID, ok := claims["uuid"].(string); ok && userUUID != "" {
			if userInfo, err := utils.GetUserByUUID(userUUID); err == nil {
				userID = &userInfo.ID
				createdBy = strconv.FormatUint(uint64(userInfo.ID), 10)
			}
		}
	}
	if createdBy == "" {
		createdBy = "guest"
	}

	var request customtourModel.CustomTourRequest

	err := ctc.DB.Transaction(func(tx *gorm.DB) error {
		request = customtourModel.CustomTourRequest{
			TrackingNumber: utils.GenerateTrackingNumber(time.Now()),
			UserID:         userID,
			ContactName:    req.ContactName,
			ContactEmail:   req.ContactEmail,
			ContactPhone:   req.ContactPhone,
			Destination:    req.Destination,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			NumberOfPeople: req.NumberOfPeople,
			Budget:         req.Budget,
			Accommodation:  req.Accommodation,
			Transportation: req.Transportation,
			Activities:     req.Activities,
			Description:    req.Description,
			Status:         customtourModel.RequestStatusPending,
			CreatedBy:      createdBy,
		}

		if err := tx.Create(&request).Error; err != nil {
			logger.Error("Failed to create custom tour request", err)
			return err
		}

		return statusevent.RecordRequestStatus(tx, request.ID, request.Status, createdBy)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save custom tour request",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Custom tour request %s created with ID: %d", request.TrackingNumber, request.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Custom tour request submitted successfully",
		Data:    request,
	})
}

// Update applies a partial update through the permission policy. Owners may
// edit content fields while the request is PENDING; staff edit the
// adjudication fields, with quote issuance applied as a side effect.
func (ctc *CustomTourController) Update(c *fiber.Ctx) error {
	actor, ok := services.ActorFromContext(c)
	if !ok {
		return ctc.missingActor(c)
	}

	request, err := ctc.findRequest(c)
	if err != nil {
		return ctc.lookupError(c, err)
	}

	var req customtourTypes.CustomTourUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	patch, err := policy.AuthorizeRequestMutation(actor, request, req.ToPatch())
	if err != nil {
		return ctc.deniedError(c, err)
	}

	// Quote issuance: first-time estimated cost stamps the response date and
	// advances the request to QUOTED atomically with the cost write.
	if actor.IsStaffTier() {
		lifecycle.ApplyQuoteIssuance(request, patch, time.Now())
	}

	return ctc.applyPatch(c, request, patch, actor)
}

// Cancel cancels a custom tour request; the row is never deleted
func (ctc *CustomTourController) Cancel(c *fiber.Ctx) error {
	actor, ok := services.ActorFromContext(c)
	if !ok {
		return ctc.missingActor(c)
	}

	request, err := ctc.findRequest(c)
	if err != nil {
		return ctc.lookupError(c, err)
	}

	if err := policy.AuthorizeRequestCancel(actor, request); err != nil {
		return ctc.deniedError(c, err)
	}

	patch := map[string]interface{}{"status": customtourModel.RequestStatusCancelled}
	return ctc.applyPatch(c, request, patch, actor)
}

// MyRequests lists the authenticated user's custom tour requests
func (ctc *CustomTourController) MyRequests(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return ctc.missingActor(c)
	}
	userUUID, _ := claims["uuid"].(string)
	userInfo, err := utils.GetUserByUUID(userUUID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
			Data:    nil,
		})
	}

	var requests []customtourModel.CustomTourRequest
	if err := ctc.DB.Preload("AssignedStaff").
		Where("user_id = ?", userInfo.ID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		logger.Error("Failed to list custom tour requests", err)
		return ctc.internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Custom tour requests fetched successfully",
		Data:    requests,
	})
}

// StaffList lists custom tour requests for staff, with optional filters
func (ctc *CustomTourController) StaffList(c *fiber.Ctx) error {
	query := ctc.DB.Preload("User").Preload("AssignedStaff")

	if status := c.Query("status"); status != "" {
		if !customtourModel.RequestStatus(status).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Unknown request status filter",
				Data:    nil,
			})
		}
		query = query.Where("status = ?", status)
	}
	if staffID := c.QueryInt("assigned_staff_id"); staffID > 0 {
		query = query.Where("assigned_staff_id = ?", staffID)
	}

	var requests []customtourModel.CustomTourRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		logger.Error("Failed to list custom tour requests", err)
		return ctc.internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Custom tour requests fetched successfully",
		Data:    requests,
	})
}

// applyPatch runs the policy-filtered patch through the state machine and
// persists it in a single transaction with its status event. A concurrent
// reader can never observe the cost written without the status, or the
// status without the response date.
func (ctc *CustomTourController) applyPatch(c *fiber.Ctx, request *customtourModel.CustomTourRequest, patch map[string]interface{}, actor policy.Actor) error {
	if len(patch) == 0 {
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "Nothing to update",
			Data:    request,
		})
	}

	var newStatus *customtourModel.RequestStatus
	if rawStatus, ok := patch["status"]; ok {
		status := toRequestStatus(rawStatus)
		if err := lifecycle.CheckRequestTransition(request.Status, status); err != nil {
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

	err := ctc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&customtourModel.CustomTourRequest{}).Where("id = ?", request.ID).Updates(patch).Error; err != nil {
			return err
		}
		if newStatus != nil {
			return statusevent.RecordRequestStatus(tx, request.ID, *newStatus, updatedBy)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to update custom tour request", err)
		return ctc.internalError(c)
	}

	var updated customtourModel.CustomTourRequest
	if err := ctc.DB.Preload("User").Preload("AssignedStaff").First(&updated, request.ID).Error; err != nil {
		logger.Error("Failed to load updated custom tour request", err)
		return ctc.internalError(c)
	}

	logger.Success(fmt.Sprintf("Custom tour request %s updated", updated.TrackingNumber))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Custom tour request updated successfully",
		Data:    updated,
	})
}

// findRequest loads the request addressed by the :id route parameter
func (ctc *CustomTourController) findRequest(c *fiber.Ctx) (*customtourModel.CustomTourRequest, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, errBadID
	}

	var request customtourModel.CustomTourRequest
	if err := ctc.DB.First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

var errBadID = errors.New("invalid custom tour request id")

func (ctc *CustomTourController) lookupError(c *fiber.Ctx, err error) error {
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
			Message: "Custom tour request not found",
			Data:    nil,
		})
	}
	logger.Error("Failed to find custom tour request", err)
	return ctc.internalError(c)
}

func (ctc *CustomTourController) deniedError(c *fiber.Ctx, err error) error {
	var denied *policy.DeniedError
	if errors.As(err, &denied) {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: denied.Reason,
			Data:    nil,
		})
	}
	logger.Error("Unexpected authorization failure", err)
	return ctc.internalError(c)
}

func (ctc *CustomTourController) missingActor(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "Authentication required",
		Data:    nil,
	})
}

func (ctc *CustomTourController) internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Internal server error",
		Data:    nil,
	})
}

// toRequestStatus normalizes the status value a patch may carry
func toRequestStatus(raw interface{}) customtourModel.RequestStatus {
	switch v := raw.(type) {
	case customtourModel.RequestStatus:
		return v
	case string:
		return customtourModel.RequestStatus(v)
	default:
		return customtourModel.RequestStatus(fmt.Sprintf("%v", v))
	}
}
