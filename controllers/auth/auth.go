package auth

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Tawan151766/solva-travel-sub001/constants"
	httpServices "github.com/Tawan151766/solva-travel-sub001/httpServices/identity"
	"github.com/Tawan151766/solva-travel-sub001/logger"
	"github.com/Tawan151766/solva-travel-sub001/models/user"
	"github.com/Tawan151766/solva-travel-sub001/types"
	"github.com/Tawan151766/solva-travel-sub001/utils"
)

type AuthController struct {
	db             *gorm.DB
	httpService    *httpServices.IdentityClient
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(service *httpServices.IdentityClient, db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{httpService: service, db: db, loggerInstance: asyncLogger}
}

// Register forwards account creation to the identity service and mirrors the
// created user locally so bookings can reference it.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req types.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: utils.ValidationMessage(err),
			Status:  fiber.StatusBadRequest,
		})
	}

	registerResponse, err := h.httpService.RequestRegister(req)
	if err != nil {
		logger.Error("Failed to register user", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ErrorResponse{
			Message: "Failed to register user",
			Status:  fiber.StatusBadGateway,
		})
	}

	// If registration was successful, create user in local database
	if registerResponse.Status == "success" && registerResponse.User.UUID != "" {
		newUser := user.User{
			Uuid:          registerResponse.User.UUID,
			Username:      registerResponse.User.Username,
			Phone:         registerResponse.User.Phone,
			PhoneVerified: false,
			EmailVerified: false,
			Role:          constants.RoleCustomer,
			Permissions:   user.StringSlice{constants.PermCustomerFull},
		}

		if registerResponse.User.Email != nil && *registerResponse.User.Email != "" {
			newUser.Email = registerResponse.User.Email
		}
		if registerResponse.User.FirstName != nil {
			newUser.FirstName = *registerResponse.User.FirstName
		}
		if registerResponse.User.LastName != nil {
			newUser.LastName = *registerResponse.User.LastName
		}

		if err := h.db.Create(&newUser).Error; err != nil {
			// External registration succeeded; a local sync failure is
			// logged, not surfaced.
			logger.Error("Failed to create user in local database", err)
		} else {
			logger.Success("User created in local database successfully. UUID: " + newUser.Uuid)
		}
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	logger.Success("User registered successfully at " + time.Now().Format("2006-01-02 03:04:05 PM"))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Registration successful",
		Token:   registerResponse.Token,
		Data:    registerResponse.User,
	})
}

// Login forwards the credential check to the identity service and returns
// its signed token.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: utils.ValidationMessage(err),
			Status:  fiber.StatusBadRequest,
		})
	}

	loginResponse, err := h.httpService.RequestLogin(req)
	if err != nil {
		logger.Error("Failed to login user", err)
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Invalid credentials",
			Status:  fiber.StatusUnauthorized,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.loggerInstance.Log(logEntry)

	logger.Success("User logged in successfully: " + loginResponse.User.Username)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Login successful",
		Token:   loginResponse.Token,
		Data:    loginResponse.User,
	})
}
