package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/gorm"

	"github.com/Tawan151766/solva-travel-sub001/database"
	"github.com/Tawan151766/solva-travel-sub001/models/user"
	"github.com/Tawan151766/solva-travel-sub001/types"
)

// GenerateBookingNumber builds a public booking number: the literal BK
// prefix followed by the creation timestamp in milliseconds.
func GenerateBookingNumber() string {
	return fmt.Sprintf("BK%d", time.Now().UnixMilli())
}

// GenerateTrackingNumber builds a public tracking number for a custom tour
// request: CTR-<8-digit-date>-<5-char-suffix>. The suffix is random and
// uppercased; uniqueness is enforced by the column constraint.
func GenerateTrackingNumber(t time.Time) string {
	datePart := now.With(t).BeginningOfDay().Format("20060102")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:5]
	return fmt.Sprintf("CTR-%s-%s", datePart, suffix)
}

// ValidateDateRange checks a travel date range. Comparison happens on day
// boundaries so a booking made later in the day can still start today.
func ValidateDateRange(startDate, endDate time.Time) error {
	today := now.BeginningOfDay()
	if now.With(startDate).BeginningOfDay().Before(today) {
		return errors.New("start date cannot be in the past")
	}
	if endDate.Before(startDate) {
		return errors.New("end date cannot be before start date")
	}
	return nil
}

// GetUserByUUID retrieves a user by their UUID from the database
func GetUserByUUID(uuid string) (*user.User, error) {
	if uuid == "" {
		return nil, errors.New("UUID cannot be empty")
	}

	var userModel user.User
	if err := database.DB.Where("uuid = ?", uuid).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &userModel, nil
}

// CreateSanitizedLogEntry creates a deep copied and sanitized log entry for logging
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	// Deep copies prevent fasthttp buffer reuse from corrupting the entry
	// after the handler returns.
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	var userUuid string
	if claims, ok := c.Locals("user").(jwt.MapClaims); ok {
		userUuid, _ = claims["uuid"].(string)
	}

	return types.LogEntry{
		Method:          method,
		URL:             url,
		UserUuid:        userUuid,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}

func sanitizeRequestBody(c *fiber.Ctx) string {
	contentType := c.Get("Content-Type")
	if strings.Contains(contentType, "multipart/form-data") {
		return "[MULTIPART_FORM_DATA]"
	}

	body := string(c.Body())
	if len(body) > 10000 {
		return "[LARGE_REQUEST_BODY_TRUNCATED]"
	}
	return body
}
