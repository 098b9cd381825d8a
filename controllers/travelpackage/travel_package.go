package travelpackage

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Tawan151766/solva-travel-sub001/logger"
	packageModel "github.com/Tawan151766/solva-travel-sub001/models/travelpackage"
	"github.com/Tawan151766/solva-travel-sub001/types"
)

// TravelPackageController serves the read-only package catalogue. Catalogue
// management belongs to the admin dashboard, not this service.
type TravelPackageController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewTravelPackageController creates a new travel package controller
func NewTravelPackageController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *TravelPackageController {
	return &TravelPackageController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Index lists active packages
func (tpc *TravelPackageController) Index(c *fiber.Ctx) error {
	query := tpc.DB.Where("is_active = ?", true)
	if location := c.Query("location"); location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}

	var packages []packageModel.TravelPackage
	if err := query.Order("created_at DESC").Find(&packages).Error; err != nil {
		logger.Error("Failed to list travel packages", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Travel packages fetched successfully",
		Data:    packages,
	})
}

// Show returns a single package
func (tpc *TravelPackageController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid package id",
			Data:    nil,
		})
	}

	var pkg packageModel.TravelPackage
	if err := tpc.DB.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Travel package not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find travel package", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Travel package fetched successfully",
		Data:    pkg,
	})
}
