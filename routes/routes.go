package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Tawan151766/solva-travel-sub001/controllers/auth"
	"github.com/Tawan151766/solva-travel-sub001/controllers/booking"
	"github.com/Tawan151766/solva-travel-sub001/controllers/customtour"
	"github.com/Tawan151766/solva-travel-sub001/controllers/tracking"
	"github.com/Tawan151766/solva-travel-sub001/controllers/travelpackage"
	"github.com/Tawan151766/solva-travel-sub001/controllers/user"
	httpServices "github.com/Tawan151766/solva-travel-sub001/httpServices/identity"
	"github.com/Tawan151766/solva-travel-sub001/logger"
	"github.com/Tawan151766/solva-travel-sub001/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	identityClient := httpServices.NewClient(os.Getenv("IDENTITY_BASE_URL"))
	asyncLogger := logger.NewAsyncLogger(db)
	authController := auth.NewAuthController(identityClient, db, asyncLogger)
	bookingController := booking.NewBookingController(db, asyncLogger)
	customTourController := customtour.NewCustomTourController(db, asyncLogger)
	trackingController := tracking.NewTrackingController(db, asyncLogger)
	packageController := travelpackage.NewTravelPackageController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "solva-travel booking service",
			"status":  "ok",
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/login", authController.Login)
	api.Post("/register", authController.Register)

	api.Get("/packages", packageController.Index)
	api.Get("/packages/:id", packageController.Show)

	api.Get("/track/:trackingNumber", trackingController.Track)

	// Guests may submit a custom tour request without an account; an attached
	// token links the request to the caller.
	api.Post("/custom-tours", middleware.OptionalAuthentication(), customTourController.Store)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(middleware.RequireAnyPermission())
	authGroup.Get("/profile", user.GetUserInfo)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings").Use(middleware.RequireAnyPermission())
	bookingGroup.Post("/", bookingController.Store)
	bookingGroup.Get("/my", bookingController.MyBookings)
	bookingGroup.Put("/:id", bookingController.Update)
	bookingGroup.Delete("/:id", bookingController.Cancel)

	/*=============================================================================
	| Custom Tour Routes
	===============================================================================*/
	customTourGroup := api.Group("/custom-tours").Use(middleware.RequireAnyPermission())
	customTourGroup.Get("/my", customTourController.MyRequests)
	customTourGroup.Put("/:id", customTourController.Update)
	customTourGroup.Delete("/:id", customTourController.Cancel)

	/*=============================================================================
	| Staff Routes
	===============================================================================*/
	staffGroup := api.Group("/staff").Use(middleware.RequireStaffTier())
	staffGroup.Get("/bookings", bookingController.StaffList)
	staffGroup.Put("/bookings/:id/status", bookingController.UpdateStatus)
	staffGroup.Get("/custom-tours", customTourController.StaffList)
	staffGroup.Put("/custom-tours/:id", customTourController.Update)
}
