package routes

import (
	"os"
	"time"

	"parcel-delivery/cache"
	parcelController "parcel-delivery/controllers/parcel"
	paymentController "parcel-delivery/controllers/payment"
	riderController "parcel-delivery/controllers/rider"
	trackingController "parcel-delivery/controllers/tracking"
	userController "parcel-delivery/controllers/user"
	httpServices "parcel-delivery/httpServices/stripe"
	"parcel-delivery/logger"
	"parcel-delivery/middleware"
	paymentService "parcel-delivery/services/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes wires controllers to routes. Authentication gates are attached
// here and nowhere else, so which routes are protected is reviewable in one
// place. Several mutating routes are deliberately ungated, matching the
// reference surface.
func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client) {
	gatewayClient := httpServices.NewClient(os.Getenv("PAYMENT_SECRET_KEY"), os.Getenv("PAYMENT_API_BASE"))
	riderCache := cache.NewRiderCache(db, rdb, 5*time.Minute)
	asyncLogger := logger.NewAsyncLogger(db)

	parcels := parcelController.NewParcelController(db)
	payments := paymentController.NewPaymentController(paymentService.NewService(db), gatewayClient, asyncLogger)
	riders := riderController.NewRiderController(db, riderCache)
	trackings := trackingController.NewTrackingController(db)
	users := userController.NewUserController(db)

	// Start the async audit logger processing goroutine
	go asyncLogger.ProcessLog()

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Parcel Server is Running")
	})

	/*=============================================================================
	| Parcel Routes
	===============================================================================*/
	app.Get("/parcels", parcels.Index)
	app.Get("/my-parcels", middleware.RequireAuthentication(), parcels.MyParcels)
	app.Get("/parcels/:id", parcels.Show)
	app.Get("/parcels/:id/tracking", trackings.ListForParcel)
	app.Post("/add-parcels", parcels.Store)
	app.Delete("/my-parcels/:id", parcels.Destroy)

	/*=============================================================================
	| User Routes
	===============================================================================*/
	app.Post("/users", users.Upsert)

	/*=============================================================================
	| Rider Routes
	===============================================================================*/
	app.Post("/riders", riders.Store)
	app.Get("/riders/pending", middleware.RequireAuthentication(), riders.Pending)
	app.Get("/riders/active", riders.Active)
	app.Patch("/riders/:id/status", riders.UpdateStatus)

	/*=============================================================================
	| Tracking Routes
	===============================================================================*/
	app.Post("/tracking", trackings.Store)

	/*=============================================================================
	| Payment Routes
	===============================================================================*/
	app.Get("/payments", middleware.RequireAuthentication(), payments.Index)
	app.Get("/payments/summary", middleware.RequireAuthentication(), payments.Summary)
	app.Post("/payments", payments.Store)
	app.Post("/create-payment-intent", payments.CreateIntent)
}
