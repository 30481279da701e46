package tracking

import (
	"fmt"
	"time"

	"parcel-delivery/logger"
	trackingModel "parcel-delivery/models/tracking"
	"parcel-delivery/types"
	trackingTypes "parcel-delivery/types/tracking"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackingController handles tracking-related HTTP requests
type TrackingController struct {
	DB *gorm.DB
}

// NewTrackingController creates a new tracking controller
func NewTrackingController(db *gorm.DB) *TrackingController {
	return &TrackingController{DB: db}
}

// Store appends a tracking event for a parcel. Events are immutable; the
// event time is server-assigned and a missing tracking_id is generated.
// ParcelID is not checked against the parcels table.
func (tc *TrackingController) Store(c *fiber.Ctx) error {
	var req trackingTypes.TrackingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	trackingID := req.TrackingID
	if trackingID == "" {
		trackingID = uuid.NewString()
	}

	event := trackingModel.TrackingEvent{
		TrackingID: trackingID,
		ParcelID:   req.ParcelID,
		Status:     req.Status,
		Message:    req.Message,
		Time:       time.Now(),
		UpdatedBy:  req.UpdatedBy,
	}

	if err := tc.DB.Create(&event).Error; err != nil {
		logger.Error("Failed to create tracking event", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create tracking event",
		})
	}

	logger.Success(fmt.Sprintf("Tracking event %s recorded for parcel %d", event.TrackingID, event.ParcelID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Tracking event recorded",
		Data: fiber.Map{
			"success":    true,
			"insertedId": event.ID,
		},
	})
}

// ListForParcel returns a parcel's tracking history, oldest first.
func (tc *TrackingController) ListForParcel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	var events []trackingModel.TrackingEvent
	if err := tc.DB.Where("parcel_id = ?", id).Order("time ASC").Find(&events).Error; err != nil {
		logger.Error("Failed to fetch tracking events", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch tracking events",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Tracking events fetched successfully",
		Data:    events,
	})
}
