package rider

import (
	"fmt"

	"parcel-delivery/cache"
	"parcel-delivery/logger"
	riderModel "parcel-delivery/models/rider"
	"parcel-delivery/types"
	riderTypes "parcel-delivery/types/rider"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RiderController handles rider-related HTTP requests
type RiderController struct {
	DB    *gorm.DB
	Cache *cache.RiderCache
}

// NewRiderController creates a new rider controller
func NewRiderController(db *gorm.DB, riderCache *cache.RiderCache) *RiderController {
	return &RiderController{
		DB:    db,
		Cache: riderCache,
	}
}

// Store accepts a rider application. An empty status is normalized to
// pending; a caller-supplied status is stored as-is.
func (rc *RiderController) Store(c *fiber.Ctx) error {
	var req riderTypes.RiderApplyRequest
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

	status := riderModel.Status(req.Status)
	if status == "" {
		status = riderModel.StatusPending
	}

	rider := riderModel.Rider{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Region:      req.Region,
		District:    req.District,
		VehicleType: req.VehicleType,
		NIDNumber:   req.NIDNumber,
		Status:      status,
	}

	if err := rc.DB.Create(&rider).Error; err != nil {
		logger.Error("Failed to create rider application", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create rider application",
		})
	}

	logger.Success(fmt.Sprintf("Rider application created with ID: %d", rider.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Rider application submitted successfully",
		Data: fiber.Map{
			"insertedId": rider.ID,
		},
	})
}

// Pending lists riders awaiting approval.
func (rc *RiderController) Pending(c *fiber.Ctx) error {
	var riders []riderModel.Rider
	if err := rc.DB.Where("status = ?", riderModel.StatusPending).Find(&riders).Error; err != nil {
		logger.Error("Failed to fetch pending riders", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch pending riders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Pending riders fetched successfully",
		Data:    riders,
	})
}

// Active lists approved riders, served through the read-through cache.
func (rc *RiderController) Active(c *fiber.Ctx) error {
	riders, err := rc.Cache.ActiveRiders(c.Context())
	if err != nil {
		logger.Error("Failed to fetch active riders", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch active riders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Active riders fetched successfully",
		Data:    riders,
	})
}

// UpdateStatus overwrites a rider's status. The new value is not checked
// against the recognized set.
func (rc *RiderController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid rider id",
		})
	}

	var req riderTypes.RiderStatusUpdateRequest
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

	res := rc.DB.Model(&riderModel.Rider{}).Where("id = ?", id).Update("status", req.Status)
	if res.Error != nil {
		logger.Error("Failed to update rider status", res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update rider status",
		})
	}

	rc.Cache.Invalidate(c.Context())

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rider status updated",
		Data: fiber.Map{
			"modifiedCount": res.RowsAffected,
		},
	})
}
