package parcel

import (
	"errors"
	"fmt"
	"time"

	"parcel-delivery/logger"
	parcelModel "parcel-delivery/models/parcel"
	"parcel-delivery/types"
	parcelTypes "parcel-delivery/types/parcel"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ParcelController handles parcel-related HTTP requests
type ParcelController struct {
	DB *gorm.DB
}

// NewParcelController creates a new parcel controller
func NewParcelController(db *gorm.DB) *ParcelController {
	return &ParcelController{DB: db}
}

// Index lists every parcel.
func (pc *ParcelController) Index(c *fiber.Ctx) error {
	var parcels []parcelModel.Parcel
	if err := pc.DB.Find(&parcels).Error; err != nil {
		logger.Error("Failed to fetch parcels", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch parcels",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcels fetched successfully",
		Data:    parcels,
	})
}

// MyParcels lists parcels filtered by created_by, newest first. Without an
// email filter it behaves like Index, matching the reference behavior.
func (pc *ParcelController) MyParcels(c *fiber.Ctx) error {
	query := pc.DB.Order("creation_date DESC")
	if email := c.Query("email"); email != "" {
		query = query.Where("created_by = ?", email)
	}

	var parcels []parcelModel.Parcel
	if err := query.Find(&parcels).Error; err != nil {
		logger.Error("Failed to fetch parcels", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch parcels",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcels fetched successfully",
		Data:    parcels,
	})
}

// Show returns a single parcel by id.
func (pc *ParcelController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	var parcel parcelModel.Parcel
	if err := pc.DB.First(&parcel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Parcel not found",
			})
		}
		logger.Error("Failed to fetch parcel", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcel fetched successfully",
		Data:    parcel,
	})
}

// Store creates a parcel. creation_date is server-assigned and payment_status
// always starts unpaid, regardless of the payload.
func (pc *ParcelController) Store(c *fiber.Ctx) error {
	var req parcelTypes.ParcelCreateRequest
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

	parcel := parcelModel.Parcel{
		Title:           req.Title,
		Type:            req.Type,
		SenderName:      req.SenderName,
		SenderRegion:    req.SenderRegion,
		SenderAddress:   req.SenderAddress,
		SenderContact:   req.SenderContact,
		ReceiverName:    req.ReceiverName,
		ReceiverRegion:  req.ReceiverRegion,
		ReceiverAddress: req.ReceiverAddress,
		ReceiverContact: req.ReceiverContact,
		Cost:            req.Cost,
		DeliveryStatus:  req.DeliveryStatus,
		CreatedBy:       req.CreatedBy,
		PaymentStatus:   parcelModel.PaymentStatusUnpaid,
		CreationDate:    time.Now(),
	}

	if err := pc.DB.Create(&parcel).Error; err != nil {
		logger.Error("Failed to create parcel", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create parcel",
		})
	}

	logger.Success(fmt.Sprintf("Parcel created successfully with ID: %d", parcel.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Parcel created successfully",
		Data: fiber.Map{
			"insertedId": parcel.ID,
		},
	})
}

// Destroy deletes a parcel by id. Payments and tracking entries are not
// cascaded. The raw deleted count is returned even when it is zero.
func (pc *ParcelController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid parcel id",
		})
	}

	res := pc.DB.Delete(&parcelModel.Parcel{}, id)
	if res.Error != nil {
		logger.Error("Failed to delete parcel", res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcel delete processed",
		Data: fiber.Map{
			"deletedCount": res.RowsAffected,
		},
	})
}
