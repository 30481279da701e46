package user

import (
	"errors"
	"fmt"
	"time"

	"parcel-delivery/logger"
	userModel "parcel-delivery/models/user"
	"parcel-delivery/types"
	userTypes "parcel-delivery/types/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserController handles user-related HTTP requests
type UserController struct {
	DB *gorm.DB
}

// NewUserController creates a new user controller
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Upsert is called on every sign-in. A new email creates the user; a known
// email only refreshes last_log_in. The response distinguishes the two.
// Uniqueness is look-up-then-branch, backed by the unique email column.
func (uc *UserController) Upsert(c *fiber.Ctx) error {
	var req userTypes.UserUpsertRequest
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

	var existing userModel.User
	err := uc.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		existing.LastLogIn = time.Now()
		if err := uc.DB.Save(&existing).Error; err != nil {
			logger.Error("Failed to update last_log_in", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to update user",
			})
		}

		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "User already exists",
			Data:    existing,
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Database error while checking existing user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	user := userModel.User{
		Email:     req.Email,
		Name:      req.Name,
		Role:      req.Role,
		LastLogIn: time.Now(),
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create user",
		})
	}

	logger.Success(fmt.Sprintf("User created successfully with ID: %d", user.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "User created successfully",
		Data:    user,
	})
}
