package payment

import (
	"errors"
	"fmt"

	httpServices "parcel-delivery/httpServices/stripe"
	"parcel-delivery/logger"
	paymentService "parcel-delivery/services/payment"
	"parcel-delivery/types"
	paymentTypes "parcel-delivery/types/payment"
	"parcel-delivery/utils"

	"github.com/gofiber/fiber/v2"
)

// Accepted payment method types forwarded to the gateway. Currency is fixed;
// the frontend only ever charges in it.
const intentCurrency = "usd"

var intentMethods = []string{"card"}

// PaymentController handles payment-related HTTP requests
type PaymentController struct {
	Service *paymentService.Service
	Gateway *httpServices.StripeClient
	Logger  *logger.AsyncLogger
}

// NewPaymentController creates a new payment controller
func NewPaymentController(service *paymentService.Service, gateway *httpServices.StripeClient, asyncLogger *logger.AsyncLogger) *PaymentController {
	return &PaymentController{
		Service: service,
		Gateway: gateway,
		Logger:  asyncLogger,
	}
}

// sendResponseWithLog sends the response and queues an audit log entry for it.
func (pc *PaymentController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	pc.Logger.Log(utils.CreateSanitizedLogEntry(c))
	return result
}

// Store records a payment for a parcel. The status flip and the payment
// insert run in one transaction; a parcel that is absent or already paid
// aborts with 404 and no payment row.
func (pc *PaymentController) Store(c *fiber.Ctx) error {
	var req paymentTypes.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	pay, err := pc.Service.RecordPayment(req)
	if err != nil {
		if errors.Is(err, paymentService.ErrParcelNotPayable) {
			return pc.sendResponseWithLog(c, fiber.StatusNotFound, types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Parcel not found or already paid",
			})
		}
		logger.Error("Failed to record payment", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to record payment",
		})
	}

	logger.Success(fmt.Sprintf("Payment recorded for parcel %d, payment ID: %d", pay.ParcelID, pay.ID))

	return pc.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Payment recorded successfully",
		Data: fiber.Map{
			"insertedId": pay.ID,
		},
	})
}

// Index lists the payment history for an email, newest first. The email must
// match the verified token's email.
func (pc *PaymentController) Index(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "email query parameter is required",
		})
	}

	if email != utils.EmailFromClaims(c) {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Forbidden access",
		})
	}

	payments, err := pc.Service.ListByEmail(email)
	if err != nil {
		logger.Error("Failed to fetch payments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch payments",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payments fetched successfully",
		Data:    payments,
	})
}

// Summary returns today's payment totals for the verified email.
func (pc *PaymentController) Summary(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "email query parameter is required",
		})
	}

	if email != utils.EmailFromClaims(c) {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Forbidden access",
		})
	}

	summary, err := pc.Service.SummaryForToday(email)
	if err != nil {
		logger.Error("Failed to aggregate payments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to aggregate payments",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment summary fetched successfully",
		Data:    summary,
	})
}

// CreateIntent stages a card charge with the payment gateway and returns the
// client secret. Gateway failures pass the upstream message through.
func (pc *PaymentController) CreateIntent(c *fiber.Ctx) error {
	var req paymentTypes.PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return pc.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	clientSecret, err := pc.Gateway.CreatePaymentIntent(req.AmountInCents, intentCurrency, intentMethods)
	if err != nil {
		logger.Error("Payment gateway rejected the intent", err)
		return pc.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: err.Error(),
		})
	}

	return pc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment intent created successfully",
		Data: fiber.Map{
			"clientSecret": clientSecret,
		},
	})
}
