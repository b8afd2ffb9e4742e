package handlers

import (
	"encoding/json"
	"errors"
	"log"

	"estatien/internal/models"
	"estatien/internal/services/paystack"
	"estatien/internal/services/settlement"
	"estatien/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	settlementService settlement.Service
	webhookSecret     string
}

func NewPaymentHandler(settlementSvc settlement.Service, webhookSecret string) *PaymentHandler {
	return &PaymentHandler{
		settlementService: settlementSvc,
		webhookSecret:     webhookSecret,
	}
}

// InitializePayment starts a booking charge for the authenticated user.
func (h *PaymentHandler) InitializePayment(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req settlement.InitializeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	result, err := h.settlementService.Initialize(c.Context(), claims.Email, req)
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrApartmentNotFound),
			errors.Is(err, settlement.ErrApartmentUnavailable):
			return response.NotFound(c, "Apartment not found or not available")
		case errors.Is(err, settlement.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, settlement.ErrInvalidBooking):
			return response.BadRequest(c, err.Error())
		default:
			log.Printf("payment initialization error: %v", err)
			return response.ServerError(c, "Failed to initialize payment")
		}
	}

	return response.Success(c, "Payment initialization successful", result)
}

// VerifyPayment is the pull path: the client polls after returning from
// the gateway's checkout page.
func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	reference := c.Params("transactionReference")
	if reference == "" {
		return response.BadRequest(c, "Transaction reference is required")
	}

	result, err := h.settlementService.Verify(c.Context(), reference)
	if err != nil {
		if errors.Is(err, settlement.ErrPaymentNotFound) {
			return response.NotFound(c, "Payment not found")
		}
		log.Printf("payment verification error: %v", err)
		return response.ServerError(c, "Failed to verify payment")
	}

	if !result.Completed {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Payment not completed. Status: " + result.GatewayStatus,
			"data":    result,
		})
	}

	return response.Success(c, "Payment verified successfully", result)
}

// HandleWebhook is the push path. The body signature is checked before
// anything else; a mismatch means no lookup and no state change.
func (h *PaymentHandler) HandleWebhook(c *fiber.Ctx) error {
	body := c.Body()
	signature := c.Get(paystack.SignatureHeader)

	if err := paystack.ValidateSignature(h.webhookSecret, body, signature); err != nil {
		log.Println("webhook rejected: invalid signature")
		return response.Unauthorized(c, "Invalid signature")
	}

	var event paystack.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return response.BadRequest(c, "Invalid webhook payload")
	}

	if err := h.settlementService.HandleWebhook(c.Context(), event); err != nil {
		if errors.Is(err, settlement.ErrPaymentNotFound) {
			return response.NotFound(c, "Payment not found")
		}
		log.Printf("webhook processing error: %v", err)
		return response.ServerError(c, "Failed to process webhook")
	}

	return c.JSON(fiber.Map{"success": true})
}

// GetPaymentHistory returns the role-dependent transaction view.
func (h *PaymentHandler) GetPaymentHistory(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	history, err := h.settlementService.History(c.Context(), claims)
	if err != nil {
		log.Printf("payment history error: %v", err)
		return response.ServerError(c, "Failed to fetch payment history")
	}

	return response.Success(c, "Payment history retrieved", history)
}
