package handlers

import (
	"errors"
	"log"
	"strconv"

	"estatien/internal/models"
	"estatien/internal/services/apartment"
	"estatien/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ApartmentHandler struct {
	apartmentService apartment.Service
}

func NewApartmentHandler(apartmentSvc apartment.Service) *ApartmentHandler {
	return &ApartmentHandler{apartmentService: apartmentSvc}
}

func (h *ApartmentHandler) ListApartments(c *fiber.Ctx) error {
	apartments, err := h.apartmentService.ListApproved(c.Context())
	if err != nil {
		log.Printf("apartment listing error: %v", err)
		return response.ServerError(c, "Failed to fetch apartments")
	}
	return response.Success(c, "Apartments retrieved", apartments)
}

func (h *ApartmentHandler) GetApartment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid apartment id")
	}

	apt, err := h.apartmentService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, apartment.ErrNotFound) {
			return response.NotFound(c, "Apartment not found")
		}
		log.Printf("apartment fetch error: %v", err)
		return response.ServerError(c, "Failed to fetch apartment")
	}
	return response.Success(c, "Apartment retrieved", apt)
}

func (h *ApartmentHandler) CreateApartment(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var input apartment.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	apt, err := h.apartmentService.Create(c.Context(), claims.UserID, input)
	if err != nil {
		if errors.Is(err, apartment.ErrInvalidInput) {
			return response.BadRequest(c, err.Error())
		}
		log.Printf("apartment creation error: %v", err)
		return response.ServerError(c, "Failed to create apartment")
	}
	return response.Success(c, "Apartment submitted for review", apt)
}

func (h *ApartmentHandler) ListAgentApartments(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	apartments, err := h.apartmentService.ListByAgent(c.Context(), claims.UserID)
	if err != nil {
		log.Printf("agent apartment listing error: %v", err)
		return response.ServerError(c, "Failed to fetch apartments")
	}
	return response.Success(c, "Apartments retrieved", apartments)
}

// ModerateApartment approves or declines a pending listing.
func (h *ApartmentHandler) ModerateApartment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid apartment id")
	}

	var input struct {
		Approve bool `json:"approve"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	if err := h.apartmentService.Moderate(c.Context(), uint(id), input.Approve); err != nil {
		if errors.Is(err, apartment.ErrNotFound) {
			return response.NotFound(c, "Apartment not found")
		}
		log.Printf("apartment moderation error: %v", err)
		return response.ServerError(c, "Failed to update apartment")
	}
	return response.Success(c, "Apartment status updated", nil)
}
