package handlers

import (
	"cardcost/internal/models"
	"cardcost/internal/services/cardcost"
	"cardcost/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CardCostHandler struct {
	cardCostService *cardcost.Service
}

func NewCardCostHandler(cardCostService *cardcost.Service) *CardCostHandler {
	return &CardCostHandler{
		cardCostService: cardCostService,
	}
}

func (h *CardCostHandler) CreateClearingCost(c *fiber.Ctx) error {
	var input models.ClearingCostInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.cardCostService.CreateClearingCost(c.UserContext(), input); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

func (h *CardCostHandler) DeleteClearingCost(c *fiber.Ctx) error {
	var input models.CountryCodeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.cardCostService.DeleteClearingCost(c.UserContext(), input.CountryCode); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *CardCostHandler) UpdateClearingCost(c *fiber.Ctx) error {
	var input models.ClearingCostInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	updated, err := h.cardCostService.UpdateClearingCost(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	return utils.Success(c, updated)
}

func (h *CardCostHandler) GetClearingCost(c *fiber.Ctx) error {
	cost, err := h.cardCostService.GetClearingCost(c.UserContext(), c.Params("countryCode"))
	if err != nil {
		return respondError(c, err)
	}

	return utils.Success(c, cost)
}

func (h *CardCostHandler) GetAllClearingCosts(c *fiber.Ctx) error {
	costs, err := h.cardCostService.GetAllClearingCosts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return utils.Success(c, costs)
}

// GetCardCost resolves the clearing cost of the card in the request body.
// The card number is never echoed back or logged.
func (h *CardCostHandler) GetCardCost(c *fiber.Ctx) error {
	var input models.CardNumberInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	cost, err := h.cardCostService.GetCardCost(c.UserContext(), input.CardNumber)
	if err != nil {
		return respondError(c, err)
	}

	return utils.Success(c, cost)
}
