package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.SaleService
	reports service.ReportService
}

func NewSaleHandler(s service.SaleService, reports service.ReportService) *SaleHandler {
	return &SaleHandler{service: s, reports: reports}
}

func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var sale model.Sale
	if err := c.BodyParser(&sale); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	receipt, err := h.service.Create(&sale, getUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": receipt})
}

func (h *SaleHandler) GetAll(c *fiber.Ctx) error {
	q := repository.SaleQuery{
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 10),
	}

	list, err := h.service.GetAll(q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	receipt, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(receipt)
}

// Period rollups. Each groups the caller's sales by calendar bucket and
// attaches overall revenue, expense and profit figures.

func (h *SaleHandler) Daily(c *fiber.Ctx) error {
	report, err := h.reports.Daily(getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(report)
}

func (h *SaleHandler) Weekly(c *fiber.Ctx) error {
	report, err := h.reports.Weekly(getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(report)
}

func (h *SaleHandler) Monthly(c *fiber.Ctx) error {
	report, err := h.reports.Monthly(getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(report)
}

func (h *SaleHandler) Yearly(c *fiber.Ctx) error {
	report, err := h.reports.Yearly(getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(report)
}
