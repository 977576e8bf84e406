package handler

import (
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProformaHandler struct {
	service service.ProformaService
}

func NewProformaHandler(s service.ProformaService) *ProformaHandler {
	return &ProformaHandler{service: s}
}

func (h *ProformaHandler) Create(c *fiber.Ctx) error {
	var req service.ProformaCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	proforma, err := h.service.Create(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Proforma created", "data": proforma})
}

func (h *ProformaHandler) GetAll(c *fiber.Ctx) error {
	q := repository.ProformaQuery{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
	}
	if raw := c.Query("start_date"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			q.StartDate = &t
		}
	}
	if raw := c.Query("end_date"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			q.EndDate = &t
		}
	}

	list, err := h.service.GetAll(q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *ProformaHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid proforma ID"})
	}

	proforma, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(proforma)
}

func (h *ProformaHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid proforma ID"})
	}

	var req service.ProformaUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	proforma, err := h.service.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Proforma updated", "data": proforma})
}

func (h *ProformaHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid proforma ID"})
	}

	var req struct {
		Status model.ProformaStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	proforma, err := h.service.UpdateStatus(id, req.Status)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Proforma status updated", "data": proforma})
}

func (h *ProformaHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid proforma ID"})
	}

	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Proforma deleted"})
}
