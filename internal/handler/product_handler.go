package handler

import (
	"strconv"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.Create(&product, getUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": created})
}

func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	q := repository.ProductQuery{
		Name:      c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 10),
	}
	if raw := c.Query("category"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q.Category = &id
		}
	}
	if raw := c.Query("brand"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q.Brand = &id
		}
	}
	if raw := c.Query("seller"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q.Seller = &id
		}
	}
	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			q.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			q.MaxPrice = &v
		}
	}

	list, err := h.service.GetAll(q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(id, &product, getUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

func (h *ProductHandler) AddToStock(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req service.StockUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.AddToStock(id, &req, getUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Stock updated", "data": updated})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	deleted, err := h.service.Delete(id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted", "data": deleted})
}

func (h *ProductHandler) BulkDelete(c *fiber.Ctx) error {
	var req struct {
		IDs []uuid.UUID `json:"ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	count, err := h.service.BulkDelete(req.IDs)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Products deleted", "deleted_count": count})
}

func (h *ProductHandler) Totals(c *fiber.Ctx) error {
	var userID *uuid.UUID
	if raw := c.Query("user"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			userID = &id
		}
	}

	totals, err := h.service.Totals(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(totals)
}

func (h *ProductHandler) Valuation(c *fiber.Ctx) error {
	valuation, err := h.service.Valuation()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(valuation)
}
