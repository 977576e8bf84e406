package handler

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

func ledgerQuery(c *fiber.Ctx) repository.LedgerQuery {
	return repository.LedgerQuery{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
	}
}

type ExpenseHandler struct {
	service service.ExpenseService
}

func NewExpenseHandler(s service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: s}
}

func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var expense model.Expense
	if err := c.BodyParser(&expense); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.Create(&expense, getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Expense created", "data": created})
}

func (h *ExpenseHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.service.GetAll(ledgerQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	expense, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(expense)
}

func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	var req model.Expense
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Expense updated", "data": updated})
}

func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Expense deleted"})
}

func (h *ExpenseHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

type CreditHandler struct {
	service service.CreditService
}

func NewCreditHandler(s service.CreditService) *CreditHandler {
	return &CreditHandler{service: s}
}

func (h *CreditHandler) Create(c *fiber.Ctx) error {
	var credit model.Credit
	if err := c.BodyParser(&credit); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.Create(&credit, getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Credit created", "data": created})
}

func (h *CreditHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.service.GetAll(ledgerQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *CreditHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid credit ID"})
	}

	credit, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(credit)
}

func (h *CreditHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid credit ID"})
	}

	var req model.Credit
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Credit updated", "data": updated})
}

func (h *CreditHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid credit ID"})
	}

	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Credit deleted"})
}

func (h *CreditHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

type DebitHandler struct {
	service service.DebitService
}

func NewDebitHandler(s service.DebitService) *DebitHandler {
	return &DebitHandler{service: s}
}

func (h *DebitHandler) Create(c *fiber.Ctx) error {
	var debit model.Debit
	if err := c.BodyParser(&debit); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.Create(&debit, getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Debit created", "data": created})
}

func (h *DebitHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.service.GetAll(ledgerQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *DebitHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid debit ID"})
	}

	debit, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(debit)
}

func (h *DebitHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid debit ID"})
	}

	var req model.Debit
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Debit updated", "data": updated})
}

func (h *DebitHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid debit ID"})
	}

	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Debit deleted"})
}

func (h *DebitHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(getUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}
