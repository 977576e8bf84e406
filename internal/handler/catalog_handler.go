package handler

import (
	"errors"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Catalog handlers sit directly on the generic repository; sellers,
// categories and brands carry no business rules beyond ownership.

type SellerHandler struct {
	repo *repository.CRUD[model.Seller]
}

func NewSellerHandler(repo *repository.CRUD[model.Seller]) *SellerHandler {
	return &SellerHandler{repo: repo}
}

func (h *SellerHandler) Create(c *fiber.Ctx) error {
	var seller model.Seller
	if err := c.BodyParser(&seller); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if seller.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Seller name is required"})
	}

	userID := getUserID(c)
	seller.UserID = userID
	seller.CreatedBy = userID.String()
	seller.UpdatedBy = userID.String()

	if err := h.repo.Create(&seller); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Seller created", "data": seller})
}

func (h *SellerHandler) GetAll(c *fiber.Ctx) error {
	sellers, err := h.repo.FindAll()
	if err != nil {
		return fail(c, err)
	}
	if sellers == nil {
		sellers = []model.Seller{}
	}
	return c.JSON(sellers)
}

func (h *SellerHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid seller ID"})
	}

	seller, err := h.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Seller not found"})
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(seller)
}

func (h *SellerHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid seller ID"})
	}

	seller, err := h.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Seller not found"})
	}
	if err != nil {
		return fail(c, err)
	}

	var req model.Seller
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Name != "" {
		seller.Name = req.Name
	}
	if req.Email != "" {
		seller.Email = req.Email
	}
	if req.PhoneNumber != "" {
		seller.PhoneNumber = req.PhoneNumber
	}
	seller.UpdatedBy = getUserID(c).String()

	if err := h.repo.Save(seller); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Seller updated", "data": seller})
}

func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid seller ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Seller not found"})
		}
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Seller deleted"})
}

type CategoryHandler struct {
	repo *repository.CRUD[model.Category]
}

func NewCategoryHandler(repo *repository.CRUD[model.Category]) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if category.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Category name is required"})
	}

	userID := getUserID(c)
	category.UserID = userID
	category.CreatedBy = userID.String()
	category.UpdatedBy = userID.String()

	if err := h.repo.Create(&category); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": category})
}

func (h *CategoryHandler) GetAll(c *fiber.Ctx) error {
	categories, err := h.repo.FindAll()
	if err != nil {
		return fail(c, err)
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	category, err := h.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Category not found"})
	}
	if err != nil {
		return fail(c, err)
	}

	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Name != "" {
		category.Name = req.Name
	}
	category.UpdatedBy = getUserID(c).String()

	if err := h.repo.Save(category); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category updated", "data": category})
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Category not found"})
		}
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

type BrandHandler struct {
	repo *repository.CRUD[model.Brand]
}

func NewBrandHandler(repo *repository.CRUD[model.Brand]) *BrandHandler {
	return &BrandHandler{repo: repo}
}

func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var brand model.Brand
	if err := c.BodyParser(&brand); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if brand.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Brand name is required"})
	}

	userID := getUserID(c)
	brand.UserID = userID
	brand.CreatedBy = userID.String()
	brand.UpdatedBy = userID.String()

	if err := h.repo.Create(&brand); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Brand created", "data": brand})
}

func (h *BrandHandler) GetAll(c *fiber.Ctx) error {
	brands, err := h.repo.FindAll()
	if err != nil {
		return fail(c, err)
	}
	if brands == nil {
		brands = []model.Brand{}
	}
	return c.JSON(brands)
}

func (h *BrandHandler) Update(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid brand ID"})
	}

	brand, err := h.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Brand not found"})
	}
	if err != nil {
		return fail(c, err)
	}

	var req model.Brand
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Name != "" {
		brand.Name = req.Name
	}
	brand.UpdatedBy = getUserID(c).String()

	if err := h.repo.Save(brand); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Brand updated", "data": brand})
}

func (h *BrandHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid brand ID"})
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Brand not found"})
		}
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Brand deleted"})
}
