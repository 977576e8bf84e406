package service

import (
	"errors"
	"fmt"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/notify"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// StockUpdateRequest replenishes a product's stock
type StockUpdateRequest struct {
	SellerID      uuid.UUID `json:"seller_id" validate:"uuid_required"`
	Stock         int       `json:"stock"`
	MinStockAlert *int      `json:"min_stock_alert,omitempty"`
}

type ProductList struct {
	Data       []model.Product       `json:"data"`
	TotalCount int64                 `json:"total_count"`
	Pagination repository.Pagination `json:"pagination"`
}

type ProductService interface {
	Create(req *model.Product, userID uuid.UUID) (*model.Product, error)
	Update(id uuid.UUID, req *model.Product, userID uuid.UUID) (*model.Product, error)
	AddToStock(id uuid.UUID, req *StockUpdateRequest, userID uuid.UUID) (*model.Product, error)
	Delete(id uuid.UUID) (*model.Product, error)
	BulkDelete(ids []uuid.UUID) (int64, error)
	GetAll(q repository.ProductQuery) (*ProductList, error)
	GetByID(id uuid.UUID) (*model.Product, error)
	Totals(userID *uuid.UUID) (*repository.ProductTotals, error)
	Valuation() (*repository.StockValuation, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	sellerRepo   *repository.CRUD[model.Seller]
	db           *gorm.DB
	notifier     notify.Notifier
	log          *logrus.Logger
}

func NewProductService(
	pRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	sellerRepo *repository.CRUD[model.Seller],
	db *gorm.DB,
	notifier notify.Notifier,
	log *logrus.Logger,
) ProductService {
	return &productService{
		productRepo:  pRepo,
		purchaseRepo: purchaseRepo,
		sellerRepo:   sellerRepo,
		db:           db,
		notifier:     notifier,
		log:          log,
	}
}

func (s *productService) Create(req *model.Product, userID uuid.UUID) (*model.Product, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if len(req.Images) == 0 || len(req.Images) > 5 {
		return nil, apperror.Validation("Product must have between 1 and 5 images")
	}
	if req.Measurement != nil {
		if err := req.Measurement.Validate(); err != nil {
			return nil, err
		}
	}

	if _, err := s.sellerRepo.FindByID(req.SellerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Seller")
		}
		return nil, err
	}

	req.UserID = userID
	req.CreatedBy = userID.String()
	req.UpdatedBy = userID.String()

	if err := s.productRepo.Create(req); err != nil {
		return nil, err
	}

	s.notifier.Notify(notify.ProductEvent(notify.KindCreated, req, fmt.Sprintf("Product '%s' created", req.Name)))
	notify.CheckLowStock(s.notifier, req, nil)

	return req, nil
}

// Update never touches the stock counter; stock is mutated exclusively
// through the ledger operations (sales, purchases, proformas, AddToStock).
func (s *productService) Update(id uuid.UUID, req *model.Product, userID uuid.UUID) (*model.Product, error) {
	if req.Measurement != nil {
		if err := req.Measurement.Validate(); err != nil {
			return nil, err
		}
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Description != "" {
		existing.Description = req.Description
	}
	if req.Price > 0 {
		existing.Price = req.Price
	}
	if req.SellerID != uuid.Nil {
		if _, err := s.sellerRepo.FindByID(req.SellerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.NotFound("Seller")
			}
			return nil, err
		}
		existing.SellerID = req.SellerID
	}
	if req.CategoryID != uuid.Nil {
		existing.CategoryID = req.CategoryID
	}
	if req.BrandID != nil {
		existing.BrandID = req.BrandID
	}
	if req.Measurement != nil {
		existing.Measurement = req.Measurement
	}
	if len(req.Images) > 0 {
		if len(req.Images) > 5 {
			return nil, apperror.Validation("Product must have between 1 and 5 images")
		}
		existing.Images = req.Images
	}
	existing.UpdatedBy = userID.String()
	existing.Seller = nil
	existing.Category = nil
	existing.Brand = nil

	if err := s.productRepo.Save(existing); err != nil {
		return nil, err
	}

	s.notifier.Notify(notify.ProductEvent(notify.KindUpdated, existing, fmt.Sprintf("Product '%s' updated", existing.Name)))
	notify.CheckLowStock(s.notifier, existing, nil)

	return existing, nil
}

// AddToStock increments the counter and records a mirroring Purchase in
// one transaction. Notifications fire only after the commit.
func (s *productService) AddToStock(id uuid.UUID, req *StockUpdateRequest, userID uuid.UUID) (*model.Product, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Stock <= 0 {
		return nil, apperror.Validation("Stock quantity must be greater than 0")
	}

	var updated *model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var seller model.Seller
		if err := tx.First(&seller, "id = ?", req.SellerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Seller")
			}
			return err
		}

		product, err := s.productRepo.FindByIDTx(tx, id)
		if err != nil {
			return err
		}

		if err := s.productRepo.Release(tx, product.ID, req.Stock); err != nil {
			return err
		}

		purchase := &model.Purchase{
			UserID:      userID,
			SellerID:    seller.ID,
			ProductID:   product.ID,
			SellerName:  seller.Name,
			ProductName: product.Name,
			Quantity:    req.Stock,
			UnitPrice:   product.Price,
			TotalPrice:  int64(req.Stock) * product.Price,
			Measurement: product.Measurement,
			Date:        time.Now(),
		}
		purchase.CreatedBy = userID.String()
		purchase.UpdatedBy = userID.String()
		if err := s.purchaseRepo.Create(tx, purchase); err != nil {
			return err
		}

		product.Stock += req.Stock
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(notify.ProductEvent(notify.KindUpdated, updated,
		fmt.Sprintf("Stock of '%s' increased by %d units", updated.Name, req.Stock)))
	notify.CheckLowStock(s.notifier, updated, req.MinStockAlert)

	return updated, nil
}

func (s *productService) Delete(id uuid.UUID) (*model.Product, error) {
	deleted, err := s.productRepo.Delete(id)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(notify.ProductEvent(notify.KindDeleted, deleted, fmt.Sprintf("Product '%s' deleted", deleted.Name)))

	return deleted, nil
}

func (s *productService) BulkDelete(ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, apperror.Validation("No product ids supplied")
	}
	return s.productRepo.BulkDelete(ids)
}

func (s *productService) GetAll(q repository.ProductQuery) (*ProductList, error) {
	products, total, err := s.productRepo.FindAll(q)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return &ProductList{
		Data:       products,
		TotalCount: total,
		Pagination: repository.NewPagination(q.Page, q.Limit, total),
	}, nil
}

func (s *productService) GetByID(id uuid.UUID) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *productService) Totals(userID *uuid.UUID) (*repository.ProductTotals, error) {
	return s.productRepo.Totals(userID)
}

func (s *productService) Valuation() (*repository.StockValuation, error) {
	return s.productRepo.Valuation()
}
