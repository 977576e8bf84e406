package service

import (
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

// SaleReceipt pairs a sale with the stock-valuation snapshot taken after it
type SaleReceipt struct {
	Sale         *model.Sale                `json:"sale"`
	TotalRevenue *repository.StockValuation `json:"total_revenue"`
}

type SaleList struct {
	Data         []model.Sale               `json:"data"`
	TotalCount   int64                      `json:"total_count"`
	TotalRevenue *repository.StockValuation `json:"total_revenue"`
	Summary      *repository.SalesSummary   `json:"summary"`
	Pagination   repository.Pagination      `json:"pagination"`
}

type SaleService interface {
	Create(req *model.Sale, userID uuid.UUID) (*SaleReceipt, error)
	GetAll(q repository.SaleQuery) (*SaleList, error)
	GetByID(id uuid.UUID) (*SaleReceipt, error)
}

type saleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
	notifier    notify.Notifier
	log         *logrus.Logger
}

func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	db *gorm.DB,
	notifier notify.Notifier,
	log *logrus.Logger,
) SaleService {
	return &saleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		db:          db,
		notifier:    notifier,
		log:         log,
	}
}

// Create validates, reserves stock and persists the sale as one atomic
// unit. Price fields are snapshotted from the product at transaction time.
func (s *saleService) Create(req *model.Sale, userID uuid.UUID) (*SaleReceipt, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var sold *model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindByIDTx(tx, req.ProductID)
		if err != nil {
			return err
		}

		if req.Quantity > product.Stock {
			return apperror.InsufficientStock(req.Quantity, product.Name)
		}

		req.UserID = userID
		req.ProductName = product.Name
		req.ProductPrice = product.Price
		if req.SellingPrice == 0 {
			req.SellingPrice = product.Price
		}
		req.TotalPrice = product.Price * int64(req.Quantity)
		if req.Date.IsZero() {
			req.Date = time.Now()
		}
		req.CreatedBy = userID.String()
		req.UpdatedBy = userID.String()

		// The conditional decrement re-checks stock at the moment of
		// mutation, so the pre-check above cannot be raced past.
		if err := s.productRepo.Reserve(tx, product.ID, req.Quantity); err != nil {
			return err
		}

		product.Stock -= req.Quantity
		sold = product

		return s.saleRepo.Create(tx, req)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(notify.Event{
		Kind:    notify.KindCreated,
		Entity:  "sale",
		Message: fmt.Sprintf("Sold %d units of '%s'", req.Quantity, req.ProductName),
		Details: map[string]interface{}{
			"id":          req.ID,
			"product_id":  req.ProductID,
			"quantity":    req.Quantity,
			"total_price": req.TotalPrice,
			"new_stock":   sold.Stock,
		},
	})
	notify.CheckLowStock(s.notifier, sold, nil)

	valuation, err := s.productRepo.Valuation()
	if err != nil {
		s.log.Warnf("stock valuation after sale failed: %v", err)
		valuation = &repository.StockValuation{UnitWise: []repository.UnitValuation{}}
	}

	return &SaleReceipt{Sale: req, TotalRevenue: valuation}, nil
}

func (s *saleService) GetAll(q repository.SaleQuery) (*SaleList, error) {
	sales, total, err := s.saleRepo.FindAll(q)
	if err != nil {
		return nil, err
	}
	if sales == nil {
		sales = []model.Sale{}
	}

	summary, err := s.saleRepo.Summary(q.Search)
	if err != nil {
		return nil, err
	}

	valuation, err := s.productRepo.Valuation()
	if err != nil {
		return nil, err
	}

	return &SaleList{
		Data:         sales,
		TotalCount:   total,
		TotalRevenue: valuation,
		Summary:      summary,
		Pagination:   repository.NewPagination(q.Page, q.Limit, total),
	}, nil
}

func (s *saleService) GetByID(id uuid.UUID) (*SaleReceipt, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	valuation, err := s.productRepo.Valuation()
	if err != nil {
		return nil, err
	}
	return &SaleReceipt{Sale: sale, TotalRevenue: valuation}, nil
}
