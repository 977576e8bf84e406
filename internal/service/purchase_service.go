package service

import (
	"errors"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseList struct {
	Data                 []model.Purchase      `json:"data"`
	TotalCount           int64                 `json:"total_count"`
	TotalPurchasedAmount int64                 `json:"total_purchased_amount"`
	Pagination           repository.Pagination `json:"pagination"`
}

type PurchaseService interface {
	Create(req *model.Purchase, userID uuid.UUID) (*model.Purchase, error)
	GetAll(q repository.PurchaseQuery) (*PurchaseList, error)
	TotalPurchasedAmount() (int64, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	db           *gorm.DB
}

func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	db *gorm.DB,
) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		db:           db,
	}
}

// Create records a replenishment and increments stock in one transaction
func (s *purchaseService) Create(req *model.Purchase, userID uuid.UUID) (*model.Purchase, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindByIDTx(tx, req.ProductID)
		if err != nil {
			return err
		}

		var seller model.Seller
		if err := tx.First(&seller, "id = ?", req.SellerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Seller")
			}
			return err
		}

		req.UserID = userID
		req.SellerName = seller.Name
		req.ProductName = product.Name
		req.TotalPrice = req.UnitPrice * int64(req.Quantity)
		if req.Measurement == nil {
			req.Measurement = product.Measurement
		}
		if req.Date.IsZero() {
			req.Date = time.Now()
		}
		req.CreatedBy = userID.String()
		req.UpdatedBy = userID.String()

		if err := s.productRepo.Release(tx, product.ID, req.Quantity); err != nil {
			return err
		}

		return s.purchaseRepo.Create(tx, req)
	})
	if err != nil {
		return nil, err
	}

	return req, nil
}

func (s *purchaseService) GetAll(q repository.PurchaseQuery) (*PurchaseList, error) {
	purchases, total, err := s.purchaseRepo.FindAll(q)
	if err != nil {
		return nil, err
	}
	if purchases == nil {
		purchases = []model.Purchase{}
	}

	totalAmount, err := s.purchaseRepo.TotalPurchasedAmount()
	if err != nil {
		return nil, err
	}

	return &PurchaseList{
		Data:                 purchases,
		TotalCount:           total,
		TotalPurchasedAmount: totalAmount,
		Pagination:           repository.NewPagination(q.Page, q.Limit, total),
	}, nil
}

func (s *purchaseService) TotalPurchasedAmount() (int64, error) {
	return s.purchaseRepo.TotalPurchasedAmount()
}
