package repository

import (
	"go-pos-backend/internal/model"

	"gorm.io/gorm"
)

type PurchaseQuery struct {
	Search string
	Page   int
	Limit  int
}

type PurchaseRepository interface {
	Create(tx *gorm.DB, purchase *model.Purchase) error
	FindAll(q PurchaseQuery) ([]model.Purchase, int64, error)
	TotalPurchasedAmount() (int64, error)
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) Create(tx *gorm.DB, purchase *model.Purchase) error {
	return tx.Create(purchase).Error
}

func (r *purchaseRepo) FindAll(q PurchaseQuery) ([]model.Purchase, int64, error) {
	query := r.db.Model(&model.Purchase{})
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("LOWER(seller_name) LIKE LOWER(?) OR LOWER(product_name) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	var purchases []model.Purchase
	err := query.
		Preload("Product").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&purchases).Error
	return purchases, total, err
}

func (r *purchaseRepo) TotalPurchasedAmount() (int64, error) {
	var total int64
	err := r.db.Model(&model.Purchase{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	return total, err
}
