package repository

import (
	"errors"

	"go-pos-backend/internal/model"
	"go-pos-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleQuery struct {
	Search    string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// SalesSummary aggregates over persisted sale records. Zero-valued when
// nothing matches, never nil.
type SalesSummary struct {
	TotalQuantitySold int64 `json:"total_quantity_sold"`
	TotalSaleAmount   int64 `json:"total_sale_amount"`
	TotalSellingPrice int64 `json:"total_selling_price"`
	TotalProductPrice int64 `json:"total_product_price"`
	Profit            int64 `json:"profit"`
	TotalMarginProfit int64 `json:"total_margin_profit"`
}

type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	FindAll(q SaleQuery) ([]model.Sale, int64, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	FindByUser(userID uuid.UUID) ([]model.Sale, error)
	Summary(search string) (*SalesSummary, error)
	TotalSaleAmount() (int64, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) searchScope(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		pattern := "%" + search + "%"
		return db.Where("LOWER(product_name) LIKE LOWER(?) OR LOWER(buyer_name) LIKE LOWER(?)", pattern, pattern)
	}
}

func (r *saleRepo) FindAll(q SaleQuery) ([]model.Sale, int64, error) {
	query := r.db.Model(&model.Sale{}).Scopes(r.searchScope(q.Search))

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

	// Recent sales first
	var sales []model.Sale
	err := query.
		Preload("Product").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&sales).Error
	return sales, total, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Product").First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Sale")
	}
	return &sale, err
}

// FindByUser returns the user's sales in ascending chronological order,
// the shape the period rollups group over.
func (r *saleRepo) FindByUser(userID uuid.UUID) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Summary(search string) (*SalesSummary, error) {
	summary := &SalesSummary{}
	err := r.db.Model(&model.Sale{}).
		Scopes(r.searchScope(search)).
		Select(`
			COALESCE(SUM(quantity), 0) AS total_quantity_sold,
			COALESCE(SUM(total_price), 0) AS total_sale_amount,
			COALESCE(SUM(selling_price), 0) AS total_selling_price,
			COALESCE(SUM(product_price), 0) AS total_product_price,
			COALESCE(SUM(selling_price - product_price), 0) AS profit,
			COALESCE(SUM(quantity * (selling_price - product_price)), 0) AS total_margin_profit
		`).
		Scan(summary).Error
	return summary, err
}

func (r *saleRepo) TotalSaleAmount() (int64, error) {
	var total int64
	err := r.db.Model(&model.Sale{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	return total, err
}
