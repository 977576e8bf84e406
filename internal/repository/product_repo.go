package repository

import (
	"errors"

	"go-pos-backend/internal/model"
	"go-pos-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductQuery carries the read-side filters for product listings
type ProductQuery struct {
	UserID    *uuid.UUID
	Name      string
	Category  *uuid.UUID
	Brand     *uuid.UUID
	Seller    *uuid.UUID
	MinPrice  *int64
	MaxPrice  *int64
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// ProductTotals is the overall inventory counter summary
type ProductTotals struct {
	TotalProducts int64 `json:"total_products"`
	TotalStock    int64 `json:"total_stock"`
	TotalValue    int64 `json:"total_value"`
}

// UnitValuation is the stock valuation for one measurement unit (size dimension)
type UnitValuation struct {
	Unit         string  `json:"unit"`
	TotalRevenue int64   `json:"total_revenue"`
	TotalStock   int64   `json:"total_stock"`
	AveragePrice float64 `json:"average_price"`
}

// StockValuation is the Σ price × stock snapshot grouped by unit
type StockValuation struct {
	UnitWise            []UnitValuation `json:"unit_wise_revenue"`
	TotalOverallRevenue int64           `json:"total_overall_revenue"`
	TotalOverallStock   int64           `json:"total_overall_stock"`
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(q ProductQuery) ([]model.Product, int64, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	Save(product *model.Product) error
	Delete(id uuid.UUID) (*model.Product, error)
	BulkDelete(ids []uuid.UUID) (int64, error)

	// Stock Ledger. Both run a single conditional update against one row;
	// the store's per-row atomicity makes a separate lock unnecessary.
	Reserve(tx *gorm.DB, id uuid.UUID, quantity int) error
	Release(tx *gorm.DB, id uuid.UUID, quantity int) error

	Totals(userID *uuid.UUID) (*ProductTotals, error)
	Valuation() (*StockValuation, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) scopeQuery(q ProductQuery) *gorm.DB {
	query := r.db.Model(&model.Product{})
	if q.UserID != nil {
		query = query.Where("user_id = ?", *q.UserID)
	}
	if q.Name != "" {
		pattern := "%" + q.Name + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if q.Category != nil {
		query = query.Where("category_id = ?", *q.Category)
	}
	if q.Brand != nil {
		query = query.Where("brand_id = ?", *q.Brand)
	}
	if q.Seller != nil {
		query = query.Where("seller_id = ?", *q.Seller)
	}
	if q.MinPrice != nil {
		query = query.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		query = query.Where("price <= ?", *q.MaxPrice)
	}
	return query
}

var productSortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"stock":      "stock",
	"created_at": "created_at",
}

func (r *productRepo) FindAll(q ProductQuery) ([]model.Product, int64, error) {
	query := r.scopeQuery(q)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy, ok := productSortColumns[q.SortBy]
	if !ok {
		sortBy = "created_at"
	}
	order := "DESC"
	if q.SortOrder == "asc" {
		order = "ASC"
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	var products []model.Product
	err := query.
		Preload("Seller").
		Preload("Category").
		Preload("Brand").
		Order(sortBy + " " + order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.
		Preload("Seller").
		Preload("Category").
		Preload("Brand").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Product")
	}
	return &product, err
}

// FindByIDTx reads the product inside an open transaction
func (r *productRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := tx.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Product")
	}
	return &product, err
}

func (r *productRepo) Save(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) (*model.Product, error) {
	product, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) BulkDelete(ids []uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.Product{}, "id IN ?", ids)
	return res.RowsAffected, res.Error
}

// Reserve decrements stock only when enough is available. The WHERE clause
// re-checks stock at the moment of mutation, so two concurrent sales can
// never jointly overdraw the counter.
func (r *productRepo) Reserve(tx *gorm.DB, id uuid.UUID, quantity int) error {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var product model.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("Product")
			}
			return err
		}
		return apperror.InsufficientStock(quantity, product.Name)
	}
	return nil
}

// Release adds quantity back to stock
func (r *productRepo) Release(tx *gorm.DB, id uuid.UUID, quantity int) error {
	res := tx.Model(&model.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("Product")
	}
	return nil
}

func (r *productRepo) Totals(userID *uuid.UUID) (*ProductTotals, error) {
	totals := &ProductTotals{}
	query := r.db.Model(&model.Product{}).
		Select("COUNT(*) AS total_products, COALESCE(SUM(stock), 0) AS total_stock, COALESCE(SUM(stock * price), 0) AS total_value")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Scan(totals).Error
	return totals, err
}

func (r *productRepo) Valuation() (*StockValuation, error) {
	var rows []UnitValuation
	err := r.db.Model(&model.Product{}).
		Select("COALESCE(measurement_unit, '') AS unit, COALESCE(SUM(price * stock), 0) AS total_revenue, COALESCE(SUM(stock), 0) AS total_stock, COALESCE(AVG(price), 0) AS average_price").
		Group("measurement_unit").
		Order("unit ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	valuation := &StockValuation{UnitWise: rows}
	if valuation.UnitWise == nil {
		valuation.UnitWise = []UnitValuation{}
	}
	for _, row := range rows {
		valuation.TotalOverallRevenue += row.TotalRevenue
		valuation.TotalOverallStock += row.TotalStock
	}
	return valuation, nil
}
