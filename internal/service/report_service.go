package service

import (
	"sort"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
)

// PeriodBucket is one rollup row. Revenue and cost basis are quantity
// weighted: revenue = Σ sellingPrice×qty, cost = Σ productPrice×qty.
type PeriodBucket struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"`
	Day   int `json:"day,omitempty"`
	Week  int `json:"week,omitempty"`

	TotalQuantity     int64 `json:"total_quantity"`
	TotalSellingPrice int64 `json:"total_selling_price"`
	TotalProductPrice int64 `json:"total_product_price"`
	GrossProfit       int64 `json:"gross_profit"`
}

// PeriodReport is the full rollup answer. Numeric fields are zero for an
// empty window, never absent.
type PeriodReport struct {
	Data                 []PeriodBucket             `json:"data"`
	TotalRevenue         *repository.StockValuation `json:"total_revenue"`
	TotalExpenses        int64                      `json:"total_expenses"`
	GrossProfit          int64                      `json:"gross_profit"`
	NetProfit            int64                      `json:"net_profit"`
	TotalPurchasedAmount int64                      `json:"total_purchased_amount"`
}

type ReportService interface {
	Daily(userID uuid.UUID) (*PeriodReport, error)
	Weekly(userID uuid.UUID) (*PeriodReport, error)
	Monthly(userID uuid.UUID) (*PeriodReport, error)
	Yearly(userID uuid.UUID) (*PeriodReport, error)
}

type reportService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	expenseRepo  repository.ExpenseRepository
}

func NewReportService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	expenseRepo repository.ExpenseRepository,
) ReportService {
	return &reportService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		expenseRepo:  expenseRepo,
	}
}

type periodKey struct {
	Year, Month, Day, Week int
}

func dayKey(t time.Time) periodKey {
	return periodKey{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func weekKey(t time.Time) periodKey {
	year, week := t.ISOWeek()
	return periodKey{Year: year, Week: week}
}

func monthKey(t time.Time) periodKey {
	return periodKey{Year: t.Year(), Month: int(t.Month())}
}

func yearKey(t time.Time) periodKey {
	return periodKey{Year: t.Year()}
}

// rollup groups the user's sales by the given calendar key, ascending
// chronological order.
func rollup(sales []model.Sale, keyFn func(time.Time) periodKey) []PeriodBucket {
	grouped := make(map[periodKey]*PeriodBucket)
	for _, sale := range sales {
		key := keyFn(sale.Date)
		bucket, ok := grouped[key]
		if !ok {
			bucket = &PeriodBucket{Year: key.Year, Month: key.Month, Day: key.Day, Week: key.Week}
			grouped[key] = bucket
		}
		qty := int64(sale.Quantity)
		bucket.TotalQuantity += qty
		bucket.TotalSellingPrice += sale.SellingPrice * qty
		bucket.TotalProductPrice += sale.ProductPrice * qty
	}

	buckets := make([]PeriodBucket, 0, len(grouped))
	for _, bucket := range grouped {
		bucket.GrossProfit = bucket.TotalSellingPrice - bucket.TotalProductPrice
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		a, b := buckets[i], buckets[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Week != b.Week {
			return a.Week < b.Week
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Day < b.Day
	})
	return buckets
}

func (s *reportService) build(userID uuid.UUID, keyFn func(time.Time) periodKey) (*PeriodReport, error) {
	sales, err := s.saleRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	valuation, err := s.productRepo.Valuation()
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.SumByUser(userID)
	if err != nil {
		return nil, err
	}

	purchased, err := s.purchaseRepo.TotalPurchasedAmount()
	if err != nil {
		return nil, err
	}

	buckets := rollup(sales, keyFn)
	var gross int64
	for _, bucket := range buckets {
		gross += bucket.GrossProfit
	}

	return &PeriodReport{
		Data:                 buckets,
		TotalRevenue:         valuation,
		TotalExpenses:        expenses,
		GrossProfit:          gross,
		NetProfit:            gross - expenses,
		TotalPurchasedAmount: purchased,
	}, nil
}

func (s *reportService) Daily(userID uuid.UUID) (*PeriodReport, error) {
	return s.build(userID, dayKey)
}

func (s *reportService) Weekly(userID uuid.UUID) (*PeriodReport, error) {
	return s.build(userID, weekKey)
}

func (s *reportService) Monthly(userID uuid.UUID) (*PeriodReport, error) {
	return s.build(userID, monthKey)
}

func (s *reportService) Yearly(userID uuid.UUID) (*PeriodReport, error) {
	return s.build(userID, yearKey)
}
