package service

import (
	"testing"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newReportService(db *gorm.DB) ReportService {
	return NewReportService(
		repository.NewSaleRepo(db),
		repository.NewProductRepo(db),
		repository.NewPurchaseRepo(db),
		repository.NewExpenseRepo(db),
	)
}

func recordSale(t *testing.T, db *gorm.DB, userID uuid.UUID, product *model.Product, date time.Time, qty int, selling, cost int64) {
	t.Helper()
	sale := &model.Sale{
		UserID:       userID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		Quantity:     qty,
		ProductPrice: cost,
		SellingPrice: selling,
		TotalPrice:   cost * int64(qty),
		Date:         date,
	}
	if err := db.Create(sale).Error; err != nil {
		t.Fatalf("sale: %v", err)
	}
}

func TestReportEmptyWindowIsZeroValued(t *testing.T) {
	db := setupDB(t)
	svc := newReportService(db)

	report, err := svc.Monthly(uuid.New())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.Data == nil || len(report.Data) != 0 {
		t.Errorf("data = %v, want empty non-nil slice", report.Data)
	}
	if report.GrossProfit != 0 || report.NetProfit != 0 || report.TotalExpenses != 0 {
		t.Errorf("profit fields not zero: %+v", report)
	}
	if report.TotalRevenue == nil {
		t.Error("valuation must be present, not nil")
	}
}

func TestMonthlyRollupGroupsAndSortsAscending(t *testing.T) {
	db := setupDB(t)
	svc := newReportService(db)
	product := createProduct(t, db, 100, 50)
	userID := uuid.New()

	march := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	january := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	// Inserted out of order on purpose.
	recordSale(t, db, userID, product, march, 2, 80, 50)
	recordSale(t, db, userID, product, january, 3, 70, 50)
	recordSale(t, db, userID, product, january, 1, 90, 50)

	report, err := svc.Monthly(userID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Data) != 2 {
		t.Fatalf("buckets = %d, want 2", len(report.Data))
	}

	jan, mar := report.Data[0], report.Data[1]
	if jan.Month != 1 || mar.Month != 3 {
		t.Fatalf("bucket order = %d,%d, want 1,3", jan.Month, mar.Month)
	}

	// January: 3×70 + 1×90 revenue, 4×50 cost.
	if jan.TotalQuantity != 4 {
		t.Errorf("jan quantity = %d, want 4", jan.TotalQuantity)
	}
	if jan.TotalSellingPrice != 300 {
		t.Errorf("jan revenue = %d, want 300", jan.TotalSellingPrice)
	}
	if jan.TotalProductPrice != 200 {
		t.Errorf("jan cost = %d, want 200", jan.TotalProductPrice)
	}
	if jan.GrossProfit != 100 {
		t.Errorf("jan gross profit = %d, want 100", jan.GrossProfit)
	}

	// March: 2×80 revenue, 2×50 cost.
	if mar.GrossProfit != 60 {
		t.Errorf("mar gross profit = %d, want 60", mar.GrossProfit)
	}

	if report.GrossProfit != 160 {
		t.Errorf("overall gross profit = %d, want 160", report.GrossProfit)
	}
}

func TestNetProfitSubtractsExpenses(t *testing.T) {
	db := setupDB(t)
	svc := newReportService(db)
	product := createProduct(t, db, 100, 50)
	userID := uuid.New()

	recordSale(t, db, userID, product, time.Now(), 2, 100, 50)

	expense := &model.Expense{UserID: userID, Name: "Rent", Amount: 30, Date: time.Now(), Status: model.ExpenseActive}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("expense: %v", err)
	}

	report, err := svc.Yearly(userID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.GrossProfit != 100 {
		t.Errorf("gross profit = %d, want 100", report.GrossProfit)
	}
	if report.TotalExpenses != 30 {
		t.Errorf("expenses = %d, want 30", report.TotalExpenses)
	}
	if report.NetProfit != 70 {
		t.Errorf("net profit = %d, want 70", report.NetProfit)
	}
}

func TestWeeklyRollupUsesISOWeeks(t *testing.T) {
	db := setupDB(t)
	svc := newReportService(db)
	product := createProduct(t, db, 100, 50)
	userID := uuid.New()

	// Monday and Sunday of ISO week 2, plus one sale in week 3.
	recordSale(t, db, userID, product, time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC), 1, 60, 50)
	recordSale(t, db, userID, product, time.Date(2026, 1, 11, 20, 0, 0, 0, time.UTC), 1, 60, 50)
	recordSale(t, db, userID, product, time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC), 1, 60, 50)

	report, err := svc.Weekly(userID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Data) != 2 {
		t.Fatalf("buckets = %d, want 2", len(report.Data))
	}
	if report.Data[0].Week != 2 || report.Data[0].TotalQuantity != 2 {
		t.Errorf("first bucket = week %d qty %d, want week 2 qty 2", report.Data[0].Week, report.Data[0].TotalQuantity)
	}
	if report.Data[1].Week != 3 || report.Data[1].TotalQuantity != 1 {
		t.Errorf("second bucket = week %d qty %d, want week 3 qty 1", report.Data[1].Week, report.Data[1].TotalQuantity)
	}
}

func TestReportsScopedToUser(t *testing.T) {
	db := setupDB(t)
	svc := newReportService(db)
	product := createProduct(t, db, 100, 50)
	alice, bob := uuid.New(), uuid.New()

	recordSale(t, db, alice, product, time.Now(), 2, 100, 50)
	recordSale(t, db, bob, product, time.Now(), 5, 100, 50)

	report, err := svc.Daily(alice)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Data) != 1 || report.Data[0].TotalQuantity != 2 {
		t.Errorf("report leaked other users' sales: %+v", report.Data)
	}
}
