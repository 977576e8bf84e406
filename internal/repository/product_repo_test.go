package repository

import (
	"testing"

	"go-pos-backend/internal/model"
	"go-pos-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:repo_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.Seller{}, &model.Category{}, &model.Brand{}, &model.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, stock int, price int64) *model.Product {
	t.Helper()
	product := &model.Product{
		UserID:     uuid.New(),
		SellerID:   uuid.New(),
		CategoryID: uuid.New(),
		Name:       "Ledger Item",
		Price:      price,
		Stock:      stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("product: %v", err)
	}
	return product
}

func stockOf(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	t.Helper()
	var product model.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	return product.Stock
}

func TestReserveConditionalDecrement(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewProductRepo(db)
	product := seedProduct(t, db, 3, 100)

	if err := repo.Reserve(db, product.ID, 2); err != nil {
		t.Fatalf("reserve 2: %v", err)
	}
	if got := stockOf(t, db, product.ID); got != 1 {
		t.Fatalf("stock = %d, want 1", got)
	}

	// Only 1 left; a second reservation of 2 must refuse and change nothing.
	err := repo.Reserve(db, product.ID, 2)
	if !apperror.Is(err, apperror.CodeInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
	if got := stockOf(t, db, product.ID); got != 1 {
		t.Fatalf("stock = %d, want 1 after refused reservation", got)
	}

	if err := repo.Release(db, product.ID, 1); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := repo.Reserve(db, product.ID, 2); err != nil {
		t.Fatalf("reserve after release: %v", err)
	}
	if got := stockOf(t, db, product.ID); got != 0 {
		t.Fatalf("stock = %d, want 0", got)
	}
}

func TestReserveExactBalanceToZero(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewProductRepo(db)
	product := seedProduct(t, db, 5, 100)

	if err := repo.Reserve(db, product.ID, 5); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if got := stockOf(t, db, product.ID); got != 0 {
		t.Fatalf("stock = %d, want 0", got)
	}

	if err := repo.Reserve(db, product.ID, 1); !apperror.Is(err, apperror.CodeInsufficientStock) {
		t.Fatalf("expected insufficient stock on empty shelf, got %v", err)
	}
}

func TestReserveUnknownProduct(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewProductRepo(db)

	if err := repo.Reserve(db, uuid.New(), 1); !apperror.Is(err, apperror.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := repo.Release(db, uuid.New(), 1); !apperror.Is(err, apperror.CodeNotFound) {
		t.Fatalf("expected not found on release, got %v", err)
	}
}

func TestValuationGroupsByUnit(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewProductRepo(db)

	kg := &model.Product{
		UserID: uuid.New(), SellerID: uuid.New(), CategoryID: uuid.New(),
		Name: "Rice", Price: 100, Stock: 4,
		Measurement: &model.Measurement{Type: model.MeasureWeight, Unit: "kg", Value: 1},
	}
	pc := &model.Product{
		UserID: uuid.New(), SellerID: uuid.New(), CategoryID: uuid.New(),
		Name: "Cup", Price: 20, Stock: 10,
		Measurement: &model.Measurement{Type: model.MeasurePieces, Unit: "pc", Value: 1},
	}
	for _, p := range []*model.Product{kg, pc} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("product: %v", err)
		}
	}

	valuation, err := repo.Valuation()
	if err != nil {
		t.Fatalf("valuation: %v", err)
	}
	if valuation.TotalOverallRevenue != 4*100+10*20 {
		t.Errorf("overall revenue = %d, want 600", valuation.TotalOverallRevenue)
	}
	if valuation.TotalOverallStock != 14 {
		t.Errorf("overall stock = %d, want 14", valuation.TotalOverallStock)
	}
	if len(valuation.UnitWise) != 2 {
		t.Fatalf("unit buckets = %d, want 2", len(valuation.UnitWise))
	}
	// Ordered by unit ascending: kg before pc.
	if valuation.UnitWise[0].Unit != "kg" || valuation.UnitWise[1].Unit != "pc" {
		t.Errorf("unit order = %q,%q, want kg,pc", valuation.UnitWise[0].Unit, valuation.UnitWise[1].Unit)
	}
	if valuation.UnitWise[0].TotalRevenue != 400 {
		t.Errorf("kg revenue = %d, want 400", valuation.UnitWise[0].TotalRevenue)
	}
}

func TestValuationEmptyIsZeroValued(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewProductRepo(db)

	valuation, err := repo.Valuation()
	if err != nil {
		t.Fatalf("valuation: %v", err)
	}
	if valuation.UnitWise == nil {
		t.Fatal("unit breakdown must be an empty slice, not nil")
	}
	if valuation.TotalOverallRevenue != 0 || valuation.TotalOverallStock != 0 {
		t.Errorf("valuation not zero-valued: %+v", valuation)
	}
}

func TestProductFindAllFilters(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewProductRepo(db)
	category := uuid.New()

	fixtures := []model.Product{
		{UserID: uuid.New(), SellerID: uuid.New(), CategoryID: category, Name: "Blue Shirt", Price: 300},
		{UserID: uuid.New(), SellerID: uuid.New(), CategoryID: category, Name: "Red Shirt", Price: 700},
		{UserID: uuid.New(), SellerID: uuid.New(), CategoryID: uuid.New(), Name: "Blue Mug", Price: 100},
	}
	for i := range fixtures {
		if err := db.Create(&fixtures[i]).Error; err != nil {
			t.Fatalf("product: %v", err)
		}
	}

	min := int64(200)
	products, total, err := repo.FindAll(ProductQuery{Category: &category, MinPrice: &min, SortBy: "price", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("total = %d len = %d, want 2/2", total, len(products))
	}
	if products[0].Name != "Blue Shirt" || products[1].Name != "Red Shirt" {
		t.Errorf("order = %q,%q, want Blue Shirt,Red Shirt", products[0].Name, products[1].Name)
	}

	byName, total, err := repo.FindAll(ProductQuery{Name: "blue"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 2 {
		t.Errorf("search total = %d, want 2", total)
	}
	for _, p := range byName {
		if p.Name != "Blue Shirt" && p.Name != "Blue Mug" {
			t.Errorf("unexpected search hit %q", p.Name)
		}
	}
}

func TestProductSortWhitelistFallsBack(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewProductRepo(db)
	seedProduct(t, db, 1, 100)

	// An unknown sort column must not be interpolated into SQL.
	if _, _, err := repo.FindAll(ProductQuery{SortBy: "price; DROP TABLE products"}); err != nil {
		t.Fatalf("find with bogus sort: %v", err)
	}

	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		t.Fatalf("products table gone: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
