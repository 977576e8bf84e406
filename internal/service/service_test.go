package service

import (
	"io"
	"sync"
	"testing"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/notify"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:svc_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Seller{},
		&model.Category{},
		&model.Brand{},
		&model.Product{},
		&model.Sale{},
		&model.Purchase{},
		&model.Proforma{},
		&model.ProformaItem{},
		&model.Expense{},
		&model.Credit{},
		&model.Debit{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeNotifier records events synchronously so tests can assert on them
type fakeNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (f *fakeNotifier) Notify(event notify.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeNotifier) ofKind(kind notify.Kind) []notify.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []notify.Event
	for _, e := range f.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func createSeller(t *testing.T, db *gorm.DB) *model.Seller {
	t.Helper()
	seller := &model.Seller{UserID: uuid.New(), Name: "Acme Supplies"}
	if err := db.Create(seller).Error; err != nil {
		t.Fatalf("seller: %v", err)
	}
	return seller
}

func createCategory(t *testing.T, db *gorm.DB) *model.Category {
	t.Helper()
	category := &model.Category{UserID: uuid.New(), Name: "General"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("category: %v", err)
	}
	return category
}

func createProduct(t *testing.T, db *gorm.DB, stock int, price int64) *model.Product {
	t.Helper()
	seller := createSeller(t, db)
	category := createCategory(t, db)
	product := &model.Product{
		UserID:     uuid.New(),
		SellerID:   seller.ID,
		CategoryID: category.ID,
		Name:       "Test Product",
		Price:      price,
		Stock:      stock,
		Images:     model.ImageList{"https://example.com/a.png"},
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("product: %v", err)
	}
	return product
}

func currentStock(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	t.Helper()
	var product model.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	return product.Stock
}
