package service

import (
	"strings"
	"testing"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/apperror"

	"gorm.io/gorm"
)

func newProformaService(db *gorm.DB) ProformaService {
	return NewProformaService(
		repository.NewProformaRepo(db),
		repository.NewProductRepo(db),
		db,
	)
}

func billInfo(name string) model.BillInfo {
	return model.BillInfo{
		Name:          name,
		CompanyName:   name + " Ltd",
		StreetAddress: "12 Market St",
		CityStateZip:  "Accra GA-000",
		Phone:         "+233200000000",
	}
}

func draftRequest(product *model.Product, qty int, price int64) *ProformaCreateRequest {
	return &ProformaCreateRequest{
		BillFrom: billInfo("Store"),
		BillTo:   billInfo("Client"),
		Items: []ProformaItemInput{
			{ProductID: product.ID, Description: product.Name, Quantity: qty, Price: price},
		},
	}
}

func TestProformaCreateComputesTotalsAndDueDate(t *testing.T) {
	db := setupDB(t)
	svc := newProformaService(db)
	productA := createProduct(t, db, 10, 100)
	productB := createProduct(t, db, 10, 40)

	issued := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	req := &ProformaCreateRequest{
		BillFrom: billInfo("Store"),
		BillTo:   billInfo("Client"),
		Date:     &issued,
		Items: []ProformaItemInput{
			{ProductID: productA.ID, Description: "Widget", Quantity: 3, Price: 100},
			{ProductID: productB.ID, Description: "Gadget", Quantity: 2, Price: 40},
		},
		SalesTax: 50,
		Other:    10,
	}

	proforma, err := svc.Create(req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if proforma.Totals.Subtotal != 380 {
		t.Errorf("subtotal = %d, want 380", proforma.Totals.Subtotal)
	}
	if proforma.Totals.Total != 440 {
		t.Errorf("total = %d, want 440", proforma.Totals.Total)
	}
	if proforma.Terms.PaymentDays != 30 || proforma.Terms.LateFeePercentage != 5 {
		t.Errorf("terms = %+v, want defaults 30/5", proforma.Terms)
	}
	wantDue := issued.AddDate(0, 0, 30)
	if !proforma.DueDate.Equal(wantDue) {
		t.Errorf("due date = %v, want %v", proforma.DueDate, wantDue)
	}
	if !strings.HasPrefix(proforma.InvoiceNumber, "INV") || !strings.Contains(proforma.InvoiceNumber, "-") {
		t.Errorf("invoice number = %q, want INV<yyyymm>-<suffix> shape", proforma.InvoiceNumber)
	}
	if proforma.Status != model.ProformaDraft {
		t.Errorf("status = %q, want draft", proforma.Status)
	}

	if got := currentStock(t, db, productA.ID); got != 7 {
		t.Errorf("product A stock = %d, want 7", got)
	}
	if got := currentStock(t, db, productB.ID); got != 8 {
		t.Errorf("product B stock = %d, want 8", got)
	}
}

func TestProformaCreateInsufficientStockAborts(t *testing.T) {
	db := setupDB(t)
	svc := newProformaService(db)
	productA := createProduct(t, db, 10, 100)
	productB := createProduct(t, db, 1, 40)

	req := &ProformaCreateRequest{
		BillFrom: billInfo("Store"),
		BillTo:   billInfo("Client"),
		Items: []ProformaItemInput{
			{ProductID: productA.ID, Description: "Widget", Quantity: 3, Price: 100},
			{ProductID: productB.ID, Description: "Gadget", Quantity: 5, Price: 40},
		},
	}

	_, err := svc.Create(req)
	if !apperror.Is(err, apperror.CodeInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}

	// The whole reservation rolls back, including the first line.
	if got := currentStock(t, db, productA.ID); got != 10 {
		t.Errorf("product A stock = %d, want 10", got)
	}
	if got := currentStock(t, db, productB.ID); got != 1 {
		t.Errorf("product B stock = %d, want 1", got)
	}
}

func TestProformaUpdateItemsNetZeroStock(t *testing.T) {
	db := setupDB(t)
	svc := newProformaService(db)
	product := createProduct(t, db, 10, 100)

	proforma, err := svc.Create(draftRequest(product, 4, 100))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := currentStock(t, db, product.ID); got != 6 {
		t.Fatalf("stock = %d, want 6", got)
	}

	// Replacing the items with an identical set must leave stock unchanged.
	updated, err := svc.Update(proforma.ID, &ProformaUpdateRequest{
		Items: []ProformaItemInput{
			{ProductID: product.ID, Description: "Widget", Quantity: 4, Price: 120},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := currentStock(t, db, product.ID); got != 6 {
		t.Errorf("stock = %d, want 6", got)
	}
	if updated.Totals.Subtotal != 480 || updated.Totals.Total != 480 {
		t.Errorf("totals = %d/%d, want 480/480", updated.Totals.Subtotal, updated.Totals.Total)
	}
}

func TestProformaUpdateGrowsReservation(t *testing.T) {
	db := setupDB(t)
	svc := newProformaService(db)
	product := createProduct(t, db, 10, 100)

	proforma, err := svc.Create(draftRequest(product, 4, 100))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(proforma.ID, &ProformaUpdateRequest{
		Items: []ProformaItemInput{
			{ProductID: product.ID, Description: "Widget", Quantity: 9, Price: 100},
		},
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := currentStock(t, db, product.ID); got != 1 {
		t.Errorf("stock = %d, want 1", got)
	}
}

func TestProformaUpdateOverdrawRestoresOriginal(t *testing.T) {
	db := setupDB(t)
	svc := newProformaService(db)
	product := createProduct(t, db, 10, 100)

	proforma, err := svc.Create(draftRequest(product, 4, 100))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 6 on the shelf + 4 released = 10 available, 11 requested.
	_, err = svc.Update(proforma.ID, &ProformaUpdateRequest{
		Items: []ProformaItemInput{
			{ProductID: product.ID, Description: "Widget", Quantity: 11, Price: 100},
		},
	})
	if !apperror.Is(err, apperror.CodeInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
	if got := currentStock(t, db, product.ID); got != 6 {
		t.Errorf("stock = %d, want 6 (original reservation intact)", got)
	}
}

func TestProformaInvoiceNumberImmutable(t *testing.T) {
	db := setupDB(t)
	svc := newProformaService(db)
	product := createProduct(t, db, 10, 100)

	proforma, err := svc.Create(draftRequest(product, 1, 100))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(proforma.ID, &ProformaUpdateRequest{InvoiceNumber: "INV999901-DEADBEEF"})
	if !apperror.Is(err, apperror.CodeImmutableField) {
		t.Fatalf("expected immutable field, got %v", err)
	}
}

func TestProformaPaymentDaysShiftDueDate(t *testing.T) {
	db := setupDB(t)
	svc := newProformaService(db)
	product := createProduct(t, db, 10, 100)

	proforma, err := svc.Create(draftRequest(product, 1, 100))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	days := 45
	updated, err := svc.Update(proforma.ID, &ProformaUpdateRequest{PaymentDays: &days})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	want := proforma.Date.AddDate(0, 0, 45)
	if !updated.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %v", updated.DueDate, want)
	}
}

func TestProformaDeleteDraftReleasesStock(t *testing.T) {
	db := setupDB(t)
	svc := newProformaService(db)
	product := createProduct(t, db, 10, 100)

	proforma, err := svc.Create(draftRequest(product, 4, 100))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(proforma.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := currentStock(t, db, product.ID); got != 10 {
		t.Errorf("stock = %d, want 10", got)
	}

	_, err = svc.GetByID(proforma.ID)
	if !apperror.Is(err, apperror.CodeNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestProformaDeleteNonDraftRejected(t *testing.T) {
	db := setupDB(t)
	svc := newProformaService(db)
	product := createProduct(t, db, 10, 100)

	proforma, err := svc.Create(draftRequest(product, 4, 100))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.UpdateStatus(proforma.ID, model.ProformaSent); err != nil {
		t.Fatalf("status: %v", err)
	}

	err = svc.Delete(proforma.ID)
	if !apperror.Is(err, apperror.CodePrecondition) {
		t.Fatalf("expected precondition failure, got %v", err)
	}
	if got := currentStock(t, db, product.ID); got != 6 {
		t.Errorf("stock = %d, want 6 (reservation must survive)", got)
	}
}

func TestProformaStatusRejectsUnknownValue(t *testing.T) {
	db := setupDB(t)
	svc := newProformaService(db)
	product := createProduct(t, db, 10, 100)

	proforma, err := svc.Create(draftRequest(product, 1, 100))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.UpdateStatus(proforma.ID, model.ProformaStatus("archived"))
	if !apperror.Is(err, apperror.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProformaInvoiceNumbersUnique(t *testing.T) {
	db := setupDB(t)
	svc := newProformaService(db)
	product := createProduct(t, db, 100, 10)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		proforma, err := svc.Create(draftRequest(product, 1, 10))
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[proforma.InvoiceNumber] {
			t.Fatalf("duplicate invoice number %q", proforma.InvoiceNumber)
		}
		seen[proforma.InvoiceNumber] = true
	}
}
