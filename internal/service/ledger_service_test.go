package service

import (
	"testing"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/apperror"

	"github.com/google/uuid"
)

func TestCreditAmountDefaultsToBalance(t *testing.T) {
	db := setupDB(t)
	svc := NewCreditService(repository.NewCreditRepo(db))
	product := createProduct(t, db, 5, 100)

	credit, err := svc.Create(&model.Credit{
		ProductID:      product.ID,
		TotalAmount:    500,
		DownPayment:    200,
		CustomerName:   "Ama",
		PaymentDueDate: time.Now().AddDate(0, 1, 0),
	}, uuid.New())
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if credit.CreditAmount != 300 {
		t.Errorf("credit amount = %d, want 300", credit.CreditAmount)
	}
	if credit.Status != model.CreditPending {
		t.Errorf("status = %q, want PENDING", credit.Status)
	}
}

func TestCreditDownPaymentCannotExceedTotal(t *testing.T) {
	db := setupDB(t)
	svc := NewCreditService(repository.NewCreditRepo(db))
	product := createProduct(t, db, 5, 100)

	_, err := svc.Create(&model.Credit{
		ProductID:      product.ID,
		TotalAmount:    500,
		DownPayment:    600,
		CustomerName:   "Ama",
		PaymentDueDate: time.Now(),
	}, uuid.New())
	if !apperror.Is(err, apperror.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestExpenseDefaultsAndSummary(t *testing.T) {
	db := setupDB(t)
	svc := NewExpenseService(repository.NewExpenseRepo(db))
	userID := uuid.New()

	expense, err := svc.Create(&model.Expense{Name: "Rent", Amount: 1200}, userID)
	if err != nil {
		t.Fatalf("expense: %v", err)
	}
	if expense.Status != model.ExpenseActive {
		t.Errorf("status = %q, want ACTIVE", expense.Status)
	}
	if expense.Date.IsZero() {
		t.Error("date must default to now")
	}

	if _, err := svc.Create(&model.Expense{Name: "Old lease", Amount: 800, Status: model.ExpenseInactive}, userID); err != nil {
		t.Fatalf("expense: %v", err)
	}

	summary, err := svc.Summary(userID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	byStatus := map[string]int64{}
	for _, row := range summary {
		byStatus[row.Status] = row.TotalAmount
	}
	if byStatus["ACTIVE"] != 1200 || byStatus["INACTIVE"] != 800 {
		t.Errorf("summary = %v, want ACTIVE 1200 / INACTIVE 800", byStatus)
	}
}

func TestExpenseUpdateAndDelete(t *testing.T) {
	db := setupDB(t)
	svc := NewExpenseService(repository.NewExpenseRepo(db))
	userID := uuid.New()

	expense, err := svc.Create(&model.Expense{Name: "Fuel", Amount: 100}, userID)
	if err != nil {
		t.Fatalf("expense: %v", err)
	}

	updated, err := svc.Update(expense.ID, &model.Expense{Amount: 150, Status: model.ExpenseInactive})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Amount != 150 || updated.Status != model.ExpenseInactive || updated.Name != "Fuel" {
		t.Errorf("updated = %+v", updated)
	}

	if err := svc.Delete(expense.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(expense.ID); !apperror.Is(err, apperror.CodeNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestDebitStatusFilteredListing(t *testing.T) {
	db := setupDB(t)
	svc := NewDebitService(repository.NewDebitRepo(db))
	userID := uuid.New()

	fixtures := []model.Debit{
		{BuyerName: "Kofi", Amount: 50, DueDate: time.Now(), Status: model.DebitPending},
		{BuyerName: "Esi", Amount: 70, DueDate: time.Now(), Status: model.DebitPaid},
		{BuyerName: "Yaw", Amount: 90, DueDate: time.Now(), Status: model.DebitPending},
	}
	for i := range fixtures {
		if _, err := svc.Create(&fixtures[i], userID); err != nil {
			t.Fatalf("debit: %v", err)
		}
	}

	list, err := svc.GetAll(repository.LedgerQuery{Status: "PENDING", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.TotalCount != 2 {
		t.Errorf("pending debits = %d, want 2", list.TotalCount)
	}
	for _, d := range list.Data {
		if d.Status != model.DebitPending {
			t.Errorf("unexpected status %q in filtered list", d.Status)
		}
	}
}

func TestDebitSearchByBuyer(t *testing.T) {
	db := setupDB(t)
	svc := NewDebitService(repository.NewDebitRepo(db))
	userID := uuid.New()

	for _, name := range []string{"Kofi Mensah", "Esi Aidoo"} {
		if _, err := svc.Create(&model.Debit{BuyerName: name, Amount: 10, DueDate: time.Now()}, userID); err != nil {
			t.Fatalf("debit: %v", err)
		}
	}

	list, err := svc.GetAll(repository.LedgerQuery{Search: "kofi", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.TotalCount != 1 || list.Data[0].BuyerName != "Kofi Mensah" {
		t.Errorf("search result = %+v", list.Data)
	}
}
