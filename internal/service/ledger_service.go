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

// Expense, Credit and Debit services. Independent ledgers: no stock
// coupling, status-scoped listings, aggregate-by-status summaries.

type ExpenseList struct {
	Data       []model.Expense       `json:"data"`
	TotalCount int64                 `json:"total_count"`
	Pagination repository.Pagination `json:"pagination"`
}

type ExpenseService interface {
	Create(req *model.Expense, userID uuid.UUID) (*model.Expense, error)
	GetAll(q repository.LedgerQuery) (*ExpenseList, error)
	GetByID(id uuid.UUID) (*model.Expense, error)
	Update(id uuid.UUID, req *model.Expense) (*model.Expense, error)
	Delete(id uuid.UUID) error
	Summary(userID uuid.UUID) ([]repository.StatusSummary, error)
}

type expenseService struct {
	repo repository.ExpenseRepository
}

func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &expenseService{repo: repo}
}

func (s *expenseService) Create(req *model.Expense, userID uuid.UUID) (*model.Expense, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	req.UserID = userID
	if req.Status == "" {
		req.Status = model.ExpenseActive
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}
	req.CreatedBy = userID.String()
	req.UpdatedBy = userID.String()
	if err := s.repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *expenseService) GetAll(q repository.LedgerQuery) (*ExpenseList, error) {
	expenses, total, err := s.repo.FindAll(q)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return &ExpenseList{
		Data:       expenses,
		TotalCount: total,
		Pagination: repository.NewPagination(q.Page, q.Limit, total),
	}, nil
}

func (s *expenseService) GetByID(id uuid.UUID) (*model.Expense, error) {
	expense, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Expense")
	}
	return expense, err
}

func (s *expenseService) Update(id uuid.UUID, req *model.Expense) (*model.Expense, error) {
	expense, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		expense.Name = req.Name
	}
	if req.Amount > 0 {
		expense.Amount = req.Amount
	}
	if !req.Date.IsZero() {
		expense.Date = req.Date
	}
	if req.Status != "" {
		expense.Status = req.Status
	}
	if err := validateStruct(expense); err != nil {
		return nil, err
	}
	if err := s.repo.Save(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) Delete(id uuid.UUID) error {
	err := s.repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Expense")
	}
	return err
}

func (s *expenseService) Summary(userID uuid.UUID) ([]repository.StatusSummary, error) {
	return s.repo.SummaryByStatus(userID)
}

type CreditList struct {
	Data       []model.Credit        `json:"data"`
	TotalCount int64                 `json:"total_count"`
	Pagination repository.Pagination `json:"pagination"`
}

type CreditService interface {
	Create(req *model.Credit, userID uuid.UUID) (*model.Credit, error)
	GetAll(q repository.LedgerQuery) (*CreditList, error)
	GetByID(id uuid.UUID) (*model.Credit, error)
	Update(id uuid.UUID, req *model.Credit) (*model.Credit, error)
	Delete(id uuid.UUID) error
	Summary(userID uuid.UUID) ([]repository.StatusSummary, error)
}

type creditService struct {
	repo repository.CreditRepository
}

func NewCreditService(repo repository.CreditRepository) CreditService {
	return &creditService{repo: repo}
}

func (s *creditService) Create(req *model.Credit, userID uuid.UUID) (*model.Credit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.DownPayment > req.TotalAmount {
		return nil, apperror.Validation("Down payment cannot exceed total amount")
	}
	if req.CreditAmount == 0 {
		req.CreditAmount = req.TotalAmount - req.DownPayment
	}
	req.UserID = userID
	if req.Status == "" {
		req.Status = model.CreditPending
	}
	req.CreatedBy = userID.String()
	req.UpdatedBy = userID.String()
	if err := s.repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *creditService) GetAll(q repository.LedgerQuery) (*CreditList, error) {
	credits, total, err := s.repo.FindAll(q)
	if err != nil {
		return nil, err
	}
	if credits == nil {
		credits = []model.Credit{}
	}
	return &CreditList{
		Data:       credits,
		TotalCount: total,
		Pagination: repository.NewPagination(q.Page, q.Limit, total),
	}, nil
}

func (s *creditService) GetByID(id uuid.UUID) (*model.Credit, error) {
	credit, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Credit")
	}
	return credit, err
}

func (s *creditService) Update(id uuid.UUID, req *model.Credit) (*model.Credit, error) {
	credit, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.TotalAmount > 0 {
		credit.TotalAmount = req.TotalAmount
	}
	if req.DownPayment > 0 {
		credit.DownPayment = req.DownPayment
	}
	if req.CreditAmount > 0 {
		credit.CreditAmount = req.CreditAmount
	}
	if req.CustomerName != "" {
		credit.CustomerName = req.CustomerName
	}
	if req.CustomerPhone != "" {
		credit.CustomerPhone = req.CustomerPhone
	}
	if req.CustomerEmail != "" {
		credit.CustomerEmail = req.CustomerEmail
	}
	if !req.PaymentDueDate.IsZero() {
		credit.PaymentDueDate = req.PaymentDueDate
	}
	if req.Status != "" {
		credit.Status = req.Status
	}
	if credit.DownPayment > credit.TotalAmount {
		return nil, apperror.Validation("Down payment cannot exceed total amount")
	}
	if err := validateStruct(credit); err != nil {
		return nil, err
	}
	if err := s.repo.Save(credit); err != nil {
		return nil, err
	}
	return credit, nil
}

func (s *creditService) Delete(id uuid.UUID) error {
	err := s.repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Credit")
	}
	return err
}

func (s *creditService) Summary(userID uuid.UUID) ([]repository.StatusSummary, error) {
	return s.repo.SummaryByStatus(userID)
}

type DebitList struct {
	Data       []model.Debit         `json:"data"`
	TotalCount int64                 `json:"total_count"`
	Pagination repository.Pagination `json:"pagination"`
}

type DebitService interface {
	Create(req *model.Debit, userID uuid.UUID) (*model.Debit, error)
	GetAll(q repository.LedgerQuery) (*DebitList, error)
	GetByID(id uuid.UUID) (*model.Debit, error)
	Update(id uuid.UUID, req *model.Debit) (*model.Debit, error)
	Delete(id uuid.UUID) error
	Summary(userID uuid.UUID) ([]repository.StatusSummary, error)
}

type debitService struct {
	repo repository.DebitRepository
}

func NewDebitService(repo repository.DebitRepository) DebitService {
	return &debitService{repo: repo}
}

func (s *debitService) Create(req *model.Debit, userID uuid.UUID) (*model.Debit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	req.UserID = userID
	if req.Status == "" {
		req.Status = model.DebitPending
	}
	req.CreatedBy = userID.String()
	req.UpdatedBy = userID.String()
	if err := s.repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *debitService) GetAll(q repository.LedgerQuery) (*DebitList, error) {
	debits, total, err := s.repo.FindAll(q)
	if err != nil {
		return nil, err
	}
	if debits == nil {
		debits = []model.Debit{}
	}
	return &DebitList{
		Data:       debits,
		TotalCount: total,
		Pagination: repository.NewPagination(q.Page, q.Limit, total),
	}, nil
}

func (s *debitService) GetByID(id uuid.UUID) (*model.Debit, error) {
	debit, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Debit")
	}
	return debit, err
}

func (s *debitService) Update(id uuid.UUID, req *model.Debit) (*model.Debit, error) {
	debit, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.BuyerName != "" {
		debit.BuyerName = req.BuyerName
	}
	if req.ProductName != "" {
		debit.ProductName = req.ProductName
	}
	if req.Amount > 0 {
		debit.Amount = req.Amount
	}
	if !req.DueDate.IsZero() {
		debit.DueDate = req.DueDate
	}
	if req.Status != "" {
		debit.Status = req.Status
	}
	if err := validateStruct(debit); err != nil {
		return nil, err
	}
	if err := s.repo.Save(debit); err != nil {
		return nil, err
	}
	return debit, nil
}

func (s *debitService) Delete(id uuid.UUID) error {
	err := s.repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("Debit")
	}
	return err
}

func (s *debitService) Summary(userID uuid.UUID) ([]repository.StatusSummary, error) {
	return s.repo.SummaryByStatus(userID)
}
