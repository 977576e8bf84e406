package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	FindByID(id uuid.UUID) (*model.Expense, error)
	FindAll(q LedgerQuery) ([]model.Expense, int64, error)
	Save(expense *model.Expense) error
	Delete(id uuid.UUID) error
	SumByUser(userID uuid.UUID) (int64, error)
	SummaryByStatus(userID uuid.UUID) ([]StatusSummary, error)
}

type expenseRepo struct {
	*CRUD[model.Expense]
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{CRUD: NewCRUD[model.Expense](db), db: db}
}

func (r *expenseRepo) FindAll(q LedgerQuery) ([]model.Expense, int64, error) {
	return r.Paginate(q.Page, q.Limit,
		statusScope(q.Status),
		searchScope([]string{"name"}, q.Search),
	)
}

// SumByUser feeds the net-profit calculation in the revenue reports
func (r *expenseRepo) SumByUser(userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&model.Expense{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *expenseRepo) SummaryByStatus(userID uuid.UUID) ([]StatusSummary, error) {
	return statusSummary(r.db, &model.Expense{}, "amount", userID)
}
