package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DebitRepository interface {
	Create(debit *model.Debit) error
	FindByID(id uuid.UUID) (*model.Debit, error)
	FindAll(q LedgerQuery) ([]model.Debit, int64, error)
	Save(debit *model.Debit) error
	Delete(id uuid.UUID) error
	SummaryByStatus(userID uuid.UUID) ([]StatusSummary, error)
}

type debitRepo struct {
	*CRUD[model.Debit]
	db *gorm.DB
}

func NewDebitRepo(db *gorm.DB) DebitRepository {
	return &debitRepo{CRUD: NewCRUD[model.Debit](db), db: db}
}

func (r *debitRepo) FindAll(q LedgerQuery) ([]model.Debit, int64, error) {
	return r.Paginate(q.Page, q.Limit,
		statusScope(q.Status),
		searchScope([]string{"buyer_name", "product_name"}, q.Search),
	)
}

func (r *debitRepo) SummaryByStatus(userID uuid.UUID) ([]StatusSummary, error) {
	return statusSummary(r.db, &model.Debit{}, "amount", userID)
}
