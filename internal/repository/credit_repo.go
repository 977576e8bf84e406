package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreditRepository interface {
	Create(credit *model.Credit) error
	FindByID(id uuid.UUID) (*model.Credit, error)
	FindAll(q LedgerQuery) ([]model.Credit, int64, error)
	Save(credit *model.Credit) error
	Delete(id uuid.UUID) error
	SummaryByStatus(userID uuid.UUID) ([]StatusSummary, error)
}

type creditRepo struct {
	*CRUD[model.Credit]
	db *gorm.DB
}

func NewCreditRepo(db *gorm.DB) CreditRepository {
	return &creditRepo{CRUD: NewCRUD[model.Credit](db), db: db}
}

func (r *creditRepo) FindAll(q LedgerQuery) ([]model.Credit, int64, error) {
	return r.Paginate(q.Page, q.Limit,
		statusScope(q.Status),
		searchScope([]string{"customer_name", "customer_email"}, q.Search),
	)
}

func (r *creditRepo) SummaryByStatus(userID uuid.UUID) ([]StatusSummary, error) {
	return statusSummary(r.db, &model.Credit{}, "credit_amount", userID)
}
