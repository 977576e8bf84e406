package repository

import (
	"errors"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProformaQuery struct {
	Status    string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

type ProformaRepository interface {
	FindAll(q ProformaQuery) ([]model.Proforma, int64, error)
	FindByID(id uuid.UUID) (*model.Proforma, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Proforma, error)
}

type proformaRepo struct {
	db *gorm.DB
}

func NewProformaRepo(db *gorm.DB) ProformaRepository {
	return &proformaRepo{db}
}

func (r *proformaRepo) FindAll(q ProformaQuery) ([]model.Proforma, int64, error) {
	query := r.db.Model(&model.Proforma{})
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where(
			"LOWER(bill_to_name) LIKE LOWER(?) OR LOWER(bill_from_name) LIKE LOWER(?) OR LOWER(invoice_number) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	if q.StartDate != nil && q.EndDate != nil {
		query = query.Where("date BETWEEN ? AND ?", *q.StartDate, *q.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	var proformas []model.Proforma
	err := query.
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&proformas).Error
	return proformas, total, err
}

func (r *proformaRepo) FindByID(id uuid.UUID) (*model.Proforma, error) {
	var proforma model.Proforma
	err := r.db.
		Preload("Items").
		Preload("Items.Product").
		First(&proforma, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Proforma")
	}
	return &proforma, err
}

func (r *proformaRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Proforma, error) {
	var proforma model.Proforma
	err := tx.Preload("Items").First(&proforma, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Proforma")
	}
	return &proforma, err
}
