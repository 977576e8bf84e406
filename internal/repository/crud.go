package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CRUD is a generic data-access capability set composed into entity
// repositories instead of inherited.
type CRUD[T any] struct {
	db *gorm.DB
}

func NewCRUD[T any](db *gorm.DB) *CRUD[T] {
	return &CRUD[T]{db: db}
}

func (r *CRUD[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

func (r *CRUD[T]) FindByID(id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *CRUD[T]) FindAll() ([]T, error) {
	var entities []T
	err := r.db.Order("created_at DESC").Find(&entities).Error
	return entities, err
}

// Paginate applies optional query scopes, then page/limit
func (r *CRUD[T]) Paginate(page, limit int, scopes ...func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var entity T
	query := r.db.Model(&entity).Scopes(scopes...)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entities []T
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entities).Error
	return entities, total, err
}

func (r *CRUD[T]) Save(entity *T) error {
	return r.db.Save(entity).Error
}

func (r *CRUD[T]) Delete(id uuid.UUID) error {
	var entity T
	res := r.db.Delete(&entity, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Pagination metadata returned alongside list responses
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

func NewPagination(page, limit int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
