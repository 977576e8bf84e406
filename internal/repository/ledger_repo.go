package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerQuery filters the independent ledger entities (expenses, credits, debits)
type LedgerQuery struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// StatusSummary is the aggregate-by-status rollup for a ledger entity
type StatusSummary struct {
	Status      string `json:"status"`
	Count       int64  `json:"count"`
	TotalAmount int64  `json:"total_amount"`
}

func statusSummary(db *gorm.DB, tableModel interface{}, amountColumn string, userID uuid.UUID) ([]StatusSummary, error) {
	var rows []StatusSummary
	err := db.Model(tableModel).
		Select("status, COUNT(*) AS count, COALESCE(SUM("+amountColumn+"), 0) AS total_amount").
		Where("user_id = ?", userID).
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	if rows == nil {
		rows = []StatusSummary{}
	}
	return rows, err
}

func searchScope(columns []string, search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		pattern := "%" + search + "%"
		clause := ""
		args := make([]interface{}, 0, len(columns))
		for i, col := range columns {
			if i > 0 {
				clause += " OR "
			}
			clause += "LOWER(" + col + ") LIKE LOWER(?)"
			args = append(args, pattern)
		}
		return db.Where(clause, args...)
	}
}

func statusScope(status string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("status = ?", status)
	}
}
