package service

import (
	"fmt"
	"strings"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProformaItemInput struct {
	ProductID   uuid.UUID `json:"product_id" validate:"uuid_required"`
	Description string    `json:"description" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,gte=1"`
	Price       int64     `json:"price" validate:"gte=0"`
}

type ProformaCreateRequest struct {
	BillFrom model.BillInfo      `json:"bill_from" validate:"required"`
	BillTo   model.BillInfo      `json:"bill_to" validate:"required"`
	Date     *time.Time          `json:"date,omitempty"`
	Items    []ProformaItemInput `json:"items" validate:"required,min=1,dive"`

	PaymentDays       int `json:"payment_days"`
	LateFeePercentage int `json:"late_fee_percentage"`

	SalesTax int64 `json:"sales_tax" validate:"gte=0"`
	Other    int64 `json:"other" validate:"gte=0"`

	Status model.ProformaStatus `json:"status" validate:"omitempty,oneof=draft sent paid cancelled"`
}

// ProformaUpdateRequest uses pointers so absent fields stay untouched.
// InvoiceNumber is only present to reject attempts at changing it.
type ProformaUpdateRequest struct {
	InvoiceNumber string `json:"invoice_number"`

	BillFrom *model.BillInfo     `json:"bill_from,omitempty"`
	BillTo   *model.BillInfo     `json:"bill_to,omitempty"`
	Items    []ProformaItemInput `json:"items,omitempty" validate:"omitempty,min=1,dive"`

	PaymentDays       *int `json:"payment_days,omitempty"`
	LateFeePercentage *int `json:"late_fee_percentage,omitempty"`

	SalesTax *int64 `json:"sales_tax,omitempty"`
	Other    *int64 `json:"other,omitempty"`

	Status *model.ProformaStatus `json:"status,omitempty"`
}

type ProformaList struct {
	Data       []model.Proforma      `json:"data"`
	Pagination repository.Pagination `json:"pagination"`
}

type ProformaService interface {
	Create(req *ProformaCreateRequest) (*model.Proforma, error)
	GetAll(q repository.ProformaQuery) (*ProformaList, error)
	GetByID(id uuid.UUID) (*model.Proforma, error)
	Update(id uuid.UUID, req *ProformaUpdateRequest) (*model.Proforma, error)
	UpdateStatus(id uuid.UUID, status model.ProformaStatus) (*model.Proforma, error)
	Delete(id uuid.UUID) error
}

type proformaService struct {
	proformaRepo repository.ProformaRepository
	productRepo  repository.ProductRepository
	db           *gorm.DB
}

func NewProformaService(
	proformaRepo repository.ProformaRepository,
	productRepo repository.ProductRepository,
	db *gorm.DB,
) ProformaService {
	return &proformaService{
		proformaRepo: proformaRepo,
		productRepo:  productRepo,
		db:           db,
	}
}

// generateInvoiceNumber yields e.g. INV202608-3F2A9B1C
func generateInvoiceNumber() string {
	now := time.Now()
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INV%d%02d-%s", now.Year(), int(now.Month()), suffix)
}

// reserveItems validates every line item against stock and decrements it,
// returning the persisted-shape rows. Runs inside the caller's transaction.
func (s *proformaService) reserveItems(tx *gorm.DB, inputs []ProformaItemInput) ([]model.ProformaItem, int64, error) {
	items := make([]model.ProformaItem, 0, len(inputs))
	var subtotal int64
	for _, input := range inputs {
		product, err := s.productRepo.FindByIDTx(tx, input.ProductID)
		if err != nil {
			return nil, 0, err
		}
		if product.Stock < input.Quantity {
			return nil, 0, apperror.InsufficientStock(input.Quantity, product.Name)
		}
		if err := s.productRepo.Reserve(tx, product.ID, input.Quantity); err != nil {
			return nil, 0, err
		}

		total := input.Price * int64(input.Quantity)
		subtotal += total
		items = append(items, model.ProformaItem{
			ProductID:   input.ProductID,
			Description: input.Description,
			Quantity:    input.Quantity,
			Price:       input.Price,
			Total:       total,
		})
	}
	return items, subtotal, nil
}

// releaseItems restores stock for every stored line item
func (s *proformaService) releaseItems(tx *gorm.DB, items []model.ProformaItem) error {
	for _, item := range items {
		if err := s.productRepo.Release(tx, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (s *proformaService) Create(req *ProformaCreateRequest) (*model.Proforma, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	issueDate := time.Now()
	if req.Date != nil {
		issueDate = *req.Date
	}
	paymentDays := req.PaymentDays
	if paymentDays <= 0 {
		paymentDays = 30
	}
	lateFee := req.LateFeePercentage
	if lateFee <= 0 {
		lateFee = 5
	}
	status := req.Status
	if status == "" {
		status = model.ProformaDraft
	}

	var created *model.Proforma
	err := s.db.Transaction(func(tx *gorm.DB) error {
		items, subtotal, err := s.reserveItems(tx, req.Items)
		if err != nil {
			return err
		}

		proforma := &model.Proforma{
			BillFrom:      req.BillFrom,
			BillTo:        req.BillTo,
			Date:          issueDate,
			DueDate:       issueDate.AddDate(0, 0, paymentDays),
			InvoiceNumber: generateInvoiceNumber(),
			Terms: model.ProformaTerms{
				PaymentDays:       paymentDays,
				LateFeePercentage: lateFee,
			},
			Totals: model.ProformaTotals{
				Subtotal: subtotal,
				SalesTax: req.SalesTax,
				Other:    req.Other,
				Total:    subtotal + req.SalesTax + req.Other,
			},
			Status: status,
			Items:  items,
		}
		if err := tx.Create(proforma).Error; err != nil {
			return err
		}
		created = proforma
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *proformaService) GetAll(q repository.ProformaQuery) (*ProformaList, error) {
	proformas, total, err := s.proformaRepo.FindAll(q)
	if err != nil {
		return nil, err
	}
	if proformas == nil {
		proformas = []model.Proforma{}
	}
	return &ProformaList{
		Data:       proformas,
		Pagination: repository.NewPagination(q.Page, q.Limit, total),
	}, nil
}

func (s *proformaService) GetByID(id uuid.UUID) (*model.Proforma, error) {
	return s.proformaRepo.FindByID(id)
}

// Update replaces line items with restore-then-reapply semantics: old
// reservations are released first, then every new item is validated and
// reserved. Any failure aborts with the original stock untouched.
func (s *proformaService) Update(id uuid.UUID, req *ProformaUpdateRequest) (*model.Proforma, error) {
	if req.InvoiceNumber != "" {
		return nil, apperror.ImmutableField("Invoice number")
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var updated *model.Proforma
	err := s.db.Transaction(func(tx *gorm.DB) error {
		proforma, err := s.proformaRepo.FindByIDTx(tx, id)
		if err != nil {
			return err
		}

		if req.Items != nil {
			if err := s.releaseItems(tx, proforma.Items); err != nil {
				return err
			}
			items, subtotal, err := s.reserveItems(tx, req.Items)
			if err != nil {
				return err
			}

			if err := tx.Unscoped().Where("proforma_id = ?", proforma.ID).Delete(&model.ProformaItem{}).Error; err != nil {
				return err
			}
			for i := range items {
				items[i].ProformaID = proforma.ID
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}

			proforma.Items = items
			proforma.Totals.Subtotal = subtotal
		}

		if req.BillFrom != nil {
			proforma.BillFrom = *req.BillFrom
		}
		if req.BillTo != nil {
			proforma.BillTo = *req.BillTo
		}
		if req.PaymentDays != nil {
			proforma.Terms.PaymentDays = *req.PaymentDays
			proforma.DueDate = proforma.Date.AddDate(0, 0, *req.PaymentDays)
		}
		if req.LateFeePercentage != nil {
			proforma.Terms.LateFeePercentage = *req.LateFeePercentage
		}
		if req.SalesTax != nil {
			proforma.Totals.SalesTax = *req.SalesTax
		}
		if req.Other != nil {
			proforma.Totals.Other = *req.Other
		}
		if req.Status != nil {
			proforma.Status = *req.Status
		}
		proforma.Totals.Total = proforma.Totals.Subtotal + proforma.Totals.SalesTax + proforma.Totals.Other

		if err := tx.Omit("Items").Save(proforma).Error; err != nil {
			return err
		}
		updated = proforma
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *proformaService) UpdateStatus(id uuid.UUID, status model.ProformaStatus) (*model.Proforma, error) {
	switch status {
	case model.ProformaDraft, model.ProformaSent, model.ProformaPaid, model.ProformaCancelled:
	default:
		return nil, apperror.Validation("Invalid proforma status")
	}

	proforma, err := s.proformaRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	proforma.Status = status
	if err := s.db.Model(proforma).Update("status", status).Error; err != nil {
		return nil, err
	}
	return proforma, nil
}

// Delete is only permitted while the invoice is still a draft; the stock
// reserved by its line items is handed back in the same transaction.
func (s *proformaService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		proforma, err := s.proformaRepo.FindByIDTx(tx, id)
		if err != nil {
			return err
		}
		if proforma.Status != model.ProformaDraft {
			return apperror.PreconditionFailed("Only draft proformas can be deleted")
		}

		if err := s.releaseItems(tx, proforma.Items); err != nil {
			return err
		}
		if err := tx.Where("proforma_id = ?", proforma.ID).Delete(&model.ProformaItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(proforma).Error
	})
}
