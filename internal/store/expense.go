package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/audit"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseStore persists site expenses.
type ExpenseStore struct {
	db    *gorm.DB
	audit *audit.Recorder
	lc    *lifecycle[models.SiteExpense, *models.SiteExpense]
}

func NewExpenseStore(db *gorm.DB, rec *audit.Recorder) *ExpenseStore {
	return &ExpenseStore{
		db:    db,
		audit: rec,
		lc:    newLifecycle[models.SiteExpense, *models.SiteExpense](db, rec, ModuleSiteExpense),
	}
}

type ExpenseInput struct {
	SiteID         uint
	ExpenseDate    time.Time
	Title          string
	Summary        *string
	PaymentDetails *string
	Amount         decimal.Decimal
}

type ExpensePatch struct {
	ExpenseDate    *time.Time
	Title          *string
	Summary        *string
	PaymentDetails *string
	Amount         *decimal.Decimal
}

// ExpenseFilter narrows List; nil fields match everything.
type ExpenseFilter struct {
	SiteID  *uint
	Range   DateRange
	Deleted bool
}

func (s *ExpenseStore) Create(in ExpenseInput, actor audit.Actor) (*models.SiteExpense, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: expense title is required", ErrValidation)
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: expense amount must be non-negative", ErrValidation)
	}
	if in.ExpenseDate.IsZero() {
		return nil, fmt.Errorf("%w: expense date is required", ErrValidation)
	}
	if err := siteExists(s.db, in.SiteID); err != nil {
		return nil, err
	}

	e := models.SiteExpense{
		SiteID:         in.SiteID,
		ExpenseDate:    in.ExpenseDate,
		Title:          title,
		Summary:        trimToNil(in.Summary),
		PaymentDetails: trimToNil(in.PaymentDetails),
		Amount:         in.Amount,
	}
	if err := s.db.Create(&e).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleSiteExpense, e.ID, models.AuditCreate, nil, e, actor); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *ExpenseStore) Update(id uint, patch ExpensePatch, actor audit.Actor) (*models.SiteExpense, error) {
	e, err := s.lc.mustBeActive(id)
	if err != nil {
		return nil, err
	}
	old := *e

	if patch.ExpenseDate != nil {
		if patch.ExpenseDate.IsZero() {
			return nil, fmt.Errorf("%w: expense date is required", ErrValidation)
		}
		e.ExpenseDate = *patch.ExpenseDate
	}
	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		if t == "" {
			return nil, fmt.Errorf("%w: expense title is required", ErrValidation)
		}
		e.Title = t
	}
	if patch.Summary != nil {
		e.Summary = trimToNil(patch.Summary)
	}
	if patch.PaymentDetails != nil {
		e.PaymentDetails = trimToNil(patch.PaymentDetails)
	}
	if patch.Amount != nil {
		if patch.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: expense amount must be non-negative", ErrValidation)
		}
		e.Amount = *patch.Amount
	}

	if err := s.db.Save(e).Error; err != nil {
		return nil, err
	}
	if err := s.audit.Record(ModuleSiteExpense, id, models.AuditUpdate, old, e, actor); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExpenseStore) Get(id uint) (*models.SiteExpense, error) { return s.lc.load(id) }

func (s *ExpenseStore) SoftDelete(id uint, actor audit.Actor) (*models.SiteExpense, error) {
	return s.lc.SoftDelete(id, actor)
}

func (s *ExpenseStore) Restore(id uint, actor audit.Actor) (*models.SiteExpense, error) {
	return s.lc.Restore(id, actor)
}

func (s *ExpenseStore) HardDelete(id uint, actor audit.Actor) error {
	return s.lc.HardDelete(id, actor)
}

func (s *ExpenseStore) List(f ExpenseFilter) ([]models.SiteExpense, error) {
	q := s.db.Where("is_deleted = ?", f.Deleted)
	if f.SiteID != nil {
		q = q.Where("site_id = ?", *f.SiteID)
	}
	q = f.Range.apply(q, "expense_date")

	var out []models.SiteExpense
	err := q.Order("expense_date ASC, id ASC").Find(&out).Error
	return out, err
}
