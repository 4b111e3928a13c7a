// Package reconcile derives monetary summaries from the underlying
// transaction records. Nothing is cached: every query reads the current
// active rows and accumulates in exact decimal arithmetic.
package reconcile

import (
	"errors"
	"fmt"
	"log"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/store"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DepartmentUnknown is the display sentinel used when a site's department
// relation cannot be resolved.
const DepartmentUnknown = "N/A"

type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// ContractorLedger is the running position of one contractor, optionally
// scoped to a single site.
type ContractorLedger struct {
	ContractorID   uint            `json:"contractor_id"`
	ContractorName string          `json:"contractor_name"`
	SiteID         *uint           `json:"site_id,omitempty"`
	ContractValue  decimal.Decimal `json:"contract_value"`
	PaidToDate     decimal.Decimal `json:"paid_to_date"`
	Balance        decimal.Decimal `json:"balance"`
}

// SiteProfit is the expense/received position of one active site.
type SiteProfit struct {
	SiteID         uint            `json:"site_id"`
	SiteName       string          `json:"site_name"`
	DepartmentName string          `json:"department_name"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	TotalReceived  decimal.Decimal `json:"total_received"`
	Profit         decimal.Decimal `json:"profit"`
}

// ContractorLedger sums agreed values across the contractor's active
// contracts and payments across active payments whose parent contract is
// active; balance = contractValue - paidToDate. A payment under a
// soft-deleted contract drops out of paidToDate without its own row being
// touched — the exclusion is transitive exactly one level up.
func (e *Engine) ContractorLedger(contractorID uint, siteID *uint) (*ContractorLedger, error) {
	var contractor models.Ledger
	err := e.db.First(&contractor, contractorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: Ledger #%d", store.ErrNotFound, contractorID)
	}
	if err != nil {
		return nil, err
	}
	if contractor.Kind != models.KindContractor {
		return nil, fmt.Errorf("%w: ledger #%d is a %s, not a contractor", store.ErrValidation, contractorID, contractor.Kind)
	}

	cq := e.db.Model(&models.Contract{}).
		Where("contractor_ledger_id = ? AND is_deleted = ?", contractorID, false)
	if siteID != nil {
		cq = cq.Where("site_id = ?", *siteID)
	}
	var contracts []models.Contract
	if err := cq.Find(&contracts).Error; err != nil {
		return nil, err
	}

	contractValue := decimal.Zero
	activeIDs := make([]uint, 0, len(contracts))
	for _, c := range contracts {
		contractValue = contractValue.Add(c.AgreedValue)
		activeIDs = append(activeIDs, c.ID)
	}

	paidToDate := decimal.Zero
	if len(activeIDs) > 0 {
		var payments []models.Payment
		if err := e.db.
			Where("contract_id IN ? AND is_deleted = ?", activeIDs, false).
			Find(&payments).Error; err != nil {
			return nil, err
		}
		for _, p := range payments {
			paidToDate = paidToDate.Add(p.Amount)
		}
	}

	return &ContractorLedger{
		ContractorID:   contractorID,
		ContractorName: contractor.Name,
		SiteID:         siteID,
		ContractValue:  contractValue,
		PaidToDate:     paidToDate,
		Balance:        contractValue.Sub(paidToDate),
	}, nil
}

// SiteProfit reports, for every active site, total active expense against
// total received (all vouchers; vouchers have no soft-delete so none are
// excluded) and the resulting profit. Dangling display relations are
// skipped with a logged warning rather than failing the whole query.
func (e *Engine) SiteProfit() ([]SiteProfit, error) {
	var sites []models.Site
	if err := e.db.Where("is_deleted = ?", false).Order("name ASC, id ASC").Find(&sites).Error; err != nil {
		return nil, err
	}

	out := make([]SiteProfit, 0, len(sites))
	for _, site := range sites {
		var expenses []models.SiteExpense
		if err := e.db.
			Where("site_id = ? AND is_deleted = ?", site.ID, false).
			Find(&expenses).Error; err != nil {
			return nil, err
		}
		totalExpense := decimal.Zero
		for _, x := range expenses {
			totalExpense = totalExpense.Add(x.Amount)
		}

		var vouchers []models.Voucher
		if err := e.db.
			Where("site_id = ?", site.ID).
			Order("voucher_date DESC, id DESC").
			Find(&vouchers).Error; err != nil {
			return nil, err
		}
		totalReceived := decimal.Zero
		for _, v := range vouchers {
			totalReceived = totalReceived.Add(v.ChequeAmt)
		}

		out = append(out, SiteProfit{
			SiteID:         site.ID,
			SiteName:       site.Name,
			DepartmentName: e.departmentName(site, vouchers),
			TotalExpense:   totalExpense,
			TotalReceived:  totalReceived,
			Profit:         totalReceived.Sub(totalExpense),
		})
	}
	return out, nil
}

// departmentName resolves the display department from the site's most
// recent voucher, falling back to the sentinel when there is none or the
// reference dangles.
func (e *Engine) departmentName(site models.Site, vouchers []models.Voucher) string {
	if len(vouchers) == 0 {
		return DepartmentUnknown
	}
	var dept models.Department
	err := e.db.First(&dept, vouchers[0].DepartmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("reconcile: site %q voucher #%d references missing department #%d",
			site.Name, vouchers[0].ID, vouchers[0].DepartmentID)
		return DepartmentUnknown
	}
	if err != nil {
		log.Printf("reconcile: resolve department for site %q: %v", site.Name, err)
		return DepartmentUnknown
	}
	return dept.Name
}
