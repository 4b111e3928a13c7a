package reconcile

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/audit"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/database"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/store"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var actor = audit.Actor{Name: "tester", IP: "127.0.0.1"}

type fixture struct {
	db        *gorm.DB
	engine    *Engine
	ledgers   *store.LedgerStore
	sites     *store.SiteStore
	depts     *store.DepartmentStore
	contracts *store.ContractStore
	payments  *store.PaymentStore
	vouchers  *store.VoucherStore
	expenses  *store.ExpenseStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	rec := audit.NewRecorder(db, true)
	return &fixture{
		db:        db,
		engine:    NewEngine(db),
		ledgers:   store.NewLedgerStore(db, rec),
		sites:     store.NewSiteStore(db, rec),
		depts:     store.NewDepartmentStore(db, rec),
		contracts: store.NewContractStore(db, rec),
		payments:  store.NewPaymentStore(db, rec),
		vouchers:  store.NewVoucherStore(db, rec),
		expenses:  store.NewExpenseStore(db, rec),
	}
}

func (f *fixture) site(t *testing.T, name string) *models.Site {
	t.Helper()
	s, err := f.sites.Create(name, nil, nil, actor)
	if err != nil {
		t.Fatalf("create site: %v", err)
	}
	return s
}

func (f *fixture) contractor(t *testing.T, name string) *models.Ledger {
	t.Helper()
	l, err := f.ledgers.Create(models.KindContractor, name, store.LedgerAttrs{}, actor)
	if err != nil {
		t.Fatalf("create contractor: %v", err)
	}
	return l
}

func (f *fixture) contract(t *testing.T, contractorID, siteID uint, value int64) *models.Contract {
	t.Helper()
	c, err := f.contracts.Create(store.ContractInput{
		ContractorLedgerID: contractorID,
		SiteID:             siteID,
		AgreedValue:        decimal.NewFromInt(value),
	}, actor)
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}
	return c
}

func (f *fixture) payment(t *testing.T, contractID uint, amount int64) *models.Payment {
	t.Helper()
	p, err := f.payments.Create(store.PaymentInput{
		ContractID:  contractID,
		PaymentDate: time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(amount),
	}, actor)
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	return p
}

func wantAmount(t *testing.T, label string, got decimal.Decimal, want int64) {
	t.Helper()
	if !got.Equal(decimal.NewFromInt(want)) {
		t.Errorf("%s = %s, want %d", label, got, want)
	}
}

func TestContractorLedger_BalanceAcrossPayments(t *testing.T) {
	f := newFixture(t)
	site := f.site(t, "Phase 1")
	contractor := f.contractor(t, "Verma Constructions")
	contract := f.contract(t, contractor.ID, site.ID, 100000)
	f.payment(t, contract.ID, 30000)
	f.payment(t, contract.ID, 20000)

	got, err := f.engine.ContractorLedger(contractor.ID, nil)
	if err != nil {
		t.Fatalf("contractor ledger: %v", err)
	}
	wantAmount(t, "ContractValue", got.ContractValue, 100000)
	wantAmount(t, "PaidToDate", got.PaidToDate, 50000)
	wantAmount(t, "Balance", got.Balance, 50000)
}

func TestContractorLedger_DeletedPaymentExcluded(t *testing.T) {
	f := newFixture(t)
	site := f.site(t, "Phase 1")
	contractor := f.contractor(t, "Verma Constructions")
	contract := f.contract(t, contractor.ID, site.ID, 100000)
	f.payment(t, contract.ID, 30000)
	p := f.payment(t, contract.ID, 20000)

	if _, err := f.payments.SoftDelete(p.ID, actor); err != nil {
		t.Fatalf("soft delete payment: %v", err)
	}

	got, err := f.engine.ContractorLedger(contractor.ID, nil)
	if err != nil {
		t.Fatalf("contractor ledger: %v", err)
	}
	wantAmount(t, "PaidToDate", got.PaidToDate, 30000)
	wantAmount(t, "Balance", got.Balance, 70000)
}

// Soft-deleting a contract removes its payments' contribution transitively:
// the payment rows keep is_deleted = false yet stop counting toward
// paid-to-date, and the contract's agreed value leaves the sum as well.
func TestContractorLedger_DeletedContractExcludesPayments(t *testing.T) {
	f := newFixture(t)
	site := f.site(t, "Phase 1")
	contractor := f.contractor(t, "Verma Constructions")
	binned := f.contract(t, contractor.ID, site.ID, 100000)
	f.payment(t, binned.ID, 30000)
	f.payment(t, binned.ID, 20000)
	kept := f.contract(t, contractor.ID, site.ID, 60000)
	f.payment(t, kept.ID, 10000)

	if _, err := f.contracts.SoftDelete(binned.ID, actor); err != nil {
		t.Fatalf("soft delete contract: %v", err)
	}

	got, err := f.engine.ContractorLedger(contractor.ID, nil)
	if err != nil {
		t.Fatalf("contractor ledger: %v", err)
	}
	wantAmount(t, "ContractValue", got.ContractValue, 60000)
	wantAmount(t, "PaidToDate", got.PaidToDate, 10000)
	wantAmount(t, "Balance", got.Balance, 50000)

	// the binned contract's payment rows themselves were not touched
	untouched, err := f.payments.List(store.PaymentFilter{ContractID: &binned.ID})
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(untouched) != 2 {
		t.Errorf("active payment rows under binned contract = %d, want 2", len(untouched))
	}
}

func TestContractorLedger_SiteScope(t *testing.T) {
	f := newFixture(t)
	siteA := f.site(t, "Phase 1")
	siteB := f.site(t, "Phase 2")
	contractor := f.contractor(t, "Verma Constructions")
	a := f.contract(t, contractor.ID, siteA.ID, 40000)
	b := f.contract(t, contractor.ID, siteB.ID, 70000)
	f.payment(t, a.ID, 5000)
	f.payment(t, b.ID, 9000)

	got, err := f.engine.ContractorLedger(contractor.ID, &siteA.ID)
	if err != nil {
		t.Fatalf("contractor ledger: %v", err)
	}
	wantAmount(t, "ContractValue", got.ContractValue, 40000)
	wantAmount(t, "PaidToDate", got.PaidToDate, 5000)
}

func TestContractorLedger_WrongKindRejected(t *testing.T) {
	f := newFixture(t)
	supplier, err := f.ledgers.Create(models.KindSupplier, "Just Supplies", store.LedgerAttrs{}, actor)
	if err != nil {
		t.Fatalf("create supplier: %v", err)
	}

	if _, err := f.engine.ContractorLedger(supplier.ID, nil); !errors.Is(err, store.ErrValidation) {
		t.Errorf("ledger of wrong kind error = %v, want ErrValidation", err)
	}
	if _, err := f.engine.ContractorLedger(9999, nil); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing ledger error = %v, want ErrNotFound", err)
	}
}

func TestSiteProfit_ActiveExpensesOnly(t *testing.T) {
	f := newFixture(t)
	site := f.site(t, "Phase 1")
	dept, err := f.depts.Create("PWD", nil, actor)
	if err != nil {
		t.Fatalf("create department: %v", err)
	}

	mk := func(title string, amount int64) *models.SiteExpense {
		e, err := f.expenses.Create(store.ExpenseInput{
			SiteID:      site.ID,
			ExpenseDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			Title:       title,
			Amount:      decimal.NewFromInt(amount),
		}, actor)
		if err != nil {
			t.Fatalf("create expense: %v", err)
		}
		return e
	}
	mk("diesel", 450)
	gone := mk("scaffolding", 800)
	if _, err := f.expenses.SoftDelete(gone.ID, actor); err != nil {
		t.Fatalf("soft delete expense: %v", err)
	}

	if _, err := f.vouchers.Create(store.VoucherInput{
		SiteID:       site.ID,
		DepartmentID: dept.ID,
		VoucherDate:  time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		ChequeAmt:    decimal.NewFromInt(2000),
	}, actor); err != nil {
		t.Fatalf("create voucher: %v", err)
	}

	rows, err := f.engine.SiteProfit()
	if err != nil {
		t.Fatalf("site profit: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("site profit rows = %d, want 1", len(rows))
	}
	wantAmount(t, "TotalExpense", rows[0].TotalExpense, 450)
	wantAmount(t, "TotalReceived", rows[0].TotalReceived, 2000)
	wantAmount(t, "Profit", rows[0].Profit, 1550)
	if rows[0].DepartmentName != "PWD" {
		t.Errorf("DepartmentName = %q, want %q", rows[0].DepartmentName, "PWD")
	}
}

func TestSiteProfit_DepartmentSentinel(t *testing.T) {
	f := newFixture(t)
	f.site(t, "No Vouchers Yet")

	rows, err := f.engine.SiteProfit()
	if err != nil {
		t.Fatalf("site profit: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("site profit rows = %d, want 1", len(rows))
	}
	if rows[0].DepartmentName != DepartmentUnknown {
		t.Errorf("DepartmentName = %q, want %q", rows[0].DepartmentName, DepartmentUnknown)
	}
	wantAmount(t, "Profit", rows[0].Profit, 0)
}

func TestSiteProfit_DeletedSiteSkipped(t *testing.T) {
	f := newFixture(t)
	keep := f.site(t, "Kept Site")
	drop := f.site(t, "Dropped Site")
	if _, err := f.sites.SoftDelete(drop.ID, actor); err != nil {
		t.Fatalf("soft delete site: %v", err)
	}

	rows, err := f.engine.SiteProfit()
	if err != nil {
		t.Fatalf("site profit: %v", err)
	}
	if len(rows) != 1 || rows[0].SiteID != keep.ID {
		t.Errorf("site profit rows = %+v, want only site #%d", rows, keep.ID)
	}
}
