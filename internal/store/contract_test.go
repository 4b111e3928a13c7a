package store

import (
	"errors"
	"testing"
	"time"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"

	"github.com/shopspring/decimal"
)

func TestContractCreate_OwnerChecks(t *testing.T) {
	db := newTestDB(t)
	ledgers := NewLedgerStore(db, testRecorder(db))
	contracts := NewContractStore(db, testRecorder(db))
	site := seedSite(t, db, "Owner Checks")

	supplier, err := ledgers.Create(models.KindSupplier, "Not A Contractor", LedgerAttrs{}, testActor)
	if err != nil {
		t.Fatalf("create supplier: %v", err)
	}
	binned := seedContractor(t, db, "Binned Contractor")
	if _, err := ledgers.SoftDelete(binned.ID, testActor); err != nil {
		t.Fatalf("soft delete contractor: %v", err)
	}

	value := decimal.NewFromInt(50000)
	cases := []struct {
		name     string
		ledgerID uint
		want     error
	}{
		{"missing ledger", 9999, ErrOrphanReference},
		{"wrong kind", supplier.ID, ErrValidation},
		{"deleted contractor", binned.ID, ErrDeletedRecord},
	}
	for _, tc := range cases {
		_, err := contracts.Create(ContractInput{
			ContractorLedgerID: tc.ledgerID,
			SiteID:             site.ID,
			AgreedValue:        value,
		}, testActor)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: Create error = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestContractCreate_NegativeValueRejected(t *testing.T) {
	db := newTestDB(t)
	contracts := NewContractStore(db, testRecorder(db))
	site := seedSite(t, db, "Negative Value")
	contractor := seedContractor(t, db, "Value Check")

	_, err := contracts.Create(ContractInput{
		ContractorLedgerID: contractor.ID,
		SiteID:             site.ID,
		AgreedValue:        decimal.NewFromInt(-1),
	}, testActor)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Create with negative value error = %v, want ErrValidation", err)
	}
}

func TestPaymentCreate_DenormalizesFromContract(t *testing.T) {
	db := newTestDB(t)
	contracts := NewContractStore(db, testRecorder(db))
	payments := NewPaymentStore(db, testRecorder(db))
	site := seedSite(t, db, "Denorm")
	contractor := seedContractor(t, db, "Denorm Contractor")

	contract, err := contracts.Create(ContractInput{
		ContractorLedgerID: contractor.ID,
		SiteID:             site.ID,
		AgreedValue:        decimal.NewFromInt(80000),
	}, testActor)
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}

	p, err := payments.Create(PaymentInput{
		ContractID:  contract.ID,
		PaymentDate: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(12000),
	}, testActor)
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if p.ContractorLedgerID != contractor.ID {
		t.Errorf("ContractorLedgerID = %d, want %d", p.ContractorLedgerID, contractor.ID)
	}
	if p.SiteID != site.ID {
		t.Errorf("SiteID = %d, want %d", p.SiteID, site.ID)
	}
}

func TestPaymentCreate_DeletedContractRejected(t *testing.T) {
	db := newTestDB(t)
	contracts := NewContractStore(db, testRecorder(db))
	payments := NewPaymentStore(db, testRecorder(db))
	site := seedSite(t, db, "Locked Parent")
	contractor := seedContractor(t, db, "Locked Contractor")

	contract, err := contracts.Create(ContractInput{
		ContractorLedgerID: contractor.ID,
		SiteID:             site.ID,
		AgreedValue:        decimal.NewFromInt(30000),
	}, testActor)
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}
	if _, err := contracts.SoftDelete(contract.ID, testActor); err != nil {
		t.Fatalf("soft delete contract: %v", err)
	}

	_, err = payments.Create(PaymentInput{
		ContractID:  contract.ID,
		PaymentDate: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(5000),
	}, testActor)
	if !errors.Is(err, ErrDeletedRecord) {
		t.Fatalf("Create under deleted contract error = %v, want ErrDeletedRecord", err)
	}
}

func TestPaymentList_DateRangeInclusive(t *testing.T) {
	db := newTestDB(t)
	contracts := NewContractStore(db, testRecorder(db))
	payments := NewPaymentStore(db, testRecorder(db))
	site := seedSite(t, db, "Range")
	contractor := seedContractor(t, db, "Range Contractor")

	contract, err := contracts.Create(ContractInput{
		ContractorLedgerID: contractor.ID,
		SiteID:             site.ID,
		AgreedValue:        decimal.NewFromInt(90000),
	}, testActor)
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}

	dates := []time.Time{
		time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		if _, err := payments.Create(PaymentInput{
			ContractID:  contract.ID,
			PaymentDate: d,
			Amount:      decimal.NewFromInt(1000),
		}, testActor); err != nil {
			t.Fatalf("create payment %s: %v", d, err)
		}
	}

	from := dates[0]
	to := dates[1] // inclusive upper bound, whole day
	got, err := payments.List(PaymentFilter{Range: DateRange{From: &from, To: &to}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("payments in range = %d, want 2", len(got))
	}
}
