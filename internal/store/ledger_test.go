package store

import (
	"errors"
	"testing"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"

	"github.com/shopspring/decimal"
)

func TestLedgerCreate_DuplicateActiveName(t *testing.T) {
	db := newTestDB(t)
	s := NewLedgerStore(db, testRecorder(db))

	if _, err := s.Create(models.KindSupplier, "Shree Cement", LedgerAttrs{}, testActor); err != nil {
		t.Fatalf("create: %v", err)
	}

	// same name up to case and inner whitespace
	dupes := []string{"Shree Cement", "shree cement", "  Shree   Cement  ", "SHREE CEMENT"}
	for _, name := range dupes {
		_, err := s.Create(models.KindSupplier, name, LedgerAttrs{}, testActor)
		if !errors.Is(err, ErrDuplicateName) {
			t.Errorf("Create(%q) error = %v, want ErrDuplicateName", name, err)
		}
	}
}

func TestLedgerCreate_SameNameDifferentKind(t *testing.T) {
	db := newTestDB(t)
	s := NewLedgerStore(db, testRecorder(db))

	if _, err := s.Create(models.KindSupplier, "Sharma & Sons", LedgerAttrs{}, testActor); err != nil {
		t.Fatalf("create supplier: %v", err)
	}
	if _, err := s.Create(models.KindContractor, "Sharma & Sons", LedgerAttrs{}, testActor); err != nil {
		t.Errorf("create contractor with same name error = %v, want nil", err)
	}
}

func TestLedgerCreate_NameFreedBySoftDelete(t *testing.T) {
	db := newTestDB(t)
	s := NewLedgerStore(db, testRecorder(db))

	first, err := s.Create(models.KindSupplier, "Balaji Traders", LedgerAttrs{}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.SoftDelete(first.ID, testActor); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	if _, err := s.Create(models.KindSupplier, "Balaji Traders", LedgerAttrs{}, testActor); err != nil {
		t.Errorf("recreate after soft delete error = %v, want nil", err)
	}
}

func TestLedgerCreate_UnknownKind(t *testing.T) {
	db := newTestDB(t)
	s := NewLedgerStore(db, testRecorder(db))

	_, err := s.Create(models.LedgerKind("Transporter"), "Speedy Logistics", LedgerAttrs{}, testActor)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Create with unregistered kind error = %v, want ErrValidation", err)
	}

	if _, err := s.EnsureType("Transporter"); err != nil {
		t.Fatalf("ensure type: %v", err)
	}
	if _, err := s.Create(models.LedgerKind("Transporter"), "Speedy Logistics", LedgerAttrs{}, testActor); err != nil {
		t.Errorf("Create after EnsureType error = %v, want nil", err)
	}
}

func TestLedgerCreate_OrphanSite(t *testing.T) {
	db := newTestDB(t)
	s := NewLedgerStore(db, testRecorder(db))

	missing := uint(999)
	_, err := s.Create(models.KindSupplier, "Site Scoped", LedgerAttrs{SiteID: &missing}, testActor)
	if !errors.Is(err, ErrOrphanReference) {
		t.Fatalf("Create with missing site error = %v, want ErrOrphanReference", err)
	}
}

func TestLedgerCreate_ClosingStartsAtOpening(t *testing.T) {
	db := newTestDB(t)
	s := NewLedgerStore(db, testRecorder(db))

	opening := decimal.RequireFromString("1500.25")
	l, err := s.Create(models.KindSupplier, "Opening Check", LedgerAttrs{OpeningBalance: opening}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !l.ClosingBalance.Equal(opening) {
		t.Errorf("ClosingBalance = %s, want %s", l.ClosingBalance, opening)
	}
}

func TestLedgerUpdate_RenameDuplicate(t *testing.T) {
	db := newTestDB(t)
	s := NewLedgerStore(db, testRecorder(db))

	if _, err := s.Create(models.KindSupplier, "Alpha", LedgerAttrs{}, testActor); err != nil {
		t.Fatalf("create alpha: %v", err)
	}
	beta, err := s.Create(models.KindSupplier, "Beta", LedgerAttrs{}, testActor)
	if err != nil {
		t.Fatalf("create beta: %v", err)
	}

	name := "alpha"
	if _, err := s.Update(beta.ID, LedgerPatch{Name: &name}, testActor); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("rename to taken name error = %v, want ErrDuplicateName", err)
	}

	// renaming to its own name is not a conflict
	same := "Beta"
	if _, err := s.Update(beta.ID, LedgerPatch{Name: &same}, testActor); err != nil {
		t.Errorf("rename to own name error = %v, want nil", err)
	}
}

func TestLedgerUpdate_DeletedRejected(t *testing.T) {
	db := newTestDB(t)
	s := NewLedgerStore(db, testRecorder(db))

	l, err := s.Create(models.KindSupplier, "Gone Soon", LedgerAttrs{}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.SoftDelete(l.ID, testActor); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	remark := "too late"
	if _, err := s.Update(l.ID, LedgerPatch{Remark: &remark}, testActor); !errors.Is(err, ErrDeletedRecord) {
		t.Errorf("update deleted ledger error = %v, want ErrDeletedRecord", err)
	}
}

func TestLedgerUpdate_BlankOptionalClearsField(t *testing.T) {
	db := newTestDB(t)
	s := NewLedgerStore(db, testRecorder(db))

	addr := "Main Road, Ward 7"
	l, err := s.Create(models.KindSupplier, "Patch Check", LedgerAttrs{Address: &addr}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	blank := "   "
	updated, err := s.Update(l.ID, LedgerPatch{Address: &blank}, testActor)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Address != nil {
		t.Errorf("Address = %q, want nil after blank patch", *updated.Address)
	}
}

func TestLedgerList_SplitsByState(t *testing.T) {
	db := newTestDB(t)
	s := NewLedgerStore(db, testRecorder(db))

	keep, err := s.Create(models.KindContractor, "Keeper", LedgerAttrs{}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	drop, err := s.Create(models.KindContractor, "Dropper", LedgerAttrs{}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.SoftDelete(drop.ID, testActor); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	kind := models.KindContractor
	active, err := s.ListActive(&kind)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].ID != keep.ID {
		t.Errorf("ListActive = %d rows, want only #%d", len(active), keep.ID)
	}

	deleted, err := s.ListDeleted(&kind)
	if err != nil {
		t.Fatalf("list deleted: %v", err)
	}
	if len(deleted) != 1 || deleted[0].ID != drop.ID {
		t.Errorf("ListDeleted = %d rows, want only #%d", len(deleted), drop.ID)
	}
}

func TestEnsureType_Idempotent(t *testing.T) {
	db := newTestDB(t)
	s := NewLedgerStore(db, testRecorder(db))

	first, err := s.EnsureType("Transporter")
	if err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	second, err := s.EnsureType("Transporter")
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("EnsureType created two rows: #%d and #%d", first.ID, second.ID)
	}

	var n int64
	if err := db.Model(&models.LedgerType{}).Where("name = ?", "Transporter").Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("ledger type rows = %d, want 1", n)
	}
}

func TestEnsureType_BuiltinsSeeded(t *testing.T) {
	db := newTestDB(t)

	var n int64
	if err := db.Model(&models.LedgerType{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != int64(len(models.BuiltinKinds)) {
		t.Errorf("seeded ledger types = %d, want %d", n, len(models.BuiltinKinds))
	}
}
