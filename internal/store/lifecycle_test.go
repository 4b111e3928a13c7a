package store

import (
	"errors"
	"testing"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"
)

func TestLifecycle_ReentrantTransitionsError(t *testing.T) {
	db := newTestDB(t)
	s := NewSiteStore(db, testRecorder(db))

	site, err := s.Create("Adarsh Colony Phase 1", nil, nil, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := s.Restore(site.ID, testActor); !errors.Is(err, ErrActiveRecord) {
		t.Errorf("restore active record error = %v, want ErrActiveRecord", err)
	}

	if _, err := s.SoftDelete(site.ID, testActor); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if _, err := s.SoftDelete(site.ID, testActor); !errors.Is(err, ErrDeletedRecord) {
		t.Errorf("soft delete deleted record error = %v, want ErrDeletedRecord", err)
	}
}

func TestLifecycle_RoundTripRestoresState(t *testing.T) {
	db := newTestDB(t)
	s := NewSiteStore(db, testRecorder(db))

	loc := "NH-44 bypass"
	remark := "two towers"
	site, err := s.Create("Round Trip", &loc, &remark, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := s.SoftDelete(site.ID, testActor)
	if err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if !deleted.IsDeleted || deleted.DeletedAt == nil || deleted.DeletedBy == nil {
		t.Fatalf("soft delete did not stamp removal fields: %+v", deleted.Removal)
	}
	if *deleted.DeletedBy != testActor.Name {
		t.Errorf("DeletedBy = %q, want %q", *deleted.DeletedBy, testActor.Name)
	}

	restored, err := s.Restore(site.ID, testActor)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.IsDeleted || restored.DeletedAt != nil || restored.DeletedBy != nil {
		t.Errorf("restore left removal fields set: %+v", restored.Removal)
	}
	if restored.Name != site.Name || *restored.Location != loc || *restored.Remark != remark {
		t.Errorf("restored record differs from pre-delete state: %+v", restored)
	}
}

func TestLifecycle_AuditEntriesPerCycle(t *testing.T) {
	db := newTestDB(t)
	s := NewSiteStore(db, testRecorder(db))

	site, err := s.Create("Cycle Count", nil, nil, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	const cycles = 3
	for i := 0; i < cycles; i++ {
		if _, err := s.SoftDelete(site.ID, testActor); err != nil {
			t.Fatalf("cycle %d soft delete: %v", i, err)
		}
		if _, err := s.Restore(site.ID, testActor); err != nil {
			t.Fatalf("cycle %d restore: %v", i, err)
		}
	}

	// one CREATE plus a DELETE/RESTORE pair per cycle
	got := countAudit(t, db, ModuleSite, site.ID)
	if want := int64(2*cycles + 1); got != want {
		t.Errorf("audit entries = %d, want %d", got, want)
	}
}

func TestLifecycle_HardDeleteKeepsAuditTrail(t *testing.T) {
	db := newTestDB(t)
	s := NewSiteStore(db, testRecorder(db))

	site, err := s.Create("Purge Me", nil, nil, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.HardDelete(site.ID, testActor); err != nil {
		t.Fatalf("hard delete: %v", err)
	}

	if _, err := s.Get(site.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after hard delete error = %v, want ErrNotFound", err)
	}
	active, err := s.ListActive()
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("ListActive after hard delete = %d rows, want 0", len(active))
	}

	var entry models.AuditEntry
	if err := db.Where("module = ? AND record_id = ? AND action = ?",
		ModuleSite, site.ID, models.AuditHardDelete).First(&entry).Error; err != nil {
		t.Fatalf("fetch HARD_DELETE audit entry: %v", err)
	}
	if entry.OldData == nil {
		t.Error("HARD_DELETE entry has no old snapshot")
	}
	if entry.NewData != nil {
		t.Errorf("HARD_DELETE entry has new snapshot %q, want none", *entry.NewData)
	}
}

func TestLifecycle_HardDeleteFromDeletedState(t *testing.T) {
	db := newTestDB(t)
	s := NewSiteStore(db, testRecorder(db))

	site, err := s.Create("Bin Then Purge", nil, nil, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.SoftDelete(site.ID, testActor); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if err := s.HardDelete(site.ID, testActor); err != nil {
		t.Errorf("hard delete from Deleted state error = %v, want nil", err)
	}
}

// Concurrent writers are not serialized beyond the storage engine: two
// updates loaded from the same snapshot both succeed and the later write
// wins without error.
func TestLifecycle_LastWriterWins(t *testing.T) {
	db := newTestDB(t)
	s := NewSiteStore(db, testRecorder(db))

	site, err := s.Create("Race Course", nil, nil, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first := "first writer"
	second := "second writer"
	if _, err := s.Update(site.ID, SitePatch{Remark: &first}, testActor); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if _, err := s.Update(site.ID, SitePatch{Remark: &second}, testActor); err != nil {
		t.Fatalf("second update: %v", err)
	}

	got, err := s.Get(site.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Remark == nil || *got.Remark != second {
		t.Errorf("Remark = %v, want %q", got.Remark, second)
	}
}
