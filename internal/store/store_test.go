package store

import (
	"path/filepath"
	"testing"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/audit"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/database"
	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func testRecorder(db *gorm.DB) *audit.Recorder {
	return audit.NewRecorder(db, true)
}

var testActor = audit.Actor{Name: "tester", IP: "127.0.0.1"}

func seedSite(t *testing.T, db *gorm.DB, name string) *models.Site {
	t.Helper()
	site, err := NewSiteStore(db, testRecorder(db)).Create(name, nil, nil, testActor)
	if err != nil {
		t.Fatalf("seed site %q: %v", name, err)
	}
	return site
}

func seedDepartment(t *testing.T, db *gorm.DB, name string) *models.Department {
	t.Helper()
	dept, err := NewDepartmentStore(db, testRecorder(db)).Create(name, nil, testActor)
	if err != nil {
		t.Fatalf("seed department %q: %v", name, err)
	}
	return dept
}

func seedContractor(t *testing.T, db *gorm.DB, name string) *models.Ledger {
	t.Helper()
	l, err := NewLedgerStore(db, testRecorder(db)).Create(models.KindContractor, name, LedgerAttrs{}, testActor)
	if err != nil {
		t.Fatalf("seed contractor %q: %v", name, err)
	}
	return l
}

// countAudit counts audit entries recorded for one record.
func countAudit(t *testing.T, db *gorm.DB, module string, recordID uint) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.AuditEntry{}).
		Where("module = ? AND record_id = ?", module, recordID).
		Count(&n).Error; err != nil {
		t.Fatalf("count audit entries: %v", err)
	}
	return n
}
