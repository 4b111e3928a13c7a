package database

import (
	"fmt"

	"github.com/dev-dtechby/AdarshColony-754-sub001/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Site{},
		&models.Department{},
		&models.MaterialMaster{},
		&models.LedgerType{},
		&models.Ledger{},
		&models.Contract{},
		&models.Payment{},
		&models.Voucher{},
		&models.SiteExpense{},
		&models.AuditEntry{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return seedLedgerTypes(db)
}

// seedLedgerTypes registers the builtin party kinds; reruns are no-ops.
func seedLedgerTypes(db *gorm.DB) error {
	for _, kind := range models.BuiltinKinds {
		t := models.LedgerType{Name: string(kind)}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&t).Error; err != nil {
			return fmt.Errorf("seed ledger type %s: %w", kind, err)
		}
	}
	return nil
}
