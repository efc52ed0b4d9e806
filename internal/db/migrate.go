package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/oakline/rental-backend/internal/domain"
)

// AutoMigrateAll creates the five rental tables if they do not exist.
// Safe to re-run against an already-initialized store.
func AutoMigrateAll(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&domain.PropertyManager{},
		&domain.Property{},
		&domain.Apartment{},
		&domain.Tenant{},
		&domain.Payment{},
	)
}

type foreignKey struct {
	table      string
	constraint string
	column     string
	refTable   string
}

var foreignKeys = []foreignKey{
	{table: "property", constraint: "fk_property_property_manager_id", column: "property_manager_id", refTable: "property_manager"},
	{table: "apartment", constraint: "fk_apartment_property_id", column: "property_id", refTable: "property"},
	{table: "tenant", constraint: "fk_tenant_apartment_id", column: "apartment_id", refTable: "apartment"},
	{table: "payment", constraint: "fk_payment_tenant_id", column: "tenant_id", refTable: "tenant"},
}

// EnsureForeignKeys adds the parent-reference constraints, skipping any
// that already exist so initialization stays idempotent.
func EnsureForeignKeys(gormDB *gorm.DB) error {
	for _, fk := range foreignKeys {
		var count int64
		if err := gormDB.Raw(
			`SELECT count(*) FROM information_schema.table_constraints WHERE constraint_name = ? AND table_name = ?`,
			fk.constraint, fk.table,
		).Scan(&count).Error; err != nil {
			return fmt.Errorf("failed to check constraint %s: %w", fk.constraint, err)
		}
		if count > 0 {
			continue
		}
		stmt := fmt.Sprintf(
			`ALTER TABLE %q ADD CONSTRAINT %q FOREIGN KEY (%q) REFERENCES %q("id")`,
			fk.table, fk.constraint, fk.column, fk.refTable,
		)
		if err := gormDB.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", fk.constraint, err)
		}
	}
	return nil
}
