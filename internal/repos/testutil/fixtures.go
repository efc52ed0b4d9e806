package testutil

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/oakline/rental-backend/internal/domain"
)

func SeedManager(tb testing.TB, gormDB *gorm.DB, name string) *domain.PropertyManager {
	tb.Helper()
	m := &domain.PropertyManager{Name: name}
	if err := gormDB.Create(m).Error; err != nil {
		tb.Fatalf("seed property manager: %v", err)
	}
	return m
}

func SeedProperty(tb testing.TB, gormDB *gorm.DB, managerID int64) *domain.Property {
	tb.Helper()
	p := &domain.Property{
		PropertyManagerID: managerID,
		Address:           "123 Main St",
		Name:              "Main Street Lofts",
	}
	if err := gormDB.Create(p).Error; err != nil {
		tb.Fatalf("seed property: %v", err)
	}
	return p
}

func SeedApartment(tb testing.TB, gormDB *gorm.DB, propertyID int64) *domain.Apartment {
	tb.Helper()
	a := &domain.Apartment{PropertyID: propertyID, UnitNumber: "4B"}
	if err := gormDB.Create(a).Error; err != nil {
		tb.Fatalf("seed apartment: %v", err)
	}
	return a
}

func SeedTenant(tb testing.TB, gormDB *gorm.DB, apartmentID int64) *domain.Tenant {
	tb.Helper()
	t := &domain.Tenant{
		FirstName:   "John",
		LastName:    "Doe",
		Dob:         "1990-04-12",
		SSN:         "123-45-6789",
		IsPrimary:   true,
		ApartmentID: apartmentID,
	}
	if err := gormDB.Create(t).Error; err != nil {
		tb.Fatalf("seed tenant: %v", err)
	}
	return t
}

func SeedPayment(tb testing.TB, gormDB *gorm.DB, tenantID int64, amount float64, date time.Time) *domain.Payment {
	tb.Helper()
	p := &domain.Payment{TenantID: tenantID, Amount: amount, Date: date}
	if err := gormDB.Create(p).Error; err != nil {
		tb.Fatalf("seed payment: %v", err)
	}
	return p
}

// SeedTenantChain creates manager → property → apartment → tenant and
// returns the tenant.
func SeedTenantChain(tb testing.TB, gormDB *gorm.DB) *domain.Tenant {
	tb.Helper()
	m := SeedManager(tb, gormDB, "John Doe")
	p := SeedProperty(tb, gormDB, m.ID)
	a := SeedApartment(tb, gormDB, p.ID)
	return SeedTenant(tb, gormDB, a.ID)
}
