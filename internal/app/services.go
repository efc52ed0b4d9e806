package app

import (
	"gorm.io/gorm"

	"github.com/oakline/rental-backend/internal/pkg/logger"
	"github.com/oakline/rental-backend/internal/services"
)

type Services struct {
	PropertyManager services.PropertyManagerService
	Property        services.PropertyService
	Apartment       services.ApartmentService
	Tenant          services.TenantService
	Payment         services.PaymentService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		PropertyManager: services.NewPropertyManagerService(db, log, reposet.PropertyManager),
		Property:        services.NewPropertyService(db, log, reposet.Property, reposet.PropertyManager),
		Apartment:       services.NewApartmentService(db, log, reposet.Apartment, reposet.Property),
		Tenant:          services.NewTenantService(db, log, reposet.Tenant, reposet.Apartment),
		Payment:         services.NewPaymentService(db, log, reposet.Payment, reposet.Tenant),
	}
}
