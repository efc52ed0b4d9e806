package app

import (
	"gorm.io/gorm"

	"github.com/oakline/rental-backend/internal/pkg/logger"
	"github.com/oakline/rental-backend/internal/repos"
)

type Repos struct {
	PropertyManager repos.PropertyManagerRepo
	Property        repos.PropertyRepo
	Apartment       repos.ApartmentRepo
	Tenant          repos.TenantRepo
	Payment         repos.PaymentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		PropertyManager: repos.NewPropertyManagerRepo(db, log),
		Property:        repos.NewPropertyRepo(db, log),
		Apartment:       repos.NewApartmentRepo(db, log),
		Tenant:          repos.NewTenantRepo(db, log),
		Payment:         repos.NewPaymentRepo(db, log),
	}
}
