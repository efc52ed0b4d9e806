package app

import (
	"github.com/oakline/rental-backend/internal/handlers"
	"github.com/oakline/rental-backend/internal/middleware"
	"github.com/oakline/rental-backend/internal/pkg/logger"
)

type Handlers struct {
	PropertyManager *handlers.PropertyManagerHandler
	Property        *handlers.PropertyHandler
	Apartment       *handlers.ApartmentHandler
	Tenant          *handlers.TenantHandler
	Payment         *handlers.PaymentHandler
}

type Middleware struct {
	RequestLog *middleware.RequestLogMiddleware
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		PropertyManager: handlers.NewPropertyManagerHandler(serviceset.PropertyManager),
		Property:        handlers.NewPropertyHandler(serviceset.Property),
		Apartment:       handlers.NewApartmentHandler(serviceset.Apartment),
		Tenant:          handlers.NewTenantHandler(serviceset.Tenant),
		Payment:         handlers.NewPaymentHandler(serviceset.Payment),
	}
}

func wireMiddleware(log *logger.Logger) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		RequestLog: middleware.NewRequestLogMiddleware(log),
	}
}
