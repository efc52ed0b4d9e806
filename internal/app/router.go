package app

import (
	"github.com/gin-gonic/gin"

	"github.com/oakline/rental-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AllowOrigin:            cfg.AllowOrigin,
		RequestLogMiddleware:   mw.RequestLog,
		PropertyManagerHandler: handlerset.PropertyManager,
		PropertyHandler:        handlerset.Property,
		ApartmentHandler:       handlerset.Apartment,
		TenantHandler:          handlerset.Tenant,
		PaymentHandler:         handlerset.Payment,
	})
}
