package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oakline/rental-backend/internal/handlers"
	"github.com/oakline/rental-backend/internal/middleware"
)

type RouterConfig struct {
	AllowOrigin            string
	RequestLogMiddleware   *middleware.RequestLogMiddleware
	PropertyManagerHandler *handlers.PropertyManagerHandler
	PropertyHandler        *handlers.PropertyHandler
	ApartmentHandler       *handlers.ApartmentHandler
	TenantHandler          *handlers.TenantHandler
	PaymentHandler         *handlers.PaymentHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if cfg.RequestLogMiddleware != nil {
		router.Use(cfg.RequestLogMiddleware.Handler())
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	// Property managers
	router.POST("/propertyManagers", cfg.PropertyManagerHandler.Create)
	router.GET("/propertyManagers", cfg.PropertyManagerHandler.List)
	router.PUT("/propertyManagers/:id", cfg.PropertyManagerHandler.Update)

	// Properties
	router.POST("/properties", cfg.PropertyHandler.Create)
	router.GET("/properties", cfg.PropertyHandler.List)
	router.GET("/properties/:id", cfg.PropertyHandler.GetByID)
	router.PUT("/properties/:id", cfg.PropertyHandler.Update)

	// Apartments
	router.POST("/apartments", cfg.ApartmentHandler.Create)
	router.GET("/apartments", cfg.ApartmentHandler.List)
	router.GET("/apartments/:id", cfg.ApartmentHandler.GetByID)
	router.PUT("/apartments/:id", cfg.ApartmentHandler.Update)

	// Tenants
	router.POST("/tenants", cfg.TenantHandler.Create)
	router.GET("/tenants", cfg.TenantHandler.List)
	router.GET("/tenants/:id", cfg.TenantHandler.GetByID)
	router.PUT("/tenants/:id", cfg.TenantHandler.Update)

	// Payments (shares the :id segment with the tenant routes; gin
	// rejects two wildcard names at the same position)
	router.POST("/tenants/:id/payments", cfg.PaymentHandler.Record)
	router.GET("/tenants/:id/payments/history", cfg.PaymentHandler.History)

	return router
}
