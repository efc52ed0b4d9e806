package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/oakline/rental-backend/internal/services"
)

type TenantHandler struct {
	tenantService services.TenantService
}

func NewTenantHandler(tenantService services.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// IsPrimary is a pointer so an explicit false still counts as supplied.
type createTenantRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Dob         string `json:"dob" binding:"required"`
	SSN         string `json:"ssn" binding:"required"`
	IsPrimary   *bool  `json:"isPrimary" binding:"required"`
	ApartmentID int64  `json:"apartmentId" binding:"required"`
}

type updateTenantRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Dob         *string `json:"dob"`
	SSN         *string `json:"ssn"`
	IsPrimary   *bool   `json:"isPrimary"`
	ApartmentID *int64  `json:"apartmentId"`
}

func (th *TenantHandler) Create(c *gin.Context) {
	var req createTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, bindError(err))
		return
	}
	tenant, err := th.tenantService.Create(c.Request.Context(), services.CreateTenantInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Dob:         req.Dob,
		SSN:         req.SSN,
		IsPrimary:   req.IsPrimary,
		ApartmentID: req.ApartmentID,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, tenant)
}

func (th *TenantHandler) List(c *gin.Context) {
	tenants, err := th.tenantService.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, tenants)
}

func (th *TenantHandler) GetByID(c *gin.Context) {
	tenantID, ok := parseIDParam(c, "id", "tenant")
	if !ok {
		return
	}
	tenant, err := th.tenantService.GetByID(c.Request.Context(), tenantID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, tenant)
}

func (th *TenantHandler) Update(c *gin.Context) {
	tenantID, ok := parseIDParam(c, "id", "tenant")
	if !ok {
		return
	}
	var req updateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, bindError(err))
		return
	}
	tenant, err := th.tenantService.Update(c.Request.Context(), tenantID, services.UpdateTenantInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Dob:         req.Dob,
		SSN:         req.SSN,
		IsPrimary:   req.IsPrimary,
		ApartmentID: req.ApartmentID,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, tenant)
}
