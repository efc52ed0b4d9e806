package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/oakline/rental-backend/internal/services"
)

type PropertyManagerHandler struct {
	managerService services.PropertyManagerService
}

func NewPropertyManagerHandler(managerService services.PropertyManagerService) *PropertyManagerHandler {
	return &PropertyManagerHandler{managerService: managerService}
}

type createPropertyManagerRequest struct {
	Name string `json:"name" binding:"required"`
}

type updatePropertyManagerRequest struct {
	Name *string `json:"name"`
}

// Create responds 200 rather than 201; the legacy property-manager
// endpoint is the one create that never used a created status.
func (ph *PropertyManagerHandler) Create(c *gin.Context) {
	var req createPropertyManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, bindError(err))
		return
	}
	manager, err := ph.managerService.Create(c.Request.Context(), req.Name)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, manager)
}

func (ph *PropertyManagerHandler) List(c *gin.Context) {
	managers, err := ph.managerService.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, managers)
}

func (ph *PropertyManagerHandler) Update(c *gin.Context) {
	managerID, ok := parseIDParam(c, "id", "property manager")
	if !ok {
		return
	}
	var req updatePropertyManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, bindError(err))
		return
	}
	manager, err := ph.managerService.Update(c.Request.Context(), managerID, req.Name)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, manager)
}
