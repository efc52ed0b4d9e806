package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/oakline/rental-backend/internal/services"
)

type PropertyHandler struct {
	propertyService services.PropertyService
}

func NewPropertyHandler(propertyService services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

type createPropertyRequest struct {
	Address           string `json:"address" binding:"required"`
	Name              string `json:"name" binding:"required"`
	PropertyManagerID int64  `json:"propertyManagerId" binding:"required"`
}

type updatePropertyRequest struct {
	Address           *string `json:"address"`
	Name              *string `json:"name"`
	PropertyManagerID *int64  `json:"propertyManagerId"`
}

func (ph *PropertyHandler) Create(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, bindError(err))
		return
	}
	property, err := ph.propertyService.Create(c.Request.Context(), services.CreatePropertyInput{
		Address:           req.Address,
		Name:              req.Name,
		PropertyManagerID: req.PropertyManagerID,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, property)
}

func (ph *PropertyHandler) List(c *gin.Context) {
	properties, err := ph.propertyService.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, properties)
}

func (ph *PropertyHandler) GetByID(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "id", "property")
	if !ok {
		return
	}
	property, err := ph.propertyService.GetByID(c.Request.Context(), propertyID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, property)
}

func (ph *PropertyHandler) Update(c *gin.Context) {
	propertyID, ok := parseIDParam(c, "id", "property")
	if !ok {
		return
	}
	var req updatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, bindError(err))
		return
	}
	property, err := ph.propertyService.Update(c.Request.Context(), propertyID, services.UpdatePropertyInput{
		Address:           req.Address,
		Name:              req.Name,
		PropertyManagerID: req.PropertyManagerID,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, property)
}
