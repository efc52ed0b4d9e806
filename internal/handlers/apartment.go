package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/oakline/rental-backend/internal/services"
)

type ApartmentHandler struct {
	apartmentService services.ApartmentService
}

func NewApartmentHandler(apartmentService services.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{apartmentService: apartmentService}
}

type createApartmentRequest struct {
	PropertyID int64  `json:"propertyId" binding:"required"`
	UnitNumber string `json:"unitNumber" binding:"required"`
}

type updateApartmentRequest struct {
	PropertyID *int64  `json:"propertyId"`
	UnitNumber *string `json:"unitNumber"`
}

func (ah *ApartmentHandler) Create(c *gin.Context) {
	var req createApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, bindError(err))
		return
	}
	apartment, err := ah.apartmentService.Create(c.Request.Context(), services.CreateApartmentInput{
		PropertyID: req.PropertyID,
		UnitNumber: req.UnitNumber,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, apartment)
}

func (ah *ApartmentHandler) List(c *gin.Context) {
	apartments, err := ah.apartmentService.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, apartments)
}

func (ah *ApartmentHandler) GetByID(c *gin.Context) {
	apartmentID, ok := parseIDParam(c, "id", "apartment")
	if !ok {
		return
	}
	apartment, err := ah.apartmentService.GetByID(c.Request.Context(), apartmentID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, apartment)
}

func (ah *ApartmentHandler) Update(c *gin.Context) {
	apartmentID, ok := parseIDParam(c, "id", "apartment")
	if !ok {
		return
	}
	var req updateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, bindError(err))
		return
	}
	apartment, err := ah.apartmentService.Update(c.Request.Context(), apartmentID, services.UpdateApartmentInput{
		PropertyID: req.PropertyID,
		UnitNumber: req.UnitNumber,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, apartment)
}
