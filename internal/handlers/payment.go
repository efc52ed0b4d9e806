package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/oakline/rental-backend/internal/services"
)

type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Amount and Date stay untyped here; the service decides what counts as
// numeric and as a valid past date, and reports each failing field.
type recordPaymentRequest struct {
	Amount any `json:"amount"`
	Date   any `json:"date"`
}

func (ph *PaymentHandler) Record(c *gin.Context) {
	tenantID, ok := parseIDParam(c, "id", "tenant")
	if !ok {
		return
	}
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, bindError(err))
		return
	}
	payment, err := ph.paymentService.RecordPayment(c.Request.Context(), tenantID, req.Amount, req.Date)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, gin.H{
		"message": "Payment created successfully",
		"amount":  payment.Amount,
		"date":    payment.Date,
	})
}

func (ph *PaymentHandler) History(c *gin.Context) {
	tenantID, ok := parseIDParam(c, "id", "tenant")
	if !ok {
		return
	}
	history, err := ph.paymentService.GetPaymentHistory(c.Request.Context(), tenantID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, history)
}
