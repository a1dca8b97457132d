package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreatePaymentIntent asks Stripe for an intent covering the given
// price and relays the client secret. The intent is not linked to any
// booking; correlating the two is the caller's job.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "price must be a positive number"})
		return
	}

	clientSecret, err := h.PaymentSvc.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
