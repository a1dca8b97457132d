package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctorsportal/doctors-portal-api/internal/services"
)

// Handler carries the database handle and the outbound services every
// endpoint needs. It is built once at startup.
type Handler struct {
	DB              *mongo.Database
	NotificationSvc *services.NotificationService
	PaymentSvc      *services.PaymentService
	RoleSvc         *services.RoleService
}

func NewHandler(db *mongo.Database, notificationSvc *services.NotificationService, paymentSvc *services.PaymentService, roleSvc *services.RoleService) *Handler {
	return &Handler{
		DB:              db,
		NotificationSvc: notificationSvc,
		PaymentSvc:      paymentSvc,
		RoleSvc:         roleSvc,
	}
}

// dbCtx bounds a database call to the request with a 5 second cap.
func dbCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 5*time.Second)
}

// Home is the liveness route.
func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Hello From Doctors Portal")
}
