package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctorsportal/doctors-portal-api/internal/middleware"
	"github.com/doctorsportal/doctors-portal-api/internal/models"
)

type CreateBookingRequest struct {
	Treatment    string `json:"treatment" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Slot         string `json:"slot" binding:"required"`
	PatientName  string `json:"patientName" binding:"required"`
	PatientEmail string `json:"patientEmail" binding:"required,email"`
	PatientPhone string `json:"patientPhone"`
}

// CreateBooking inserts a booking. Uniqueness on (treatment, date,
// patientEmail) is enforced by the collection's unique index; a
// duplicate-key error maps to the 200 {success:false} shape clients
// expect, carrying the record that got there first.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking body: " + err.Error()})
		return
	}

	booking := models.Booking{
		ID:           primitive.NewObjectID(),
		Treatment:    req.Treatment,
		Date:         req.Date,
		Slot:         req.Slot,
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		PatientPhone: req.PatientPhone,
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	collection := h.DB.Collection("bookings")
	_, err := collection.InsertOne(ctx, booking)
	if mongo.IsDuplicateKeyError(err) {
		var existing models.Booking
		filter := bson.M{
			"treatment":    booking.Treatment,
			"date":         booking.Date,
			"patientEmail": booking.PatientEmail,
		}
		if err := collection.FindOne(ctx, filter).Decode(&existing); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to load existing booking"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": existing})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to create booking"})
		return
	}

	h.NotificationSvc.SendBookingConfirmation(booking)

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

// GetBookings lists a patient's bookings. The token identity must
// match the requested patient email.
func (h *Handler) GetBookings(c *gin.Context) {
	patient := c.Query("patient")
	if patient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "patient query parameter is required"})
		return
	}
	if c.GetString(middleware.ContextEmailKey) != patient {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
		return
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	cursor, err := h.DB.Collection("bookings").Find(ctx, bson.M{"patientEmail": patient})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to load bookings"})
		return
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to decode bookings"})
		return
	}
	if bookings == nil {
		bookings = make([]models.Booking, 0)
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking fetches a single booking by id. Any authenticated caller
// may fetch any booking.
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking id"})
		return
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	var booking models.Booking
	err = h.DB.Collection("bookings").FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to load booking"})
		return
	}

	c.JSON(http.StatusOK, booking)
}
