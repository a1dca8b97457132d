package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctorsportal/doctors-portal-api/internal/models"
	"github.com/doctorsportal/doctors-portal-api/internal/services"
)

// GetTreatments lists treatment names. The full slot lists are only
// served through the availability route.
func (h *Handler) GetTreatments(c *gin.Context) {
	ctx, cancel := dbCtx(c)
	defer cancel()

	findOptions := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := h.DB.Collection("treatments").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to load treatments"})
		return
	}
	defer cursor.Close(ctx)

	var treatments []struct {
		Name string `bson:"name" json:"name"`
	}
	if err := cursor.All(ctx, &treatments); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to decode treatments"})
		return
	}

	c.JSON(http.StatusOK, treatments)
}

// GetAvailable returns every treatment with the slots still open on
// the requested date.
func (h *Handler) GetAvailable(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date query parameter is required"})
		return
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	cursor, err := h.DB.Collection("treatments").Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to load treatments"})
		return
	}
	var treatments []models.Treatment
	if err := cursor.All(ctx, &treatments); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to decode treatments"})
		return
	}

	cursor, err = h.DB.Collection("bookings").Find(ctx, bson.M{"date": date})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to load bookings"})
		return
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to decode bookings"})
		return
	}

	c.JSON(http.StatusOK, services.AvailableTreatments(treatments, bookings))
}
