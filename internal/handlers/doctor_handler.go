package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/doctorsportal/doctors-portal-api/internal/models"
)

type CreateDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Specialty string `json:"specialty"`
	ImageURL  string `json:"imageUrl"`
}

// GetDoctors lists every doctor.
func (h *Handler) GetDoctors(c *gin.Context) {
	ctx, cancel := dbCtx(c)
	defer cancel()

	cursor, err := h.DB.Collection("doctors").Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to load doctors"})
		return
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to decode doctors"})
		return
	}
	if doctors == nil {
		doctors = make([]models.Doctor, 0)
	}

	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor inserts a doctor document.
func (h *Handler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid doctor body: " + err.Error()})
		return
	}

	doctor := models.Doctor{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		ImageURL:  req.ImageURL,
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if _, err := h.DB.Collection("doctors").InsertOne(ctx, doctor); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to create doctor"})
		return
	}

	c.JSON(http.StatusCreated, doctor)
}

// DeleteDoctor removes a doctor by email.
func (h *Handler) DeleteDoctor(c *gin.Context) {
	ctx, cancel := dbCtx(c)
	defer cancel()

	result, err := h.DB.Collection("doctors").DeleteOne(ctx, bson.M{"email": c.Param("email")})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to delete doctor"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Doctor not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}
