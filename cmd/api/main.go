package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doctorsportal/doctors-portal-api/internal/config"
	"github.com/doctorsportal/doctors-portal-api/internal/handlers"
	"github.com/doctorsportal/doctors-portal-api/internal/middleware"
	"github.com/doctorsportal/doctors-portal-api/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	db := client.Database(cfg.MongoDatabase)
	log.Println("Successfully connected to MongoDB!")

	if err := ensureBookingIndex(ctx, db); err != nil {
		log.Fatalf("Failed to create booking index: %v", err)
	}

	// --- Initialize Services ---
	notificationSvc := services.NewNotificationService(services.NotificationConfig{
		APIKey:   cfg.SendGridAPIKey,
		From:     cfg.EmailFrom,
		FromName: cfg.EmailFromName,
	})
	paymentSvc := services.NewPaymentService(cfg.StripeSecretKey)
	roleSvc := services.NewRoleService(db)

	h := handlers.NewHandler(db, notificationSvc, paymentSvc, roleSvc)

	// --- Gin Router ---
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// --- Routes ---
	r.GET("/", h.Home)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/treatment", h.GetTreatments)
	r.GET("/available", h.GetAvailable)
	r.POST("/booking", h.CreateBooking)
	r.GET("/admin/:email", h.CheckAdmin)
	// /user/:email and /user/admin/:email share one catch-all; see
	// PutUserDispatch.
	r.PUT("/user/*email", h.PutUserDispatch(
		middleware.AuthMiddleware(),
		middleware.AdminMiddleware(roleSvc),
	))

	authRoutes := r.Group("/")
	authRoutes.Use(middleware.AuthMiddleware())
	{
		authRoutes.GET("/booking", h.GetBookings)
		authRoutes.GET("/booking/:id", h.GetBooking)
		authRoutes.GET("/user", h.GetUsers)
		authRoutes.POST("/create-payment-intent", h.CreatePaymentIntent)
	}

	adminRoutes := r.Group("/")
	adminRoutes.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware(roleSvc))
	{
		adminRoutes.GET("/doctor", h.GetDoctors)
		adminRoutes.POST("/doctor", h.CreateDoctor)
		adminRoutes.DELETE("/doctor/:email", h.DeleteDoctor)
	}

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// ensureBookingIndex enforces booking uniqueness at the storage level
// so concurrent identical requests cannot both insert.
func ensureBookingIndex(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("bookings").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "treatment", Value: 1},
			{Key: "date", Value: 1},
			{Key: "patientEmail", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}
