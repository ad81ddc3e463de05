package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patient-appointment-system/internal/config"
	"patient-appointment-system/internal/database"
	"patient-appointment-system/internal/handler"
	"patient-appointment-system/internal/middleware"
	"patient-appointment-system/internal/repository"
	"patient-appointment-system/internal/service"
	"patient-appointment-system/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	doctorRepo := repository.NewDoctorRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	medicationRepo := repository.NewMedicationRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	doctorService := service.NewDoctorService(doctorRepo, auditRepo)
	patientService := service.NewPatientService(patientRepo, auditRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, doctorRepo, patientRepo, auditRepo)
	medicationService := service.NewMedicationService(medicationRepo, patientRepo)
	authService := service.NewAuthService(doctorService, patientService, tokenRepo, auditRepo)
	tokenCleanup := service.NewTokenCleanupService(tokenRepo, time.Hour)

	// 6. Start background token cleanup in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tokenCleanup.Start(ctx)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	doctorHandler := handler.NewDoctorHandler(doctorService, authService)
	patientHandler := handler.NewPatientHandler(patientService, authService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	medicationHandler := handler.NewMedicationHandler(medicationService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "patient-appointment-system",
		})
	})

	api := r.Group("/api/v1")

	// Public routes
	api.POST("/doctors/register", doctorHandler.Register)
	api.POST("/doctors/login", doctorHandler.Login)
	api.POST("/patients/register", patientHandler.Register)
	api.POST("/patients/login", patientHandler.Login)

	auth := api.Group("/auth")
	{
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Authenticated routes
	doctors := api.Group("/doctors")
	doctors.Use(middleware.AuthMiddleware())
	{
		doctors.GET("", doctorHandler.List)
		doctors.GET("/profile", middleware.RequireDoctor(), doctorHandler.GetProfile)
		doctors.PUT("/profile", middleware.RequireDoctor(), doctorHandler.UpdateProfile)
		doctors.GET("/:id", doctorHandler.GetByID)
		doctors.DELETE("/:id", middleware.RequireDoctor(), doctorHandler.Delete)
	}

	patients := api.Group("/patients")
	patients.Use(middleware.AuthMiddleware())
	{
		patients.GET("", middleware.RequireDoctor(), patientHandler.List)
		patients.GET("/profile", middleware.RequirePatient(), patientHandler.GetProfile)
		patients.PUT("/profile", middleware.RequirePatient(), patientHandler.UpdateProfile)
		patients.GET("/:id", patientHandler.GetByID)
		patients.DELETE("/:id", middleware.RequirePatient(), patientHandler.Delete)
	}

	appointments := api.Group("/appointments")
	appointments.Use(middleware.AuthMiddleware())
	{
		appointments.POST("", appointmentHandler.Book)
		appointments.GET("", appointmentHandler.List)
		appointments.GET("/:id", appointmentHandler.GetByID)
		appointments.PUT("/:id", appointmentHandler.Update)
		appointments.DELETE("/:id", appointmentHandler.Delete)
		appointments.GET("/doctor/:doctorId", appointmentHandler.ListByDoctor)
		appointments.GET("/patient/:patientId", appointmentHandler.ListByPatient)
	}

	medications := api.Group("/medications")
	medications.Use(middleware.AuthMiddleware())
	{
		medications.POST("", middleware.RequireDoctor(), medicationHandler.Add)
		medications.GET("", medicationHandler.List)
		medications.GET("/:id", medicationHandler.GetByID)
		medications.PUT("/:id", middleware.RequireDoctor(), medicationHandler.Update)
		medications.DELETE("/:id", middleware.RequireDoctor(), medicationHandler.Delete)
		medications.GET("/patient/:patientId", medicationHandler.ListByPatient)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background cleanup context
	cancel()
	log.Println("Server exited")
}
