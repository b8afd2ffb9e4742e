// Package routes defines the API routing configuration.
// It wires repositories, services and handlers in dependency order and
// applies authentication middleware per route group.
package routes

import (
	"log"

	"estatien/internal/config"
	"estatien/internal/handlers"
	"estatien/internal/middleware"
	"estatien/internal/models"
	"estatien/internal/repositories"
	"estatien/internal/services/apartment"
	"estatien/internal/services/auth"
	"estatien/internal/services/notification"
	"estatien/internal/services/paystack"
	"estatien/internal/services/settlement"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	appCfg := config.LoadApp()
	paystackCfg := config.LoadPaystack()
	mailCfg := config.LoadMail()

	// Repositories
	paymentRepo := repositories.NewPaymentRepository(db)
	apartmentRepo := repositories.NewApartmentRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// External collaborators
	gateway, err := paystack.NewClient(paystackCfg)
	if err != nil {
		log.Fatalf("failed to create paystack client: %v", err)
	}
	notifier := notification.NewService(notification.NewSMTPMailer(mailCfg))

	// Services
	authService := auth.NewService(userRepo, appCfg.JWTSecret)
	apartmentService := apartment.NewService(apartmentRepo, repositories.CacheService)
	settlementService := settlement.NewService(
		paymentRepo,
		apartmentRepo,
		userRepo,
		gateway,
		notifier,
		repositories.CacheService,
		settlement.Config{
			CommissionRate: settlement.DefaultCommissionRate,
			FrontendURL:    appCfg.FrontendURL,
			Currency:       models.CurrencyNGN,
		},
	)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	apartmentHandler := handlers.NewApartmentHandler(apartmentService)
	paymentHandler := handlers.NewPaymentHandler(settlementService, paystackCfg.SecretKey)

	authMiddleware := middleware.NewAuthMiddleware(authService, appCfg.JWTSecret)

	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.RefreshToken)
	api.Get("/apartments", apartmentHandler.ListApartments)
	api.Get("/apartments/:id", apartmentHandler.GetApartment)

	// Webhook is public; the handler checks the gateway signature.
	api.Post("/payments/webhook", paymentHandler.HandleWebhook)

	// Authenticated endpoints
	payments := api.Group("/payments", authMiddleware.Handler)
	payments.Post("/initialize", paymentHandler.InitializePayment)
	payments.Get("/verify/:transactionReference", paymentHandler.VerifyPayment)
	payments.Get("/history", paymentHandler.GetPaymentHistory)

	agents := api.Group("/agent", authMiddleware.Handler, middleware.RequireRole(models.RoleAgent, models.RoleAdmin))
	agents.Post("/apartments", apartmentHandler.CreateApartment)
	agents.Get("/apartments", apartmentHandler.ListAgentApartments)

	admin := api.Group("/admin", authMiddleware.Handler, middleware.RequireRole(models.RoleAdmin))
	admin.Patch("/apartments/:id/status", apartmentHandler.ModerateApartment)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Estatien API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
}
