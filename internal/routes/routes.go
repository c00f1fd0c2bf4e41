package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Premkumar95/UPPTN/internal/handlers"
	"github.com/Premkumar95/UPPTN/internal/middleware"
	"github.com/Premkumar95/UPPTN/internal/services"
	"github.com/Premkumar95/UPPTN/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, store storage.Store) {
	otpService := services.NewOTPService(store)
	authService := services.NewAuthService(store, otpService)
	catalogService := services.NewCatalogService(store)
	cartService := services.NewCartService(store)
	bookingService := services.NewBookingService(store)

	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	providerHandler := handlers.NewProviderHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	addressHandler := handlers.NewAddressHandler(store)

	// Every request resolves its bearer token once, into a session variant.
	app.Use(middleware.SessionFromToken(store))

	api := app.Group("/api")

	// Authentication
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/verify-otp", authHandler.VerifyOTP)
	auth.Post("/login", authHandler.Login)
	auth.Post("/request-change-pin", authHandler.RequestChangePin)
	auth.Post("/change-pin", authHandler.ChangePin)
	auth.Get("/me", middleware.RequireAuth(), authHandler.Me)

	// Public service discovery
	api.Get("/services", catalogHandler.Search)
	api.Get("/services/:id", catalogHandler.GetService)
	api.Get("/districts", catalogHandler.Districts)
	api.Get("/categories", catalogHandler.Categories)

	// Provider-scoped catalog CRUD
	provider := api.Group("/providers", middleware.RequireAuth())
	provider.Get("/services", providerHandler.ListServices)
	provider.Post("/services", providerHandler.CreateService)
	provider.Put("/services/:id", providerHandler.UpdateService)
	provider.Delete("/services/:id", providerHandler.DeleteService)

	// Cart & checkout
	cart := api.Group("/cart", middleware.RequireAuth())
	cart.Get("/", cartHandler.List)
	cart.Post("/", cartHandler.Add)
	cart.Post("/checkout", cartHandler.Checkout)
	cart.Delete("/:id", cartHandler.Remove)

	// Bookings; the by-id lookup stays public for tracking
	api.Get("/bookings", middleware.RequireAuth(), bookingHandler.List)
	api.Get("/bookings/:id", bookingHandler.Get)
	api.Put("/bookings/:id/status", middleware.RequireAuth(), bookingHandler.UpdateStatus)

	// Profile addresses
	addresses := api.Group("/addresses", middleware.RequireAuth())
	addresses.Get("/", addressHandler.List)
	addresses.Post("/", addressHandler.Create)
	addresses.Delete("/:id", addressHandler.Delete)
}
