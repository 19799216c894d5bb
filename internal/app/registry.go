package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"steez-storefront/internal/admin"
	"steez-storefront/internal/cart"
	"steez-storefront/internal/catalog"
	"steez-storefront/internal/catalog/adapters"
	"steez-storefront/internal/checkout"
	"steez-storefront/internal/cloudinary"
	"steez-storefront/internal/messaging/kafka/producer"
	"steez-storefront/internal/middleware"
	"steez-storefront/internal/payment"
	"steez-storefront/internal/profile"
	"steez-storefront/internal/session"
)

func registerModules(
	router *gin.Engine,
	shopAPIURL string,
	redisClient *redis.Client,
	publisher producer.Publisher,
	imageSvc cloudinary.Service,
) {
	// --- Gateways & Repositories ---
	catalogGateway := catalog.NewGateway(shopAPIURL)
	cartRepo := cart.NewRepository(redisClient)

	// --- Services ---
	sessionService := session.NewService(shopAPIURL)
	paymentService := payment.NewService()
	cartService := cart.NewService(cartRepo, adapters.NewProductSourceAdapter(catalogGateway))
	checkoutService := checkout.NewService(checkout.Deps{
		CartSvc:    cartService,
		PaymentSvc: paymentService,
		Publisher:  publisher,
		BaseURL:    shopAPIURL,
	})
	adminService := admin.NewService(shopAPIURL, imageSvc)
	profileService := profile.NewService(shopAPIURL)

	// --- Handlers ---
	sessionHandler := session.NewHandler(sessionService)
	catalogHandler := catalog.NewHandler(catalogGateway)
	cartHandler := cart.NewHandler(cartService)
	checkoutHandler := checkout.NewHandler(checkoutService)
	adminHandler := admin.NewHandler(adminService)
	profileHandler := profile.NewHandler(profileService)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		session.RegisterRoutes(api, sessionHandler, middleware.RequireSession(sessionService))
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		checkout.RegisterRoutes(api, checkoutHandler, sessionService)
		admin.RegisterRoutes(api, adminHandler, sessionService)
		profile.RegisterRoutes(api, profileHandler, sessionService)
	}
}
