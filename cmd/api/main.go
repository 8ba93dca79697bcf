package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/printfood/storefront/internal/address"
	"github.com/printfood/storefront/internal/auth"
	"github.com/printfood/storefront/internal/cart"
	"github.com/printfood/storefront/internal/catalog"
	"github.com/printfood/storefront/internal/checkout"
	"github.com/printfood/storefront/internal/config"
	"github.com/printfood/storefront/internal/configurator"
	"github.com/printfood/storefront/internal/discount"
	"github.com/printfood/storefront/internal/feedback"
	"github.com/printfood/storefront/internal/notification"
	"github.com/printfood/storefront/internal/order"
	"github.com/printfood/storefront/internal/payment"
	"github.com/printfood/storefront/internal/session"
	"github.com/printfood/storefront/internal/upstream"
	"github.com/printfood/storefront/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	app := fiber.New()
	setupCORS(app)

	api := upstream.NewClient(cfg.UpstreamBaseURL)

	store := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
	if err := store.Ping(context.Background()); err != nil {
		logger.Fatal("redis unavailable", zap.Error(err))
	}
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	// services shared across handlers
	catalogService := catalog.NewService(catalog.NewUpstreamRepository(api))
	discountService := discount.NewService(discount.NewUpstreamRepository(api))
	cartService := cart.NewService(cart.NewUpstreamRepository(api), discountService)
	addressService := address.NewService(address.NewUpstreamRepository(api))
	orderService := order.NewService(order.NewUpstreamRepository(api))

	authHandler := auth.NewHandler(
		auth.NewService(auth.NewUpstreamRepository(api), sessions, store),
		cfg.UpstreamBaseURL+"/user/auth/google/login",
	)
	catalogHandler := catalog.NewHandler(catalogService)
	configuratorHandler := configurator.NewHandler(configurator.NewService(catalogService, cartService))
	paymentHandler := payment.NewHandler(payment.NewService(payment.NewUpstreamRepository(api), logger))

	// public routes: browsing, auth and the gateway callback
	authHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)
	configuratorHandler.RegisterPublicRoutes(app)
	paymentHandler.RegisterPublicRoutes(app)

	// everything past this point needs a live session
	app.Use(jwtware.New(jwtware.Config{SigningKey: sessions.Secret()}))
	app.Use(session.Middleware(store))

	authHandler.RegisterProtectedRoutes(app)
	configuratorHandler.RegisterProtectedRoutes(app)

	cartHandler := cart.NewHandler(cartService)
	cartHandler.RegisterProtectedRoutes(app)

	discountHandler := discount.NewHandler(discountService)
	discountHandler.RegisterProtectedRoutes(app)

	addressHandler := address.NewHandler(addressService)
	addressHandler.RegisterProtectedRoutes(app)

	checkoutHandler := checkout.NewHandler(checkout.NewService(store, addressService, orderService))
	checkoutHandler.RegisterProtectedRoutes(app)

	orderHandler := order.NewHandler(orderService)
	orderHandler.RegisterProtectedRoutes(app)

	wishlistHandler := wishlist.NewHandler(wishlist.NewService(wishlist.NewUpstreamRepository(api)))
	wishlistHandler.RegisterProtectedRoutes(app)

	notificationHandler := notification.NewHandler(notification.NewService(notification.NewUpstreamRepository(api)))
	notificationHandler.RegisterProtectedRoutes(app)

	feedbackHandler := feedback.NewHandler(feedback.NewService(feedback.NewUpstreamRepository(api)))
	feedbackHandler.RegisterProtectedRoutes(app)

	logger.Info("starting storefront", zap.String("addr", cfg.Addr), zap.String("upstream", cfg.UpstreamBaseURL))
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}
