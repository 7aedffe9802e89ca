package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/andrenobre07/zentorno-sub000/internal/cache"
	h "github.com/andrenobre07/zentorno-sub000/internal/http"
	"github.com/andrenobre07/zentorno-sub000/internal/identity"
	"github.com/andrenobre07/zentorno-sub000/internal/logger"
	"github.com/andrenobre07/zentorno-sub000/internal/mailer"
	"github.com/andrenobre07/zentorno-sub000/internal/payment"
	"github.com/andrenobre07/zentorno-sub000/internal/publisher"
	"github.com/andrenobre07/zentorno-sub000/internal/repository"
	"github.com/andrenobre07/zentorno-sub000/internal/service"
)

type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDBName     string
	RedisAddr       string
	RedisPassword   string
	KafkaBrokers    []string
	IdentityURL     string
	IdentityAPIKey  string
	GatewayURL      string
	GatewayAPIKey   string
	WebhookSecret   string
	MailURL         string
	MailAPIKey      string
	MailFrom        string
	Currency        string
	SuccessURL      string
	CancelURL       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "showroom"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:    strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		IdentityURL:     getEnv("IDENTITY_URL", "https://identity.example.com"),
		IdentityAPIKey:  getEnv("IDENTITY_API_KEY", ""),
		GatewayURL:      getEnv("PAYMENT_GATEWAY_URL", "https://gateway.example.com"),
		GatewayAPIKey:   getEnv("PAYMENT_GATEWAY_API_KEY", ""),
		WebhookSecret:   getEnv("PAYMENT_WEBHOOK_SECRET", ""),
		MailURL:         getEnv("MAIL_URL", "https://mail.example.com"),
		MailAPIKey:      getEnv("MAIL_API_KEY", ""),
		MailFrom:        getEnv("MAIL_FROM", "orders@zentorno.example.com"),
		Currency:        getEnv("CURRENCY", "eur"),
		SuccessURL:      getEnv("CHECKOUT_SUCCESS_URL", "https://zentorno.example.com/success"),
		CancelURL:       getEnv("CHECKOUT_CANCEL_URL", "https://zentorno.example.com/cancel"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	slogger := logger.New("showroom")

	// Set up MongoDB connection
	ctx := context.Background()
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	carRepo := repository.NewMongoCarRepository(mongoDB)
	purchaseRepo := repository.NewMongoPurchaseRepository(mongoDB)
	profileRepo := repository.NewMongoProfileRepository(mongoDB)

	if err := repository.EnsureIndexes(ctx, carRepo, purchaseRepo, profileRepo); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	carCache := cache.NewRedisCache(redisClient)

	fulfillment := publisher.NewFulfillmentPublisher(cfg.KafkaBrokers...)
	defer fulfillment.Close()

	identityClient := identity.NewClient(cfg.IdentityURL, cfg.IdentityAPIKey)
	gateway := payment.NewClient(cfg.GatewayURL, cfg.GatewayAPIKey)
	mailClient := mailer.NewClient(cfg.MailURL, cfg.MailAPIKey, cfg.MailFrom)

	catalogService := service.NewCatalogService(carRepo, carCache, slogger)
	sessionService := service.NewSessionService(profileRepo, slogger)
	checkoutService := service.NewCheckoutService(catalogService, gateway, cfg.Currency, cfg.SuccessURL, cfg.CancelURL, slogger)
	finalizeService := service.NewFinalizeService(purchaseRepo, gateway, mailClient, fulfillment, cfg.WebhookSecret, slogger)
	adminService := service.NewAdminService(identityClient, profileRepo, purchaseRepo, slogger)

	catalogHandler := h.NewCatalogHandler(catalogService, cfg.RequestTimeout)
	checkoutHandler := h.NewCheckoutHandler(checkoutService, sessionService, cfg.RequestTimeout)
	webhookHandler := h.NewWebhookHandler(finalizeService, cfg.RequestTimeout)
	adminHandler := h.NewAdminHandler(adminService, catalogService, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/cars", catalogHandler.List)
		r.Get("/cars/featured", catalogHandler.Featured)
		r.Get("/cars/{car_id}", catalogHandler.Get)

		// The webhook authenticates via signature, not bearer token.
		r.Post("/webhooks/payment", webhookHandler.HandleEvent)

		r.Group(func(r chi.Router) {
			r.Use(h.AuthMiddleware(identityClient))
			r.Post("/checkout", checkoutHandler.InitiateCheckout)
			r.Post("/session", checkoutHandler.HydrateSession)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.AuthMiddleware(identityClient))
			r.Use(h.RequireAdmin(profileRepo))

			r.Post("/cars", adminHandler.CreateCar)
			r.Put("/cars/{car_id}", adminHandler.UpdateCar)
			r.Delete("/cars/{car_id}", adminHandler.DeleteCar)

			r.Get("/purchases", adminHandler.ListPurchases)
			r.Delete("/purchases/{purchase_id}", adminHandler.DeletePurchase)

			r.Get("/users", adminHandler.ListUsers)
			r.Delete("/users/{user_id}", adminHandler.DeleteUser)
			r.Post("/users/{user_id}/admin", adminHandler.ToggleAdmin)
			r.Put("/users/{user_id}/name", adminHandler.RenameUser)
			r.Put("/users/{user_id}/photo", adminHandler.UpdateUserPhoto)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "showroom"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Showroom API starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
