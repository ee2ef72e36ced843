// File: maxxtravel/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maxxtravel/config"
	"maxxtravel/cron"
	"maxxtravel/database"
	bookingRepo "maxxtravel/database/repository/booking"
	"maxxtravel/handlers"
	"maxxtravel/middleware"
	"maxxtravel/routes"
	"maxxtravel/services/amadeus"
	"maxxtravel/services/calendar"
	"maxxtravel/services/dialogue"
	"maxxtravel/services/iata"
	"maxxtravel/services/payment"
	"maxxtravel/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())
	stripe.Key = config.AppConfig.StripeKey

	// Amadeus gateway.
	amadeusClient := amadeus.NewClient(amadeus.Options{
		ClientID:            config.AppConfig.AmadeusClientID,
		ClientSecret:        config.AppConfig.AmadeusClientSecret,
		Env:                 config.AppConfig.AmadeusEnv,
		UseMockFlightSearch: config.AppConfig.UseMockFlightSearch,
		UseMockHotelSearch:  config.AppConfig.UseMockHotelSearch,
		Logger:              logger,
	})
	if config.AppConfig.AmadeusClientID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := amadeusClient.VerifyCredentials(ctx); err != nil {
			logger.Sugar().Warnf("main: amadeus credential check failed: %v", err)
		}
		cancel()
	}

	// Session store and IATA cache, Redis-backed when configured.
	var sessionStore dialogue.SessionStore
	var iataCache iata.Cache
	var redisClients []*redis.Client
	if config.AppConfig.SessionBackend == "redis" {
		utils.InitCache()
		utils.InitSessionCache()
		sessionStore = dialogue.NewRedisSessionStore(
			utils.GetSessionCacheClient(),
			time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
		)
		iataCache = iata.NewRedisCache(utils.GetCacheClient())
		redisClients = []*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()}
	} else {
		sessionStore = dialogue.NewMemorySessionStore(config.AppConfig.SessionMaxEntries)
		iataCache = iata.NewMemoryCache()
	}
	utils.StartHealthMonitor(redisClients, database.MongoClient)

	resolver := iata.NewResolver(iataCache, amadeusClient, logger)

	stripeService := &payment.StripeService{
		SuccessURL:    config.AppConfig.StripeSuccessURL,
		CancelURL:     config.AppConfig.StripeCancelURL,
		WebhookSecret: config.AppConfig.StripeWebhookSecret,
		Logger:        logger,
	}

	calendarService := &calendar.Service{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RefreshToken: config.AppConfig.GoogleRefreshToken,
	}

	// Background task queue for post-booking work.
	var taskClient *asynq.Client
	if config.AppConfig.UseTaskQueue {
		taskClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskQueueDB,
		})
		defer taskClient.Close()
		cron.InitTripInviteWorker(calendarService, logger)
	}

	engine := &dialogue.Engine{
		Store:    sessionStore,
		Resolver: resolver,
		Flights:  amadeusClient,
		Hotels:   amadeusClient,
		Payments: stripeService,
		Logger:   logger,
	}

	repo := bookingRepo.NewMongoBookingRepo(config.AppConfig.DatabaseName)

	var taskQueue handlers.TaskEnqueuer
	if taskClient != nil {
		taskQueue = taskClient
	}

	voiceHandler := handlers.NewVoiceHandler(engine, logger)
	bookingHandler := handlers.NewBookingHandler(amadeusClient, repo, calendarService, taskQueue, logger)
	paymentHandler := handlers.NewPaymentHandler(stripeService, repo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		VoiceWebhookHandler: voiceHandler.VoiceWebhookHandler,

		GetFlightsHandler: bookingHandler.GetFlightsHandler,
		GetHotelsHandler:  bookingHandler.GetHotelsHandler,
		BookFlightHandler: bookingHandler.BookFlightHandler,
		BookHotelHandler:  bookingHandler.BookHotelHandler,

		ConfirmBookingHandler: bookingHandler.ConfirmBookingHandler,
		GetBookingHandler:     bookingHandler.GetBookingHandler,
		ListBookingsHandler:   bookingHandler.ListBookingsHandler,

		InitiatePaymentHandler: paymentHandler.InitiatePaymentHandler,
		StripeWebhookHandler:   paymentHandler.StripeWebhookHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
