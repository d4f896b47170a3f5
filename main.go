package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parcelo/config"
	"parcelo/database"
	listingRepoPkg "parcelo/database/repository/listing"
	"parcelo/handlers"
	"parcelo/middleware"
	"parcelo/models"
	"parcelo/routes"
	"parcelo/services/auth"
	"parcelo/services/catalog"
	"parcelo/services/submission"
	"parcelo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if !config.AuthConfigured() {
		logger.Sugar().Error("main: AUTH_SERVICE_URL or AUTH_ANON_KEY is missing; authentication endpoints will answer 503")
	}

	utils.InitCache()
	utils.InitAuthCache()
	utils.InitDraftCache()

	// Listing store: seeded in-memory by default, Mongo-backed when a
	// database is configured.
	seed := listingRepoPkg.SeedListings()
	var listingRepo listingRepoPkg.ListingRepository
	if config.AppConfig.DatabaseURL != "" {
		database.InitDB()
		mongoRepo, err := listingRepoPkg.NewMongoListingRepo(seed)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize listing repository: %v", err)
		}
		listingRepo = mongoRepo
	} else {
		logger.Sugar().Info("main: DATABASE_URL not set, using the in-memory listing store (listings will not survive a restart)")
		listingRepo = listingRepoPkg.NewMemoryListingRepo(seed)
	}

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize image storage: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	searchCache := catalog.NewSearchCache(utils.GetCacheClient(),
		time.Duration(config.AppConfig.SearchCacheTTL)*time.Second)

	catalogService := &catalog.DefaultCatalogService{
		Repo:     listingRepo,
		Cache:    searchCache,
		PageSize: config.AppConfig.PageSize,
	}

	submissionService := &submission.DefaultSubmissionService{
		Repo: listingRepo,
		Drafts: submission.NewRedisDraftStore(utils.GetDraftCacheClient(),
			time.Duration(config.AppConfig.DraftTTLMinutes)*time.Minute),
		Cache:         searchCache,
		Storage:       storageService,
		MaxImageBytes: int64(config.AppConfig.MaxImageMB) << 20,
	}

	authService := auth.NewIdentityClient(config.AppConfig.AuthServiceURL, config.AppConfig.AuthAnonKey)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	authHandler := handlers.NewAuthHandler(authService, utils.GetAuthCacheClient())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Revocations: utils.GetAuthCacheClient(),

		// Catalog endpoints.
		SearchListingsHandler:   catalogHandler.SearchListingsHandler,
		SearchForSaleHandler:    catalogHandler.SearchWithModeHandler(models.SaleModeSale),
		SearchForRentHandler:    catalogHandler.SearchWithModeHandler(models.SaleModeRent),
		GetListingByIDHandler:   catalogHandler.GetListingByIDHandler,
		SimilarListingsHandler:  catalogHandler.SimilarListingsHandler,
		FeaturedListingsHandler: catalogHandler.FeaturedListingsHandler,

		// Auth endpoints.
		SignUpHandler:  authHandler.SignUpHandler,
		SignInHandler:  authHandler.SignInHandler,
		SignOutHandler: authHandler.SignOutHandler,

		// Submission wizard endpoints.
		StartSubmissionHandler:  submissionHandler.StartSubmissionHandler,
		GetSubmissionHandler:    submissionHandler.GetSubmissionHandler,
		SetBasicsHandler:        submissionHandler.SetBasicsHandler,
		AttachImagesHandler:     submissionHandler.AttachImagesHandler,
		RemoveImageHandler:      submissionHandler.RemoveImageHandler,
		NextStepHandler:         submissionHandler.NextStepHandler,
		SetSellerHandler:        submissionHandler.SetSellerHandler,
		BackStepHandler:         submissionHandler.BackStepHandler,
		SubmitHandler:           submissionHandler.SubmitHandler,
		CancelSubmissionHandler: submissionHandler.CancelSubmissionHandler,
	}

	// Storage endpoints only exist with a configured backend.
	if storageService != nil {
		storageHandler := handlers.NewStorageHandler(storageService)
		handlerBundle.UploadImageHandler = storageHandler.UploadImageHandler
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetDraftCacheClient(),
	}, database.MongoClient)

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
