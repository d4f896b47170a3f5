package routes

import (
	"net/http"
	"time"

	"parcelo/handlers"
	"parcelo/middleware"
	"parcelo/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public browsing endpoints. The
// /api/achat and /api/location paths preserve the marketplace's historical
// route names for the sale and rent catalogs.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/listings", hb.SearchListingsHandler)
		api.GET("/listings/featured", hb.FeaturedListingsHandler)
		api.GET("/listings/:id", hb.GetListingByIDHandler)
		api.GET("/listings/:id/similar", hb.SimilarListingsHandler)
		api.GET("/achat", hb.SearchForSaleHandler)
		api.GET("/location", hb.SearchForRentHandler)
	}
}

// RegisterAuthRoutes registers the identity endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignUpHandler)
		api.POST("/signin", hb.SignInHandler)
		api.POST("/signout", hb.SignOutHandler)
	}
}

// RegisterSubmissionRoutes registers the listing wizard. Every endpoint
// requires authentication.
func RegisterSubmissionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/submissions")
	{
		api.Use(middleware.AuthRequiredMiddleware(hb.Revocations))
		api.POST("", hb.StartSubmissionHandler)
		api.GET("/:id", hb.GetSubmissionHandler)
		api.PUT("/:id/basics", hb.SetBasicsHandler)
		api.POST("/:id/images", hb.AttachImagesHandler)
		api.DELETE("/:id/images/:index", hb.RemoveImageHandler)
		api.POST("/:id/next", hb.NextStepHandler)
		api.PUT("/:id/seller", hb.SetSellerHandler)
		api.POST("/:id/back", hb.BackStepHandler)
		api.POST("/:id/submit", hb.SubmitHandler)
		api.DELETE("/:id", hb.CancelSubmissionHandler)
	}
}

// RegisterStorageRoutes registers image upload endpoints when a storage
// backend is configured.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.UploadImageHandler == nil {
		return
	}
	api := r.Group("/api/storage")
	{
		api.Use(middleware.AuthRequiredMiddleware(hb.Revocations))
		api.POST("/upload", hb.UploadImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterSubmissionRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
