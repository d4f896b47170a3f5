package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle assembles every endpoint handler for route registration.
type HandlerBundle struct {
	// Revocations backs the auth middleware's sign-out denylist.
	Revocations *redis.Client

	// Catalog endpoints.
	SearchListingsHandler   gin.HandlerFunc
	SearchForSaleHandler    gin.HandlerFunc
	SearchForRentHandler    gin.HandlerFunc
	GetListingByIDHandler   gin.HandlerFunc
	SimilarListingsHandler  gin.HandlerFunc
	FeaturedListingsHandler gin.HandlerFunc

	// Auth endpoints.
	SignUpHandler  gin.HandlerFunc
	SignInHandler  gin.HandlerFunc
	SignOutHandler gin.HandlerFunc

	// Submission wizard endpoints.
	StartSubmissionHandler  gin.HandlerFunc
	GetSubmissionHandler    gin.HandlerFunc
	SetBasicsHandler        gin.HandlerFunc
	AttachImagesHandler     gin.HandlerFunc
	RemoveImageHandler      gin.HandlerFunc
	NextStepHandler         gin.HandlerFunc
	SetSellerHandler        gin.HandlerFunc
	BackStepHandler         gin.HandlerFunc
	SubmitHandler           gin.HandlerFunc
	CancelSubmissionHandler gin.HandlerFunc

	// Storage endpoints (nil when no backend is configured).
	UploadImageHandler gin.HandlerFunc
}
