package submission

import (
	"context"

	listingRepo "parcelo/database/repository/listing"
	"parcelo/models"
	"parcelo/services/catalog"
	"parcelo/services/storage"
)

// SubmissionService drives the three-step listing wizard: basics, images,
// then seller and review. Transitions are linear; a step advances only when
// its validator passes.
type SubmissionService interface {
	Start(ctx context.Context, userID string) (*models.Submission, error)
	Get(ctx context.Context, id string) (*models.Submission, error)
	SetBasics(ctx context.Context, id string, in models.BasicsInput) (*models.Submission, error)
	AttachImages(ctx context.Context, id string, uploads []FileUpload) (*models.Submission, error)
	RemoveImage(ctx context.Context, id string, index int) (*models.Submission, error)
	Next(ctx context.Context, id string) (*models.Submission, error)
	SetSeller(ctx context.Context, id string, in models.SellerInput) (*models.Submission, error)
	Back(ctx context.Context, id string) (*models.Submission, error)
	Submit(ctx context.Context, id string) (*models.Listing, error)
	Cancel(ctx context.Context, id string) error
}

// DefaultSubmissionService is the production implementation.
type DefaultSubmissionService struct {
	Repo   listingRepo.ListingRepository
	Drafts DraftStore
	// Cache, when set, is invalidated after each accepted submission.
	Cache *catalog.SearchCache
	// Storage, when set, receives uploaded images and the returned URLs
	// are stored instead of data URIs.
	Storage       storage.StorageService
	MaxImageBytes int64
}
