package submission

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"parcelo/models"
	"parcelo/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultSellerName    = "Utilisateur"
	defaultMaxImageBytes = 5 << 20
)

// defaultFeatures tags every wizard submission until the form grows an
// amenity picker.
var defaultFeatures = []string{"Titre foncier", "Accès facile"}

func (s *DefaultSubmissionService) maxImageBytes() int64 {
	if s.MaxImageBytes > 0 {
		return s.MaxImageBytes
	}
	return defaultMaxImageBytes
}

// Start opens a fresh draft at the basics step.
func (s *DefaultSubmissionService) Start(ctx context.Context, userID string) (*models.Submission, error) {
	draft := &models.Submission{
		ID:        uuid.NewString(),
		Step:      models.StepBasics,
		Basics:    models.BasicsInput{AreaUnit: "m²", SaleStatus: string(models.SaleModeSale)},
		Images:    []string{},
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *DefaultSubmissionService) Get(ctx context.Context, id string) (*models.Submission, error) {
	return s.Drafts.Get(ctx, id)
}

// SetBasics validates and stores the first step. A failing validator
// surfaces per-field errors and leaves the draft untouched; on success a
// draft sitting at the basics step advances to images.
func (s *DefaultSubmissionService) SetBasics(ctx context.Context, id string, in models.BasicsInput) (*models.Submission, error) {
	draft, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepBasics {
		return nil, ErrInvalidStep
	}

	if errs := ValidateBasics(in); !errs.Empty() {
		return nil, &ValidationError{Fields: errs}
	}

	if in.AreaUnit == "" {
		in.AreaUnit = "m²"
	}
	draft.Basics = in
	draft.Step = models.StepImages
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// AttachImages encodes the uploads (concurrently, one per file) and appends
// them to the latest draft snapshot, so overlapping completions never drop
// an entry. With a storage backend configured the files are uploaded there
// instead and their URLs stored.
func (s *DefaultSubmissionService) AttachImages(ctx context.Context, id string, uploads []FileUpload) (*models.Submission, error) {
	draft, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepImages {
		return nil, ErrInvalidStep
	}
	if len(uploads) == 0 {
		return draft, nil
	}

	var encoded []string
	if s.Storage != nil {
		encoded, err = s.uploadAll(ctx, uploads)
	} else {
		encoded, err = encodeAll(uploads, s.maxImageBytes())
	}
	if err != nil {
		return nil, &ValidationError{Fields: models.FieldErrors{"images": err.Error()}}
	}

	// Re-read before appending: the encode step may have raced another
	// attach for the same draft.
	draft, err = s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepImages {
		return nil, ErrInvalidStep
	}
	draft.Images = append(draft.Images, encoded...)
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *DefaultSubmissionService) uploadAll(ctx context.Context, uploads []FileUpload) ([]string, error) {
	urls := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		rc, err := upload.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", upload.Name, err)
		}
		url, err := s.Storage.UploadImage(ctx, rc, "listings")
		rc.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// RemoveImage drops the image at index from the draft.
func (s *DefaultSubmissionService) RemoveImage(ctx context.Context, id string, index int) (*models.Submission, error) {
	draft, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepImages {
		return nil, ErrInvalidStep
	}
	if index < 0 || index >= len(draft.Images) {
		return nil, &ValidationError{Fields: models.FieldErrors{"images": "image index out of range"}}
	}
	draft.Images = append(draft.Images[:index], draft.Images[index+1:]...)
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Next advances from the images step to review once at least one image is
// attached.
func (s *DefaultSubmissionService) Next(ctx context.Context, id string) (*models.Submission, error) {
	draft, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepImages {
		return nil, ErrInvalidStep
	}
	if errs := ValidateImages(draft.Images); !errs.Empty() {
		return nil, &ValidationError{Fields: errs}
	}
	draft.Step = models.StepReview
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetSeller stores the seller details on the review step. Nothing here
// blocks submission; missing fields get defaults at submit time.
func (s *DefaultSubmissionService) SetSeller(ctx context.Context, id string, in models.SellerInput) (*models.Submission, error) {
	draft, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepReview {
		return nil, ErrInvalidStep
	}
	draft.Seller = in
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Back moves one step towards basics. Going back never discards entered
// data.
func (s *DefaultSubmissionService) Back(ctx context.Context, id string) (*models.Submission, error) {
	draft, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch draft.Step {
	case models.StepReview:
		draft.Step = models.StepImages
	case models.StepImages:
		draft.Step = models.StepBasics
	default:
		return nil, ErrInvalidStep
	}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Submit re-validates the basics and images steps, builds the full listing,
// inserts it at the head of the store and retires the draft.
func (s *DefaultSubmissionService) Submit(ctx context.Context, id string) (*models.Listing, error) {
	draft, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepReview {
		return nil, ErrInvalidStep
	}

	errs := ValidateBasics(draft.Basics)
	for field, msg := range ValidateImages(draft.Images) {
		errs[field] = msg
	}
	if !errs.Empty() {
		return nil, &ValidationError{Fields: errs}
	}

	listing := buildListing(draft)
	inserted, err := s.Repo.Insert(listing)
	if err != nil {
		return nil, fmt.Errorf("failed to insert listing: %w", err)
	}

	s.Cache.Invalidate(ctx)
	if err := s.Drafts.Delete(ctx, id); err != nil {
		utils.GetLogger().Warn("failed to delete submitted draft",
			zap.String("draftId", id), zap.Error(err))
	}

	utils.GetLogger().Info("listing submitted",
		zap.Int("listingId", inserted.ID), zap.String("userId", draft.UserID))
	return &inserted, nil
}

// Cancel discards the draft whatever its step.
func (s *DefaultSubmissionService) Cancel(ctx context.Context, id string) error {
	if _, err := s.Drafts.Get(ctx, id); err != nil {
		return err
	}
	return s.Drafts.Delete(ctx, id)
}

// buildListing assembles the final record from a validated draft. The
// repository assigns the id.
func buildListing(draft *models.Submission) models.Listing {
	basics := draft.Basics

	priceValue, _ := parsePositiveFloat(basics.Price)
	area := 0.0
	if basics.Area != "" {
		area, _ = parsePositiveFloat(basics.Area)
	}

	saleStatus := models.SaleModeUnspecified
	switch models.SaleMode(basics.SaleStatus) {
	case models.SaleModeSale:
		saleStatus = models.SaleModeSale
	case models.SaleModeRent:
		saleStatus = models.SaleModeRent
	}

	sellerType := models.SellerTypeStore
	if models.SellerType(draft.Seller.Type) == models.SellerTypeIndividual {
		sellerType = models.SellerTypeIndividual
	}
	sellerName := draft.Seller.Name
	if sellerName == "" {
		sellerName = defaultSellerName
	}

	return models.Listing{
		Subject:  basics.Subject,
		Location: basics.Location,
		Price:    models.Price{Value: priceValue, Currency: "DH"},
		Images:   append([]string{}, draft.Images...),
		Seller: models.Seller{
			Type:     sellerType,
			Name:     sellerName,
			Verified: false,
			Phone:    draft.Seller.Phone,
			Email:    draft.Seller.Email,
		},
		Description: basics.Description,
		Area:        area,
		AreaUnit:    basics.AreaUnit,
		Featured:    basics.Featured,
		SaleStatus:  saleStatus,
		CreatedAt:   time.Now().Format("2006-01-02"),
		Features:    append([]string{}, defaultFeatures...),
	}
}

func parsePositiveFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
