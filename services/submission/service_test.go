package submission

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listingRepo "parcelo/database/repository/listing"
	"parcelo/models"
)

func newTestService() (*DefaultSubmissionService, *listingRepo.MemoryListingRepo) {
	repo := listingRepo.NewMemoryListingRepo(listingRepo.SeedListings())
	svc := &DefaultSubmissionService{
		Repo:   repo,
		Drafts: NewMemoryDraftStore(),
	}
	return svc, repo
}

func pngUpload(name string, payload []byte) FileUpload {
	return FileUpload{
		Name:        name,
		ContentType: "image/png",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(payload)), nil
		},
	}
}

func validBasics() models.BasicsInput {
	return models.BasicsInput{
		Subject:    "TERRAIN PLAT - 300M²",
		Location:   "Essaouira, Centre",
		Price:      "640000",
		Area:       "300",
		SaleStatus: string(models.SaleModeSale),
	}
}

func TestWizardHappyPath(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	previousMax, err := repo.MaxID()
	require.NoError(t, err)

	draft, err := svc.Start(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.StepBasics, draft.Step)
	assert.NotEmpty(t, draft.ID)

	draft, err = svc.SetBasics(ctx, draft.ID, validBasics())
	require.NoError(t, err)
	assert.Equal(t, models.StepImages, draft.Step)

	draft, err = svc.AttachImages(ctx, draft.ID, []FileUpload{pngUpload("lot.png", []byte("fake image bytes"))})
	require.NoError(t, err)
	require.Len(t, draft.Images, 1)
	assert.Contains(t, draft.Images[0], "data:image/png;base64,")

	draft, err = svc.Next(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepReview, draft.Step)

	draft, err = svc.SetSeller(ctx, draft.ID, models.SellerInput{
		Type:  string(models.SellerTypeIndividual),
		Name:  "Karim Idrissi",
		Phone: "(+212) 600-112233",
	})
	require.NoError(t, err)

	listing, err := svc.Submit(ctx, draft.ID)
	require.NoError(t, err)

	assert.Equal(t, previousMax+1, listing.ID)
	assert.Len(t, listing.Images, 1)
	assert.Equal(t, "TERRAIN PLAT - 300M²", listing.Subject)
	assert.Equal(t, 640000.0, listing.Price.Value)
	assert.Equal(t, "DH", listing.Price.Currency)
	assert.Equal(t, models.SaleModeSale, listing.SaleStatus)
	assert.Equal(t, "Karim Idrissi", listing.Seller.Name)
	assert.Equal(t, models.SellerTypeIndividual, listing.Seller.Type)
	assert.Equal(t, []string{"Titre foncier", "Accès facile"}, listing.Features)

	// Draft is gone, store grew by one, new listing leads the catalog.
	_, err = svc.Get(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)

	listings, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, listings, 6)
	assert.Equal(t, listing.ID, listings[0].ID)
}

func TestWizardDefaultsSellerName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	draft, err := svc.Start(ctx, "user-2")
	require.NoError(t, err)
	_, err = svc.SetBasics(ctx, draft.ID, validBasics())
	require.NoError(t, err)
	_, err = svc.AttachImages(ctx, draft.ID, []FileUpload{pngUpload("a.png", []byte("x"))})
	require.NoError(t, err)
	_, err = svc.Next(ctx, draft.ID)
	require.NoError(t, err)

	listing, err := svc.Submit(ctx, draft.ID)
	require.NoError(t, err)

	assert.Equal(t, "Utilisateur", listing.Seller.Name)
	assert.Equal(t, models.SellerTypeStore, listing.Seller.Type)
}

func TestSetBasicsValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	draft, err := svc.Start(ctx, "user-3")
	require.NoError(t, err)

	in := validBasics()
	in.Subject = ""
	_, err = svc.SetBasics(ctx, draft.ID, in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "subject")

	// The failing call left the draft at the basics step.
	current, err := svc.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepBasics, current.Step)
}

func TestWizardStepOrderEnforced(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	draft, err := svc.Start(ctx, "user-4")
	require.NoError(t, err)

	t.Run("cannot attach images before basics", func(t *testing.T) {
		_, err := svc.AttachImages(ctx, draft.ID, []FileUpload{pngUpload("a.png", []byte("x"))})
		assert.ErrorIs(t, err, ErrInvalidStep)
	})

	t.Run("cannot submit from basics", func(t *testing.T) {
		_, err := svc.Submit(ctx, draft.ID)
		assert.ErrorIs(t, err, ErrInvalidStep)
	})

	t.Run("cannot go back from basics", func(t *testing.T) {
		_, err := svc.Back(ctx, draft.ID)
		assert.ErrorIs(t, err, ErrInvalidStep)
	})

	t.Run("cannot advance past images without one", func(t *testing.T) {
		_, err := svc.SetBasics(ctx, draft.ID, validBasics())
		require.NoError(t, err)

		_, err = svc.Next(ctx, draft.ID)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "images")
	})

	t.Run("cannot set seller before review", func(t *testing.T) {
		_, err := svc.SetSeller(ctx, draft.ID, models.SellerInput{Name: "x"})
		assert.ErrorIs(t, err, ErrInvalidStep)
	})
}

func TestBackKeepsData(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	draft, err := svc.Start(ctx, "user-5")
	require.NoError(t, err)
	_, err = svc.SetBasics(ctx, draft.ID, validBasics())
	require.NoError(t, err)
	_, err = svc.AttachImages(ctx, draft.ID, []FileUpload{pngUpload("a.png", []byte("x"))})
	require.NoError(t, err)
	_, err = svc.Next(ctx, draft.ID)
	require.NoError(t, err)

	draft, err = svc.Back(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepImages, draft.Step)
	assert.Len(t, draft.Images, 1)

	draft, err = svc.Back(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepBasics, draft.Step)
	assert.Equal(t, "Essaouira, Centre", draft.Basics.Location)
}

func TestAttachAndRemoveImages(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	draft, err := svc.Start(ctx, "user-6")
	require.NoError(t, err)
	_, err = svc.SetBasics(ctx, draft.ID, validBasics())
	require.NoError(t, err)

	uploads := []FileUpload{
		pngUpload("one.png", []byte("first")),
		pngUpload("two.png", []byte("second")),
		pngUpload("three.png", []byte("third")),
	}
	draft, err = svc.AttachImages(ctx, draft.ID, uploads)
	require.NoError(t, err)
	require.Len(t, draft.Images, 3)

	// Selection order survives the concurrent encode.
	first := draft.Images[0]
	assert.Contains(t, first, encodeBase64("first"))

	draft, err = svc.RemoveImage(ctx, draft.ID, 1)
	require.NoError(t, err)
	assert.Len(t, draft.Images, 2)
	assert.Equal(t, first, draft.Images[0])

	_, err = svc.RemoveImage(ctx, draft.ID, 7)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "images")
}

func TestAttachImagesRejectsBadUploads(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	svc.MaxImageBytes = 8

	draft, err := svc.Start(ctx, "user-7")
	require.NoError(t, err)
	_, err = svc.SetBasics(ctx, draft.ID, validBasics())
	require.NoError(t, err)

	t.Run("oversized file", func(t *testing.T) {
		_, err := svc.AttachImages(ctx, draft.ID, []FileUpload{pngUpload("big.png", []byte("way larger than eight"))})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields["images"], "image limit")
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := svc.AttachImages(ctx, draft.ID, []FileUpload{pngUpload("none.png", nil)})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("non-image content type", func(t *testing.T) {
		upload := pngUpload("doc.pdf", []byte("x"))
		upload.ContentType = "application/pdf"
		_, err := svc.AttachImages(ctx, draft.ID, []FileUpload{upload})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields["images"], "not an image")
	})

	t.Run("one bad file rejects the whole batch", func(t *testing.T) {
		_, err := svc.AttachImages(ctx, draft.ID, []FileUpload{
			pngUpload("ok.png", []byte("x")),
			pngUpload("none.png", nil),
		})
		require.Error(t, err)

		current, err := svc.Get(ctx, draft.ID)
		require.NoError(t, err)
		assert.Empty(t, current.Images, "failed batch must not attach anything")
	})
}

func TestSubmitRevalidates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	draft, err := svc.Start(ctx, "user-8")
	require.NoError(t, err)
	_, err = svc.SetBasics(ctx, draft.ID, validBasics())
	require.NoError(t, err)
	_, err = svc.AttachImages(ctx, draft.ID, []FileUpload{pngUpload("a.png", []byte("x"))})
	require.NoError(t, err)
	_, err = svc.Next(ctx, draft.ID)
	require.NoError(t, err)

	// Walk back and strip the image, then force the draft forward through
	// the store to simulate a stale client.
	_, err = svc.Back(ctx, draft.ID)
	require.NoError(t, err)
	current, err := svc.Get(ctx, draft.ID)
	require.NoError(t, err)
	current.Images = nil
	current.Step = models.StepReview
	require.NoError(t, svc.Drafts.Save(ctx, current))

	_, err = svc.Submit(ctx, draft.ID)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "images")
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	draft, err := svc.Start(ctx, "user-9")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, draft.ID))
	_, err = svc.Get(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)

	assert.ErrorIs(t, svc.Cancel(ctx, "missing"), ErrDraftNotFound)
}

func encodeBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}
