package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"parcelo/models"
	"parcelo/services/submission"
	"parcelo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmissionHandler exposes the three-step listing wizard. All routes sit
// behind the auth middleware, which provides userID.
type SubmissionHandler struct {
	Service submission.SubmissionService
}

func NewSubmissionHandler(service submission.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{Service: service}
}

// StartSubmissionHandler handles POST /api/submissions.
func (h *SubmissionHandler) StartSubmissionHandler(c *gin.Context) {
	draft, err := h.Service.Start(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.GetLogger().Error("failed to start submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start submission"})
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetSubmissionHandler handles GET /api/submissions/:id.
func (h *SubmissionHandler) GetSubmissionHandler(c *gin.Context) {
	draft, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetBasicsHandler handles PUT /api/submissions/:id/basics.
func (h *SubmissionHandler) SetBasicsHandler(c *gin.Context) {
	var in models.BasicsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.Service.SetBasics(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// AttachImagesHandler handles POST /api/submissions/:id/images with
// multipart form files under "images".
func (h *SubmissionHandler) AttachImagesHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected multipart form data"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image files provided"})
		return
	}

	draft, err := h.Service.AttachImages(c.Request.Context(), c.Param("id"),
		submission.FileUploadsFromMultipart(files))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// RemoveImageHandler handles DELETE /api/submissions/:id/images/:index.
func (h *SubmissionHandler) RemoveImageHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image index must be an integer"})
		return
	}

	draft, err := h.Service.RemoveImage(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// NextStepHandler handles POST /api/submissions/:id/next.
func (h *SubmissionHandler) NextStepHandler(c *gin.Context) {
	draft, err := h.Service.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetSellerHandler handles PUT /api/submissions/:id/seller.
func (h *SubmissionHandler) SetSellerHandler(c *gin.Context) {
	var in models.SellerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.Service.SetSeller(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// BackStepHandler handles POST /api/submissions/:id/back.
func (h *SubmissionHandler) BackStepHandler(c *gin.Context) {
	draft, err := h.Service.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SubmitHandler handles POST /api/submissions/:id/submit. On success the
// new listing is returned with its detail location so clients can navigate
// straight to it.
func (h *SubmissionHandler) SubmitHandler(c *gin.Context) {
	listing, err := h.Service.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Header("Location", "/api/listings/"+strconv.Itoa(listing.ID))
	c.JSON(http.StatusCreated, gin.H{
		"message": "Votre propriété a été ajoutée avec succès!",
		"listing": listing,
	})
}

// CancelSubmissionHandler handles DELETE /api/submissions/:id.
func (h *SubmissionHandler) CancelSubmissionHandler(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Submission cancelled"})
}

// renderError maps wizard errors: validation failures become 422 with the
// per-field messages, step misuse 409, unknown drafts 404.
func (h *SubmissionHandler) renderError(c *gin.Context, err error) {
	var validationErr *submission.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErr.Fields})
	case errors.Is(err, submission.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
	case errors.Is(err, submission.ErrInvalidStep):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("submission operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "submission operation failed"})
	}
}
