package handlers

import (
	"errors"
	"net/http"
	"strconv"

	listingRepo "parcelo/database/repository/listing"
	"parcelo/models"
	"parcelo/services/catalog"
	"parcelo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the listing query engine over HTTP.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(service catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: service}
}

// SearchListingsHandler handles GET /api/listings. Zero matches is a normal
// 200 with an empty items slice; the "filtered" flag lets clients render an
// explicit no-results state.
func (h *CatalogHandler) SearchListingsHandler(c *gin.Context) {
	h.search(c, catalog.ParseQuery(c.Request.URL.Query()))
}

// SearchWithModeHandler forces the sale mode regardless of query
// parameters; it backs the /api/achat and /api/location routes.
func (h *CatalogHandler) SearchWithModeHandler(mode models.SaleMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := catalog.ParseQuery(c.Request.URL.Query())
		if q.Mode != mode {
			q = q.WithMode(mode)
		}
		h.search(c, q)
	}
}

func (h *CatalogHandler) search(c *gin.Context, q catalog.Query) {
	result, err := h.Service.Search(c.Request.Context(), q)
	if err != nil {
		utils.GetLogger().Error("catalog search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search listings"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetListingByIDHandler handles GET /api/listings/:id. An absent id yields
// an explicit not-found response, never a crash.
func (h *CatalogHandler) GetListingByIDHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "listing id must be an integer"})
		return
	}

	listing, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		utils.GetLogger().Error("failed to fetch listing", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch listing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listing":        listing,
		"formattedPrice": models.FormatPrice(listing.Price),
	})
}

// SimilarListingsHandler handles GET /api/listings/:id/similar.
func (h *CatalogHandler) SimilarListingsHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "listing id must be an integer"})
		return
	}

	limit := 3
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 12 {
		limit = v
	}

	similar, err := h.Service.Similar(c.Request.Context(), id, limit)
	if err != nil {
		if errors.Is(err, listingRepo.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		utils.GetLogger().Error("failed to compute similar listings", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load similar listings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": similar})
}

// FeaturedListingsHandler handles GET /api/listings/featured.
func (h *CatalogHandler) FeaturedListingsHandler(c *gin.Context) {
	limit := 0
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	featured, err := h.Service.Featured(c.Request.Context(), limit)
	if err != nil {
		utils.GetLogger().Error("failed to load featured listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load featured listings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": featured})
}
