package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores listing images remotely. When no backend is
// configured the wizard keeps images as embedded data URIs instead.
type StorageService interface {
	// UploadImage stores the content and returns the public URL to embed
	// in a listing.
	UploadImage(ctx context.Context, content interface{}, folder string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
