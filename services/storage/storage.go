package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}

// UploadImage uploads image content (an io.Reader or a file path) to
// Cloudinary and returns its delivery URL.
func (s *StorageServiceImpl) UploadImage(ctx context.Context, content interface{}, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, content, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("StorageServiceImpl: no delivery URL returned")
	}
	return result.SecureURL, nil
}

// DeleteImage deletes an image from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete image: %w", err)
	}
	return nil
}
