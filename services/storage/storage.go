// File: services/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadImage uploads a file to Cloudinary into the specified folder. The
// public ID carries the upload timestamp so successive uploads for the same
// entity never collide.
func (s *StorageServiceImpl) UploadImage(ctx context.Context, file interface{}, folder string) (*UploadedImage, error) {
	uploadParams := uploader.UploadParams{
		Folder:   folder,
		PublicID: fmt.Sprintf("%d", time.Now().UnixMilli()),
	}
	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return nil, fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("StorageServiceImpl: no public ID returned")
	}
	return &UploadedImage{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}

// DeleteImage deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}
