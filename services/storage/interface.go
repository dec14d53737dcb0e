// File: services/storage/interface.go
package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService abstracts the external image store used for catalog photos.
type StorageService interface {
	// UploadImage stores a catalog image under the given folder (for example
	// "servicos/botox") and returns its public URL and public ID.
	UploadImage(ctx context.Context, file interface{}, folder string) (*UploadedImage, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// UploadedImage describes a stored image.
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}
