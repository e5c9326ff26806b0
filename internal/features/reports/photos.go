package reports

import (
	"context"
	"strings"

	"github.com/xyz-asif/hazardwatch/internal/pkg/cloudinary"
)

// Photo is a hosted copy of a report photo.
type Photo struct {
	URL      string
	PublicID string
}

// PhotoUploader turns an inline data URI into a hosted image and removes
// hosted images whose report is deleted.
type PhotoUploader interface {
	UploadPhoto(ctx context.Context, dataURI string) (Photo, error)
	DeletePhoto(ctx context.Context, publicID string) error
}

// CloudinaryPhotos adapts the cloudinary service to PhotoUploader.
type CloudinaryPhotos struct {
	Service *cloudinary.Service
}

func (p CloudinaryPhotos) UploadPhoto(ctx context.Context, dataURI string) (Photo, error) {
	res, err := p.Service.UploadPhoto(ctx, dataURI)
	if err != nil {
		return Photo{}, err
	}
	return Photo{URL: res.URL, PublicID: res.PublicID}, nil
}

func (p CloudinaryPhotos) DeletePhoto(ctx context.Context, publicID string) error {
	return p.Service.Delete(ctx, publicID)
}

func isDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}
