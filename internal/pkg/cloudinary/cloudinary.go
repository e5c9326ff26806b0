package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Service handles Cloudinary upload operations
type Service struct {
	cld          *cloudinary.Cloudinary
	uploadFolder string
}

// UploadResult contains the result of a successful upload
type UploadResult struct {
	URL      string
	PublicID string
	Width    int
	Height   int
	FileSize int64
	Format   string
}

// MaxImageSize bounds the decoded size of an uploaded report photo.
var MaxImageSize = int64(10 * 1024 * 1024) // 10MB

var ErrNotDataURI = errors.New("photo is not a base64 image data URI")

// NewService creates a new Cloudinary service instance
func NewService(cloudName, apiKey, apiSecret, uploadFolder string) (*Service, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials are required")
	}

	// Build Cloudinary URL
	cloudinaryURL := fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName)

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	if uploadFolder == "" {
		uploadFolder = "hazardwatch"
	}

	return &Service{
		cld:          cld,
		uploadFolder: uploadFolder,
	}, nil
}

// CloudName returns the configured cloud name.
func (s *Service) CloudName() string {
	return s.cld.Config.Cloud.CloudName
}

// Ping checks the credentials against the Admin API.
func (s *Service) Ping(ctx context.Context) error {
	if _, err := s.cld.Admin.Ping(ctx); err != nil {
		return fmt.Errorf("cloudinary ping failed: %w", err)
	}
	return nil
}

// UploadPhoto uploads a data:image/... URI captured by the report form.
func (s *Service) UploadPhoto(ctx context.Context, dataURI string) (*UploadResult, error) {
	if err := ValidatePhotoDataURI(dataURI); err != nil {
		return nil, err
	}

	uploadParams := uploader.UploadParams{
		Folder:       s.uploadFolder + "/reports",
		ResourceType: "image",
	}

	result, err := s.cld.Upload.Upload(ctx, dataURI, uploadParams)
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload photo: %s", result.Error.Message)
	}

	return &UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Width:    result.Width,
		Height:   result.Height,
		FileSize: int64(result.Bytes),
		Format:   result.Format,
	}, nil
}

// Delete removes an asset from Cloudinary
func (s *Service) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return errors.New("publicID is required")
	}

	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}

// ValidatePhotoDataURI checks the URI shape and the decoded payload size.
func ValidatePhotoDataURI(dataURI string) error {
	if !strings.HasPrefix(dataURI, "data:image/") {
		return ErrNotDataURI
	}
	idx := strings.Index(dataURI, ";base64,")
	if idx < 0 {
		return ErrNotDataURI
	}

	payload := len(dataURI) - idx - len(";base64,")
	if int64(payload)*3/4 > MaxImageSize {
		return fmt.Errorf("image file size exceeds maximum allowed size of %d MB", MaxImageSize/(1024*1024))
	}
	return nil
}
