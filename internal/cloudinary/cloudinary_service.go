package cloudinary

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type Service interface {
	UploadImage(ctx context.Context, file multipart.File, filename string) (string, error)
}

type service struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewServiceFromEnv() (Service, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are not configured")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &service{cld: cld, folder: "products"}, nil
}

// UploadImage pushes a product image and returns its public URL.
func (s *service) UploadImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         s.folder,
		PublicID:       filename,
		ResourceType:   "image",
		Transformation: "c_fill,w_800,h_800,q_auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return result.SecureURL, nil
}

// NewNoopService keeps product management usable without cloudinary
// credentials; products are created without images.
func NewNoopService() Service {
	return &noopService{}
}

type noopService struct{}

func (s *noopService) UploadImage(_ context.Context, _ multipart.File, _ string) (string, error) {
	return "", nil
}
