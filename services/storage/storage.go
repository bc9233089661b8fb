package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService uploads payment-proof images to Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &CloudinaryStorageService{cld: cld}
}

// UploadPaymentProof uploads a proof-of-payment file into a per-booking
// folder and returns its URL and public ID.
func (s *CloudinaryStorageService) UploadPaymentProof(ctx context.Context, localFilePath, bookingID string) (*ProofUpload, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: "payment-proofs/" + bookingID,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to upload payment proof: %w", err)
	}
	if result.SecureURL == "" {
		return nil, fmt.Errorf("storage: no URL returned for uploaded proof")
	}
	return &ProofUpload{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// DeleteFile removes an uploaded file given its public ID.
func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: failed to delete file: %w", err)
	}
	return nil
}
