package storage

import "context"

// ProofUpload identifies a stored file: the public URL handed to the backend
// and the provider-side ID needed to delete it again.
type ProofUpload struct {
	URL      string
	PublicID string
}

// StorageService stores uploaded files and hands back their identifiers.
type StorageService interface {
	UploadPaymentProof(ctx context.Context, localFilePath, bookingID string) (*ProofUpload, error)
	DeleteFile(ctx context.Context, publicID string) error
}
