package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"shortlet/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProofNotifier records an uploaded proof URL against its booking.
type ProofNotifier interface {
	AttachPaymentProof(ctx context.Context, bookingID, proofURL string) error
}

// StorageHandler handles payment-proof uploads for bank-transfer bookings.
type StorageHandler struct {
	StorageSvc storage.StorageService
	Notifier   ProofNotifier
}

func NewStorageHandler(svc storage.StorageService, notifier ProofNotifier) *StorageHandler {
	return &StorageHandler{StorageSvc: svc, Notifier: notifier}
}

// UploadPaymentProof handles POST /api/bookings/:bookingID/payment-proof.
// The booking stays pending-confirmation until an operator verifies the
// transfer out-of-band.
func (h *StorageHandler) UploadPaymentProof(c *gin.Context) {
	bookingID := c.Param("bookingID")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	upload, err := h.StorageSvc.UploadPaymentProof(c.Request.Context(), tempFilePath, bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	if err := h.Notifier.AttachPaymentProof(c.Request.Context(), bookingID, upload.URL); err != nil {
		// The backend never learned about the file, so drop it and let the
		// user retry the whole upload.
		getLogger(c).Error("failed to attach payment proof",
			zap.String("bookingID", bookingID), zap.Error(err))
		if delErr := h.StorageSvc.DeleteFile(c.Request.Context(), upload.PublicID); delErr != nil {
			getLogger(c).Warn("failed to remove orphaned proof upload",
				zap.String("publicID", upload.PublicID), zap.Error(delErr))
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "proof could not be recorded; please retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "payment proof uploaded",
		"proofURL": upload.URL,
	})
}
