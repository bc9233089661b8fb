package handlers

import (
	"net/http"

	"shortlet/models"
	"shortlet/services/review"
	"shortlet/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves property review endpoints.
type ReviewHandler struct {
	Svc review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Svc: svc}
}

// ListReviews handles GET /api/properties/:id/reviews.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Svc.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to load reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
}

// CreateReview handles POST /api/properties/:id/reviews (authenticated).
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid review", err.Error())
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), c.Param("id"), c.GetString("userID"), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to submit review", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": created})
}
