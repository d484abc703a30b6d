package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/espacios/espacios-api/internal/service"
)

// ReviewHandler handles review creation and rating queries.
type ReviewHandler struct {
	reviews   service.ReviewService
	validator *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler with the given dependencies.
func NewReviewHandler(reviews service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviews:   reviews,
		validator: validator.New(),
	}
}

// Create handles the POST /reviews endpoint. The 1-5 range is enforced here
// at the boundary; the domain deliberately does not range-check ratings.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	review, err := h.reviews.CreateReview(r.Context(), req.ReviewerID, req.ReviewedUserID, req.Rating, req.Comment)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, NewReviewResponse(review))
}

// ListForUser handles the GET /users/{id}/reviews endpoint.
func (h *ReviewHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	reviews, err := h.reviews.GetReviewsForUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, NewReviewResponse(review))
	}
	RespondWithJSON(w, r, http.StatusOK, resp)
}

// AverageRating handles the GET /users/{id}/rating endpoint.
func (h *ReviewHandler) AverageRating(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	avg, err := h.reviews.GetAverageRating(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, RatingResponse{
		UserID:        userID,
		AverageRating: avg,
	})
}
