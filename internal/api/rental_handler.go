package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/espacios/espacios-api/internal/usecase"
)

// RentalHandler handles booking requests.
type RentalHandler struct {
	createRental *usecase.CreateRental
	listRentals  *usecase.ListRentalsByUser
	validator    *validator.Validate
}

// NewRentalHandler creates a new RentalHandler with the given dependencies.
func NewRentalHandler(createRental *usecase.CreateRental, listRentals *usecase.ListRentalsByUser) *RentalHandler {
	return &RentalHandler{
		createRental: createRental,
		listRentals:  listRentals,
		validator:    validator.New(),
	}
}

// Create handles the POST /rentals endpoint.
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRentalRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	rental, err := h.createRental.Execute(r.Context(), usecase.CreateRentalInput{
		SpaceID:  req.SpaceID,
		RenterID: req.RenterID,
		OwnerID:  req.OwnerID,
		Start:    req.StartDate,
		End:      req.EndDate,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, NewRentalResponse(rental))
}

// ListByUser handles the GET /users/{id}/rentals endpoint.
func (h *RentalHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rentals, err := h.listRentals.Execute(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp := make([]RentalResponse, 0, len(rentals))
	for _, rental := range rentals {
		resp = append(resp, NewRentalResponse(rental))
	}
	RespondWithJSON(w, r, http.StatusOK, resp)
}
