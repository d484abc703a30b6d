package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/store"
	"github.com/espacios/espacios-api/internal/usecase"
)

// SpaceHandler handles space publication and lifecycle requests.
type SpaceHandler struct {
	createSpace *usecase.CreateSpace
	listSpaces  *usecase.ListSpaces
	getSpace    *usecase.GetSpaceByID
	spaces      store.SpaceStore
	validator   *validator.Validate
}

// NewSpaceHandler creates a new SpaceHandler. The store is used directly for
// the lifecycle operations (availability toggle, delete) that never grew
// discrete use cases.
func NewSpaceHandler(
	createSpace *usecase.CreateSpace,
	listSpaces *usecase.ListSpaces,
	getSpace *usecase.GetSpaceByID,
	spaces store.SpaceStore,
) *SpaceHandler {
	return &SpaceHandler{
		createSpace: createSpace,
		listSpaces:  listSpaces,
		getSpace:    getSpace,
		spaces:      spaces,
		validator:   validator.New(),
	}
}

// Create handles the POST /spaces endpoint.
func (h *SpaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSpaceRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	space, err := h.createSpace.Execute(r.Context(), usecase.CreateSpaceInput{
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.SpaceType(req.Type),
		City:        req.City,
		Address:     req.Address,
		Price:       req.Price,
		Currency:    req.Currency,
		Images:      req.Images,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, NewSpaceResponse(space))
}

// List handles the GET /spaces endpoint.
func (h *SpaceHandler) List(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.listSpaces.Execute(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp := make([]SpaceResponse, 0, len(spaces))
	for _, space := range spaces {
		resp = append(resp, NewSpaceResponse(space))
	}
	RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles the GET /spaces/{id} endpoint.
func (h *SpaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	space, err := h.getSpace.Execute(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewSpaceResponse(space))
}

// UpdateAvailability handles the PATCH /spaces/{id}/availability endpoint.
// There are no transition guards: an owner may mark a space unavailable while
// an active rental still references it.
func (h *SpaceHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateAvailabilityRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	space, err := h.spaces.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	space.Available = *req.Available
	if err := h.spaces.Update(r.Context(), space); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewSpaceResponse(space))
}

// Delete handles the DELETE /spaces/{id} endpoint.
func (h *SpaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.spaces.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
