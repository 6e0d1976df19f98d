package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"novellia-pets/internal/httpx"
	"novellia-pets/internal/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type petResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	AnimalType  string    `json:"animal_type"`
	OwnerName   string    `json:"owner_name"`
	DateOfBirth string    `json:"date_of_birth"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// createPetHandler godoc
// @Summary Register a pet
// @Description Creates a pet. The (name, owner_name) pairing must be unique.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Pet fields; date_of_birth as YYYY-MM-DD"
// @Success 201 {object} petResponse
// @Failure 400 {object} object "validation failed / duplicate pet"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		in, errs := req.validate()
		if !errs.Empty() {
			httpx.ValidationFailed(w, errs)
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			if errors.Is(err, ErrDuplicate) {
				httpx.Error(w, http.StatusBadRequest, "A pet with this name and owner already exists")
				return
			}
			httpx.Internal(w)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary List pets
// @Description Lists pets, most recently created first. `search` filters by
// @Description case-insensitive name substring, `animal_type` by exact match.
// @Tags pets
// @Produce json
// @Param search query string false "substring of the pet name"
// @Param animal_type query string false "exact animal type"
// @Success 200 {array} petResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{
			Search:     r.URL.Query().Get("search"),
			AnimalType: r.URL.Query().Get("animal_type"),
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			httpx.Internal(w)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Get one pet
// @Tags pets
// @Produce json
// @Param petID path int true "pet id"
// @Success 200 {object} petResponse
// @Failure 404 {object} object "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parsePetID(r)
		if !ok {
			httpx.NotFound(w, "Pet")
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondPetError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Update a pet
// @Description Any subset of the four editable fields may be sent; the stored
// @Description row is rewritten in full, omitted fields keep their values.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path int true "pet id"
// @Param payload body updatePetRequest true "fields to change"
// @Success 200 {object} petResponse
// @Failure 400 {object} object "validation failed"
// @Failure 404 {object} object "pet not found"
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parsePetID(r)
		if !ok {
			httpx.NotFound(w, "Pet")
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		in, errs := req.validate()
		if !errs.Empty() {
			httpx.ValidationFailed(w, errs)
			return
		}

		p, err := svc.Update(r.Context(), id, in)
		if err != nil {
			respondPetError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Delete a pet
// @Description Deletes the pet and, by cascade, all its medical records.
// @Tags pets
// @Produce json
// @Param petID path int true "pet id"
// @Success 200 {object} object "confirmation message"
// @Failure 404 {object} object "pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parsePetID(r)
		if !ok {
			httpx.NotFound(w, "Pet")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respondPetError(w, err)
			return
		}

		httpx.Message(w, http.StatusOK, "Pet deleted successfully")
	}
}

// parsePetID reads the path id. A non-numeric or non-positive id identifies
// no pet, so callers treat it as not found.
func parsePetID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func respondPetError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.NotFound(w, "Pet")
		return
	}
	httpx.Internal(w)
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		AnimalType:  p.AnimalType,
		OwnerName:   p.OwnerName,
		DateOfBirth: p.DateOfBirth.Format(validation.DateLayout),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
