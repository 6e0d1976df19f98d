package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"novellia-pets/internal/domain/pets"
	"novellia-pets/internal/httpx"
	"novellia-pets/internal/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/records", func(rr chi.Router) {
		// Pet-scoped: the parent pet must exist before anything else runs.
		rr.Get("/pet/{petID}", listRecordsByPetHandler(svc, petsSvc))
		rr.Post("/pet/{petID}", createRecordHandler(svc, petsSvc))

		rr.Get("/{recordID}", getRecordHandler(svc))
		rr.Patch("/{recordID}", updateRecordHandler(svc))
		rr.Delete("/{recordID}", deleteRecordHandler(svc))
	})
}

type recordResponse struct {
	ID         int64      `json:"id"`
	PetID      int64      `json:"pet_id"`
	RecordType RecordType `json:"record_type"`
	Name       string     `json:"name"`
	Date       *string    `json:"date"`      // YYYY-MM-DD or null
	Reactions  *string    `json:"reactions"` // null when unset
	Severity   *Severity  `json:"severity"`  // null when unset
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// createRecordHandler godoc
// @Summary Add a medical record to a pet
// @Description Creates a vaccine or allergy record. Vaccines require a date;
// @Description allergies require a severity. The pet is resolved before the
// @Description payload is validated, so a missing pet always yields 404.
// @Tags records
// @Accept json
// @Produce json
// @Param petID path int true "pet id"
// @Param payload body createRecordRequest true "record fields"
// @Success 201 {object} recordResponse
// @Failure 400 {object} object "validation failed"
// @Failure 404 {object} object "pet not found"
// @Router /records/pet/{petID} [post]
func createRecordHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := resolvePet(w, r, petsSvc)
		if !ok {
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		in, errs := req.validate()
		if !errs.Empty() {
			httpx.ValidationFailed(w, errs)
			return
		}

		rec, err := svc.Create(r.Context(), petID, in)
		if err != nil {
			httpx.Internal(w)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// listRecordsByPetHandler godoc
// @Summary List a pet's medical records
// @Description Records ordered by date descending (dateless last), newest
// @Description created first as tie-break. A missing pet yields 404, never
// @Description an empty array.
// @Tags records
// @Produce json
// @Param petID path int true "pet id"
// @Success 200 {array} recordResponse
// @Failure 404 {object} object "pet not found"
// @Router /records/pet/{petID} [get]
func listRecordsByPetHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := resolvePet(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			httpx.Internal(w)
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}

		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getRecordHandler godoc
// @Summary Get one medical record
// @Tags records
// @Produce json
// @Param recordID path int true "record id"
// @Success 200 {object} recordResponse
// @Failure 404 {object} object "medical record not found"
// @Router /records/{recordID} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseRecordID(r)
		if !ok {
			httpx.NotFound(w, "Medical record")
			return
		}

		rec, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondRecordError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// updateRecordHandler godoc
// @Summary Update a medical record
// @Description Merge-by-presence: only fields present in the body overwrite
// @Description stored values. An explicit "" on date or reactions clears the
// @Description stored value to null.
// @Tags records
// @Accept json
// @Produce json
// @Param recordID path int true "record id"
// @Param payload body updateRecordRequest true "fields to change"
// @Success 200 {object} recordResponse
// @Failure 400 {object} object "validation failed"
// @Failure 404 {object} object "medical record not found"
// @Router /records/{recordID} [patch]
func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseRecordID(r)
		if !ok {
			httpx.NotFound(w, "Medical record")
			return
		}

		var req updateRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		in, errs := req.validate()
		if !errs.Empty() {
			httpx.ValidationFailed(w, errs)
			return
		}

		rec, err := svc.Update(r.Context(), id, in)
		if err != nil {
			respondRecordError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// deleteRecordHandler godoc
// @Summary Delete a medical record
// @Tags records
// @Produce json
// @Param recordID path int true "record id"
// @Success 200 {object} object "confirmation message"
// @Failure 404 {object} object "medical record not found"
// @Router /records/{recordID} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseRecordID(r)
		if !ok {
			httpx.NotFound(w, "Medical record")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respondRecordError(w, err)
			return
		}

		httpx.Message(w, http.StatusOK, "Medical record deleted successfully")
	}
}

// resolvePet verifies the parent pet exists and writes the 404 itself when it
// does not. This runs before any payload validation so a missing parent wins
// over a malformed body.
func resolvePet(w http.ResponseWriter, r *http.Request, petsSvc *pets.Service) (int64, bool) {
	petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || petID <= 0 {
		httpx.NotFound(w, "Pet")
		return 0, false
	}

	if _, err := petsSvc.GetByID(r.Context(), petID); err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			httpx.NotFound(w, "Pet")
		} else {
			httpx.Internal(w)
		}
		return 0, false
	}

	return petID, true
}

func parseRecordID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "recordID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func respondRecordError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.NotFound(w, "Medical record")
		return
	}
	httpx.Internal(w)
}

func toRecordResponse(rec MedicalRecord) recordResponse {
	out := recordResponse{
		ID:         rec.ID,
		PetID:      rec.PetID,
		RecordType: rec.RecordType,
		Name:       rec.Name,
		Reactions:  rec.Reactions,
		Severity:   rec.Severity,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
	if rec.Date != nil {
		d := rec.Date.Format(validation.DateLayout)
		out.Date = &d
	}
	return out
}
