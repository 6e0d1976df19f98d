package dashboard

import (
	"net/http"
	"time"

	"novellia-pets/internal/domain/records"
	"novellia-pets/internal/httpx"
	"novellia-pets/internal/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dashboard/stats", statsHandler(svc))
}

type typeCountResponse struct {
	AnimalType string `json:"animal_type,omitempty"`
	RecordType string `json:"record_type,omitempty"`
	Count      int    `json:"count"`
}

type petRecordResponse struct {
	ID         int64              `json:"id"`
	PetID      int64              `json:"pet_id"`
	RecordType records.RecordType `json:"record_type"`
	Name       string             `json:"name"`
	Date       *string            `json:"date"`
	PetName    string             `json:"pet_name"`
	AnimalType string             `json:"animal_type"`
	CreatedAt  time.Time          `json:"created_at"`
}

type statsResponse struct {
	TotalPets        int                 `json:"total_pets"`
	PetsByType       []typeCountResponse `json:"pets_by_type"`
	TotalRecords     int                 `json:"total_records"`
	RecordsByType    []typeCountResponse `json:"records_by_type"`
	UpcomingVaccines []petRecordResponse `json:"upcoming_vaccines"`
	RecentRecords    []petRecordResponse `json:"recent_records"`
}

// statsHandler godoc
// @Summary Dashboard rollups
// @Description Pet/record counts, grouped counts, vaccines dated within 30
// @Description days of today, and the 10 most recently created records.
// @Tags dashboard
// @Produce json
// @Success 200 {object} statsResponse
// @Router /dashboard/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			httpx.Internal(w)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toStatsResponse(stats))
	}
}

func toStatsResponse(s Stats) statsResponse {
	out := statsResponse{
		TotalPets:        s.TotalPets,
		TotalRecords:     s.TotalRecords,
		PetsByType:       make([]typeCountResponse, 0, len(s.PetsByType)),
		RecordsByType:    make([]typeCountResponse, 0, len(s.RecordsByType)),
		UpcomingVaccines: make([]petRecordResponse, 0, len(s.UpcomingVaccines)),
		RecentRecords:    make([]petRecordResponse, 0, len(s.RecentRecords)),
	}

	for _, c := range s.PetsByType {
		out.PetsByType = append(out.PetsByType, typeCountResponse{AnimalType: c.AnimalType, Count: c.Count})
	}
	for _, c := range s.RecordsByType {
		out.RecordsByType = append(out.RecordsByType, typeCountResponse{RecordType: c.RecordType, Count: c.Count})
	}
	for _, pr := range s.UpcomingVaccines {
		out.UpcomingVaccines = append(out.UpcomingVaccines, toPetRecordResponse(pr))
	}
	for _, pr := range s.RecentRecords {
		out.RecentRecords = append(out.RecentRecords, toPetRecordResponse(pr))
	}

	return out
}

func toPetRecordResponse(pr PetRecord) petRecordResponse {
	out := petRecordResponse{
		ID:         pr.Record.ID,
		PetID:      pr.Record.PetID,
		RecordType: pr.Record.RecordType,
		Name:       pr.Record.Name,
		PetName:    pr.PetName,
		AnimalType: pr.AnimalType,
		CreatedAt:  pr.Record.CreatedAt,
	}
	if pr.Record.Date != nil {
		d := pr.Record.Date.Format(validation.DateLayout)
		out.Date = &d
	}
	return out
}
