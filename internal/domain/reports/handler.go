package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"clinicals/internal/domain/patients"
	"clinicals/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/analyze/{patientID}", analyzeHandler(svc))
}

type patientSummary struct {
	ID        int64  `json:"id"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Age       int    `json:"age"`
}

// entryResponse es una fila del reporte. Los BMI derivados no tienen id ni fecha.
type entryResponse struct {
	ID             int64      `json:"id,omitempty"`
	ComponentName  string     `json:"componentName"`
	ComponentValue string     `json:"componentValue"`
	MeasuredAt     *time.Time `json:"measuredDateTime,omitempty"`
	Derived        bool       `json:"derived,omitempty"`
}

// reportResponse es el reporte del paciente con el BMI derivado.
type reportResponse struct {
	Patient patientSummary  `json:"patient"`
	Data    []entryResponse `json:"data"`
}

// analyzeHandler godoc
// @Summary Reporte del paciente
// @Description Devuelve los datos clínicos del paciente y, por cada "hw" con formato "<altura>/<peso>", una fila BMI derivada (no se guarda).
// @Tags reports
// @Produce json
// @Param patientID path int true "ID del paciente"
// @Success 200 {object} reportResponse
// @Failure 404 {string} string "patient not found"
// @Failure 500 {string} string "internal error"
// @Router /analyze/{patientID} [get]
func analyzeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "patientID"), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}

		rep, err := svc.Generate(r.Context(), id)
		if err != nil {
			if errors.Is(err, patients.ErrNotFound) {
				http.Error(w, "patient not found", http.StatusNotFound)
				return
			}
			logger.FromContext(r.Context()).Error("generate report failed", map[string]any{"patient_id": id, "err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toReportResponse(rep))
	}
}

func toReportResponse(rep Report) reportResponse {
	data := make([]entryResponse, 0, len(rep.Data))
	for _, e := range rep.Data {
		data = append(data, entryResponse{
			ID:             e.ID,
			ComponentName:  e.ComponentName,
			ComponentValue: e.ComponentValue,
			MeasuredAt:     e.MeasuredAt,
			Derived:        e.Derived,
		})
	}

	return reportResponse{
		Patient: patientSummary{
			ID:        rep.Patient.ID,
			LastName:  rep.Patient.LastName,
			FirstName: rep.Patient.FirstName,
			Age:       rep.Patient.Age,
		},
		Data: data,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
