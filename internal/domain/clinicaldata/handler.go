package clinicaldata

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"clinicals/internal/domain/patients"
	"clinicals/internal/platform/httpform"
	"clinicals/internal/platform/logger"
	"clinicals/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, patientsSvc PatientLookup) {
	r.Get("/addData/{patientID}", addDataFormHandler(svc, patientsSvc))
	r.Post("/addData/{patientID}", addDataHandler(svc, patientsSvc))
}

type patientSummary struct {
	ID        int64  `json:"id"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Age       int    `json:"age"`
}

// addDataFormResponse es el formulario de alta, con el paciente, las opciones
// y (en GET) lo ya registrado.
type addDataFormResponse struct {
	Patient  patientSummary         `json:"patient"`
	Choices  []Choice               `json:"choices"`
	Form     Form                   `json:"form"`
	Errors   validation.FieldErrors `json:"errors,omitempty"`
	Recorded []clinicalDataResponse `json:"recorded,omitempty"`
}

// clinicalDataResponse representa un dato clínico guardado.
type clinicalDataResponse struct {
	ID             int64     `json:"id"`
	PatientID      int64     `json:"patient"`
	ComponentName  Component `json:"componentName"`
	ComponentValue string    `json:"componentValue"`
	MeasuredAt     time.Time `json:"measuredDateTime"`
}

// addDataFormHandler godoc
// @Summary Formulario de alta de dato clínico
// @Tags clinical-data
// @Produce json
// @Param patientID path int true "ID del paciente"
// @Success 200 {object} addDataFormResponse
// @Failure 404 {string} string "patient not found"
// @Failure 500 {string} string "internal error"
// @Router /addData/{patientID} [get]
func addDataFormHandler(svc *Service, patientsSvc PatientLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadPatient(w, r, patientsSvc)
		if !ok {
			return
		}

		items, err := svc.ListByPatient(r.Context(), p.ID)
		if err != nil {
			logger.FromContext(r.Context()).Error("list clinical data failed", map[string]any{"patient_id": p.ID, "err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		recorded := make([]clinicalDataResponse, 0, len(items))
		for _, d := range items {
			recorded = append(recorded, toClinicalDataResponse(d))
		}

		writeJSON(w, http.StatusOK, addDataFormResponse{
			Patient:  toPatientSummary(p),
			Choices:  Choices,
			Recorded: recorded,
		})
	}
}

// addDataHandler godoc
// @Summary Agregar dato clínico
// @Description componentName debe ser "hw", "bp" o "heart rate". Para "hw" el valor es "<altura>/<peso>".
// @Tags clinical-data
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param patientID path int true "ID del paciente"
// @Param componentName formData string true "hw | bp | heart rate"
// @Param componentValue formData string true "Valor (máx. 20)"
// @Success 302 {string} string "redirect a /"
// @Failure 400 {object} addDataFormResponse
// @Failure 404 {string} string "patient not found"
// @Router /addData/{patientID} [post]
func addDataHandler(svc *Service, patientsSvc PatientLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadPatient(w, r, patientsSvc)
		if !ok {
			return
		}

		values, err := httpform.Values(w, r)
		if err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		form := FormFromValues(values)
		in, err := form.Validate()
		if err == nil {
			var d ClinicalData
			d, err = svc.Add(r.Context(), p.ID, in)
			if err == nil {
				logger.FromContext(r.Context()).Info("clinical data added", map[string]any{
					"patient_id":       p.ID,
					"clinical_data_id": d.ID,
					"component":        string(d.ComponentName),
				})
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}
		}

		var fieldErrs validation.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
		case errors.Is(err, ErrInvalidInput):
			fieldErrs = validation.FieldErrors{"_": err.Error()}
		case errors.Is(err, patients.ErrNotFound):
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		default:
			logger.FromContext(r.Context()).Error("add clinical data failed", map[string]any{"patient_id": p.ID, "err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusBadRequest, addDataFormResponse{
			Patient: toPatientSummary(p),
			Choices: Choices,
			Form:    form,
			Errors:  fieldErrs,
		})
	}
}

func loadPatient(w http.ResponseWriter, r *http.Request, patientsSvc PatientLookup) (patients.Patient, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "patientID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "patient not found", http.StatusNotFound)
		return patients.Patient{}, false
	}

	p, err := patientsSvc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, patients.ErrNotFound) {
			http.Error(w, "patient not found", http.StatusNotFound)
			return patients.Patient{}, false
		}
		logger.FromContext(r.Context()).Error("get patient failed", map[string]any{"patient_id": id, "err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return patients.Patient{}, false
	}
	return p, true
}

func toPatientSummary(p patients.Patient) patientSummary {
	return patientSummary{
		ID:        p.ID,
		LastName:  p.LastName,
		FirstName: p.FirstName,
		Age:       p.Age,
	}
}

func toClinicalDataResponse(d ClinicalData) clinicalDataResponse {
	return clinicalDataResponse{
		ID:             d.ID,
		PatientID:      d.PatientID,
		ComponentName:  d.ComponentName,
		ComponentValue: d.ComponentValue,
		MeasuredAt:     d.MeasuredAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
