package patients

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"clinicals/internal/platform/httpform"
	"clinicals/internal/platform/logger"
	"clinicals/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/", listPatientsHandler(svc))

	r.Get("/create/", createFormHandler())
	r.Post("/create/", createPatientHandler(svc))

	r.Get("/update/{id}", updateFormHandler(svc))
	r.Post("/update/{id}", updatePatientHandler(svc))

	// GET muestra la confirmación, POST borra (en cascada)
	r.Get("/delete/{id}", deleteConfirmHandler(svc))
	r.Post("/delete/{id}", deletePatientHandler(svc))
}

// patientResponse representa un paciente devuelto por la API.
type patientResponse struct {
	ID        int64  `json:"id"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Age       int    `json:"age"`
}

// formResponse es el formulario (vacío, prellenado o con errores).
type formResponse struct {
	Patient *patientResponse       `json:"patient,omitempty"`
	Form    Form                   `json:"form"`
	Errors  validation.FieldErrors `json:"errors,omitempty"`
}

// deleteConfirmResponse es la página de confirmación de borrado.
type deleteConfirmResponse struct {
	Patient patientResponse `json:"patient"`
	Message string          `json:"message"`
}

// listPatientsHandler godoc
// @Summary Listar pacientes
// @Tags patients
// @Produce json
// @Success 200 {array} patientResponse
// @Failure 500 {string} string "internal error"
// @Router / [get]
func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("list patients failed", map[string]any{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// createFormHandler godoc
// @Summary Formulario de alta de paciente
// @Tags patients
// @Produce json
// @Success 200 {object} formResponse
// @Router /create/ [get]
func createFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, formResponse{})
	}
}

// createPatientHandler godoc
// @Summary Crear paciente
// @Description Acepta form-urlencoded o JSON con firstName, lastName y age. Redirige a / si todo sale bien.
// @Tags patients
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param firstName formData string true "Nombre (máx. 20)"
// @Param lastName formData string true "Apellido (máx. 20)"
// @Param age formData int true "Edad"
// @Success 302 {string} string "redirect a /"
// @Failure 400 {object} formResponse
// @Router /create/ [post]
func createPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := httpform.Values(w, r)
		if err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		form := FormFromValues(values)
		in, err := form.Validate()
		if err != nil {
			writeFormError(w, r, nil, form, err)
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeFormError(w, r, nil, form, err)
			return
		}

		logger.FromContext(r.Context()).Info("patient created", map[string]any{"patient_id": p.ID})
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// updateFormHandler godoc
// @Summary Formulario de edición de paciente
// @Tags patients
// @Produce json
// @Param id path int true "ID del paciente"
// @Success 200 {object} formResponse
// @Failure 404 {string} string "patient not found"
// @Router /update/{id} [get]
func updateFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadPatient(w, r, svc)
		if !ok {
			return
		}

		resp := toPatientResponse(p)
		writeJSON(w, http.StatusOK, formResponse{
			Patient: &resp,
			Form:    FormFromPatient(p),
		})
	}
}

// updatePatientHandler godoc
// @Summary Actualizar paciente
// @Tags patients
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param id path int true "ID del paciente"
// @Param firstName formData string true "Nombre (máx. 20)"
// @Param lastName formData string true "Apellido (máx. 20)"
// @Param age formData int true "Edad"
// @Success 302 {string} string "redirect a /"
// @Failure 400 {object} formResponse
// @Failure 404 {string} string "patient not found"
// @Router /update/{id} [post]
func updatePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := loadPatient(w, r, svc)
		if !ok {
			return
		}
		resp := toPatientResponse(current)

		values, err := httpform.Values(w, r)
		if err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		form := FormFromValues(values)
		in, err := form.Validate()
		if err != nil {
			writeFormError(w, r, &resp, form, err)
			return
		}

		if _, err := svc.Update(r.Context(), current.ID, in); err != nil {
			writeFormError(w, r, &resp, form, err)
			return
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// deleteConfirmHandler godoc
// @Summary Confirmar borrado de paciente
// @Tags patients
// @Produce json
// @Param id path int true "ID del paciente"
// @Success 200 {object} deleteConfirmResponse
// @Failure 404 {string} string "patient not found"
// @Router /delete/{id} [get]
func deleteConfirmHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadPatient(w, r, svc)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, deleteConfirmResponse{
			Patient: toPatientResponse(p),
			Message: "Deleting this patient also deletes all of its clinical data.",
		})
	}
}

// deletePatientHandler godoc
// @Summary Borrar paciente
// @Description Borra el paciente y todos sus datos clínicos.
// @Tags patients
// @Param id path int true "ID del paciente"
// @Success 302 {string} string "redirect a /"
// @Failure 404 {string} string "patient not found"
// @Router /delete/{id} [post]
func deletePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "patient not found", http.StatusNotFound)
				return
			}
			logger.FromContext(r.Context()).Error("delete patient failed", map[string]any{"patient_id": id, "err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		logger.FromContext(r.Context()).Info("patient deleted", map[string]any{"patient_id": id})
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// loadPatient resuelve {id}; si falla ya escribió la respuesta.
func loadPatient(w http.ResponseWriter, r *http.Request, svc *Service) (Patient, bool) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "patient not found", http.StatusNotFound)
		return Patient{}, false
	}

	p, err := svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "patient not found", http.StatusNotFound)
			return Patient{}, false
		}
		logger.FromContext(r.Context()).Error("get patient failed", map[string]any{"patient_id": id, "err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return Patient{}, false
	}
	return p, true
}

func writeFormError(w http.ResponseWriter, r *http.Request, p *patientResponse, form Form, err error) {
	var fieldErrs validation.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		writeJSON(w, http.StatusBadRequest, formResponse{Patient: p, Form: form, Errors: fieldErrs})
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, formResponse{Patient: p, Form: form, Errors: validation.FieldErrors{"_": err.Error()}})
	case errors.Is(err, ErrNotFound):
		http.Error(w, "patient not found", http.StatusNotFound)
	default:
		logger.FromContext(r.Context()).Error("save patient failed", map[string]any{"err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func toPatientResponse(p Patient) patientResponse {
	return patientResponse{
		ID:        p.ID,
		LastName:  p.LastName,
		FirstName: p.FirstName,
		Age:       p.Age,
	}
}

// writeJSON está duplicado en clinicaldata y reports.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
