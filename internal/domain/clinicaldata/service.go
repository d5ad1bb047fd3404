package clinicaldata

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"clinicals/internal/domain/patients"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// PatientLookup es lo único que este módulo necesita de patients.
type PatientLookup interface {
	Get(ctx context.Context, id int64) (patients.Patient, error)
}

type Service struct {
	repo     Repository
	patients PatientLookup
	now      func() time.Time
}

func NewService(repo Repository, patients PatientLookup) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		now:      time.Now,
	}
}

type Input struct {
	ComponentName  Component
	ComponentValue string
}

// Add registra una medición; MeasuredAt lo pone el servicio.
func (s *Service) Add(ctx context.Context, patientID int64, in Input) (ClinicalData, error) {
	if !in.ComponentName.Valid() {
		return ClinicalData{}, ErrInvalidInput
	}
	value := strings.TrimSpace(in.ComponentValue)
	if value == "" || utf8.RuneCountInString(value) > ValueMaxLength {
		return ClinicalData{}, ErrInvalidInput
	}

	if _, err := s.patients.Get(ctx, patientID); err != nil {
		return ClinicalData{}, err
	}

	return s.repo.Create(ctx, ClinicalData{
		PatientID:      patientID,
		ComponentName:  in.ComponentName,
		ComponentValue: value,
		MeasuredAt:     s.now().UTC(),
	})
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]ClinicalData, error) {
	return s.repo.ListByPatient(ctx, patientID)
}
