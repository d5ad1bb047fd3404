package reports

import (
	"context"

	"clinicals/internal/domain/clinicaldata"
	"clinicals/internal/domain/patients"
)

type PatientLookup interface {
	Get(ctx context.Context, id int64) (patients.Patient, error)
}

type DataLister interface {
	ListByPatient(ctx context.Context, patientID int64) ([]clinicaldata.ClinicalData, error)
}

// Report es lo que muestra /analyze: el paciente y sus datos con el BMI derivado.
type Report struct {
	Patient patients.Patient
	Data    []Entry
}

type Service struct {
	patients PatientLookup
	data     DataLister
}

func NewService(patients PatientLookup, data DataLister) *Service {
	return &Service{patients: patients, data: data}
}

// Generate es de solo lectura: el BMI no se guarda.
func (s *Service) Generate(ctx context.Context, patientID int64) (Report, error) {
	p, err := s.patients.Get(ctx, patientID)
	if err != nil {
		return Report{}, err
	}

	items, err := s.data.ListByPatient(ctx, patientID)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Patient: p,
		Data:    Assemble(items),
	}, nil
}
