package memory

import (
	"context"
	"sort"

	"clinicals/internal/domain/clinicaldata"
	"clinicals/internal/domain/patients"
)

type clinicalDataRepo struct {
	s *Store
}

func NewClinicalDataRepo(s *Store) clinicaldata.Repository {
	return &clinicalDataRepo{s: s}
}

func (r *clinicalDataRepo) Create(ctx context.Context, d clinicaldata.ClinicalData) (clinicaldata.ClinicalData, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// FK: el paciente tiene que existir
	if _, ok := r.s.patients[d.PatientID]; !ok {
		return clinicaldata.ClinicalData{}, patients.ErrNotFound
	}

	r.s.nextDataID++
	d.ID = r.s.nextDataID
	r.s.data[d.ID] = d
	return d, nil
}

func (r *clinicalDataRepo) ListByPatient(ctx context.Context, patientID int64) ([]clinicaldata.ClinicalData, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clinicaldata.ClinicalData, 0)
	for _, d := range r.s.data {
		if d.PatientID == patientID {
			out = append(out, d)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].MeasuredAt.Equal(out[j].MeasuredAt) {
			return out[i].MeasuredAt.Before(out[j].MeasuredAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
