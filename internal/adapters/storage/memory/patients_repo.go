package memory

import (
	"context"
	"sort"

	"clinicals/internal/domain/patients"
)

type patientRepo struct {
	s *Store
}

func NewPatientRepo(s *Store) patients.Repository {
	return &patientRepo{s: s}
}

func (r *patientRepo) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextPatientID++
	p.ID = r.s.nextPatientID
	r.s.patients[p.ID] = p
	return p, nil
}

func (r *patientRepo) Update(ctx context.Context, p patients.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.patients[p.ID]; !exists {
		return patients.ErrNotFound
	}
	r.s.patients[p.ID] = p
	return nil
}

func (r *patientRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.patients[id]
	if !ok {
		return patients.Patient{}, patients.ErrNotFound
	}
	return p, nil
}

func (r *patientRepo) List(ctx context.Context) ([]patients.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]patients.Patient, 0, len(r.s.patients))
	for _, p := range r.s.patients {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *patientRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.patients[id]; !ok {
		return patients.ErrNotFound
	}

	for dataID, d := range r.s.data {
		if d.PatientID == id {
			delete(r.s.data, dataID)
		}
	}
	delete(r.s.patients, id)
	return nil
}
