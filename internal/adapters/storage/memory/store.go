package memory

import (
	"sync"

	"clinicals/internal/domain/clinicaldata"
	"clinicals/internal/domain/patients"
)

// Store guarda pacientes y datos clínicos bajo el mismo lock, así el borrado
// en cascada es atómico igual que en Postgres.
type Store struct {
	mu sync.RWMutex

	patients map[int64]patients.Patient
	data     map[int64]clinicaldata.ClinicalData

	nextPatientID int64
	nextDataID    int64
}

func NewStore() *Store {
	return &Store{
		patients: make(map[int64]patients.Patient),
		data:     make(map[int64]clinicaldata.ClinicalData),
	}
}
