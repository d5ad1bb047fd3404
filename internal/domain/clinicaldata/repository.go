package clinicaldata

import "context"

type Repository interface {
	// Create asigna el ID. Si el paciente no existe devuelve patients.ErrNotFound.
	Create(ctx context.Context, d ClinicalData) (ClinicalData, error)

	// ListByPatient ordena por MeasuredAt asc y luego por ID.
	ListByPatient(ctx context.Context, patientID int64) ([]ClinicalData, error)
}
