package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"clinicals/internal/domain/clinicaldata"
	"clinicals/internal/domain/patients"
)

type ClinicalDataRepo struct {
	db *sql.DB
}

func NewClinicalDataRepo(db *sql.DB) *ClinicalDataRepo {
	return &ClinicalDataRepo{db: db}
}

func (r *ClinicalDataRepo) Create(ctx context.Context, d clinicaldata.ClinicalData) (clinicaldata.ClinicalData, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO clinical_data (
			patient_id, component_name, component_value, measured_at
		) VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		d.PatientID,
		string(d.ComponentName),
		d.ComponentValue,
		d.MeasuredAt,
	).Scan(&d.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return clinicaldata.ClinicalData{}, patients.ErrNotFound
		}
		return clinicaldata.ClinicalData{}, fmt.Errorf("insert clinical data: %w", err)
	}
	return d, nil
}

func (r *ClinicalDataRepo) ListByPatient(ctx context.Context, patientID int64) ([]clinicaldata.ClinicalData, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, patient_id, component_name, component_value, measured_at
		FROM clinical_data
		WHERE patient_id = $1
		ORDER BY measured_at ASC, id ASC
	`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list clinical data: %w", err)
	}
	defer rows.Close()

	out := make([]clinicaldata.ClinicalData, 0)
	for rows.Next() {
		var d clinicaldata.ClinicalData
		var name string
		if err := rows.Scan(&d.ID, &d.PatientID, &name, &d.ComponentValue, &d.MeasuredAt); err != nil {
			return nil, fmt.Errorf("scan clinical data: %w", err)
		}
		d.ComponentName = clinicaldata.Component(name)
		out = append(out, d)
	}

	return out, rows.Err()
}
