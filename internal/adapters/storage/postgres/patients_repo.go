package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clinicals/internal/domain/patients"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO patients (last_name, first_name, age)
		VALUES ($1, $2, $3)
		RETURNING id
	`,
		p.LastName,
		p.FirstName,
		p.Age,
	).Scan(&p.ID)
	if err != nil {
		return patients.Patient{}, fmt.Errorf("insert patient: %w", err)
	}
	return p, nil
}

func (r *PatientsRepo) Update(ctx context.Context, p patients.Patient) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE patients
		SET
			last_name = $2,
			first_name = $3,
			age = $4
		WHERE id = $1
	`,
		p.ID,
		p.LastName,
		p.FirstName,
		p.Age,
	)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return patients.ErrNotFound
	}
	return nil
}

func (r *PatientsRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, last_name, first_name, age
		FROM patients
		WHERE id = $1
	`, id)

	var p patients.Patient
	if err := row.Scan(&p.ID, &p.LastName, &p.FirstName, &p.Age); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return patients.Patient{}, patients.ErrNotFound
		}
		return patients.Patient{}, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (r *PatientsRepo) List(ctx context.Context) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, last_name, first_name, age
		FROM patients
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		var p patients.Patient
		if err := rows.Scan(&p.ID, &p.LastName, &p.FirstName, &p.Age); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// Delete borra datos clínicos y paciente en la misma transacción. El esquema
// también tiene ON DELETE CASCADE, pero no dependemos de eso.
func (r *PatientsRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM clinical_data WHERE patient_id = $1`, id); err != nil {
		return fmt.Errorf("delete clinical data: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return patients.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
