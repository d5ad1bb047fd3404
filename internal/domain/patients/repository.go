package patients

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("patient not found")
)

type Repository interface {
	// Create asigna el ID y devuelve el paciente persistido.
	Create(ctx context.Context, p Patient) (Patient, error)
	Update(ctx context.Context, p Patient) error
	GetByID(ctx context.Context, id int64) (Patient, error)
	List(ctx context.Context) ([]Patient, error)

	// Delete borra el paciente y todos sus datos clínicos (cascada).
	Delete(ctx context.Context, id int64) error
}
