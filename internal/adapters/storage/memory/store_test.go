package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinicals/internal/domain/clinicaldata"
	"clinicals/internal/domain/patients"
)

func TestPatientRepo_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewPatientRepo(NewStore())
	ctx := context.Background()

	p1, err := repo.Create(ctx, patients.Patient{FirstName: "John", LastName: "Doe", Age: 30})
	if err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}
	p2, err := repo.Create(ctx, patients.Patient{FirstName: "Jane", LastName: "Smith", Age: 25})
	if err != nil {
		t.Fatalf("Create #2 error: %v", err)
	}
	if p1.ID != 1 || p2.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", p1.ID, p2.ID)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 || list[0].FirstName != "John" || list[1].FirstName != "Jane" {
		t.Fatalf("unexpected list order: %#v", list)
	}
}

func TestPatientRepo_MissingIDs(t *testing.T) {
	repo := NewPatientRepo(NewStore())
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 9999); !errors.Is(err, patients.ErrNotFound) {
		t.Fatalf("GetByID: expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(ctx, patients.Patient{ID: 9999}); !errors.Is(err, patients.ErrNotFound) {
		t.Fatalf("Update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 9999); !errors.Is(err, patients.ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestDelete_CascadesClinicalData(t *testing.T) {
	s := NewStore()
	pRepo := NewPatientRepo(s)
	dRepo := NewClinicalDataRepo(s)
	ctx := context.Background()

	john, _ := pRepo.Create(ctx, patients.Patient{FirstName: "John", LastName: "Doe", Age: 30})
	jane, _ := pRepo.Create(ctx, patients.Patient{FirstName: "Jane", LastName: "Smith", Age: 25})

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	for _, d := range []clinicaldata.ClinicalData{
		{PatientID: john.ID, ComponentName: clinicaldata.ComponentBloodPressure, ComponentValue: "120/80", MeasuredAt: now},
		{PatientID: john.ID, ComponentName: clinicaldata.ComponentHeartRate, ComponentValue: "72", MeasuredAt: now},
		{PatientID: jane.ID, ComponentName: clinicaldata.ComponentHeartRate, ComponentValue: "65", MeasuredAt: now},
	} {
		if _, err := dRepo.Create(ctx, d); err != nil {
			t.Fatalf("Create data error: %v", err)
		}
	}

	if err := pRepo.Delete(ctx, john.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	if got, _ := dRepo.ListByPatient(ctx, john.ID); len(got) != 0 {
		t.Fatalf("expected no data left for deleted patient, got %d", len(got))
	}
	if got, _ := dRepo.ListByPatient(ctx, jane.ID); len(got) != 1 {
		t.Fatalf("other patient's data must survive, got %d", len(got))
	}
	if len(s.data) != 1 {
		t.Fatalf("expected 1 row in store, got %d", len(s.data))
	}
}

func TestClinicalDataRepo_RequiresPatient(t *testing.T) {
	dRepo := NewClinicalDataRepo(NewStore())

	_, err := dRepo.Create(context.Background(), clinicaldata.ClinicalData{
		PatientID:      42,
		ComponentName:  clinicaldata.ComponentBloodPressure,
		ComponentValue: "120/80",
	})
	if !errors.Is(err, patients.ErrNotFound) {
		t.Fatalf("expected patients.ErrNotFound, got %v", err)
	}
}

func TestClinicalDataRepo_ListOrdersByMeasuredAtThenID(t *testing.T) {
	s := NewStore()
	pRepo := NewPatientRepo(s)
	dRepo := NewClinicalDataRepo(s)
	ctx := context.Background()

	p, _ := pRepo.Create(ctx, patients.Patient{FirstName: "John", LastName: "Doe", Age: 30})

	t0 := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	_, _ = dRepo.Create(ctx, clinicaldata.ClinicalData{PatientID: p.ID, ComponentName: clinicaldata.ComponentHeartRate, ComponentValue: "late", MeasuredAt: t0.Add(time.Hour)})
	_, _ = dRepo.Create(ctx, clinicaldata.ClinicalData{PatientID: p.ID, ComponentName: clinicaldata.ComponentHeartRate, ComponentValue: "first", MeasuredAt: t0})
	_, _ = dRepo.Create(ctx, clinicaldata.ClinicalData{PatientID: p.ID, ComponentName: clinicaldata.ComponentHeartRate, ComponentValue: "second", MeasuredAt: t0})

	got, err := dRepo.ListByPatient(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListByPatient error: %v", err)
	}
	want := []string{"first", "second", "late"}
	for i, w := range want {
		if got[i].ComponentValue != w {
			t.Fatalf("position %d: got %q, want %q", i, got[i].ComponentValue, w)
		}
	}
}
