package reports

import (
	"math"
	"testing"
	"time"

	"clinicals/internal/domain/clinicaldata"
)

func data(id int64, name clinicaldata.Component, value string) clinicaldata.ClinicalData {
	return clinicaldata.ClinicalData{
		ID:             id,
		PatientID:      1,
		ComponentName:  name,
		ComponentValue: value,
		MeasuredAt:     time.Date(2024, 1, 1, 10, 0, int(id), 0, time.UTC),
	}
}

func TestBMI(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"5.8/150", 150 / (5.8 * 5.8), true},
		{"1.75/70", 70 / (1.75 * 1.75), true},
		{" 2 / 80 ", 20, true},
		{"150", 0, false},
		{"1/2/3", 0, false},
		{"abc/70", 0, false},
		{"1.7/xyz", 0, false},
		{"0/70", 0, false},
		{"-1.7/70", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, ok := BMI(tc.in)
		if ok != tc.ok {
			t.Fatalf("BMI(%q) ok=%v, want %v", tc.in, ok, tc.ok)
		}
		if ok && math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("BMI(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAssemble_AppendsBMIAfterInputs(t *testing.T) {
	in := []clinicaldata.ClinicalData{
		data(1, clinicaldata.ComponentBloodPressure, "120/80"),
		data(2, clinicaldata.ComponentHeightWeight, "5.8/150"),
		data(3, clinicaldata.ComponentHeartRate, "72"),
	}

	out := Assemble(in)
	if len(out) != 4 {
		t.Fatalf("expected 4 entries, got %d: %#v", len(out), out)
	}

	for i, d := range in {
		if out[i].ID != d.ID || out[i].ComponentName != string(d.ComponentName) || out[i].ComponentValue != d.ComponentValue {
			t.Fatalf("entry %d changed: %#v", i, out[i])
		}
		if out[i].Derived || out[i].MeasuredAt == nil || !out[i].MeasuredAt.Equal(d.MeasuredAt) {
			t.Fatalf("entry %d: unexpected derived/measuredAt: %#v", i, out[i])
		}
	}

	bmi := out[3]
	if bmi.ComponentName != ComponentBMI || bmi.ComponentValue != "4.46" {
		t.Fatalf("unexpected BMI entry: %#v", bmi)
	}
	if !bmi.Derived || bmi.ID != 0 || bmi.MeasuredAt != nil {
		t.Fatalf("BMI must be derived with no id or date: %#v", bmi)
	}
}

func TestAssemble_OneBMIPerHWInOrder(t *testing.T) {
	in := []clinicaldata.ClinicalData{
		data(1, clinicaldata.ComponentHeightWeight, "2/80"),
		data(2, clinicaldata.ComponentHeightWeight, "150"),
		data(3, clinicaldata.ComponentHeightWeight, "1/50"),
	}

	out := Assemble(in)
	if len(out) != 5 {
		t.Fatalf("expected 3 inputs + 2 BMI, got %#v", out)
	}
	if out[3].ComponentValue != "20.00" || out[4].ComponentValue != "50.00" {
		t.Fatalf("unexpected BMI order/values: %#v %#v", out[3], out[4])
	}
}

func TestAssemble_NoBMIForMalformed(t *testing.T) {
	for _, v := range []string{"150", "1/2/3", "tall/heavy", "0/70"} {
		out := Assemble([]clinicaldata.ClinicalData{data(1, clinicaldata.ComponentHeightWeight, v)})
		if len(out) != 1 {
			t.Fatalf("%q: expected only the input entry, got %#v", v, out)
		}
	}
}

func TestAssemble_IgnoresSlashInOtherComponents(t *testing.T) {
	out := Assemble([]clinicaldata.ClinicalData{data(1, clinicaldata.ComponentBloodPressure, "1/50")})
	if len(out) != 1 {
		t.Fatalf("bp must not produce BMI, got %#v", out)
	}
}

func TestAssemble_Empty(t *testing.T) {
	if out := Assemble(nil); len(out) != 0 {
		t.Fatalf("expected empty, got %#v", out)
	}
}
