package reports

import (
	"math"
	"strconv"
	"strings"
	"time"

	"clinicals/internal/domain/clinicaldata"
)

// ComponentBMI es el nombre del dato derivado; nunca se persiste.
const ComponentBMI = "BMI"

// Entry es una fila del reporte: un dato clínico guardado o uno derivado.
type Entry struct {
	ID             int64
	ComponentName  string
	ComponentValue string
	MeasuredAt     *time.Time
	Derived        bool
}

// Assemble devuelve las mediciones en el mismo orden y, al final, un BMI por
// cada "hw" con formato "<altura>/<peso>". Un "hw" mal formado no genera BMI
// ni error.
func Assemble(data []clinicaldata.ClinicalData) []Entry {
	out := make([]Entry, 0, len(data))
	var derived []Entry

	for _, d := range data {
		measured := d.MeasuredAt
		out = append(out, Entry{
			ID:             d.ID,
			ComponentName:  string(d.ComponentName),
			ComponentValue: d.ComponentValue,
			MeasuredAt:     &measured,
		})

		if d.ComponentName != clinicaldata.ComponentHeightWeight {
			continue
		}
		bmi, ok := BMI(d.ComponentValue)
		if !ok {
			continue
		}
		derived = append(derived, Entry{
			ComponentName:  ComponentBMI,
			ComponentValue: strconv.FormatFloat(bmi, 'f', 2, 64),
			Derived:        true,
		})
	}

	return append(out, derived...)
}

// BMI calcula peso / altura² desde un valor "hw". ok=false si el valor no
// tiene exactamente dos partes numéricas o la altura no es positiva.
func BMI(hw string) (float64, bool) {
	parts := strings.Split(hw, "/")
	if len(parts) != 2 {
		return 0, false
	}

	height, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || height <= 0 {
		return 0, false
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, false
	}

	bmi := weight / (height * height)
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return 0, false
	}
	return bmi, true
}
