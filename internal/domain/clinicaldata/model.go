package clinicaldata

import "time"

// Component es el tipo de medición clínica.
type Component string

const (
	ComponentHeightWeight  Component = "hw"
	ComponentBloodPressure Component = "bp"
	ComponentHeartRate     Component = "heart rate"
)

// ValueMaxLength es el largo máximo de ComponentValue.
const ValueMaxLength = 20

// Choice es una opción del desplegable de componentes.
type Choice struct {
	Value Component `json:"value"`
	Label string    `json:"label"`
}

// Choices en el orden en que se muestran.
var Choices = []Choice{
	{Value: ComponentHeightWeight, Label: "Height/Weight"},
	{Value: ComponentBloodPressure, Label: "Blood Pressure"},
	{Value: ComponentHeartRate, Label: "Heart Rate"},
}

func (c Component) Valid() bool {
	for _, ch := range Choices {
		if ch.Value == c {
			return true
		}
	}
	return false
}

// ClinicalData es una medición registrada para un paciente.
// ComponentValue es texto libre: "120/80", "72", "5.8/150"…
type ClinicalData struct {
	ID        int64
	PatientID int64

	ComponentName  Component
	ComponentValue string

	MeasuredAt time.Time
}
