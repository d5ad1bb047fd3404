package patients

// NameMaxLength es el largo máximo de nombre y apellido.
const NameMaxLength = 20

// Patient es el paciente registrado; sus datos clínicos viven en clinicaldata.
type Patient struct {
	ID        int64
	LastName  string
	FirstName string
	Age       int
}
