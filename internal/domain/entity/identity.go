package entity

// Specialization identifies what kind of medicine a doctor practices.
type Specialization string

const (
	SpecializationGeneralPractice Specialization = "general_practice"
)

// IsValid reports whether s is a known specialization.
func (s Specialization) IsValid() bool {
	return s == SpecializationGeneralPractice
}

// Doctor is identified by specialization only. Compared by value.
type Doctor struct {
	Specialization Specialization
}

// Patient is identified by name. The zero value means "no patient",
// which is how on-call entries are represented.
type Patient struct {
	Name string
}

func (p Patient) IsZero() bool {
	return p == Patient{}
}

// Room is identified by name. Compared by value.
type Room struct {
	Name string
}
