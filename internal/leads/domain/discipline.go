package domain

// Discipline is an engineering discipline offered in the select inputs.
type Discipline string

const (
	Electronic          Discipline = "Electronic"
	Mechanical          Discipline = "Mechanical"
	Civil               Discipline = "Civil"
	Software            Discipline = "Software"
	Automation          Discipline = "Automation"
	Robotics            Discipline = "Robotics"
	MultipleDisciplines Discipline = "Multiple Disciplines"
)

// Disciplines lists the six recruiting disciplines in display order.
var Disciplines = []Discipline{Electronic, Mechanical, Civil, Software, Automation, Robotics}

// ProjectDisciplines adds "Multiple Disciplines" for project submissions.
var ProjectDisciplines = append(append([]Discipline{}, Disciplines...), MultipleDisciplines)

func IsDiscipline(s string) bool {
	return contains(Disciplines, Discipline(s))
}

func IsProjectDiscipline(s string) bool {
	return contains(ProjectDisciplines, Discipline(s))
}

func contains(set []Discipline, d Discipline) bool {
	for _, v := range set {
		if v == d {
			return true
		}
	}
	return false
}
