package entity

type Alumnus struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	GraduationYear int    `json:"graduationYear"`
	DegreeProgram  string `json:"degreeProgram"`
	Company        string `json:"company"`
	Position       string `json:"position"`
	City           string `json:"city"`
}
