package model

// departmentSubjects maps each department to its three tracked core subjects.
// Order matters: Mark_1..Mark_3 on a student record follow this order.
var departmentSubjects = map[Department][3]string{
	DepartmentCSE:  {"Data Science", "Operating Systems", "Cyber Security"},
	DepartmentIT:   {"Data Science", "Cloud Computing", "Web Frameworks"},
	DepartmentECE:  {"VLSI Design", "Digital Electronics", "Signal Processing"},
	DepartmentEEE:  {"Power Systems", "Control Theory", "Electric Machines"},
	DepartmentMECH: {"Thermodynamics", "Fluid Mechanics", "Robotics"},
}

// departmentOrder is the stable display order for department listings.
var departmentOrder = []Department{
	DepartmentCSE,
	DepartmentIT,
	DepartmentECE,
	DepartmentEEE,
	DepartmentMECH,
}

// DepartmentCodes returns the known department codes in display order.
func DepartmentCodes() []Department {
	codes := make([]Department, len(departmentOrder))
	copy(codes, departmentOrder)
	return codes
}

// SubjectsFor returns the ordered core-subject triple for a department.
// Precondition: d is one of the five known codes; callers only supply
// values obtained from DepartmentCodes.
func SubjectsFor(d Department) [3]string {
	return departmentSubjects[d]
}

// ValidDepartment reports whether code is one of the known department codes.
func ValidDepartment(code string) bool {
	_, ok := departmentSubjects[Department(code)]
	return ok
}
