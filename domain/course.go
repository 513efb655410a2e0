package domain

type CourseID string

type Course struct {
	ID   CourseID
	Name string
	Code string
}

// ResolveDefaultCourse picks the course shown when no selection is given.
func ResolveDefaultCourse(courses []Course) (Course, bool) {
	if len(courses) == 0 {
		return Course{}, false
	}
	return courses[0], true
}
