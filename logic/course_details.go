package logic

import (
	"github.com/DAv10195/course_details_server/elements/courses"
	"github.com/DAv10195/course_details_server/elements/students"
)

// statistics of a course
type CourseStats struct {
	SectionsTotal     int `json:"sections_total"`
	TeamsTotal        int `json:"teams_total"`
	StudentsTotal     int `json:"students_total"`
	UnregisteredTotal int `json:"unregistered_total"`
}

type TeamDetails struct {
	Name     string              `json:"name"`
	Students []*students.Student `json:"students"`
}

type SectionDetails struct {
	Name  string         `json:"name"`
	Teams []*TeamDetails `json:"teams"`
}

// a course along with its statistics and its students grouped by section and team
type CourseDetailsBundle struct {
	Course   *courses.Course   `json:"course"`
	Stats    CourseStats       `json:"stats"`
	Sections []*SectionDetails `json:"sections"`
}

// return the details bundle of the given course. Fails with ErrEntityNotFound if the course doesn't exist
func (l *Logic) GetCourseDetails(courseId string) (*CourseDetailsBundle, error) {
	course, err := l.GetCourse(courseId)
	if err != nil {
		return nil, err
	}
	courseStudents, err := students.GetForCourse(courseId)
	if err != nil {
		return nil, err
	}
	logger.Debugf("building details of course \"%s\" with %d students", courseId, len(courseStudents))
	return newCourseDetailsBundle(course, courseStudents), nil
}

func newCourseDetailsBundle(course *courses.Course, courseStudents []*students.Student) *CourseDetailsBundle {
	bundle := &CourseDetailsBundle{Course: course}
	sorted := make([]*students.Student, len(courseStudents))
	copy(sorted, courseStudents)
	students.SortBySectionAndThenByTeam(sorted)
	teams := make(map[string]struct{})
	var section *SectionDetails
	var team *TeamDetails
	for _, student := range sorted {
		if section == nil || section.Name != student.Section {
			section = &SectionDetails{Name: student.Section}
			bundle.Sections = append(bundle.Sections, section)
			team = nil
			if student.Section != students.DefaultSection {
				bundle.Stats.SectionsTotal++
			}
		}
		if team == nil || team.Name != student.Team {
			team = &TeamDetails{Name: student.Team}
			section.Teams = append(section.Teams, team)
		}
		team.Students = append(team.Students, student)
		teams[student.Team] = struct{}{}
		bundle.Stats.StudentsTotal++
		if !student.IsRegistered() {
			bundle.Stats.UnregisteredTotal++
		}
	}
	bundle.Stats.TeamsTotal = len(teams)
	return bundle
}
