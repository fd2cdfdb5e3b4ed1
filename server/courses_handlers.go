package server

import (
	"encoding/json"
	"fmt"
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/elements/courses"
	"github.com/DAv10195/course_details_server/elements/instructors"
	"github.com/DAv10195/course_details_server/elements/students"
	"github.com/DAv10195/course_details_server/elements/users"
	"github.com/DAv10195/course_details_server/util/containers"
	courseerr "github.com/DAv10195/course_details_server/util/errors"
	"github.com/gorilla/mux"
	"net/http"
	"regexp"
)

func handleGetCourses(w http.ResponseWriter, r *http.Request) {
	var elements []db.IBucketElement
	if err := db.QueryBucket([]byte(db.Courses), func(_, elementBytes []byte) error {
		course := &courses.Course{}
		if err := json.Unmarshal(elementBytes, course); err != nil {
			return err
		}
		elements = append(elements, course)
		return nil
	}); err != nil {
		writeErrResp(w, r, http.StatusInternalServerError, err)
		return
	}
	writeElements(w, r, http.StatusOK, elements)
}

func handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	course := &courses.Course{}
	if err := decodeBody(r, course); err != nil {
		writeErrByType(w, r, err)
		return
	}
	user := r.Context().Value(authenticatedUser).(*users.User)
	if _, err := courses.NewCourse(course.ID, course.Name, course.TimeZone, user.UserName, true); err != nil {
		writeErrByType(w, r, err)
		return
	}
	writeResponse(w, r, http.StatusAccepted, &Response{fmt.Sprintf("course \"%s\" created successfully", course.ID)})
}

func handleGetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := courses.Get(mux.Vars(r)[courseId])
	if err != nil {
		writeErrByType(w, r, err)
		return
	}
	writeElem(w, r, http.StatusOK, course)
}

func handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	course, err := courses.Get(mux.Vars(r)[courseId])
	if err != nil {
		writeErrByType(w, r, err)
		return
	}
	if err := courses.Delete(course); err != nil {
		writeErrResp(w, r, http.StatusInternalServerError, err)
		return
	}
	writeResponse(w, r, http.StatusOK, &Response{fmt.Sprintf("course \"%s\" deleted successfully", course.ID)})
}

func handleGetCourseInstructors(w http.ResponseWriter, r *http.Request) {
	course, err := courses.Get(mux.Vars(r)[courseId])
	if err != nil {
		writeErrByType(w, r, err)
		return
	}
	courseInstructors, err := instructors.GetForCourse(course.ID)
	if err != nil {
		writeErrResp(w, r, http.StatusInternalServerError, err)
		return
	}
	elements := make([]db.IBucketElement, 0, len(courseInstructors))
	for _, instructor := range courseInstructors {
		elements = append(elements, instructor)
	}
	writeElements(w, r, http.StatusOK, elements)
}

// add the instructors in the request body to the course. Either all of them are added or none
func handleAddCourseInstructors(w http.ResponseWriter, r *http.Request) {
	course, err := courses.Get(mux.Vars(r)[courseId])
	if err != nil {
		writeErrByType(w, r, err)
		return
	}
	var body struct {
		Instructors []*instructors.Instructor `json:"instructors"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeErrByType(w, r, err)
		return
	}
	if len(body.Instructors) == 0 {
		writeErrByType(w, r, &courseerr.ErrInsufficientData{Message: "no instructors given"})
		return
	}
	user := r.Context().Value(authenticatedUser).(*users.User)
	var elementsToCreate []db.IBucketElement
	for _, instructor := range body.Instructors {
		instructor.CourseID = course.ID
		if _, err := instructors.NewInstructor(instructor, user.UserName, false); err != nil {
			writeErrByType(w, r, err)
			return
		}
		elementsToCreate = append(elementsToCreate, instructor)
	}
	if err := checkInstructorUserLinks(course.ID, body.Instructors); err != nil {
		writeErrByType(w, r, err)
		return
	}
	if err := db.Insert(user.UserName, elementsToCreate...); err != nil {
		writeErrByType(w, r, err)
		return
	}
	writeResponse(w, r, http.StatusAccepted, &Response{fmt.Sprintf("instructors added to course \"%s\" successfully", course.ID)})
}

// every user name linked by the given instructors must belong to an existing user which isn't linked to another
// instructor of the course
func checkInstructorUserLinks(courseId string, toAdd []*instructors.Instructor) error {
	linked := containers.NewStringSet()
	for _, instructor := range toAdd {
		if !instructor.IsRegistered() {
			continue
		}
		if linked.Contains(instructor.UserName) {
			return &courseerr.ErrInsufficientData{Message: fmt.Sprintf("user \"%s\" is linked to more than one instructor", instructor.UserName)}
		}
		linked.Add(instructor.UserName)
		exists, err := db.KeyExistsInBucket([]byte(db.Users), []byte(instructor.UserName))
		if err != nil {
			return err
		}
		if !exists {
			return &courseerr.ErrInsufficientData{Message: fmt.Sprintf("user \"%s\" does not exist", instructor.UserName)}
		}
		existing, err := instructors.GetForUser(courseId, instructor.UserName)
		if err != nil {
			return err
		}
		if existing != nil {
			return &courseerr.ErrInsufficientData{Message: fmt.Sprintf("user \"%s\" is already an instructor of course \"%s\"", instructor.UserName, courseId)}
		}
	}
	return nil
}

func handleGetCourseStudents(w http.ResponseWriter, r *http.Request) {
	course, err := courses.Get(mux.Vars(r)[courseId])
	if err != nil {
		writeErrByType(w, r, err)
		return
	}
	courseStudents, err := students.GetForCourse(course.ID)
	if err != nil {
		writeErrResp(w, r, http.StatusInternalServerError, err)
		return
	}
	elements := make([]db.IBucketElement, 0, len(courseStudents))
	for _, student := range courseStudents {
		elements = append(elements, student)
	}
	writeElements(w, r, http.StatusOK, elements)
}

// enroll the students in the request body in the course. Either all of them are enrolled or none
func handleAddCourseStudents(w http.ResponseWriter, r *http.Request) {
	course, err := courses.Get(mux.Vars(r)[courseId])
	if err != nil {
		writeErrByType(w, r, err)
		return
	}
	var body struct {
		Students []*students.Student `json:"students"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeErrByType(w, r, err)
		return
	}
	if len(body.Students) == 0 {
		writeErrByType(w, r, &courseerr.ErrInsufficientData{Message: "no students given"})
		return
	}
	user := r.Context().Value(authenticatedUser).(*users.User)
	var elementsToCreate []db.IBucketElement
	for _, student := range body.Students {
		student.CourseID = course.ID
		if _, err := students.NewStudent(student, user.UserName, false); err != nil {
			writeErrByType(w, r, err)
			return
		}
		elementsToCreate = append(elementsToCreate, student)
	}
	if err := db.Insert(user.UserName, elementsToCreate...); err != nil {
		writeErrByType(w, r, err)
		return
	}
	writeResponse(w, r, http.StatusAccepted, &Response{fmt.Sprintf("students added to course \"%s\" successfully", course.ID)})
}

// configure the courses router
func initCoursesRouter(r *mux.Router, m *authManager) {
	basePath := fmt.Sprintf("/%s", db.Courses)
	coursesRouter := r.PathPrefix(basePath).Subrouter()
	coursesRouter.HandleFunc("/", handleGetCourses).Methods(http.MethodGet)
	coursesRouter.HandleFunc("/", handleCreateCourse).Methods(http.MethodPost)
	m.addPathToMap(fmt.Sprintf("%s/", basePath), adminOrSecretary)
	coursePath := fmt.Sprintf("/{%s}", courseId)
	coursesRouter.HandleFunc(coursePath, handleGetCourse).Methods(http.MethodGet)
	coursesRouter.HandleFunc(coursePath, handleDeleteCourse).Methods(http.MethodDelete)
	coursesRouter.HandleFunc(fmt.Sprintf("%s/%s", coursePath, db.Instructors), handleGetCourseInstructors).Methods(http.MethodGet)
	coursesRouter.HandleFunc(fmt.Sprintf("%s/%s", coursePath, db.Instructors), handleAddCourseInstructors).Methods(http.MethodPost)
	coursesRouter.HandleFunc(fmt.Sprintf("%s/%s", coursePath, db.Students), handleGetCourseStudents).Methods(http.MethodGet)
	coursesRouter.HandleFunc(fmt.Sprintf("%s/%s", coursePath, db.Students), handleAddCourseStudents).Methods(http.MethodPost)
	m.addRegex(regexp.MustCompile(fmt.Sprintf("^%s/[^/]+(/%s|/%s)?$", basePath, db.Instructors, db.Students)), adminOrSecretary)
}
