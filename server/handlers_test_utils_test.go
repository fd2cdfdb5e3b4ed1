package server

import (
	"bytes"
	"context"
	"fmt"
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/elements/courses"
	"github.com/DAv10195/course_details_server/elements/instructors"
	"github.com/DAv10195/course_details_server/elements/students"
	"github.com/DAv10195/course_details_server/elements/users"
	"github.com/gorilla/mux"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const (
	testCourse      = "CS101.2026"
	testOtherCourse = "EE200"
	testInstructor  = "instructor1"
	testOutsider    = "outsider"
)

type handlersTestCase struct {
	name    string
	method  string
	path    string
	status  int
	data    []byte
	reqUser *users.User
}

// initializes a db holding users of every role, a course with an instructor and students, and another course
func getDbForHandlersTest() (map[string]*users.User, func()) {
	cleanup := db.InitDbForTest()
	testUsers := make(map[string]*users.User)
	if err := users.InitDefaultAdmin(); err != nil {
		panic(err)
	}
	admin, err := users.Get(users.Admin)
	if err != nil {
		panic(err)
	}
	testUsers[users.Admin] = admin
	for _, u := range []struct{ name, role string }{
		{users.Secretary, users.Secretary},
		{users.StandardUser, users.StandardUser},
		{testInstructor, users.StandardUser},
		{testOutsider, users.StandardUser},
	} {
		user, err := users.NewUserBuilder(db.System, true).WithUserName(u.name).WithPassword(u.name).WithRoles(u.role).Build()
		if err != nil {
			panic(err)
		}
		testUsers[u.name] = user
	}
	if _, err := courses.NewCourse(testCourse, "Programming Methodology", "", db.System, true); err != nil {
		panic(err)
	}
	if _, err := courses.NewCourse(testOtherCourse, "Signals", "", db.System, true); err != nil {
		panic(err)
	}
	if _, err := instructors.NewInstructor(&instructors.Instructor{CourseID: testCourse, UserName: testInstructor, Name: "Ines Tructor", Email: "ines@uni.edu"}, db.System, true); err != nil {
		panic(err)
	}
	if _, err := instructors.NewInstructor(&instructors.Instructor{CourseID: testOtherCourse, UserName: testOutsider, Name: "Otto Sider", Email: "otto@uni.edu"}, db.System, true); err != nil {
		panic(err)
	}
	for _, student := range []*students.Student{
		{CourseID: testCourse, Name: "Carol Diaz", Email: "carol@uni.edu", Section: "Section 2", Team: "Team B"},
		{CourseID: testCourse, Name: "Alice Wong", Email: "alice.b@uni.edu", Section: "Section 1", Team: "Team A", UserName: users.StandardUser},
		{CourseID: testCourse, Name: "Alice Wong", Email: "alice.a@uni.edu", Section: "Section 1", Team: "Team A"},
		{CourseID: testCourse, Name: "Bob <b>Smith</b>", Email: "bob@uni.edu", Section: "Section 2", Team: "Team B"},
		{CourseID: testOtherCourse, Name: "Eve Other", Email: "eve@uni.edu", Team: "Team Z"},
	} {
		if _, err := students.NewStudent(student, db.System, true); err != nil {
			panic(err)
		}
	}
	return testUsers, cleanup
}

// returns the router of a server running on a test db, and a function stopping the server's workers
func getRouterForHandlersTest() (*mux.Router, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	router := newRouter(ctx, NewDefaultConfig(), wg)
	return router, func() {
		cancel()
		wg.Wait()
	}
}

func newRequestForUser(method, path string, data []byte, user *users.User) (*http.Request, error) {
	r, err := http.NewRequest(method, path, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	if user != nil {
		password, err := db.Decrypt(user.Password)
		if err != nil {
			return nil, err
		}
		r.SetBasicAuth(user.UserName, password)
	}
	return r, nil
}

func runHandlersTestCases(t *testing.T, router http.Handler, testCases []handlersTestCase) {
	for _, testCase := range testCases {
		var testCaseErr error
		if !t.Run(testCase.name, func(t *testing.T) {
			r, err := newRequestForUser(testCase.method, testCase.path, testCase.data, testCase.reqUser)
			if err != nil {
				testCaseErr = fmt.Errorf("error creating http request for test case [ %s ]: %v", testCase.name, err)
				t.FailNow()
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)
			if w.Code != testCase.status {
				testCaseErr = fmt.Errorf("test case [ %s ] produced status code %d instead of the expected %d status code (%s)", testCase.name, w.Code, testCase.status, w.Body.String())
				t.FailNow()
			}
		}) {
			t.Logf("error in test case [ %s ]: %v", testCase.name, testCaseErr)
		}
	}
}
