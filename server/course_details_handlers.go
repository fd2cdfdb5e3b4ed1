package server

import (
	"bytes"
	"fmt"
	"github.com/DAv10195/course_details_server/elements/users"
	"github.com/DAv10195/course_details_server/pages"
	"github.com/DAv10195/course_details_server/views"
	"github.com/gorilla/mux"
	"net/http"
	"strings"
)

// serves the instructor course details page (or its student table fragment) and records the page load in the admin
// activity log
func handleCourseDetailsPage(action *pages.CourseDetailsPageAction, renderer *views.Renderer, recorder *activityRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := r.Context().Value(authenticatedUser).(*users.User)
		query := r.URL.Query()
		result, err := action.Execute(&pages.CourseDetailsRequest{
			CourseID:             query.Get(pages.ParamCourseId),
			CsvToHtmlTableNeeded: strings.EqualFold(query.Get(pages.ParamCsvToHtmlTableNeeded), trueStr),
			Account:              user,
		})
		if err != nil {
			writeErrByType(w, r, err)
			return
		}
		buf := &bytes.Buffer{}
		if err := renderer.Render(buf, result.View, result.IsFragment, result.Data); err != nil {
			writeErrResp(w, r, http.StatusInternalServerError, err)
			return
		}
		recorder.record(user.UserName, pages.ActionInstructorCourseDetails, r.URL.Path, result.StatusToAdmin)
		w.Header().Set(ContentType, TextHtml)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Errorf(logHttpErrFormat, r.URL.Path)
		}
	}
}

// configure the pages router. Access to a course page is decided by the page itself
func initPagesRouter(r *mux.Router, m *authManager, action *pages.CourseDetailsPageAction, renderer *views.Renderer, recorder *activityRecorder) {
	router := r.PathPrefix(pageBasePath).Subrouter()
	router.HandleFunc(fmt.Sprintf("/%s", instructorCoursePage), handleCourseDetailsPage(action, renderer, recorder)).Methods(http.MethodGet)
	m.addPathToMap(fmt.Sprintf("%s/%s", pageBasePath, instructorCoursePage), anyUser)
}
