package server

import "time"

const (
	ContentType     = "Content-Type"
	ApplicationJson = "application/json"
	TextHtml        = "text/html; charset=utf-8"

	ElementsLeftToProcess = "X-Elements-Left-To-Process"

	userName = "userName"
	courseId = "courseId"

	accessDenied = "access denied"
	trueStr      = "true"

	authenticatedUser = "authenticated_user"

	serverTimeout = 15 * time.Second

	activityQueueSize    = 1024
	defActivityLimit     = 100
	maxActivityLimit     = 1000
	limitParam           = "limit"
	afterIdParam         = "after_id"
	wsWriteTimeout       = 10 * time.Second
	wsHandshakeTimeout   = 10 * time.Second
	pageBasePath         = "/page"
	instructorCoursePage = "instructorCourseDetailsPage"
)
