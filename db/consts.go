package db

import "time"

const (
	dbPerms                       = 0600
	dbOpenTimeout                 = time.Minute
	DatabaseFileName              = "course_details_server.db"
	DatabaseEncryptionKeyFileName = "course_details_server.key"

	System = "system"

	// separates the parts of composite keys (e.g. "<course id>:<email>")
	KeySeparator = ":"

	// bucket names
	Users       = "users"
	Courses     = "courses"
	Instructors = "instructors"
	Students    = "students"
	Activity    = "activity"
)
