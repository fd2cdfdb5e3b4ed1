package users

// account roles. instructors and students are not roles, they are per course records
// linked to an account by its user name.
const (
	Admin        = "admin"
	Secretary    = "secretary"
	StandardUser = "std_user"
)
