package server

import (
	"encoding/json"
	"fmt"
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/elements/users"
	courseerr "github.com/DAv10195/course_details_server/util/errors"
	"github.com/gorilla/mux"
	"net/http"
	"regexp"
)

// a user as given for registration
type userRegistration struct {
	UserName  string   `json:"user_name"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Password  string   `json:"password"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
}

func handleGetUser(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(authenticatedUser).(*users.User)
	requestedUserName := mux.Vars(r)[userName]
	requestedUser := user
	if requestedUserName != user.UserName {
		var err error
		if requestedUser, err = users.Get(requestedUserName); err != nil {
			writeErrByType(w, r, err)
			return
		}
	}
	writeElem(w, r, http.StatusOK, requestedUser.Public())
}

func handleGetAllUsers(w http.ResponseWriter, r *http.Request) {
	var elements []db.IBucketElement
	if err := db.QueryBucket([]byte(db.Users), func(_, elementBytes []byte) error {
		user := &users.User{}
		if err := json.Unmarshal(elementBytes, user); err != nil {
			return err
		}
		elements = append(elements, user.Public())
		return nil
	}); err != nil {
		writeErrResp(w, r, http.StatusInternalServerError, err)
		return
	}
	writeElements(w, r, http.StatusOK, elements)
}

// register the users in the request body. Either all of them are registered or none
func handleRegisterUsers(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Users []*userRegistration `json:"users"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeErrByType(w, r, err)
		return
	}
	if len(body.Users) == 0 {
		writeErrByType(w, r, &courseerr.ErrInsufficientData{Message: "no users given"})
		return
	}
	var elementsToCreate []db.IBucketElement
	for _, registration := range body.Users {
		roles := registration.Roles
		if len(roles) == 0 {
			roles = []string{users.StandardUser}
		}
		user, err := users.NewUserBuilder(db.System, false).WithUserName(registration.UserName).WithFirstName(registration.FirstName).
			WithLastName(registration.LastName).WithPassword(registration.Password).WithEmail(registration.Email).WithRoles(roles...).Build()
		if err != nil {
			writeErrByType(w, r, err)
			return
		}
		elementsToCreate = append(elementsToCreate, user)
	}
	if err := db.Insert(r.Context().Value(authenticatedUser).(*users.User).UserName, elementsToCreate...); err != nil {
		writeErrByType(w, r, err)
		return
	}
	writeResponse(w, r, http.StatusAccepted, &Response{"users created successfully"})
}

func handleDelUser(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(authenticatedUser).(*users.User)
	requestedUserName := mux.Vars(r)[userName]
	if requestedUserName == users.Admin {
		writeStrErrResp(w, r, http.StatusBadRequest, "the default admin user can't be deleted")
		return
	}
	requestedUser := user
	if requestedUserName != user.UserName {
		var err error
		if requestedUser, err = users.Get(requestedUserName); err != nil {
			writeErrByType(w, r, err)
			return
		}
	}
	if err := users.Delete(requestedUser); err != nil {
		writeErrResp(w, r, http.StatusInternalServerError, err)
		return
	}
	writeResponse(w, r, http.StatusOK, &Response{fmt.Sprintf("user \"%s\" deleted successfully", requestedUser.UserName)})
}

// a user may access itself. Admins and secretaries may access all users
func selfOrAdminOrSecretary(user *users.User, r *http.Request) bool {
	return mux.Vars(r)[userName] == user.UserName || adminOrSecretary(user, r)
}

// configure the users router
func initUsersRouter(r *mux.Router, m *authManager) {
	basePath := fmt.Sprintf("/%s", db.Users)
	usersRouter := r.PathPrefix(basePath).Subrouter()
	usersRouter.HandleFunc("/", handleGetAllUsers).Methods(http.MethodGet)
	usersRouter.HandleFunc("/", handleRegisterUsers).Methods(http.MethodPost)
	m.addPathToMap(fmt.Sprintf("%s/", basePath), adminOrSecretary)
	usersRouter.HandleFunc(fmt.Sprintf("/{%s}", userName), handleGetUser).Methods(http.MethodGet)
	usersRouter.HandleFunc(fmt.Sprintf("/{%s}", userName), handleDelUser).Methods(http.MethodDelete)
	m.addRegex(regexp.MustCompile(fmt.Sprintf("^%s/[^/]+$", basePath)), selfOrAdminOrSecretary)
}
