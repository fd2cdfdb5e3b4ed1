package server

import (
	"github.com/DAv10195/course_details_server/elements/users"
	"github.com/DAv10195/course_details_server/session"
	"github.com/gorilla/mux"
	"net/http"
)

// returned to clients on login
type LoginData struct {
	UserName string   `json:"user_name"`
	Roles    []string `json:"roles"`
}

// start a session for the authenticated user unless the request already carries one
func handleLogin(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(authenticatedUser).(*users.User)
	if _, err := session.Get(r); err == session.ErrNotFound {
		sess, err := session.New(r, user.UserName)
		if err != nil {
			writeErrResp(w, r, http.StatusInternalServerError, err)
			return
		}
		if err := sess.Save(r, w); err != nil {
			writeErrResp(w, r, http.StatusInternalServerError, err)
			return
		}
	}
	writeJson(w, r, http.StatusOK, &LoginData{UserName: user.UserName, Roles: user.Roles.Slice()})
}

func handleLogout(w http.ResponseWriter, r *http.Request) {
	sess, err := session.Get(r)
	if err != nil {
		writeResponse(w, r, http.StatusOK, &Response{"no session to end"})
		return
	}
	session.Expire(sess)
	if err := sess.Save(r, w); err != nil {
		writeErrResp(w, r, http.StatusInternalServerError, err)
		return
	}
	writeResponse(w, r, http.StatusOK, &Response{"logged out successfully"})
}

func initSessionRouter(r *mux.Router, m *authManager) {
	r.HandleFunc("/login", handleLogin).Methods(http.MethodPost)
	m.addPathToMap("/login", anyUser)
	r.HandleFunc("/logout", handleLogout).Methods(http.MethodPost)
	m.addPathToMap("/logout", anyUser)
}
