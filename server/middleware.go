package server

import (
	"context"
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/elements/users"
	"github.com/DAv10195/course_details_server/session"
	"net/http"
)

func contentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(ContentType, ApplicationJson)
		next.ServeHTTP(w, r)
	})
}

// authenticate incoming requests, either by their session cookie or by basic auth
func authenticationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, err := session.Get(r); err == nil {
			user, err := users.Get(session.UserName(sess))
			if err != nil {
				if _, ok := err.(*db.ErrKeyNotFoundInBucket); ok {
					writeStrErrResp(w, r, http.StatusUnauthorized, "session user no longer exists")
				} else {
					writeErrResp(w, r, http.StatusInternalServerError, err)
				}
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), authenticatedUser, user)))
			return
		}
		user, password, ok := r.BasicAuth()
		if !ok {
			writeStrErrResp(w, r, http.StatusUnauthorized, "no username/password given")
			return
		}
		userStruct, err := users.Authenticate(user, password)
		if err != nil {
			if _, ok := err.(*users.ErrAuthenticationFailure); ok {
				writeErrResp(w, r, http.StatusUnauthorized, err)
			} else {
				writeErrResp(w, r, http.StatusInternalServerError, err)
			}
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), authenticatedUser, userStruct)))
	})
}
