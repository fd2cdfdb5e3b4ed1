package server

import (
	"github.com/DAv10195/course_details_server/elements/users"
	"net/http"
	"regexp"
)

// decides if the given user may perform the given request
type authorizationFunc func(user *users.User, r *http.Request) bool

type regexAuthorization struct {
	regex    *regexp.Regexp
	authFunc authorizationFunc
}

// route level authorization. Requests to paths without a registered authorization function are denied
type authManager struct {
	authMap map[string]authorizationFunc
	regexes []*regexAuthorization
}

func NewAuthManager() *authManager {
	return &authManager{authMap: make(map[string]authorizationFunc)}
}

// register an authorization function for the exact given path
func (a *authManager) addPathToMap(path string, authFunc authorizationFunc) {
	a.authMap[path] = authFunc
}

// register an authorization function for all paths matching the given regex. Exact paths take precedence and regexes
// are matched in order of registration
func (a *authManager) addRegex(regex *regexp.Regexp, authFunc authorizationFunc) {
	a.regexes = append(a.regexes, &regexAuthorization{regex, authFunc})
}

func (a *authManager) authorize(user *users.User, r *http.Request) bool {
	if authFunc, ok := a.authMap[r.URL.Path]; ok {
		return authFunc(user, r)
	}
	for _, ra := range a.regexes {
		if ra.regex.MatchString(r.URL.Path) {
			return ra.authFunc(user, r)
		}
	}
	return false
}

func (a *authManager) authorizationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := r.Context().Value(authenticatedUser).(*users.User)
		if !ok || !a.authorize(user, r) {
			writeStrErrResp(w, r, http.StatusForbidden, accessDenied)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func anyUser(_ *users.User, _ *http.Request) bool {
	return true
}

func adminOnly(user *users.User, _ *http.Request) bool {
	return user.Roles.Contains(users.Admin)
}

func adminOrSecretary(user *users.User, _ *http.Request) bool {
	return user.Roles.Contains(users.Admin) || user.Roles.Contains(users.Secretary)
}
