package session

import (
	"errors"
	"fmt"
	"github.com/DAv10195/course_details_server/util/encryption"
	"github.com/DAv10195/course_details_server/util/ids"
	"github.com/gorilla/sessions"
	"net/http"
	"os"
	"path/filepath"
)

const (
	cookieName         = "course-details-server-cookie"
	sessionKeyFileName = "course_details_session.key"

	keyLength   = 32
	DefMaxAge   = 5 * 60
	sessionUser = "session_user"
)

var (
	ErrNotFound       = errors.New("session not found")
	ErrAlreadyExists  = errors.New("session already exists")
	ErrNotInitialized = errors.New("session store is not initialized")
)

var store *sessions.CookieStore

// initialize the session store with the key stored in the given dir, generating the key if it doesn't exist yet.
// Sessions expire after maxAge seconds
func Init(dir string, maxAge int) error {
	key, err := encryption.LoadOrGenerateKeyFile(filepath.Join(dir, sessionKeyFileName), keyLength)
	if err != nil {
		return err
	}
	if maxAge <= 0 {
		maxAge = DefMaxAge
	}
	store = sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	return nil
}

// return the existing session of the request. Missing, expired and tampered cookies all result in ErrNotFound
func Get(r *http.Request) (*sessions.Session, error) {
	if store == nil {
		return nil, ErrNotFound
	}
	sess, err := store.Get(r, cookieName)
	if err != nil {
		logger.WithError(err).Debug("ignoring invalid session cookie")
		return nil, ErrNotFound
	}
	if sess.IsNew {
		return nil, ErrNotFound
	}
	return sess, nil
}

// create a new session for the given user. The session is sent to the client when saved
func New(r *http.Request, userName string) (*sessions.Session, error) {
	if store == nil {
		return nil, ErrNotInitialized
	}
	// a cookie that can't be decoded yields a fresh session, which replaces it
	sess, _ := store.New(r, cookieName)
	if !sess.IsNew {
		return nil, ErrAlreadyExists
	}
	sess.Values[sessionUser] = userName
	return sess, nil
}

// expire the given session. The expiry is sent to the client when saved
func Expire(sess *sessions.Session) {
	sess.Options.MaxAge = -1
}

// the name of the user the given session belongs to
func UserName(sess *sessions.Session) string {
	userName, _ := sess.Values[sessionUser].(string)
	return userName
}

// initializes the session store for testing and returns a cleanup function
func InitSessionForTest() func() {
	dir := filepath.Join(os.TempDir(), fmt.Sprintf("course_details_test_session_%s", ids.GenerateUniqueId()))
	if err := os.MkdirAll(dir, 0755); err != nil {
		panic(err)
	}
	if err := Init(dir, DefMaxAge); err != nil {
		panic(err)
	}
	return func() {
		if err := os.RemoveAll(dir); err != nil {
			panic(err)
		}
	}
}
