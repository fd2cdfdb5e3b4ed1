package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/DAv10195/course_details_server/db"
	courseerr "github.com/DAv10195/course_details_server/util/errors"
	"net/http"
)

const (
	logHttpErrFormat = "error serving http request for %s"
	internalErrMsg   = "internal server error"
)

type Response struct {
	Message string `json:"message"`
}

func (e *Response) String() string {
	respBytes, _ := json.Marshal(e)
	return string(respBytes)
}

func writeResponse(w http.ResponseWriter, r *http.Request, httpStatus int, response *Response) {
	w.WriteHeader(httpStatus)
	if _, err := w.Write([]byte(response.String())); err != nil {
		logger.WithError(err).Errorf(logHttpErrFormat, r.URL.Path)
	}
}

func writeErrResp(w http.ResponseWriter, r *http.Request, httpStatus int, err error) {
	logger.WithError(err).Errorf(logHttpErrFormat, r.URL.Path)
	writeResponse(w, r, httpStatus, &Response{err.Error()})
}

func writeStrErrResp(w http.ResponseWriter, r *http.Request, httpStatus int, str string) {
	writeErrResp(w, r, httpStatus, errors.New(str))
}

// write the given error with the status matching its type. Contract violations (invalid arguments) are internal
// errors and their details are only logged
func writeErrByType(w http.ResponseWriter, r *http.Request, err error) {
	switch err.(type) {
	case *courseerr.ErrEntityNotFound, *db.ErrKeyNotFoundInBucket:
		writeErrResp(w, r, http.StatusNotFound, err)
	case *courseerr.ErrAccessDenied:
		writeErrResp(w, r, http.StatusForbidden, err)
	case *courseerr.ErrInsufficientData, *db.ErrKeyExistsInBucket:
		writeErrResp(w, r, http.StatusBadRequest, err)
	case *courseerr.ErrInvalidArgument:
		logger.WithError(err).Errorf(logHttpErrFormat, r.URL.Path)
		writeResponse(w, r, http.StatusInternalServerError, &Response{internalErrMsg})
	default:
		writeErrResp(w, r, http.StatusInternalServerError, err)
	}
}

func writeJson(w http.ResponseWriter, r *http.Request, httpStatus int, v interface{}) {
	respBytes, err := json.Marshal(v)
	if err != nil {
		writeErrResp(w, r, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(httpStatus)
	if _, err = w.Write(respBytes); err != nil {
		logger.WithError(err).Errorf(logHttpErrFormat, r.URL.Path)
	}
}

func writeElem(w http.ResponseWriter, r *http.Request, httpStatus int, e db.IBucketElement) {
	writeJson(w, r, httpStatus, e)
}

func writeElements(w http.ResponseWriter, r *http.Request, httpStatus int, elements []db.IBucketElement) {
	var elementsWrapper struct {
		Elements []db.IBucketElement `json:"elements"`
	}
	elementsWrapper.Elements = elements
	if elementsWrapper.Elements == nil {
		elementsWrapper.Elements = []db.IBucketElement{}
	}
	writeJson(w, r, httpStatus, elementsWrapper)
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &courseerr.ErrInsufficientData{Message: fmt.Sprintf("invalid request body: %v", err)}
	}
	return nil
}
