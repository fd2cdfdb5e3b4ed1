package server

import (
	"fmt"
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/elements/activity"
	"github.com/gorilla/mux"
	"net/http"
	"strconv"
)

func handleGetActivity(w http.ResponseWriter, r *http.Request) {
	limit := defActivityLimit
	if limitStr := r.URL.Query().Get(limitParam); limitStr != "" {
		var err error
		if limit, err = strconv.Atoi(limitStr); err != nil || limit <= 0 || limit > maxActivityLimit {
			writeStrErrResp(w, r, http.StatusBadRequest, fmt.Sprintf("%s must be an integer between 1 and %d", limitParam, maxActivityLimit))
			return
		}
	}
	entries, more, err := activity.List(r.URL.Query().Get(afterIdParam), limit)
	if err != nil {
		writeErrResp(w, r, http.StatusInternalServerError, err)
		return
	}
	elements := make([]db.IBucketElement, 0, len(entries))
	for _, entry := range entries {
		elements = append(elements, entry)
	}
	if more {
		w.Header().Set(ElementsLeftToProcess, trueStr)
	}
	writeElements(w, r, http.StatusOK, elements)
}

// configure the admin activity router
func initActivityRouter(r *mux.Router, m *authManager, feed *activityFeed) {
	basePath := fmt.Sprintf("/admin/%s", db.Activity)
	r.HandleFunc(basePath, handleGetActivity).Methods(http.MethodGet)
	m.addPathToMap(basePath, adminOnly)
	wsPath := fmt.Sprintf("%s/ws", basePath)
	r.HandleFunc(wsPath, feed.handle).Methods(http.MethodGet)
	m.addPathToMap(wsPath, adminOnly)
}
