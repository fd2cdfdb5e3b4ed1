package server

import (
	"context"
	"encoding/json"
	"github.com/DAv10195/course_details_server/elements/activity"
	"github.com/gorilla/websocket"
	"net/http"
	"sync"
	"time"
)

// live feed of activity entries for connected admins
type activityFeed struct {
	mutex    *sync.Mutex
	conns    map[*websocket.Conn]struct{}
	upgrader *websocket.Upgrader
}

func newActivityFeed() *activityFeed {
	return &activityFeed{
		mutex:    &sync.Mutex{},
		conns:    make(map[*websocket.Conn]struct{}),
		upgrader: &websocket.Upgrader{HandshakeTimeout: wsHandshakeTimeout},
	}
}

func (f *activityFeed) handle(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		writeStrErrResp(w, r, http.StatusBadRequest, "invalid request (not ws upgrade)")
		return
	}
	// the upgrader writes the error response itself
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WithError(err).Errorf(logHttpErrFormat, r.URL.Path)
		return
	}
	logger.Debugf("activity feed connection from %v", conn.RemoteAddr())
	f.mutex.Lock()
	f.conns[conn] = struct{}{}
	f.mutex.Unlock()
	go f.readLoop(conn)
}

// the feed is write only. Reading detects clients closing the connection
func (f *activityFeed) readLoop(conn *websocket.Conn) {
	defer f.remove(conn)
	if err := conn.SetReadDeadline(time.Time{}); err != nil {
		return
	}
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			logger.WithError(err).Debugf("activity feed connection from %v closed", conn.RemoteAddr())
			return
		}
	}
}

func (f *activityFeed) remove(conn *websocket.Conn) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if _, ok := f.conns[conn]; !ok {
		return
	}
	delete(f.conns, conn)
	if err := conn.Close(); err != nil {
		logger.WithError(err).Debugf("error closing activity feed connection from %v", conn.RemoteAddr())
	}
}

func (f *activityFeed) broadcast(entry *activity.Entry) {
	payload, err := json.Marshal(entry)
	if err != nil {
		logger.WithError(err).Error("error encoding activity entry for the feed")
		return
	}
	f.mutex.Lock()
	defer f.mutex.Unlock()
	for conn := range f.conns {
		if err := conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err == nil {
			err = conn.WriteMessage(websocket.TextMessage, payload)
		}
		if err != nil {
			logger.WithError(err).Errorf("error writing to activity feed connection from %v", conn.RemoteAddr())
			delete(f.conns, conn)
			_ = conn.Close()
		}
	}
}

func (f *activityFeed) numOfConnections() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return len(f.conns)
}

func (f *activityFeed) closeAll() {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	for conn := range f.conns {
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server is stopping"), time.Now().Add(time.Second))
		_ = conn.Close()
		delete(f.conns, conn)
	}
}

// close all feed connections once the given context is cancelled
func (f *activityFeed) closeOnDone(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		f.closeAll()
	}()
}
