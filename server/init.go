package server

import (
	"context"
	"fmt"
	"github.com/DAv10195/course_details_server/gatekeeper"
	"github.com/DAv10195/course_details_server/logic"
	"github.com/DAv10195/course_details_server/pages"
	"github.com/DAv10195/course_details_server/views"
	"github.com/gorilla/mux"
	"net/http"
	"sync"
)

// returns the course details server. The activity workers and feed stop when the given context is cancelled and the
// given wait group is done when they have stopped
func InitServer(ctx context.Context, cfg *Config, wg *sync.WaitGroup) *http.Server {
	logger.Info("initializing server...")
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      newRouter(ctx, cfg, wg),
		TLSConfig:    cfg.TlsConfig,
		WriteTimeout: serverTimeout,
		ReadTimeout:  serverTimeout,
	}
}

func newRouter(ctx context.Context, cfg *Config, wg *sync.WaitGroup) *mux.Router {
	baseRouter := mux.NewRouter()
	am := NewAuthManager()
	baseRouter.Use(contentTypeMiddleware, authenticationMiddleware, am.authorizationMiddleware)
	feed := newActivityFeed()
	recorder := newActivityRecorder(ctx, wg, cfg.ActivityWorkers, feed)
	feed.closeOnDone(ctx, wg)
	initSessionRouter(baseRouter, am)
	initUsersRouter(baseRouter, am)
	initCoursesRouter(baseRouter, am)
	initPagesRouter(baseRouter, am, pages.NewCourseDetailsPageAction(logic.New(), gatekeeper.New()), views.NewRenderer(), recorder)
	initActivityRouter(baseRouter, am, feed)
	return baseRouter
}
