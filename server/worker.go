package server

import (
	"context"
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/elements/activity"
	"sync"
)

type job func() error

// start a worker with the given id which executes the jobs of the given channel until it is closed
func startWorker(wg *sync.WaitGroup, jobChan <-chan job, id int) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		workerLogger := logger.WithField("worker", id)
		for j := range jobChan {
			if err := j(); err != nil {
				workerLogger.WithError(err).Error("error executing job")
			}
		}
		workerLogger.Debug("job channel closed, worker stopped")
	}()
}

// persists activity entries and publishes them to the activity feed, using a fixed pool of workers. The job channel is
// closed once the given context is cancelled and no send is in progress, so every queued entry is persisted
type activityRecorder struct {
	mutex   sync.RWMutex
	stopped bool
	jobChan chan job
	feed    *activityFeed
}

func newActivityRecorder(ctx context.Context, wg *sync.WaitGroup, numWorkers int, feed *activityFeed) *activityRecorder {
	if numWorkers <= 0 {
		numWorkers = DefActivityWorkers
	}
	a := &activityRecorder{jobChan: make(chan job, activityQueueSize), feed: feed}
	for i := 0; i < numWorkers; i++ {
		startWorker(wg, a.jobChan, i)
	}
	go func() {
		<-ctx.Done()
		a.mutex.Lock()
		defer a.mutex.Unlock()
		a.stopped = true
		close(a.jobChan)
	}()
	return a
}

// queue an activity entry for the given user. Entries recorded after shutdown started are dropped. Returns true if the
// entry was queued
func (a *activityRecorder) record(userName, action, path, message string) bool {
	entry := activity.NewEntry(userName, action, path, message)
	j := func() error {
		if err := db.Update(userName, entry); err != nil {
			return err
		}
		a.feed.broadcast(entry)
		return nil
	}
	a.mutex.RLock()
	defer a.mutex.RUnlock()
	if a.stopped {
		logger.Warnf("server is stopping, dropping activity entry: %s", message)
		return false
	}
	a.jobChan <- j
	return true
}
