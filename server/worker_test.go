package server

import (
	"context"
	"fmt"
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/elements/activity"
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkersRunQueuedJobsUntilClosed(t *testing.T) {
	wg := &sync.WaitGroup{}
	jobChan := make(chan job, 10)
	var executed int32
	for i := 0; i < 5; i++ {
		jobChan <- func() error {
			atomic.AddInt32(&executed, 1)
			return nil
		}
	}
	close(jobChan)
	for i := 0; i < 2; i++ {
		startWorker(wg, jobChan, i)
	}
	wg.Wait()
	if executed != 5 {
		t.Fatalf("expected all 5 queued jobs to be executed but %d were", executed)
	}
}

func TestActivityRecorder(t *testing.T) {
	cleanup := db.InitDbForTest()
	defer cleanup()
	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	recorder := newActivityRecorder(ctx, wg, 2, newActivityFeed())
	for _, message := range []string{"first", "second", "third"} {
		recorder.record("someone", "action", "/path", message)
	}
	cancel()
	wg.Wait()
	recorder.record("someone", "action", "/path", "after stop")
	entries, _, err := activity.List("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected the 3 entries recorded before stopping but got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.Message == "after stop" {
			t.Fatal("expected entries recorded after stopping to be dropped")
		}
	}
}

func TestActivityRecorderStopWhileRecording(t *testing.T) {
	cleanup := db.InitDbForTest()
	defer cleanup()
	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	recorder := newActivityRecorder(ctx, wg, 2, newActivityFeed())
	var queued int32
	recordersWg := &sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		recordersWg.Add(1)
		go func(i int) {
			defer recordersWg.Done()
			for j := 0; j < 25; j++ {
				if recorder.record("someone", "action", "/path", fmt.Sprintf("entry %d-%d", i, j)) {
					atomic.AddInt32(&queued, 1)
				}
			}
		}(i)
	}
	cancel()
	recordersWg.Wait()
	wg.Wait()
	entries, _, err := activity.List("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if int32(len(entries)) != queued {
		t.Fatalf("expected every one of the %d queued entries to be persisted but got %d", queued, len(entries))
	}
}
