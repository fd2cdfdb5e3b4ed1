package main

import (
	"context"
	"github.com/DAv10195/course_details_server/cmd"
	"github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logger := logrus.WithFields(logrus.Fields{"component": "main"})
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := cmd.NewRootCmd(ctx, os.Args).Execute(); err != nil {
		logger.WithError(err).Fatal("error running course details server")
	}
}
