package cmd

import (
	"context"
	"fmt"
	"github.com/DAv10195/course_details_server/db"
	"github.com/DAv10195/course_details_server/elements/users"
	"github.com/DAv10195/course_details_server/path"
	"github.com/DAv10195/course_details_server/server"
	"github.com/DAv10195/course_details_server/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// configure the logging level and output according to the configuration
func setupLogging() error {
	level, err := logrus.ParseLevel(viper.GetString(flagLogLevel))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logFile := viper.GetString(flagLogFile)
	if logFile == "" {
		logger.Debug("log file undefined")
		return nil
	}
	lumberjackLogger := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    viper.GetInt(flagLogFileMaxSize),
		MaxBackups: viper.GetInt(flagLogFileMaxBackups),
		MaxAge:     viper.GetInt(flagLogFileMaxAge),
		LocalTime:  true,
	}
	if viper.GetBool(flagLogFileAndStdout) {
		logrus.SetOutput(io.MultiWriter(os.Stdout, lumberjackLogger))
	} else {
		logrus.SetOutput(lumberjackLogger)
	}
	return nil
}

func newStartCommand(ctx context.Context, args []string) *cobra.Command {
	var setupErr error
	var configFilePath string
	// create the command
	startCmd := &cobra.Command{
		Use:           start,
		Short:         fmt.Sprintf("%s %s", start, courseDetailsServer),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if setupErr != nil {
				return setupErr
			}
			if err := setupLogging(); err != nil {
				return err
			}
			// handle the DB dir
			dir := viper.GetString(flagDbDir)
			if err := db.InitDB(dir); err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					logger.WithError(err).Error("error closing db")
				}
			}()
			// initialize the session management
			if err := session.Init(dir, viper.GetInt(flagSessionMaxAge)); err != nil {
				return err
			}
			// make sure the default admin user exists
			if err := users.InitDefaultAdmin(); err != nil {
				return err
			}
			// run the server
			tlsConf, err := server.GetTlsConfig(viper.GetString(flagTlsCertFile), viper.GetString(flagTlsKeyFile))
			if err != nil {
				return err
			}
			cfg := &server.Config{
				Port:            viper.GetInt(flagServerPort),
				TlsConfig:       tlsConf,
				ActivityWorkers: viper.GetInt(flagActivityWorkers),
			}
			serverCtx, stopServer := context.WithCancel(ctx)
			defer stopServer()
			wg := &sync.WaitGroup{}
			srv := server.InitServer(serverCtx, cfg, wg)
			serverErrChan := make(chan error, 1)
			go func() {
				var serverErr error
				if tlsConf != nil {
					serverErr = srv.ListenAndServeTLS("", "")
				} else {
					serverErr = srv.ListenAndServe()
				}
				serverErrChan <- serverErr
			}()
			logger.Infof("server is running on port %d", cfg.Port)
			var runErr error
			select {
			case <-ctx.Done():
			case runErr = <-serverErrChan:
				logger.WithError(runErr).Error("course details server crashed")
			}
			logger.Info("stopping server...")
			shutdownCtx, timeout := context.WithTimeout(context.Background(), time.Minute)
			defer timeout()
			if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
				return err
			}
			// workers finish recording queued activity before the db is closed
			stopServer()
			wg.Wait()
			return runErr
		},
	}
	configFlagSet := pflag.NewFlagSet(course, pflag.ContinueOnError)
	_ = configFlagSet.StringP(flagConfigFile, "c", "", "path to course details server config file")
	configFlagSet.SetOutput(ioutil.Discard)
	_ = configFlagSet.Parse(args[1:])
	configFilePath, _ = configFlagSet.GetString(flagConfigFile)
	if configFilePath == "" {
		configFilePath = filepath.Join(path.GetDefaultConfigDirPath(), defaultConfigFileName)
	}
	viper.SetConfigType(yaml)
	viper.SetConfigFile(configFilePath)
	viper.SetDefault(flagLogFileAndStdout, deLogFileAndStdOut)
	viper.SetDefault(flagLogFileMaxSize, defMaxLogFileSize)
	viper.SetDefault(flagLogFileMaxAge, defMaxLogFileAge)
	viper.SetDefault(flagLogFileMaxBackups, defMaxLogFileBackups)
	viper.SetDefault(flagLogLevel, info)
	viper.SetDefault(flagServerPort, defPort)
	viper.SetDefault(flagDbDir, path.GetDefaultDbDirPath())
	viper.SetDefault(flagActivityWorkers, defActivityWorkers)
	viper.SetDefault(flagSessionMaxAge, defSessionMaxAge)
	startCmd.Flags().AddFlagSet(configFlagSet)
	startCmd.Flags().Int(flagLogFileMaxBackups, viper.GetInt(flagLogFileMaxBackups), "maximum number of log file rotations")
	startCmd.Flags().Int(flagLogFileMaxSize, viper.GetInt(flagLogFileMaxSize), "maximum size of the log file before it's rotated")
	startCmd.Flags().Int(flagLogFileMaxAge, viper.GetInt(flagLogFileMaxAge), "maximum age of the log file before it's rotated")
	startCmd.Flags().Bool(flagLogFileAndStdout, viper.GetBool(flagLogFileAndStdout), "write logs to stdout if log-file is specified?")
	startCmd.Flags().String(flagLogLevel, viper.GetString(flagLogLevel), "logging level [panic, fatal, error, warn, info, debug]")
	startCmd.Flags().String(flagLogFile, viper.GetString(flagLogFile), "log to file, specify the file location")
	startCmd.Flags().String(flagDbDir, viper.GetString(flagDbDir), "db directory of the course details server")
	startCmd.Flags().Int(flagServerPort, viper.GetInt(flagServerPort), "port the course details server should listen on")
	startCmd.Flags().String(flagTlsCertFile, viper.GetString(flagTlsCertFile), "path to a file containing a certificate to use for tls")
	startCmd.Flags().String(flagTlsKeyFile, viper.GetString(flagTlsKeyFile), "path to a file containing a key to use for tls")
	startCmd.Flags().Int(flagActivityWorkers, viper.GetInt(flagActivityWorkers), "number of workers recording admin activity")
	startCmd.Flags().Int(flagSessionMaxAge, viper.GetInt(flagSessionMaxAge), "seconds a login session is valid for")
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		setupErr = err
	}
	return startCmd
}
