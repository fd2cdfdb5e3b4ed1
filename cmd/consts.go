package cmd

const (
	course              = "course"
	courseDetailsServer = "course_details_server"
	start               = "start"

	defaultConfigFileName = "course_details_server.yml"
	yaml                  = "yaml"
	info                  = "info"
	defPort               = 8080
	defMaxLogFileSize     = 10
	defMaxLogFileAge      = 3
	defMaxLogFileBackups  = 3
	deLogFileAndStdOut    = false
	defActivityWorkers    = 4
	defSessionMaxAge      = 5 * 60

	flagConfigFile        = "config-file"
	flagDbDir             = "db-dir"
	flagServerPort        = "server-port"
	flagLogLevel          = "log-level"
	flagLogFile           = "log-file"
	flagLogFileAndStdout  = "log-file-and-stdout"
	flagLogFileMaxSize    = "log-file-max-size"
	flagLogFileMaxBackups = "log-file-max-backups"
	flagLogFileMaxAge     = "log-file-max-age"
	flagTlsCertFile       = "tls-cert-file"
	flagTlsKeyFile        = "tls-key-file"
	flagActivityWorkers   = "activity-workers"
	flagSessionMaxAge     = "session-max-age"
)
