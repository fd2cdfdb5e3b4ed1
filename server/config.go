package server

import "crypto/tls"

const (
	DefPort            = 8080
	DefActivityWorkers = 4
)

// course details server configuration
type Config struct {
	Port            int
	TlsConfig       *tls.Config
	ActivityWorkers int
}

// returns the configuration used when nothing else is given
func NewDefaultConfig() *Config {
	return &Config{
		Port:            DefPort,
		ActivityWorkers: DefActivityWorkers,
	}
}

// returns a tls configuration with the given key pair or nil if no key pair is given
func GetTlsConfig(certFile, keyFile string) (*tls.Config, error) {
	if certFile == "" && keyFile == "" {
		return nil, nil
	}
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, err
	}
	return &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12}, nil
}
