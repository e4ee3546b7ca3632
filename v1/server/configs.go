package server

import "time"

// DefaultAddress is the listen address used when none is configured.
const DefaultAddress = ":5000"

// Config controls the HTTP server.
type Config struct {
	// Address is the host:port the server listens on.
	Address string `yaml:"address" envconfig:"SERVER_ADDRESS"`

	// Mode is the gin mode: "debug", "release" or "test". Empty keeps gin's default.
	Mode string `yaml:"mode" envconfig:"GIN_MODE"`

	// ReadHeaderTimeout bounds how long a client may take to send request headers.
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" envconfig:"SERVER_READ_HEADER_TIMEOUT"`
}

// DefaultConfig listens on port 5000 in release mode.
func DefaultConfig() Config {
	return Config{
		Address:           DefaultAddress,
		Mode:              "release",
		ReadHeaderTimeout: 10 * time.Second,
	}
}
