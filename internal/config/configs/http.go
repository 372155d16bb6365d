package configs

import "time"

// HTTP defines configuration for the trigger and spend ingestion server.
// Port is the TCP port to bind. ReadHeaderTimeout guards against slow
// clients and ShutdownTimeout bounds graceful shutdown.
type HTTP struct {
	Port              uint16        `env:"PORT" envDefault:"8080"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
