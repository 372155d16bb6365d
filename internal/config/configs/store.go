package configs

// Store selects the campaign store implementation: "postgres" or "memory".
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}
