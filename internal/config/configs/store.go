package configs

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Store selects the repository backend. The memory driver keeps every
// collection in process and is meant for local runs and demos.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}
