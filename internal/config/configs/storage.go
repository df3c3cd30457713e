package configs

import (
	"fmt"
	"strings"
)

// Storage selects where campaigns and value live.
type Storage struct {
	// Driver is "postgres" (default) or "memory". The memory driver keeps
	// everything in process and loses it on restart.
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Memory reports whether the in-process store was requested.
func (c Storage) Memory() bool {
	return strings.EqualFold(c.Driver, "memory")
}

// Validate rejects unknown drivers.
func (c Storage) Validate() error {
	switch strings.ToLower(c.Driver) {
	case "postgres", "memory":
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q, want postgres or memory", c.Driver)
	}
}
