package configs

import (
	"fmt"
	"strings"
)

// Clock selects the time source used for campaign deadlines. The "offset"
// mode runs on system time shifted by an adjustable offset and enables the
// clock advance endpoint.
type Clock struct {
	Mode string `env:"MODE" envDefault:"system"`
}

// Adjustable reports whether the clock can be fast-forwarded.
func (c Clock) Adjustable() bool {
	return strings.EqualFold(c.Mode, "offset")
}

// Validate rejects unknown modes.
func (c Clock) Validate() error {
	switch strings.ToLower(c.Mode) {
	case "system", "offset":
		return nil
	default:
		return fmt.Errorf("unknown clock mode %q, want system or offset", c.Mode)
	}
}
