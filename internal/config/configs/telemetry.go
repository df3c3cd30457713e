package configs

// Telemetry configures OpenTelemetry tracing. Tracing is off while
// Endpoint is empty.
type Telemetry struct {
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"crowdfund"`
}

// Enabled reports whether spans should be exported.
func (c Telemetry) Enabled() bool {
	return c.Endpoint != ""
}
