package calculation

import "fmt"

// ConfigError is a fatal configuration problem: the inputs cannot produce a
// meaningful analysis and no partial result is returned.
type ConfigError struct {
	Op      string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
