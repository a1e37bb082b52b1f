package trimatch

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "trimatch: invalid config: " + e.Field + ": " + e.Message
}
