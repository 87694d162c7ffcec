package port

// ConfigReader reads configuration values by section and key.
type ConfigReader interface {
	GetString(section, key string) string
	GetBool(section, key string) bool
}
