package config

// Defaults mirror how the service behaves with no configuration at all:
// listen on :8000 and load model.json from the working directory.
const (
	DefaultAddr                   = ":8000"
	DefaultModelPath              = "model.json"
	DefaultMaxBodyBytes           = 1 << 20
	DefaultLogLevel               = "info"
	DefaultLogFormat              = "json"
	DefaultLogMaxSizeMB           = 100
	DefaultLogMaxBackups          = 3
	DefaultShutdownTimeoutSeconds = 5
)

// Defaults returns a Config with every field set to its default.
func Defaults() Config {
	return Config{
		Addr:                   DefaultAddr,
		ModelPath:              DefaultModelPath,
		MaxBodyBytes:           DefaultMaxBodyBytes,
		LogLevel:               DefaultLogLevel,
		LogFormat:              DefaultLogFormat,
		LogMaxSizeMB:           DefaultLogMaxSizeMB,
		LogMaxBackups:          DefaultLogMaxBackups,
		ShutdownTimeoutSeconds: DefaultShutdownTimeoutSeconds,
	}
}
