package types

// Config holds the resolved runtime configuration for the store and CLI.
type Config struct {
	DataDir  string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}
