package config

import internalconfig "github.com/SmitUplenchwar2687/worldclock/internal/config"

// Config is the deserialized worldclock configuration.
type Config = internalconfig.Config

// Clock is one configured row.
type Clock = internalconfig.Clock

// ClockError reports a clock entry that failed validation.
type ClockError = internalconfig.ClockError

// Format is a config file encoding.
type Format = internalconfig.Format

const (
	FormatTOML = internalconfig.FormatTOML
	FormatYAML = internalconfig.FormatYAML
	FormatJSON = internalconfig.FormatJSON
)

var (
	ErrConfigNotFound        = internalconfig.ErrConfigNotFound
	ErrConfigUnreadable      = internalconfig.ErrConfigUnreadable
	ErrConfigMalformed       = internalconfig.ErrConfigMalformed
	ErrConfigDirUnresolvable = internalconfig.ErrConfigDirUnresolvable
)

// DefaultPath returns <user config dir>/worldclock.toml.
func DefaultPath() (string, error) {
	return internalconfig.DefaultPath()
}

// Parse decodes config data in the given format.
func Parse(data []byte, format Format) (Config, error) {
	return internalconfig.Parse(data, format)
}

// LoadFile reads and parses a config file.
func LoadFile(path string) (Config, error) {
	return internalconfig.LoadFile(path)
}

// WriteExample writes an example config file to the given path.
func WriteExample(path string, overwrite bool) error {
	return internalconfig.WriteExample(path, overwrite)
}
