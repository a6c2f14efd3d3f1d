package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/SmitUplenchwar2687/worldclock/internal/zone"
)

// FileName is the name of the config file inside the user config directory.
const FileName = "worldclock.toml"

var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrConfigUnreadable is returned when the config file exists but cannot be read.
	ErrConfigUnreadable = errors.New("config file unreadable")
	// ErrConfigMalformed is returned when the config file is not valid TOML, YAML or JSON.
	ErrConfigMalformed = errors.New("config file malformed")
	// ErrConfigDirUnresolvable is returned when no default config path can be computed.
	ErrConfigDirUnresolvable = errors.New("cannot determine config directory")
)

// Format is a config file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension. Anything that is
// not YAML or JSON is read as TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatTOML
	}
}

// Clock is one configured row. A nil Name falls back to the zone name;
// a nil Zone means the host's local time zone.
type Clock struct {
	Name *string
	Zone *zone.Zone
}

// Config is the deserialized worldclock configuration.
type Config struct {
	// Clocks in display order. Never empty after Parse.
	Clocks []Clock
	// Undecoded lists keys present in the file that were ignored (TOML only).
	Undecoded []string
}

// ClockError reports a clock entry that failed validation.
type ClockError struct {
	Index int
	Name  *string
	Err   error
}

func (e *ClockError) Error() string {
	if e.Name != nil {
		return fmt.Sprintf("clocks[%d] (%q): %v", e.Index, *e.Name, e.Err)
	}
	return fmt.Sprintf("clocks[%d]: %v", e.Index, e.Err)
}

func (e *ClockError) Unwrap() error {
	return e.Err
}

// DefaultPath returns <user config dir>/worldclock.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfigDirUnresolvable, err)
	}
	return filepath.Join(dir, FileName), nil
}

// LoadFile reads the config file at path and parses it in the format implied
// by its extension.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfigUnreadable, path, err)
	}

	cfg, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data, resolves every tz value and substitutes a single local
// clock when no clocks are configured.
func Parse(data []byte, format Format) (Config, error) {
	var raw rawConfig
	var cfg Config

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrConfigMalformed, err)
		}
	case FormatJSON:
		if len(bytes.TrimSpace(data)) > 0 {
			if err := json.Unmarshal(data, &raw); err != nil {
				return Config{}, fmt.Errorf("%w: %v", ErrConfigMalformed, err)
			}
		}
	default:
		md, err := toml.Decode(string(data), &raw)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrConfigMalformed, err)
		}
		for _, key := range md.Undecoded() {
			cfg.Undecoded = append(cfg.Undecoded, key.String())
		}
	}

	cfg.Clocks = make([]Clock, 0, len(raw.Clocks))
	for i, rc := range raw.Clocks {
		c := Clock{Name: rc.Name}
		if rc.TZ != nil {
			z, err := zone.Resolve(*rc.TZ)
			if err != nil {
				return Config{}, &ClockError{Index: i, Name: rc.Name, Err: err}
			}
			c.Zone = z
		}
		cfg.Clocks = append(cfg.Clocks, c)
	}

	// If no clocks are specified, show the local one.
	if len(cfg.Clocks) == 0 {
		cfg.Clocks = append(cfg.Clocks, Clock{})
	}

	return cfg, nil
}

// rawConfig mirrors the file layout before time zones are resolved.
// Pointers keep "absent" distinct from "empty".
type rawConfig struct {
	Clocks []rawClock `toml:"clocks" yaml:"clocks" json:"clocks"`
}

type rawClock struct {
	Name *string `toml:"name" yaml:"name" json:"name"`
	TZ   *string `toml:"tz" yaml:"tz" json:"tz"`
}

// Example is the TOML config written by WriteExample.
const Example = `# worldclock configuration.
#
# Each [[clocks]] entry is one row. "tz" is an IANA time zone identifier
# (see "timedatectl list-timezones"); without it the row shows local time.
# "name" is an optional label; without it the time zone name is shown.

# Local clock
[[clocks]]

[[clocks]]
tz = "Europe/Berlin"

[[clocks]]
name = "Costa Rica"
tz = "America/Costa_Rica"

[[clocks]]
name = "New York"
tz = "America/New_York"
`

const exampleYAML = `# worldclock configuration. Entries without tz show local time.
clocks:
  - {}
  - tz: Europe/Berlin
  - name: Costa Rica
    tz: America/Costa_Rica
  - name: New York
    tz: America/New_York
`

const exampleJSON = `{
  "clocks": [
    {},
    {"tz": "Europe/Berlin"},
    {"name": "Costa Rica", "tz": "America/Costa_Rica"},
    {"name": "New York", "tz": "America/New_York"}
  ]
}
`

// ExampleFor returns the example config in the given format.
func ExampleFor(format Format) string {
	switch format {
	case FormatYAML:
		return exampleYAML
	case FormatJSON:
		return exampleJSON
	default:
		return Example
	}
}

// WriteExample writes an example config file to the given path in the format
// implied by its extension, creating parent directories as needed. An
// existing file is only replaced when overwrite is set.
func WriteExample(path string, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(ExampleFor(FormatFromPath(path))); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return f.Close()
}
