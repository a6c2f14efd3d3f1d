package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestWriteExampleAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worldclock.toml")
	if err := WriteExample(path, false); err != nil {
		t.Fatalf("WriteExample() error = %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(cfg.Clocks) != 4 {
		t.Fatalf("len(Clocks) = %d, want 4", len(cfg.Clocks))
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse([]byte("clocks = ["), FormatTOML); !errors.Is(err, ErrConfigMalformed) {
		t.Errorf("error = %v, want ErrConfigMalformed", err)
	}

	var ce *ClockError
	if _, err := Parse([]byte(`{"clocks": [{"tz": "Not/AZone"}]}`), FormatJSON); !errors.As(err, &ce) {
		t.Errorf("error = %v, want *ClockError", err)
	}
}
