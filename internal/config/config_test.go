package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.MaxSize != 0 {
		t.Errorf("Input.MaxSize = %d, want 0", cfg.Input.MaxSize)
	}
	if cfg.Output.CreateDirs {
		t.Error("Output.CreateDirs = true, want false")
	}
	if got := cfg.Output.Mode(); got != 0o644 {
		t.Errorf("Output.Mode() = %o, want 644", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "zero config is valid",
			cfg:  Config{},
		},
		{
			name: "max size at limit",
			cfg:  Config{Input: InputConfig{MaxSize: MaxInputSizeLimit}},
		},
		{
			name:    "negative max size",
			cfg:     Config{Input: InputConfig{MaxSize: -1}},
			wantErr: true,
		},
		{
			name:    "max size over limit",
			cfg:     Config{Input: InputConfig{MaxSize: MaxInputSizeLimit + 1}},
			wantErr: true,
		},
		{
			name: "valid file mode",
			cfg:  Config{Output: OutputConfig{FileMode: "0600"}},
		},
		{
			name: "file mode without leading zero",
			cfg:  Config{Output: OutputConfig{FileMode: "644"}},
		},
		{
			name:    "non-octal file mode",
			cfg:     Config{Output: OutputConfig{FileMode: "0689"}},
			wantErr: true,
		},
		{
			name:    "file mode above 0777",
			cfg:     Config{Output: OutputConfig{FileMode: "01777"}},
			wantErr: true,
		},
		{
			name:    "file mode without owner write",
			cfg:     Config{Output: OutputConfig{FileMode: "0444"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestOutputConfig_Mode(t *testing.T) {
	tests := []struct {
		fileMode string
		want     fs.FileMode
	}{
		{"", 0o644},
		{"0600", 0o600},
		{"664", 0o664},
		{"garbage", 0o644},
	}

	for _, tt := range tests {
		t.Run(tt.fileMode, func(t *testing.T) {
			got := OutputConfig{FileMode: tt.fileMode}.Mode()
			if got != tt.want {
				t.Errorf("Mode() = %o, want %o", got, tt.want)
			}
		})
	}
}

// writeConfig writes a config file and returns its path.
func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_FilePath(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, dir, "valid.yaml", "input:\n  maxSize: 2048\noutput:\n  createDirs: true\n  fileMode: \"0600\"\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.MaxSize != 2048 {
			t.Errorf("Input.MaxSize = %d, want 2048", cfg.Input.MaxSize)
		}
		if !cfg.Output.CreateDirs {
			t.Error("Output.CreateDirs = false, want true")
		}
		if cfg.Output.Mode() != 0o600 {
			t.Errorf("Output.Mode() = %o, want 600", cfg.Output.Mode())
		}
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		path := writeConfig(t, dir, "partial.yaml", "output:\n  createDirs: true\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.MaxSize != 0 {
			t.Errorf("Input.MaxSize = %d, want 0", cfg.Input.MaxSize)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		path := writeConfig(t, dir, "unknown.yaml", "style: technical\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeConfig(t, dir, "invalid.yaml", "input:\n  maxSize: -5\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("LoadConfig() error = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestLoadConfig_EmptyName(t *testing.T) {
	_, err := LoadConfig("")
	if !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfig_ByName(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Chdir(t.TempDir())

	t.Run("found in user config dir", func(t *testing.T) {
		writeConfig(t, configHome, filepath.Join(configDirName, "team.yml"), "input:\n  maxSize: 10\n")

		cfg, err := LoadConfig("team")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.MaxSize != 10 {
			t.Errorf("Input.MaxSize = %d, want 10", cfg.Input.MaxSize)
		}
	})

	t.Run("current directory wins", func(t *testing.T) {
		writeConfig(t, configHome, filepath.Join(configDirName, "local.yaml"), "input:\n  maxSize: 10\n")
		writeConfig(t, ".", "local.yaml", "input:\n  maxSize: 20\n")

		cfg, err := LoadConfig("local")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.MaxSize != 20 {
			t.Errorf("Input.MaxSize = %d, want 20", cfg.Input.MaxSize)
		}
	})

	t.Run("not found lists tried paths", func(t *testing.T) {
		_, err := LoadConfig("nowhere")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nowhere.yaml") || !strings.Contains(err.Error(), configDirName) {
			t.Errorf("error should list tried paths, got %q", err.Error())
		}
	})
}

func TestSearchPaths(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	got := SearchPaths("team")
	want := []string{
		"team.yaml",
		"team.yml",
		filepath.Join(configHome, configDirName, "team.yaml"),
		filepath.Join(configHome, configDirName, "team.yml"),
	}

	if len(got) != len(want) {
		t.Fatalf("SearchPaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SearchPaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
