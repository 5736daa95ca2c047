package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TOC.Enabled {
		t.Error("TOC.Enabled = true, want false")
	}
	if cfg.TOC.MinDepth != 1 || cfg.TOC.MaxDepth != 3 {
		t.Errorf("TOC depths = %d-%d, want 1-3", cfg.TOC.MinDepth, cfg.TOC.MaxDepth)
	}
	if cfg.Highlight.Disabled {
		t.Error("Highlight.Disabled = true, want false")
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty", "", 10, false},
		{"at limit", strings.Repeat("a", 10), 10, false},
		{"over limit", strings.Repeat("a", 11), 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("field", tt.value, tt.maxLength)
			if tt.wantErr != (err != nil) {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "rewrite base too long",
			mutate:  func(c *Config) { c.Render.RewriteBase = strings.Repeat("x", MaxURLLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "toc title too long",
			mutate:  func(c *Config) { c.TOC.Title = strings.Repeat("x", MaxTOCTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name: "toc depth out of range",
			mutate: func(c *Config) {
				c.TOC.Enabled = true
				c.TOC.MaxDepth = 7
			},
			wantErr: ErrFieldRange,
		},
		{
			name: "toc depth ignored when disabled",
			mutate: func(c *Config) {
				c.TOC.MaxDepth = 7
			},
		},
		{
			name: "toc min above max",
			mutate: func(c *Config) {
				c.TOC.Enabled = true
				c.TOC.MinDepth = 4
				c.TOC.MaxDepth = 2
			},
			wantErr: ErrFieldRange,
		},
		{
			name: "toc zero depths mean defaults",
			mutate: func(c *Config) {
				c.TOC.Enabled = true
				c.TOC.MinDepth = 0
				c.TOC.MaxDepth = 0
			},
		},
		{
			name:    "highlight style too long",
			mutate:  func(c *Config) { c.Highlight.Style = strings.Repeat("x", MaxStyleLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Output.Workers = -1 },
			wantErr: ErrFieldRange,
		},
		{
			name:    "too many workers",
			mutate:  func(c *Config) { c.Output.Workers = MaxWorkers + 1 },
			wantErr: ErrFieldRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "docmark.yaml")
		writeFile(t, configPath, `render:
  rewriteBase: "https://cdn.example.com/"
toc:
  enabled: true
  title: "Contents"
  maxDepth: 2
highlight:
  style: "monokai"
output:
  workers: 4
`)

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Render.RewriteBase != "https://cdn.example.com/" {
			t.Errorf("Render.RewriteBase = %q", cfg.Render.RewriteBase)
		}
		if !cfg.TOC.Enabled || cfg.TOC.Title != "Contents" || cfg.TOC.MaxDepth != 2 {
			t.Errorf("TOC = %+v", cfg.TOC)
		}
		if cfg.TOC.MinDepth != 1 {
			t.Errorf("TOC.MinDepth = %d, want default 1", cfg.TOC.MinDepth)
		}
		if cfg.Highlight.Style != "monokai" {
			t.Errorf("Highlight.Style = %q", cfg.Highlight.Style)
		}
		if cfg.Output.Workers != 4 {
			t.Errorf("Output.Workers = %d", cfg.Output.Workers)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/docmark.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "invalid.yaml")
		writeFile(t, configPath, "toc: [unclosed")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "unknown.yaml")
		writeFile(t, configPath, "toc:\n  enabled: true\n  depth: 3\n")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("validation runs after decoding", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "range.yaml")
		writeFile(t, configPath, "output:\n  workers: 1000\n")

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrFieldRange) {
			t.Errorf("error = %v, want ErrFieldRange", err)
		}
	})

	t.Run("config name resolved in current directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		writeFile(t, filepath.Join(dir, "site.yml"), "highlight:\n  disabled: true\n")

		cfg, err := LoadConfig("site")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if !cfg.Highlight.Disabled {
			t.Error("Highlight.Disabled = false, want true")
		}
	})

	t.Run("missing config name lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("does-not-exist")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "does-not-exist.yaml") {
			t.Errorf("error should list tried paths, got: %v", err)
		}
	})
}

func TestConfig_Marshal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Highlight.Style = "dracula"

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"highlight:", "style: dracula", "maxDepth: 3"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %q, got:\n%s", want, data)
		}
	}
}
