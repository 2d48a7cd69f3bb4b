package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. BUBBLEPOP_INITIAL_LIVES.
const EnvPrefix = "BUBBLEPOP_"

// Loader resolves a BubbleConfig from files and the environment.
type Loader struct {
	UserPath  string            // Per-user config file, skipped when empty or missing
	LocalPath string            // Working-directory config file, skipped when empty or missing
	DotEnv    string            // .env file merged into the environment, skipped when empty or missing
	Environ   map[string]string // Environment to read; nil means the process environment
}

// DefaultLoader returns the loader used by the CLI.
func DefaultLoader() Loader {
	return Loader{
		UserPath:  userConfigPath("bubblepop.yaml"),
		LocalPath: filepath.Join("configs", "bubblepop.yaml"),
		DotEnv:    ".env",
	}
}

// Load loads the Bubble Pop configuration with the default loader.
// Search order: customPath -> ~/.bubblepop/configs/bubblepop.yaml -> ./configs/bubblepop.yaml -> embedded default.
// BUBBLEPOP_* environment variables (including those from ./.env) override file values.
func Load(customPath string) (BubbleConfig, error) {
	return DefaultLoader().Load(customPath)
}

// Load resolves the configuration, applies environment overrides and validates it.
// Files only need to list the fields they change.
func (l Loader) Load(customPath string) (BubbleConfig, error) {
	cfg, err := l.loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := l.applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (l Loader) loadFile(customPath string) (BubbleConfig, error) {
	cfg := DefaultBubbleConfig()

	// Try custom path first; failures here are reported
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{l.UserPath, l.LocalPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultBubbleConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBubbleYAML, &cfg); err != nil {
		return DefaultBubbleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func (l Loader) applyEnv(cfg *BubbleConfig) error {
	opts := env.Options{Prefix: EnvPrefix}

	if l.Environ == nil {
		if l.DotEnv != "" && fileExists(l.DotEnv) {
			// Existing process variables win over .env entries
			if err := godotenv.Load(l.DotEnv); err != nil {
				return fmt.Errorf("failed to load %s: %w", l.DotEnv, err)
			}
		}
	} else {
		environ := maps.Clone(l.Environ)
		if l.DotEnv != "" && fileExists(l.DotEnv) {
			dotenv, err := godotenv.Read(l.DotEnv)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", l.DotEnv, err)
			}
			for k, v := range dotenv {
				if _, set := environ[k]; !set {
					environ[k] = v
				}
			}
		}
		opts.Environment = environ
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg BubbleConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bubblepop", "configs", filename)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
