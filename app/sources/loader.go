package sources

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type sourceConfig struct {
	Name    string            `yaml:"name"`
	Pattern string            `yaml:"pattern"`
	Topics  map[string]string `yaml:"topics"`
}

// LoadDir registers a source for every .yml file in dir. The file name
// (without extension) becomes the source slug, so a builtin source can be
// overridden by a file with its slug. A missing directory is not an error.
func LoadDir(registry *Registry, dir string, fetcher Fetcher, parser Parser) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find YML files: %w", err)
	}

	for _, file := range files {
		source, err := loadFile(file, fetcher, parser)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		registry.Add(source)

		slog.Debug("Source configuration loaded", "slug", source.Slug(), "name", source.Name(), "topics", len(source.Topics()), "open", source.Open())
	}

	return nil
}

func loadFile(file string, fetcher Fetcher, parser Parser) (*Source, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config sourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	slug := strings.TrimSuffix(filepath.Base(file), ".yml")

	if config.Pattern != "" {
		return NewOpen(slug, config.Name, config.Pattern, config.Topics, fetcher, parser), nil
	}
	return New(slug, config.Name, config.Topics, fetcher, parser), nil
}

func validateConfig(config *sourceConfig) error {
	if config.Name == "" {
		return fmt.Errorf("source name is required")
	}
	if len(config.Topics) == 0 && config.Pattern == "" {
		return fmt.Errorf("source must define topics or a pattern")
	}
	if config.Pattern != "" && !strings.Contains(config.Pattern, TopicPlaceholder) {
		return fmt.Errorf("pattern must contain %s", TopicPlaceholder)
	}
	return nil
}
