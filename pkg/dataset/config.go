package dataset

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/voxlab/blockforge/pkg/model"
	"gopkg.in/yaml.v3"
)

// Config overrides parts of the exported dataset metadata and assigns
// supercategories to normalized labels.
type Config struct {
	Description string `yaml:"description"`
	Contributor string `yaml:"contributor"`
	URL         string `yaml:"url"`

	// Supercategories maps a normalized label to its COCO supercategory
	Supercategories map[string]string `yaml:"supercategories"`
}

// LoadConfig reads an export configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read export config", goerr.V("path", path))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse export config", goerr.V("path", path))
	}

	return &cfg, nil
}

// apply overwrites the non-empty override fields on info
func (c *Config) apply(info *model.DatasetInfo) {
	if c.Description != "" {
		info.Description = c.Description
	}
	if c.Contributor != "" {
		info.Contributor = c.Contributor
	}
	if c.URL != "" {
		info.URL = c.URL
	}
}

// supercategory returns the configured supercategory of a normalized label
func (c *Config) supercategory(label string) string {
	if c == nil || c.Supercategories == nil {
		return ""
	}
	return c.Supercategories[label]
}
