// Package config provides configuration loading and validation for
// ComplyRadar.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	AWS     AWSConfig     `yaml:"aws"`
	Storage StorageConfig `yaml:"storage"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// AWSConfig configures the AWS collaborators.
type AWSConfig struct {
	Region string `yaml:"region"`
}

// StorageConfig names the object-store locations the pipeline reads and
// writes. The upload bucket receives CSVs and generated report PDFs; the
// findings bucket is written by the external classification service.
type StorageConfig struct {
	UploadBucket         string `yaml:"upload_bucket"`
	FindingsBucket       string `yaml:"findings_bucket"`
	FindingsPrefix       string `yaml:"findings_prefix"`
	ReportBucket         string `yaml:"report_bucket"`
	PresignExpirySeconds int    `yaml:"presign_expiry_seconds"`
}

// PresignExpiry returns the presigned-link lifetime as a duration.
func (s StorageConfig) PresignExpiry() time.Duration {
	return time.Duration(s.PresignExpirySeconds) * time.Second
}

// DefaultConfig returns a configuration with defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: ":8080",
		},
		AWS: AWSConfig{
			Region: "us-east-1",
		},
		Storage: StorageConfig{
			FindingsPrefix:       "macie-findings/",
			PresignExpirySeconds: 3600,
		},
	}
}

// LoadConfig reads and parses a YAML configuration file, applying defaults
// for omitted fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is from trusted source (config file)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Validate checks that the configuration names everything the service needs.
func (c *Config) Validate() error {
	if c.Storage.UploadBucket == "" {
		return fmt.Errorf("storage.upload_bucket is required")
	}
	if c.Storage.FindingsBucket == "" {
		return fmt.Errorf("storage.findings_bucket is required")
	}
	if c.Storage.ReportBucket == "" {
		c.Storage.ReportBucket = c.Storage.UploadBucket
	}
	if c.Storage.PresignExpirySeconds <= 0 {
		return fmt.Errorf("storage.presign_expiry_seconds must be positive")
	}
	return nil
}
