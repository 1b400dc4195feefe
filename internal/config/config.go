// Package config loads pfas-screen settings from YAML with PFASSCREEN_*
// environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Blob drivers accepted by BlobConfig.Driver.
const (
	DriverFilesystem = "fs"
	DriverMemory     = "memory"
	DriverS3         = "s3"
)

// Config is the top-level configuration document.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Blob    BlobConfig    `yaml:"blob"`
	Metrics MetricsConfig `yaml:"metrics"`
	Export  ExportConfig  `yaml:"export"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// BlobConfig selects and configures the report store.
type BlobConfig struct {
	Driver string   `yaml:"driver"` // fs, memory, s3
	FSRoot string   `yaml:"fs_root"`
	S3     S3Config `yaml:"s3"`
}

// S3Config configures the S3 / MinIO driver. Static credentials are optional;
// without them the default AWS credential chain applies.
type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	PathStyle       bool   `yaml:"path_style"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// MetricsConfig configures the Prometheus textfile output.
type MetricsConfig struct {
	Textfile  string `yaml:"textfile"`
	Namespace string `yaml:"namespace"`
}

// ExportConfig configures report export.
type ExportConfig struct {
	Enabled bool   `yaml:"enabled"`
	Prefix  string `yaml:"prefix"`
	Replace bool   `yaml:"replace"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Blob:    BlobConfig{Driver: DriverFilesystem, FSRoot: "./pfasscreen-reports"},
		Metrics: MetricsConfig{Namespace: "pfasscreen"},
		Export:  ExportConfig{Prefix: "screenings"},
	}
}

// Load reads a YAML file on top of Default. An empty path returns the
// defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // operator supplied config path
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode strictly decodes YAML from r into cfg, keeping fields absent from
// the document.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Environment variables consulted by ApplyEnv.
const (
	EnvLogLevel      = "PFASSCREEN_LOG_LEVEL"
	EnvLogFormat     = "PFASSCREEN_LOG_FORMAT"
	EnvBlobDriver    = "PFASSCREEN_BLOB_DRIVER"
	EnvBlobFSRoot    = "PFASSCREEN_BLOB_FS_ROOT"
	EnvS3Bucket      = "PFASSCREEN_BLOB_S3_BUCKET"
	EnvS3Region      = "PFASSCREEN_BLOB_S3_REGION"
	EnvS3Endpoint    = "PFASSCREEN_BLOB_S3_ENDPOINT"
	EnvS3PathStyle   = "PFASSCREEN_BLOB_S3_PATH_STYLE"
	EnvMetricsFile   = "PFASSCREEN_METRICS_TEXTFILE"
	EnvExportPrefix  = "PFASSCREEN_EXPORT_PREFIX"
	EnvExportEnabled = "PFASSCREEN_EXPORT_ENABLED"
	EnvExportReplace = "PFASSCREEN_EXPORT_REPLACE"
)

// ApplyEnv overrides fields from environment variables. lookup is usually
// os.LookupEnv; empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
		return nil
	}

	str(EnvLogLevel, &c.Logging.Level)
	str(EnvLogFormat, &c.Logging.Format)
	str(EnvBlobDriver, &c.Blob.Driver)
	str(EnvBlobFSRoot, &c.Blob.FSRoot)
	str(EnvS3Bucket, &c.Blob.S3.Bucket)
	str(EnvS3Region, &c.Blob.S3.Region)
	str(EnvS3Endpoint, &c.Blob.S3.Endpoint)
	str(EnvMetricsFile, &c.Metrics.Textfile)
	str(EnvExportPrefix, &c.Export.Prefix)
	return errors.Join(
		boolean(EnvS3PathStyle, &c.Blob.S3.PathStyle),
		boolean(EnvExportEnabled, &c.Export.Enabled),
		boolean(EnvExportReplace, &c.Export.Replace),
	)
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q: want debug, info, warn or error", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q: want json or console", c.Logging.Format))
	}
	switch c.Blob.Driver {
	case DriverFilesystem, DriverMemory:
	case DriverS3:
		if c.Blob.S3.Bucket == "" {
			errs = append(errs, errors.New("blob.s3.bucket is required for the s3 driver"))
		}
		if (c.Blob.S3.AccessKeyID == "") != (c.Blob.S3.SecretAccessKey == "") {
			errs = append(errs, errors.New("blob.s3 access_key_id and secret_access_key must be set together"))
		}
	default:
		errs = append(errs, fmt.Errorf("blob.driver %q: want fs, memory or s3", c.Blob.Driver))
	}
	if strings.Contains(c.Export.Prefix, "..") || strings.HasPrefix(c.Export.Prefix, "/") {
		errs = append(errs, fmt.Errorf("export.prefix %q must be a relative key prefix", c.Export.Prefix))
	}
	return errors.Join(errs...)
}

// Resolve loads path, applies environment overrides and validates the result.
func Resolve(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return Config{}, fmt.Errorf("apply environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
