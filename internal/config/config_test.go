package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pfasscreen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DriverFilesystem, cfg.Blob.Driver)
	assert.Equal(t, "screenings", cfg.Export.Prefix)
	assert.False(t, cfg.Export.Enabled)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
logging:
  level: debug
blob:
  driver: s3
  s3:
    bucket: reports
    endpoint: http://localhost:9000
    path_style: true
export:
  enabled: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "unset fields keep defaults")
	assert.Equal(t, DriverS3, cfg.Blob.Driver)
	assert.Equal(t, "reports", cfg.Blob.S3.Bucket)
	assert.True(t, cfg.Blob.S3.PathStyle)
	assert.True(t, cfg.Export.Enabled)
	assert.Equal(t, "screenings", cfg.Export.Prefix)
	require.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	_, err = Load(writeFile(t, "blob:\n  drivr: fs\n"))
	require.Error(t, err, "unknown keys are rejected")
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadEmptyDocument(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvLogLevel:      "warn",
		EnvBlobDriver:    "s3",
		EnvBlobFSRoot:    "  ",
		EnvS3Bucket:      "bucket-a",
		EnvS3Region:      "eu-west-1",
		EnvS3Endpoint:    "http://minio:9000",
		EnvS3PathStyle:   "true",
		EnvMetricsFile:   "/var/lib/node_exporter/pfasscreen.prom",
		EnvExportPrefix:  "lab",
		EnvExportEnabled: "1",
	}))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, DriverS3, cfg.Blob.Driver)
	assert.Equal(t, "./pfasscreen-reports", cfg.Blob.FSRoot, "blank values are ignored")
	assert.Equal(t, S3Config{Bucket: "bucket-a", Region: "eu-west-1", Endpoint: "http://minio:9000", PathStyle: true}, cfg.Blob.S3)
	assert.Equal(t, "/var/lib/node_exporter/pfasscreen.prom", cfg.Metrics.Textfile)
	assert.Equal(t, ExportConfig{Enabled: true, Prefix: "lab"}, cfg.Export)
}

func TestApplyEnvRejectsBadBooleans(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{EnvS3PathStyle: "sometimes", EnvExportReplace: "maybe"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvS3PathStyle)
	assert.Contains(t, err.Error(), EnvExportReplace)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"driver", func(c *Config) { c.Blob.Driver = "gcs" }, "blob.driver"},
		{"bucket", func(c *Config) { c.Blob.Driver = DriverS3 }, "blob.s3.bucket"},
		{"credentials", func(c *Config) {
			c.Blob.Driver = DriverS3
			c.Blob.S3.Bucket = "b"
			c.Blob.S3.AccessKeyID = "id"
		}, "must be set together"},
		{"prefix", func(c *Config) { c.Export.Prefix = "../escape" }, "export.prefix"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestResolve(t *testing.T) {
	path := writeFile(t, "logging:\n  format: json\n")
	cfg, err := Resolve(path, envMap(map[string]string{EnvBlobDriver: "memory"}))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, DriverMemory, cfg.Blob.Driver)

	_, err = Resolve(path, envMap(map[string]string{EnvBlobDriver: "tape"}))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid config"))
}
