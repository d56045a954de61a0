package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/impactcalc/internal/config"
)

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleSection(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
output:
  default_format: json
  precision: 4
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, 4, target.Output.Precision)

	// Other sections are unchanged.
	assert.Equal(t, config.DefaultAddr, target.Server.Addr)
	assert.Equal(t, "info", target.Logging.Level)
	assert.True(t, target.RateLimit.Enabled)
}

func TestShallowMergeYAML_PartialSectionKeepsDefaults(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
server:
  addr: "127.0.0.1:9000"
  read_timeout: 2s
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "127.0.0.1:9000", target.Server.Addr)
	assert.Equal(t, 2*time.Second, target.Server.ReadTimeout)
	assert.Equal(t, config.DefaultWriteTimeout, target.Server.WriteTimeout)
	assert.Equal(t, int64(config.DefaultMaxBodyBytes), target.Server.MaxBodyBytes)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
plugins:
  aws: {}
metrics:
  enabled: false
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.False(t, target.Metrics.Enabled)
	assert.Equal(t, config.DefaultMetricsPath, target.Metrics.Path)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, config.Default(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	assert.Error(t, config.ShallowMergeYAML(nil, "whatever.yaml"))
	assert.Error(t, config.ShallowMergeYAML(config.Default(), filepath.Join(t.TempDir(), "missing.yaml")))

	bad := writeOverlay(t, "server: [unclosed")
	assert.Error(t, config.ShallowMergeYAML(config.Default(), bad))

	wrongType := writeOverlay(t, "rate_limit:\n  burst: lots\n")
	err := config.ShallowMergeYAML(config.Default(), wrongType)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"rate_limit"`)
}
