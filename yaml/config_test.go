package yaml_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/context7"
	c7yaml "github.com/fwojciec/context7/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("reads every key", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		data := `base_url: http://localhost:8080/api/v1
api_key: secret
timeout: 5s
requests_per_second: 2.5
log_level: debug
otlp_endpoint: localhost:4318
otlp_insecure: true
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		cfg, err := c7yaml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, context7.Config{
			BaseURL:           "http://localhost:8080/api/v1",
			APIKey:            "secret",
			Timeout:           5 * time.Second,
			RequestsPerSecond: 2.5,
			LogLevel:          "debug",
			OTLPEndpoint:      "localhost:4318",
			OTLPInsecure:      true,
		}, cfg)
	})

	t.Run("returns not-exist error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := c7yaml.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns zero config for empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := c7yaml.ParseConfig(nil)

		require.NoError(t, err)
		assert.Equal(t, context7.Config{}, cfg)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := c7yaml.ParseConfig([]byte("base_uri: http://example.com\n"))

		require.Error(t, err)
		assert.Equal(t, context7.EINVALID, context7.ErrorCode(err))
	})

	t.Run("rejects malformed durations", func(t *testing.T) {
		t.Parallel()

		_, err := c7yaml.ParseConfig([]byte("timeout: soon\n"))

		require.Error(t, err)
	})
}
