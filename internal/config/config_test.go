package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victornm/quizduel/internal/config"
)

type testConfig struct {
	HTTP struct {
		Port int32
	}

	Redis struct {
		Addrs  []string
		Prefix string
	}

	Match struct {
		SubmissionGrace time.Duration
	}
}

func defaults() testConfig {
	var c testConfig
	c.HTTP.Port = 8080
	c.Redis.Addrs = []string{"localhost:6379"}
	c.Redis.Prefix = "quizduel"
	c.Match.SubmissionGrace = 5 * time.Second
	return c
}

func TestLoad(t *testing.T) {
	tests := map[string]struct {
		file   string
		env    map[string]string
		assert func(t *testing.T, c testConfig, err error)
	}{
		"defaults only": {
			assert: func(t *testing.T, c testConfig, err error) {
				require.NoError(t, err)
				assert.Equal(t, defaults(), c)
			},
		},
		"file overrides defaults": {
			file: "http:\n  port: 9090\nmatch:\n  submissionGrace: 30s\n",
			assert: func(t *testing.T, c testConfig, err error) {
				require.NoError(t, err)
				assert.EqualValues(t, 9090, c.HTTP.Port)
				assert.Equal(t, 30*time.Second, c.Match.SubmissionGrace)
				assert.Equal(t, "quizduel", c.Redis.Prefix)
			},
		},
		"env overrides file": {
			file: "redis:\n  prefix: from-file\n",
			env:  map[string]string{"REDIS_PREFIX": "from-env"},
			assert: func(t *testing.T, c testConfig, err error) {
				require.NoError(t, err)
				assert.Equal(t, "from-env", c.Redis.Prefix)
			},
		},
		"invalid file": {
			file: "http: [",
			assert: func(t *testing.T, _ testConfig, err error) {
				assert.Error(t, err)
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			var path string
			if tc.file != "" {
				path = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tc.file), 0o600))
			}

			c := defaults()
			err := config.Load(path, &c)
			tc.assert(t, c, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	c := defaults()
	err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), &c)
	assert.Error(t, err)
}
