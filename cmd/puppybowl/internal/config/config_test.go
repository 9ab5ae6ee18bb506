package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetteup/puppybowl/cmd/puppybowl/internal/config"
	"github.com/cetteup/puppybowl/internal/roster"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		want            config.Config
		wantErrContains string
	}{
		{
			name: "loads full config",
			content: `api:
  url: http://localhost:8081/api/
  cohort: 2302-ACC-ET-WEB-PT-D
  timeout: 3s
  userAgent: puppybowl-test
  headers:
    X-Cohort: puppies
`,
			want: config.Config{
				API: config.APIConfig{
					URL:       "http://localhost:8081/api/",
					Cohort:    "2302-ACC-ET-WEB-PT-D",
					Timeout:   3 * time.Second,
					UserAgent: "puppybowl-test",
					Headers:   map[string]string{"X-Cohort": "puppies"},
				},
			},
		},
		{
			name: "uses defaults for omitted values",
			content: `api:
  cohort: 2302-ACC-ET-WEB-PT-D
`,
			want: config.Config{
				API: config.APIConfig{
					URL:       roster.BaseURL,
					Cohort:    "2302-ACC-ET-WEB-PT-D",
					Timeout:   roster.DefaultTimeout,
					UserAgent: roster.DefaultUserAgent,
				},
			},
		},
		{
			name: "fails for invalid url",
			content: `api:
  url: not a url
`,
			wantErrContains: "invalid config",
		},
		{
			name:            "fails for invalid yaml",
			content:         "api: [",
			wantErrContains: "yaml",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			// WHEN
			actual, err := config.LoadConfig(path)

			// THEN
			if tt.wantErrContains != "" {
				assert.ErrorContains(t, err, tt.wantErrContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, actual)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	// WHEN
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)
}
