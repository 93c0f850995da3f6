package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		content     *string
		required    bool
		expected    *Config
		expectedErr string
	}{
		{
			name: "Full config",
			content: strPtr(`helmBinary: /usr/local/bin/helm
namespace: apps
kubeconfig: /tmp/kubeconfig
kubeContext: kind-dev
values:
  - base.yaml
  - prod.yaml
logLevel: debug
logFormatter: json
`),
			expected: &Config{
				HelmBinary:   "/usr/local/bin/helm",
				Namespace:    "apps",
				Kubeconfig:   "/tmp/kubeconfig",
				KubeContext:  "kind-dev",
				Values:       []string{"base.yaml", "prod.yaml"},
				LogLevel:     "debug",
				LogFormatter: "json",
			},
		},
		{
			name:     "Empty file",
			content:  strPtr(""),
			expected: &Config{},
		},
		{
			name:     "Missing optional file",
			expected: &Config{},
		},
		{
			name:        "Missing required file",
			required:    true,
			expectedErr: "failed to read config file",
		},
		{
			name:        "Unknown key",
			content:     strPtr("releaseName: nope\n"),
			expectedErr: "field releaseName not found",
		},
		{
			name:        "Malformed yaml",
			content:     strPtr("namespace: [apps\n"),
			expectedErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o600))
			}

			cfg, err := Load(path, tt.required)
			if tt.expectedErr != "" {
				assert.ErrorContains(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.True(t, filepath.IsAbs(path) || path == filepath.Join(".config", "helm-installer", "config.yaml"))
	assert.Equal(t, "config.yaml", filepath.Base(path))
	assert.Equal(t, "helm-installer", filepath.Base(filepath.Dir(path)))
}

func strPtr(s string) *string {
	return &s
}
