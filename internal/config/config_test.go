package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestInitConfigDefaults(t *testing.T) {
	t.Setenv(envConfig, "")

	require.NoError(t, InitConfig("", io.Discard))
	require.Equal(t, "info", C.LogLevel)
	require.Equal(t, "0.0.0.0", C.HttpHost)
	require.Equal(t, "8080", C.HttpPort)
	require.Equal(t, "0.0.0.0:8080", HttpAddress())
	require.Equal(t, "https://api.github.com", C.GithubApiUrl)
	require.Equal(t, "https://gist.github.com", C.GithubGistUrl)
	require.Equal(t, 10*time.Second, C.GithubFetchTimeout)
	require.False(t, C.MetricsEnabled)
	require.Equal(t, "0.0.0.0:6158", MetricsAddress())
}

func TestInitConfigFile(t *testing.T) {
	t.Setenv(envConfig, "")

	path := writeConfig(t, `
log-level: debug
http.host: 127.0.0.1
http.port: 9000
github.api-url: http://localhost:3000/api
github.fetch-timeout: 2s
metrics.enabled: true
`)

	require.NoError(t, InitConfig(path, io.Discard))
	require.Equal(t, "debug", C.LogLevel)
	require.Equal(t, "127.0.0.1:9000", HttpAddress())
	require.Equal(t, "http://localhost:3000/api", C.GithubApiUrl)
	require.Equal(t, "https://gist.github.com", C.GithubGistUrl)
	require.Equal(t, 2*time.Second, C.GithubFetchTimeout)
	require.True(t, C.MetricsEnabled)
}

func TestInitConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "http.port: 9000\nlog-level: debug\n")
	t.Setenv(envConfig, "http.port: 9100\n")

	require.NoError(t, InitConfig(path, io.Discard))
	require.Equal(t, "9100", C.HttpPort)
	require.Equal(t, "debug", C.LogLevel)
}

func TestInitConfigEmptyFile(t *testing.T) {
	t.Setenv(envConfig, "")

	require.NoError(t, InitConfig(writeConfig(t, ""), io.Discard))
	require.Equal(t, "8080", C.HttpPort)
}

func TestInitConfigErrors(t *testing.T) {
	t.Setenv(envConfig, "")

	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"bad port", "http.port: abc", "HttpPort should be a port number"},
		{"port out of range", "metrics.port: 70000", "MetricsPort should be a port number"},
		{"bad log level", "log-level: loud", "LogLevel is not a known log level"},
		{"bad api url", "github.api-url: not a url", "GithubApiUrl should be a valid URL"},
		{"zero timeout", "github.fetch-timeout: 0s", "GithubFetchTimeout should be greater than 0"},
		{"invalid yaml", "http.port: [", "cannot decode config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitConfig(writeConfig(t, tt.content), io.Discard)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}

	require.Error(t, InitConfig(filepath.Join(t.TempDir(), "missing.yml"), io.Discard))
}
