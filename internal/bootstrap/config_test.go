package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "llm_advisor/internal/errors"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSetupFromFile(t *testing.T) {
	path := writeEnvFile(t, `SERVER_PORT=9090
LOCAL_CORS=true
AZURE_API_KEY=secret
AZURE_ENDPOINT=https://example.openai.azure.com
AZURE_API_VERSION=2024-10-21
LLM_DEPLOYMENT=DeepSeek-R1
LLM_REQUEST_TIMEOUT=90s
`)

	cfg, err := Setup(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.True(t, cfg.IsLocalCors)
	assert.Equal(t, "secret", cfg.AzureApiKey)
	assert.Equal(t, "https://example.openai.azure.com", cfg.AzureEndpoint)
	assert.Equal(t, "2024-10-21", cfg.AzureApiVersion)
	assert.Equal(t, "DeepSeek-R1", cfg.LlmDeployment)
	assert.Equal(t, 90*time.Second, cfg.LlmRequestTimeout)
}

func TestSetupEnvOverridesFile(t *testing.T) {
	path := writeEnvFile(t, `AZURE_API_KEY=from-file
AZURE_ENDPOINT=https://file.openai.azure.com
LLM_DEPLOYMENT=file-deployment
`)
	t.Setenv("LLM_DEPLOYMENT", "env-deployment")

	cfg, err := Setup(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.AzureApiKey)
	assert.Equal(t, "env-deployment", cfg.LlmDeployment)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "2024-05-01-preview", cfg.AzureApiVersion)
}

func TestSetupWithoutFile(t *testing.T) {
	t.Setenv("AZURE_API_KEY", "env-key")
	t.Setenv("AZURE_ENDPOINT", "https://env.openai.azure.com")
	t.Setenv("LLM_DEPLOYMENT", "env-deployment")

	cfg, err := Setup(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.AzureApiKey)
	assert.Equal(t, time.Duration(0), cfg.LlmRequestTimeout)
}

func TestSetupMissingRequired(t *testing.T) {
	path := writeEnvFile(t, `AZURE_API_KEY=secret
AZURE_ENDPOINT=https://example.openai.azure.com
`)

	_, err := Setup(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConfigMissing)
	assert.Contains(t, err.Error(), "LLM_DEPLOYMENT")
}
