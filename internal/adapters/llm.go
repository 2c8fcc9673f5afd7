package adapters

import (
	"net/http"

	"github.com/sashabaranov/go-openai"

	"llm_advisor/internal/bootstrap"
)

type LlmAdapter struct {
	Client     *openai.Client
	Deployment string
	httpClient *http.Client
}

type LlmAdapterOption func(*LlmAdapter)

// WithHTTPClient подменяет транспорт; таймаут из конфига в этом случае не применяется.
func WithHTTPClient(httpClient *http.Client) LlmAdapterOption {
	return func(a *LlmAdapter) {
		a.httpClient = httpClient
	}
}

func NewLlmAdapter(cfg *bootstrap.Config, opts ...LlmAdapterOption) *LlmAdapter {
	adapter := &LlmAdapter{
		Deployment: cfg.LlmDeployment,
		httpClient: &http.Client{Timeout: cfg.LlmRequestTimeout},
	}
	for _, opt := range opts {
		opt(adapter)
	}

	clientCfg := openai.DefaultAzureConfig(cfg.AzureApiKey, cfg.AzureEndpoint)
	if cfg.AzureApiVersion != "" {
		clientCfg.APIVersion = cfg.AzureApiVersion
	}
	// имя деплоймента передаём как есть, без замены точек и двоеточий
	clientCfg.AzureModelMapperFunc = func(model string) string { return model }
	clientCfg.HTTPClient = adapter.httpClient

	adapter.Client = openai.NewClientWithConfig(clientCfg)
	return adapter
}
