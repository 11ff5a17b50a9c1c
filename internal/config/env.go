// Package config defines environment variable keys for configuration.
package config

//nolint:gosec // Environment variable keys are not credentials.
const (
	// Server
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	// Data
	EnvDataDir = "DATA_DIR"

	// CORS
	EnvCORSAllowOrigins = "CORS_ALLOW_ORIGINS"

	// LLM providers
	EnvGoogleAPIKey        = "GOOGLE_API_KEY"
	EnvGroqAPIKey          = "GROQ_API_KEY"
	EnvGeminiModels        = "GEMINI_MODELS"
	EnvGroqModels          = "GROQ_MODELS"
	EnvLLMPrimaryProvider  = "LLM_PRIMARY_PROVIDER"
	EnvLLMFallbackProvider = "LLM_FALLBACK_PROVIDER"

	// AI endpoint rate limits
	EnvAIRateBurst  = "AI_RATE_LIMIT_BURST"
	EnvAIRateRefill = "AI_RATE_LIMIT_REFILL_PER_SEC"
	EnvAIRateDaily  = "AI_RATE_LIMIT_DAILY"

	// OpenAlex
	EnvOpenAlexBaseURL = "OPENALEX_BASE_URL"
	EnvOpenAlexTimeout = "OPENALEX_TIMEOUT"
	EnvOpenAlexMailto  = "OPENALEX_MAILTO"

	// Metrics auth
	EnvMetricsUsername = "METRICS_USERNAME"
	EnvMetricsPassword = "METRICS_PASSWORD"

	// Better Stack log shipping
	EnvBetterStackToken    = "BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "BETTERSTACK_ENDPOINT"

	// Sentry error tracking
	EnvSentryToken       = "SENTRY_TOKEN"
	EnvSentryHost        = "SENTRY_HOST"
	EnvSentryEnvironment = "SENTRY_ENVIRONMENT"
	EnvSentrySampleRate  = "SENTRY_SAMPLE_RATE"
)
