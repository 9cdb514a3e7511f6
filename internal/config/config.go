package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm" validate:"required"`
	Content ContentConfig `mapstructure:"content" validate:"required"`
	Scraper ScraperConfig `mapstructure:"scraper" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// LogFile, when set, receives a rotated copy of the JSON log stream.
	LogFile               string   `mapstructure:"log_file"`
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_seconds" validate:"gte=0"`
	CORSAllowedOrigins    []string `mapstructure:"cors_allowed_origins"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	Provider      string `mapstructure:"provider" validate:"required,oneof=gemini openai"`
	GeminiAPIKey  string `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`
	OpenAIAPIKey  string `mapstructure:"openai_api_key" validate:"required_if=Provider openai"`
	OpenAIBaseURL string `mapstructure:"openai_base_url" validate:"omitempty,url"`
	ModelName     string `mapstructure:"model_name" validate:"required"`

	Temperature     float64 `mapstructure:"temperature" validate:"gte=0,lte=2"`
	TopP            float64 `mapstructure:"top_p" validate:"gte=0,lte=1"`
	MaxOutputTokens int     `mapstructure:"max_output_tokens" validate:"gt=0"`

	MaxRetries            int     `mapstructure:"max_retries" validate:"gte=1,lte=10"`
	AttemptTimeoutSeconds int     `mapstructure:"attempt_timeout_seconds" validate:"gte=0"`
	RequestsPerSecond     float64 `mapstructure:"requests_per_second" validate:"gte=0"`

	// PromptTemplateDir optionally overrides the embedded prompt templates
	// with files of the same name.
	PromptTemplateDir string `mapstructure:"prompt_template_dir"`
}

// ContentConfig holds the brand defaults and text bounds used by the generators.
type ContentConfig struct {
	DefaultCompanyName   string   `mapstructure:"default_company_name" validate:"required"`
	DefaultPharmacyName  string   `mapstructure:"default_pharmacy_name" validate:"required"`
	DefaultShopName      string   `mapstructure:"default_shop_name" validate:"required"`
	MaxTitleLength       int      `mapstructure:"max_title_length" validate:"gte=20"`
	MaxDescriptionLength int      `mapstructure:"max_description_length" validate:"gte=50"`
	MedicineKeywords     []string `mapstructure:"medicine_keywords" validate:"required,min=1"`
	BannedTerms          []string `mapstructure:"banned_terms"`
	// CompetitorAttribution is stripped from text in the paraphrase fallback.
	CompetitorAttribution string `mapstructure:"competitor_attribution"`
}

// ScraperConfig contains the settings of the product page fetcher.
type ScraperConfig struct {
	TimeoutSeconds           int    `mapstructure:"timeout_seconds" validate:"gt=0"`
	MaxRetries               int    `mapstructure:"max_retries" validate:"gte=1"`
	BackoffInitialMillis     int    `mapstructure:"backoff_initial_ms" validate:"gte=0"`
	UserAgent                string `mapstructure:"user_agent" validate:"required"`
	AllowInsecureTLSFallback bool   `mapstructure:"allow_insecure_tls_fallback"`
}
