package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	GraphQL  GraphQLConfig  `yaml:"graphql"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Sweep    SweepConfig    `yaml:"sweep"`
	Push     PushConfig     `yaml:"push"`
	Email    EmailConfig    `yaml:"email"`
	Storage  StorageConfig  `yaml:"storage"`
	LLM      LLMConfig      `yaml:"llm"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"               env:"SERVER_HOST"               env-default:"0.0.0.0"`
	Port            int           `yaml:"port"               env:"SERVER_PORT"               env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"       env:"SERVER_READ_TIMEOUT"       env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"      env:"SERVER_WRITE_TIMEOUT"      env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"       env:"SERVER_IDLE_TIMEOUT"       env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"   env:"SERVER_SHUTDOWN_TIMEOUT"   env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds JWT and invitation settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"        env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"        env:"AUTH_JWT_ISSUER"        env-default:"hearth"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"AUTH_REFRESH_TOKEN_TTL" env-default:"720h"`
	InviteTTL       time.Duration `yaml:"invite_ttl"        env:"AUTH_INVITE_TTL"        env-default:"168h"`
}

// GraphQLConfig holds GraphQL server settings.
type GraphQLConfig struct {
	PlaygroundEnabled    bool `yaml:"playground_enabled"    env:"GRAPHQL_PLAYGROUND_ENABLED"    env-default:"false"`
	IntrospectionEnabled bool `yaml:"introspection_enabled" env:"GRAPHQL_INTROSPECTION_ENABLED" env-default:"false"`
	ComplexityLimit      int  `yaml:"complexity_limit"      env:"GRAPHQL_COMPLEXITY_LIMIT"      env-default:"300"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// SweepConfig holds reminder sweep schedules and detection windows.
// Each condition class runs on its own timer: the scheduled pass fires
// most often because it drives recurrence; the usage pass is cheapest to
// run rarely because consumption rates move slowly.
type SweepConfig struct {
	LowStockInterval  time.Duration `yaml:"low_stock_interval" env:"SWEEP_LOW_STOCK_INTERVAL" env-default:"1h"`
	ExpiryInterval    time.Duration `yaml:"expiry_interval"    env:"SWEEP_EXPIRY_INTERVAL"    env-default:"6h"`
	UsageInterval     time.Duration `yaml:"usage_interval"     env:"SWEEP_USAGE_INTERVAL"     env-default:"12h"`
	ScheduledInterval time.Duration `yaml:"scheduled_interval" env:"SWEEP_SCHEDULED_INTERVAL" env-default:"5m"`
	ExpiryWindow      time.Duration `yaml:"expiry_window"      env:"SWEEP_EXPIRY_WINDOW"      env-default:"72h"`
	UsageWindow       time.Duration `yaml:"usage_window"       env:"SWEEP_USAGE_WINDOW"       env-default:"720h"`
	DepletionHorizon  time.Duration `yaml:"depletion_horizon"  env:"SWEEP_DEPLETION_HORIZON"  env-default:"168h"`
}

// PushConfig holds VAPID keys for web push. Push delivery is disabled
// when the keys are empty; stored notifications still work.
type PushConfig struct {
	VAPIDPublicKey  string `yaml:"vapid_public_key"  env:"PUSH_VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey string `yaml:"vapid_private_key" env:"PUSH_VAPID_PRIVATE_KEY"`
	Subscriber      string `yaml:"subscriber"        env:"PUSH_SUBSCRIBER" env-default:"mailto:noreply@hearth.app"`
}

// Enabled reports whether push delivery is configured.
func (c PushConfig) Enabled() bool {
	return c.VAPIDPublicKey != "" && c.VAPIDPrivateKey != ""
}

// EmailConfig holds transactional email (Postmark) settings. Invitation
// email is skipped when the server token is empty.
type EmailConfig struct {
	ServerToken string `yaml:"server_token" env:"EMAIL_SERVER_TOKEN"`
	FromEmail   string `yaml:"from_email"   env:"EMAIL_FROM"        env-default:"noreply@hearth.app"`
	BaseURL     string `yaml:"base_url"     env:"EMAIL_BASE_URL"    env-default:"https://app.hearth.example"`
	APIURL      string `yaml:"api_url"      env:"EMAIL_API_URL"     env-default:"https://api.postmarkapp.com"`
	MaxRetries  int    `yaml:"max_retries"  env:"EMAIL_MAX_RETRIES" env-default:"3"`
}

// StorageConfig holds S3-compatible object storage settings for receipt
// images.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"   env:"STORAGE_ENDPOINT"`
	Region    string `yaml:"region"     env:"STORAGE_REGION" env-default:"auto"`
	Bucket    string `yaml:"bucket"     env:"STORAGE_BUCKET"`
	AccessKey string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`
}

// Enabled reports whether object storage is configured.
func (c StorageConfig) Enabled() bool {
	return c.Bucket != "" && c.AccessKey != "" && c.SecretKey != ""
}

// LLMConfig holds Gemini API settings for recipe generation and receipt
// OCR. LLM features return ErrValidation when unconfigured.
type LLMConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key" env:"LLM_GEMINI_API_KEY"`
	TextModel    string `yaml:"text_model"     env:"LLM_TEXT_MODEL"   env-default:"gemini-1.5-flash"`
	VisionModel  string `yaml:"vision_model"   env:"LLM_VISION_MODEL" env-default:"gemini-1.5-flash"`
}

// Enabled reports whether LLM features are configured.
func (c LLMConfig) Enabled() bool { return c.GeminiAPIKey != "" }
