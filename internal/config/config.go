package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	S3       S3Config
	Log      LogConfig
	Analysis AnalysisConfig
	CORS     CORSConfig
	Queue    QueueConfig
	Email    EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds the evidence bucket settings. Endpoint is only set
// for MinIO in local development.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// QueueConfig holds analysis queue worker settings.
type QueueConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	MaxRetries       int `mapstructure:"max_retries"`
	Concurrency      int `mapstructure:"concurrency"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// AnalyzerProviderConfig holds settings for a single AI analysis provider.
// A provider with an empty APIKey is not registered.
type AnalyzerProviderConfig struct {
	APIKey          string   `mapstructure:"api_key"`
	DefaultModel    string   `mapstructure:"default_model"`
	TimeoutSecs     int      `mapstructure:"timeout_secs"`
	ConfidencePrior float64  `mapstructure:"confidence_prior"`
	Specialties     []string `mapstructure:"specialties"`
}

// Enabled reports whether this provider has credentials configured.
func (p *AnalyzerProviderConfig) Enabled() bool {
	return p.APIKey != ""
}

// AnalysisConfig holds multi-provider document analysis settings.
type AnalysisConfig struct {
	TimeoutSecs int `mapstructure:"timeout_secs"`
	MaxInFlight int `mapstructure:"max_in_flight"`

	OpenAI AnalyzerProviderConfig `mapstructure:"openai"`
	Claude AnalyzerProviderConfig `mapstructure:"claude"`
	Gemini AnalyzerProviderConfig `mapstructure:"gemini"`
	Grok   AnalyzerProviderConfig `mapstructure:"grok"`
}

// defaults holds every config key and its fallback. A key's env var is
// derived from the key itself (CLAIMGUARD_ prefix, dots to underscores),
// so adding a row here is all it takes to introduce a new setting.
var defaults = map[string]interface{}{
	"server.port":          ":8080",
	"server.read_timeout":  "15s",
	"server.write_timeout": "15s",
	"server.environment":   "development",

	"db.host":     "localhost",
	"db.port":     5432,
	"db.user":     "claimguard",
	"db.password": "claimguard_secret",
	"db.name":     "claimguard_db",
	"db.sslmode":  "disable",
	"db.max_open": 25,
	"db.max_idle": 10,

	"jwt.secret":         "change-me-in-production",
	"jwt.access_expiry":  "15m",
	"jwt.refresh_expiry": "168h",
	"jwt.issuer":         "claimguard",

	"s3.region":           "us-east-1",
	"s3.bucket":           "claimguard-uploads",
	"s3.endpoint":         "",
	"s3.access_key":       "",
	"s3.secret_key":       "",
	"s3.max_file_size_mb": 50,
	"s3.presign_expiry":   3600,

	"log.level":  "debug",
	"log.format": "console",

	// Localhost origins for development; production sets its own list.
	"cors.allowed_origins": "http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001",

	"queue.poll_interval_secs": 10,
	"queue.max_retries":        5,
	"queue.concurrency":        5,

	"email.provider":     "noop",
	"email.region":       "us-east-1",
	"email.from_address": "noreply@claimguard.io",
	"email.from_name":    "ClaimGuard",
	"email.frontend_url": "http://localhost:3000",

	"analysis.timeout_secs":  120,
	"analysis.max_in_flight": 4,

	// Providers ship disabled; a key in the environment turns one on.
	// Confidence priors are starting weights for consensus scoring.
	"analysis.openai.api_key":          "",
	"analysis.openai.default_model":    "gpt-4o",
	"analysis.openai.timeout_secs":     120,
	"analysis.openai.confidence_prior": 0.85,
	"analysis.openai.specialties":      "complex-reasoning,vision",

	"analysis.claude.api_key":          "",
	"analysis.claude.default_model":    "claude-sonnet-4-20250514",
	"analysis.claude.timeout_secs":     120,
	"analysis.claude.confidence_prior": 0.87,
	"analysis.claude.specialties":      "complex-reasoning,regulatory",

	"analysis.gemini.api_key":          "",
	"analysis.gemini.default_model":    "gemini-2.0-flash",
	"analysis.gemini.timeout_secs":     120,
	"analysis.gemini.confidence_prior": 0.80,
	"analysis.gemini.specialties":      "vision",

	"analysis.grok.api_key":          "",
	"analysis.grok.default_model":    "grok-2-vision-1212",
	"analysis.grok.timeout_secs":     120,
	"analysis.grok.confidence_prior": 0.78,
	"analysis.grok.specialties":      "real-time,anomaly-detection",
}

// envVar derives the environment variable name for a config key,
// e.g. "analysis.claude.api_key" -> "CLAIMGUARD_ANALYSIS_CLAUDE_API_KEY".
func envVar(key string) string {
	return "CLAIMGUARD_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Load reads configuration from environment variables with the CLAIMGUARD_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	for key, def := range defaults {
		v.SetDefault(key, def)
		_ = v.BindEnv(key, envVar(key))
	}

	cfg := &Config{
		Server:   serverConfig(v),
		DB:       dbConfig(v),
		JWT:      jwtConfig(v),
		S3:       s3Config(v),
		Log:      LogConfig{Level: v.GetString("log.level"), Format: v.GetString("log.format")},
		CORS:     CORSConfig{AllowedOrigins: splitCSV(v.GetString("cors.allowed_origins"))},
		Queue:    queueConfig(v),
		Email:    emailConfig(v),
		Analysis: analysisConfig(v),
	}
	return cfg, nil
}

func serverConfig(v *viper.Viper) ServerConfig {
	port := v.GetString("server.port")
	// Railway/Heroku/Render inject PORT; an explicit CLAIMGUARD_SERVER_PORT
	// still wins over it.
	if p := os.Getenv("PORT"); p != "" && os.Getenv(envVar("server.port")) == "" {
		port = ":" + p
	}
	return ServerConfig{
		Port:         port,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
}

func dbConfig(v *viper.Viper) DBConfig {
	return DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
}

func jwtConfig(v *viper.Viper) JWTConfig {
	return JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
}

func s3Config(v *viper.Viper) S3Config {
	return S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
}

func queueConfig(v *viper.Viper) QueueConfig {
	return QueueConfig{
		PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
		MaxRetries:       v.GetInt("queue.max_retries"),
		Concurrency:      v.GetInt("queue.concurrency"),
	}
}

func emailConfig(v *viper.Viper) EmailConfig {
	return EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}
}

func analysisConfig(v *viper.Viper) AnalysisConfig {
	return AnalysisConfig{
		TimeoutSecs: v.GetInt("analysis.timeout_secs"),
		MaxInFlight: v.GetInt("analysis.max_in_flight"),
		OpenAI:      analyzerProviderConfig(v, "analysis.openai"),
		Claude:      analyzerProviderConfig(v, "analysis.claude"),
		Gemini:      analyzerProviderConfig(v, "analysis.gemini"),
		Grok:        analyzerProviderConfig(v, "analysis.grok"),
	}
}

func analyzerProviderConfig(v *viper.Viper, prefix string) AnalyzerProviderConfig {
	return AnalyzerProviderConfig{
		APIKey:          v.GetString(prefix + ".api_key"),
		DefaultModel:    v.GetString(prefix + ".default_model"),
		TimeoutSecs:     v.GetInt(prefix + ".timeout_secs"),
		ConfidencePrior: v.GetFloat64(prefix + ".confidence_prior"),
		Specialties:     splitCSV(v.GetString(prefix + ".specialties")),
	}
}

// splitCSV splits a comma-separated string, trimming whitespace and dropping empties.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
