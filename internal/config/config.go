// Package config loads worker configuration from the environment, following
// the fallback-default pattern of the teacher's
// internal/infrastructure/config/config.go (Load/getEnv).
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the worker process configuration.
type Config struct {
	LogLevel string

	TemporalHostPort  string
	TemporalNamespace string
	TaskQueue         string

	DatabaseDSN string

	OpenAIAPIKey string

	// The fields below are loaded from the environment and handed to
	// activities.New, but workflow code does not see them: workflows reference
	// activities through a nil *activities.Activities, so CampaignWorkflow uses
	// its built-in 10 / 30s and the monitor workflows 24h / 7d. Nothing reads
	// DefaultConnectionHorizon or DefaultRetryAfter; connection_request.go has
	// its own constants with the same values.

	// DefaultLeadProcessingDelay is the spacing between child lead workflow
	// starts inside the campaign orchestrator (§4.5).
	DefaultLeadProcessingDelay time.Duration
	// DefaultMaxConcurrentLeads caps in-flight child lead workflows (§4.5).
	DefaultMaxConcurrentLeads int
	// DefaultConnectionHorizon is the fallback polling horizon for
	// connection-request acceptance when no rejected-branch edge exists (§4.3).
	DefaultConnectionHorizon time.Duration
	// DefaultRetryAfter is the wait for a provider quota error that omits RetryAfterHours (§4.3).
	DefaultRetryAfter time.Duration

	// MonitorLeadPeriod / MonitorCompanyPeriod are the monitor loop periods (§4.6).
	MonitorLeadPeriod    time.Duration
	MonitorCompanyPeriod time.Duration
}

// Load reads the config from the environment, applying the same defaults the
// spec states inline (§4.3, §4.5, §4.6).
func Load() *Config {
	return &Config{
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		TemporalHostPort:  getEnv("TEMPORAL_HOST_PORT", "127.0.0.1:7233"),
		TemporalNamespace: getEnv("TEMPORAL_NAMESPACE", "default"),
		TaskQueue:         getEnv("TEMPORAL_TASK_QUEUE", "linkedin-outreach"),
		DatabaseDSN:       getEnv("DATABASE_DSN", ""),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),

		DefaultLeadProcessingDelay: getEnvDuration("LEAD_PROCESSING_DELAY", 30*time.Second),
		DefaultMaxConcurrentLeads:  getEnvInt("MAX_CONCURRENT_LEADS", 10),
		DefaultConnectionHorizon:   getEnvDuration("CONNECTION_REQUEST_HORIZON", 10*24*time.Hour),
		DefaultRetryAfter:          getEnvDuration("PROVIDER_LIMIT_RETRY_AFTER", 24*time.Hour),

		MonitorLeadPeriod:    getEnvDuration("MONITOR_LEAD_PERIOD", 24*time.Hour),
		MonitorCompanyPeriod: getEnvDuration("MONITOR_COMPANY_PERIOD", 7*24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
