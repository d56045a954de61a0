package config

import (
	"strconv"
)

// Environment variables that override the config file.
const (
	EnvHome             = "IMPACTCALC_HOME"
	EnvConfigFile       = "IMPACTCALC_CONFIG"
	EnvAddr             = "IMPACTCALC_ADDR"
	EnvLogLevel         = "IMPACTCALC_LOG_LEVEL"
	EnvLogFormat        = "IMPACTCALC_LOG_FORMAT"
	EnvLogFile          = "IMPACTCALC_LOG_FILE"
	EnvRateLimitEnabled = "IMPACTCALC_RATE_LIMIT_ENABLED"
	EnvRateLimitRPS     = "IMPACTCALC_RATE_LIMIT_RPS"
	EnvRateLimitBurst   = "IMPACTCALC_RATE_LIMIT_BURST"
	EnvMetricsEnabled   = "IMPACTCALC_METRICS_ENABLED"
	EnvOutputFormat     = "IMPACTCALC_OUTPUT_FORMAT"
)

// ApplyEnv overrides fields from the environment. Values that fail to parse
// are ignored so a typo never takes the service down.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v, ok := lookupEnv(EnvRateLimitEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.RateLimit.Enabled = b
		}
	}
	if v, ok := lookupEnv(EnvRateLimitRPS); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RateLimit.RequestsPerSecond = f
		}
	}
	if v, ok := lookupEnv(EnvRateLimitBurst); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateLimit.Burst = n
		}
	}
	if v, ok := lookupEnv(EnvMetricsEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Metrics.Enabled = b
		}
	}
	if v, ok := lookupEnv(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = v
	}
}
